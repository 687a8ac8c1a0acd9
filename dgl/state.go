package dgl

type indexedSlot struct {
	target Enum
	index  uint32
}

// State mirrors the context-global binding table. Every bind made through
// the Context is forwarded to the driver and recorded here, so a slot holds
// the last handle bound to it until it is rebound or the handle is deleted.
// Zero means nothing is bound.
type State struct {
	buffers     map[Enum]uint32
	indexed     map[indexedSlot]uint32
	textures    map[Enum]uint32
	units       map[uint32]uint32
	samplers    map[uint32]uint32
	images      map[uint32]uint32
	enabled     map[Enum]bool
	program     uint32
	vertexArray uint32
	pipeline    uint32
}

func newState() *State {
	return &State{
		buffers:  make(map[Enum]uint32),
		indexed:  make(map[indexedSlot]uint32),
		textures: make(map[Enum]uint32),
		units:    make(map[uint32]uint32),
		samplers: make(map[uint32]uint32),
		images:   make(map[uint32]uint32),
		enabled:  make(map[Enum]bool),
	}
}

// Buffer returns the buffer bound to a non-indexed target.
func (s *State) Buffer(target Enum) uint32 { return s.buffers[target] }

// IndexedBuffer returns the buffer bound to binding index of target.
func (s *State) IndexedBuffer(target Enum, index uint32) uint32 {
	return s.indexed[indexedSlot{target, index}]
}

// Texture returns the texture bound to target on the active texture unit.
func (s *State) Texture(target Enum) uint32 { return s.textures[target] }

func (s *State) TextureUnit(unit uint32) uint32 { return s.units[unit] }
func (s *State) SamplerUnit(unit uint32) uint32 { return s.samplers[unit] }
func (s *State) ImageUnit(unit uint32) uint32   { return s.images[unit] }

func (s *State) Program() uint32     { return s.program }
func (s *State) VertexArray() uint32 { return s.vertexArray }
func (s *State) Pipeline() uint32    { return s.pipeline }

// Enabled reports whether capability was enabled through the Context.
func (s *State) Enabled(capability Enum) bool { return s.enabled[capability] }

func (s *State) setIndexed(target Enum, index, buf uint32) {
	s.indexed[indexedSlot{target, index}] = buf
	// Indexed binds also replace the generic binding of the target.
	s.buffers[target] = buf
}

// forget clears the slots a deleted handle occupied. A deleted program
// stays current until another program is used, as in GL.
func (s *State) forget(kind Kind, id uint32) {
	switch kind {
	case KindBuffer:
		clearValue(s.buffers, id)
		clearValue(s.indexed, id)
	case KindTexture:
		clearValue(s.textures, id)
		clearValue(s.units, id)
		clearValue(s.images, id)
	case KindSampler:
		clearValue(s.samplers, id)
	case KindVertexArray:
		if s.vertexArray == id {
			s.vertexArray = 0
		}
	case KindPipeline:
		if s.pipeline == id {
			s.pipeline = 0
		}
	}
}

func clearValue[K comparable](m map[K]uint32, id uint32) {
	for k, v := range m {
		if v == id {
			delete(m, k)
		}
	}
}
