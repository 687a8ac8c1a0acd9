package dgl

// BufferTarget is a non-indexed buffer binding point such as ArrayBuffer or
// DrawIndirectBuffer.
type BufferTarget struct {
	ctx    *Context
	target Enum
}

// BufferTarget returns the binding point for target.
func (c *Context) BufferTarget(target Enum) BufferTarget {
	return BufferTarget{ctx: c, target: target}
}

func (t BufferTarget) Target() Enum { return t.target }

// Bind binds buf to the target. A nil buf unbinds.
func (t BufferTarget) Bind(buf *Buffer) {
	id := bufferHandle(t.ctx, buf)
	t.ctx.driver().BindBuffer(t.target, id)
	t.ctx.state.buffers[t.target] = id
}

// Bound returns the buffer currently bound to the target.
func (t BufferTarget) Bound() uint32 {
	return t.ctx.state.Buffer(t.target)
}

// Scope binds buf until the returned scope is closed.
func (t BufferTarget) Scope(buf *Buffer) *Scope {
	t.Bind(buf)
	return newScope(bufferHandle(t.ctx, buf), t.Bound, func() { t.Bind(nil) })
}

// Binding returns the indexed binding point index of the target. Only
// AtomicCounterBuffer, TransformFeedbackBuffer, UniformBuffer and
// ShaderStorageBuffer have indexed binding points.
func (t BufferTarget) Binding(index uint32) BufferBinding {
	return BufferBinding{ctx: t.ctx, target: t.target, index: index}
}

// BindBase binds bufs to consecutive indexed binding points starting at
// first with one driver call. Nil entries unbind. Unlike Binding(i).Bind,
// the generic binding of the target is left as it was.
func (t BufferTarget) BindBase(first uint32, bufs ...*Buffer) {
	ids := make([]uint32, len(bufs))
	for i, b := range bufs {
		ids[i] = bufferHandle(t.ctx, b)
	}
	t.ctx.driver().BindBuffersBase(t.target, first, ids)
	for i, id := range ids {
		t.ctx.state.indexed[indexedSlot{t.target, first + uint32(i)}] = id
	}
}

// BufferBinding is one indexed buffer binding point.
type BufferBinding struct {
	ctx    *Context
	target Enum
	index  uint32
}

func (b BufferBinding) Target() Enum  { return b.target }
func (b BufferBinding) Index() uint32 { return b.index }

// Bind binds the whole of buf. A nil buf unbinds.
func (b BufferBinding) Bind(buf *Buffer) {
	id := bufferHandle(b.ctx, buf)
	b.ctx.driver().BindBufferBase(b.target, b.index, id)
	b.ctx.state.setIndexed(b.target, b.index, id)
}

// BindRange binds size bytes of buf starting at offset.
func (b BufferBinding) BindRange(buf *Buffer, offset, size int) {
	id := bufferHandle(b.ctx, buf)
	b.ctx.driver().BindBufferRange(b.target, b.index, id, offset, size)
	b.ctx.state.setIndexed(b.target, b.index, id)
}

// Unbind binds zero to the binding point.
func (b BufferBinding) Unbind() {
	b.Bind(nil)
}

// Bound returns the buffer currently bound to the binding point.
func (b BufferBinding) Bound() uint32 {
	return b.ctx.state.IndexedBuffer(b.target, b.index)
}

// Scope binds buf until the returned scope is closed.
func (b BufferBinding) Scope(buf *Buffer) *Scope {
	b.Bind(buf)
	return newScope(bufferHandle(b.ctx, buf), b.Bound, b.Unbind)
}

// Scope is a binding held for a bounded region of code. Close binds zero to
// the slot, unless something else has been bound there since.
type Scope struct {
	handle  uint32
	current func() uint32
	unbind  func()
	closed  bool
}

func newScope(handle uint32, current func() uint32, unbind func()) *Scope {
	return &Scope{handle: handle, current: current, unbind: unbind}
}

// Handle returns the handle the scope bound.
func (s *Scope) Handle() uint32 { return s.handle }

// Close ends the scope. Calling it again has no effect.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.handle != 0 && s.current() == s.handle {
		s.unbind()
	}
}
