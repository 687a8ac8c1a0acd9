// Package opengl implements dgl.Driver over the go-gl core bindings.
package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/all-core/gl"
	"go.uber.org/zap"

	"diamond-gl/dgl"
)

var _ dgl.Driver = (*Driver)(nil)

// Minimum context version: direct state access is core since 4.5.
const (
	minMajor = 4
	minMinor = 5
)

// Driver forwards dgl calls to the current GL context.
type Driver struct {
	log *zap.Logger
}

// New loads the GL entry points. It must be called on the goroutine that
// owns the window's context, after the context was made current.
func New(log *zap.Logger) (*Driver, error) {
	if log == nil {
		log = dgl.Logger()
	}
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)

	d := &Driver{log: log}
	log.Info("opengl initialized",
		zap.String("version", d.GetString(dgl.Version)),
		zap.String("renderer", d.GetString(dgl.Renderer)),
		zap.String("vendor", d.GetString(dgl.Vendor)),
	)
	if major < minMajor || (major == minMajor && minor < minMinor) {
		return nil, fmt.Errorf("opengl %d.%d: %w: need %d.%d", major, minor, dgl.ErrUnsupported, minMajor, minMinor)
	}
	return d, nil
}

func ptr[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

func pointer(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func names(n int, create func(int32, *uint32)) []uint32 {
	ids := make([]uint32, n)
	if n > 0 {
		create(int32(n), &ids[0])
	}
	return ids
}

func release(ids []uint32, del func(int32, *uint32)) {
	if len(ids) > 0 {
		del(int32(len(ids)), &ids[0])
	}
}

// Objects.

func (d *Driver) CreateBuffers(n int) []uint32 { return names(n, gl.CreateBuffers) }
func (d *Driver) DeleteBuffers(ids []uint32)   { release(ids, gl.DeleteBuffers) }

func (d *Driver) CreateTextures(target dgl.Enum, n int) []uint32 {
	return names(n, func(n int32, ids *uint32) { gl.CreateTextures(uint32(target), n, ids) })
}

func (d *Driver) DeleteTextures(ids []uint32)       { release(ids, gl.DeleteTextures) }
func (d *Driver) CreateSamplers(n int) []uint32     { return names(n, gl.CreateSamplers) }
func (d *Driver) DeleteSamplers(ids []uint32)       { release(ids, gl.DeleteSamplers) }
func (d *Driver) CreateVertexArrays(n int) []uint32 { return names(n, gl.CreateVertexArrays) }
func (d *Driver) DeleteVertexArrays(ids []uint32)   { release(ids, gl.DeleteVertexArrays) }

func (d *Driver) CreateProgramPipelines(n int) []uint32 {
	return names(n, gl.CreateProgramPipelines)
}

func (d *Driver) DeleteProgramPipelines(ids []uint32) { release(ids, gl.DeleteProgramPipelines) }

func (d *Driver) CreateShader(stage dgl.Enum) uint32 { return gl.CreateShader(uint32(stage)) }
func (d *Driver) DeleteShader(id uint32)             { gl.DeleteShader(id) }
func (d *Driver) CreateProgram() uint32              { return gl.CreateProgram() }
func (d *Driver) DeleteProgram(id uint32)            { gl.DeleteProgram(id) }

func (d *Driver) CreateShaderProgram(stage dgl.Enum, sources []string) uint32 {
	csrc, free := cstrings(sources)
	defer free()
	return gl.CreateShaderProgramv(uint32(stage), int32(max(len(sources), 1)), csrc)
}

// Buffers.

func (d *Driver) NamedBufferData(buf uint32, size int, data []byte, usage dgl.Enum) {
	gl.NamedBufferData(buf, size, pointer(data), uint32(usage))
}

func (d *Driver) NamedBufferSubData(buf uint32, offset int, data []byte) {
	gl.NamedBufferSubData(buf, offset, len(data), pointer(data))
}

func (d *Driver) NamedBufferStorage(buf uint32, size int, data []byte, flags dgl.Bitfield) {
	gl.NamedBufferStorage(buf, size, pointer(data), uint32(flags))
}

func (d *Driver) CopyNamedBufferSubData(src, dst uint32, readOffset, writeOffset, size int) {
	gl.CopyNamedBufferSubData(src, dst, readOffset, writeOffset, size)
}

func (d *Driver) GetNamedBufferSubData(buf uint32, offset int, out []byte) {
	gl.GetNamedBufferSubData(buf, offset, len(out), pointer(out))
}

// Bindings.

func (d *Driver) BindBuffer(target dgl.Enum, buf uint32) { gl.BindBuffer(uint32(target), buf) }

func (d *Driver) BindBufferBase(target dgl.Enum, index, buf uint32) {
	gl.BindBufferBase(uint32(target), index, buf)
}

func (d *Driver) BindBufferRange(target dgl.Enum, index, buf uint32, offset, size int) {
	gl.BindBufferRange(uint32(target), index, buf, offset, size)
}

func (d *Driver) BindBuffersBase(target dgl.Enum, first uint32, bufs []uint32) {
	gl.BindBuffersBase(uint32(target), first, int32(len(bufs)), ptr(bufs))
}

func (d *Driver) BindTexture(target dgl.Enum, tex uint32) { gl.BindTexture(uint32(target), tex) }
func (d *Driver) BindTextureUnit(unit, tex uint32)        { gl.BindTextureUnit(unit, tex) }

func (d *Driver) BindTextures(first uint32, texs []uint32) {
	gl.BindTextures(first, int32(len(texs)), ptr(texs))
}

func (d *Driver) BindSampler(unit, sampler uint32) { gl.BindSampler(unit, sampler) }

func (d *Driver) BindSamplers(first uint32, samplers []uint32) {
	gl.BindSamplers(first, int32(len(samplers)), ptr(samplers))
}

func (d *Driver) BindImageTexture(unit, tex uint32, level int32, layered bool, layer int32, access, format dgl.Enum) {
	gl.BindImageTexture(unit, tex, level, layered, layer, uint32(access), uint32(format))
}

func (d *Driver) UseProgram(prog uint32)              { gl.UseProgram(prog) }
func (d *Driver) BindVertexArray(vao uint32)          { gl.BindVertexArray(vao) }
func (d *Driver) BindProgramPipeline(pipeline uint32) { gl.BindProgramPipeline(pipeline) }

// Vertex arrays.

func (d *Driver) VertexArrayVertexBuffer(vao, binding, buf uint32, offset int, stride int32) {
	gl.VertexArrayVertexBuffer(vao, binding, buf, offset, stride)
}

func (d *Driver) VertexArrayVertexBuffers(vao, first uint32, bufs []uint32, offsets []int, strides []int32) {
	gl.VertexArrayVertexBuffers(vao, first, int32(len(bufs)), ptr(bufs), ptr(offsets), ptr(strides))
}

func (d *Driver) VertexArrayElementBuffer(vao, buf uint32) { gl.VertexArrayElementBuffer(vao, buf) }

func (d *Driver) EnableVertexArrayAttrib(vao, attrib uint32) {
	gl.EnableVertexArrayAttrib(vao, attrib)
}

func (d *Driver) DisableVertexArrayAttrib(vao, attrib uint32) {
	gl.DisableVertexArrayAttrib(vao, attrib)
}

func (d *Driver) VertexArrayAttribFormat(vao, attrib uint32, size int32, typ dgl.Enum, normalized bool, relOffset uint32) {
	gl.VertexArrayAttribFormat(vao, attrib, size, uint32(typ), normalized, relOffset)
}

func (d *Driver) VertexArrayAttribIFormat(vao, attrib uint32, size int32, typ dgl.Enum, relOffset uint32) {
	gl.VertexArrayAttribIFormat(vao, attrib, size, uint32(typ), relOffset)
}

func (d *Driver) VertexArrayAttribLFormat(vao, attrib uint32, size int32, typ dgl.Enum, relOffset uint32) {
	gl.VertexArrayAttribLFormat(vao, attrib, size, uint32(typ), relOffset)
}

func (d *Driver) VertexArrayAttribBinding(vao, attrib, binding uint32) {
	gl.VertexArrayAttribBinding(vao, attrib, binding)
}

func (d *Driver) VertexArrayBindingDivisor(vao, binding, divisor uint32) {
	gl.VertexArrayBindingDivisor(vao, binding, divisor)
}
