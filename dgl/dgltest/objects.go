package dgltest

import (
	"strings"

	"diamond-gl/dgl"
)

func (d *Driver) CreateBuffers(n int) []uint32 {
	ids := d.create(dgl.KindBuffer, n)
	d.record("CreateBuffers", n)
	return ids
}

func (d *Driver) DeleteBuffers(ids []uint32) {
	d.record("DeleteBuffers", clone(ids))
	d.delete(dgl.KindBuffer, ids)
	for _, id := range ids {
		delete(d.buffers, id)
	}
}

func (d *Driver) CreateTextures(target dgl.Enum, n int) []uint32 {
	ids := d.create(dgl.KindTexture, n)
	for _, id := range ids {
		d.textures[id] = &texture{target: target, params: make(map[dgl.Enum][]float64)}
	}
	d.record("CreateTextures", target, n)
	return ids
}

func (d *Driver) DeleteTextures(ids []uint32) {
	d.record("DeleteTextures", clone(ids))
	d.delete(dgl.KindTexture, ids)
	for _, id := range ids {
		delete(d.textures, id)
	}
}

func (d *Driver) CreateSamplers(n int) []uint32 {
	ids := d.create(dgl.KindSampler, n)
	for _, id := range ids {
		d.samplers[id] = make(map[dgl.Enum][]float64)
	}
	d.record("CreateSamplers", n)
	return ids
}

func (d *Driver) DeleteSamplers(ids []uint32) {
	d.record("DeleteSamplers", clone(ids))
	d.delete(dgl.KindSampler, ids)
	for _, id := range ids {
		delete(d.samplers, id)
	}
}

func (d *Driver) CreateVertexArrays(n int) []uint32 {
	ids := d.create(dgl.KindVertexArray, n)
	d.record("CreateVertexArrays", n)
	return ids
}

func (d *Driver) DeleteVertexArrays(ids []uint32) {
	d.record("DeleteVertexArrays", clone(ids))
	d.delete(dgl.KindVertexArray, ids)
}

func (d *Driver) CreateProgramPipelines(n int) []uint32 {
	ids := d.create(dgl.KindPipeline, n)
	d.record("CreateProgramPipelines", n)
	return ids
}

func (d *Driver) DeleteProgramPipelines(ids []uint32) {
	d.record("DeleteProgramPipelines", clone(ids))
	d.delete(dgl.KindPipeline, ids)
}

func (d *Driver) CreateShader(stage dgl.Enum) uint32 {
	id := d.create(dgl.KindShader, 1)[0]
	d.shaders[id] = &shader{stage: stage}
	d.record("CreateShader", stage)
	return id
}

func (d *Driver) DeleteShader(id uint32) {
	d.record("DeleteShader", id)
	d.delete(dgl.KindShader, []uint32{id})
	delete(d.shaders, id)
}

func (d *Driver) CreateProgram() uint32 {
	id := d.create(dgl.KindProgram, 1)[0]
	d.programs[id] = &program{shaders: make(map[uint32]bool), uniforms: make(map[string]int32)}
	d.record("CreateProgram")
	return id
}

func (d *Driver) CreateShaderProgram(stage dgl.Enum, sources []string) uint32 {
	id := d.create(dgl.KindProgram, 1)[0]
	source := strings.Join(sources, "")
	d.programs[id] = &program{
		shaders:  make(map[uint32]bool),
		uniforms: make(map[string]int32),
		linked:   !d.compileFails(source) && !d.FailLink,
	}
	d.record("CreateShaderProgram", stage, clone(sources))
	return id
}

func (d *Driver) DeleteProgram(id uint32) {
	d.record("DeleteProgram", id)
	d.delete(dgl.KindProgram, []uint32{id})
	delete(d.programs, id)
}

func (d *Driver) compileFails(source string) bool {
	return d.FailCompile != "" && strings.Contains(source, d.FailCompile)
}

// Buffers.

func (d *Driver) NamedBufferData(buf uint32, size int, data []byte, usage dgl.Enum) {
	store := make([]byte, size)
	copy(store, data)
	d.buffers[buf] = store
	d.record("NamedBufferData", buf, size, clone(data), usage)
}

func (d *Driver) NamedBufferSubData(buf uint32, offset int, data []byte) {
	copy(d.buffers[buf][offset:], data)
	d.record("NamedBufferSubData", buf, offset, clone(data))
}

func (d *Driver) NamedBufferStorage(buf uint32, size int, data []byte, flags dgl.Bitfield) {
	store := make([]byte, size)
	copy(store, data)
	d.buffers[buf] = store
	d.record("NamedBufferStorage", buf, size, clone(data), flags)
}

func (d *Driver) CopyNamedBufferSubData(src, dst uint32, readOffset, writeOffset, size int) {
	copy(d.buffers[dst][writeOffset:writeOffset+size], d.buffers[src][readOffset:readOffset+size])
	d.record("CopyNamedBufferSubData", src, dst, readOffset, writeOffset, size)
}

func (d *Driver) GetNamedBufferSubData(buf uint32, offset int, out []byte) {
	copy(out, d.buffers[buf][offset:])
	d.record("GetNamedBufferSubData", buf, offset, len(out))
}

// Bindings.

func (d *Driver) BindBuffer(target dgl.Enum, buf uint32) {
	d.record("BindBuffer", target, buf)
}

func (d *Driver) BindBufferBase(target dgl.Enum, index, buf uint32) {
	d.record("BindBufferBase", target, index, buf)
}

func (d *Driver) BindBufferRange(target dgl.Enum, index, buf uint32, offset, size int) {
	d.record("BindBufferRange", target, index, buf, offset, size)
}

func (d *Driver) BindBuffersBase(target dgl.Enum, first uint32, bufs []uint32) {
	d.record("BindBuffersBase", target, first, clone(bufs))
}

func (d *Driver) BindTexture(target dgl.Enum, tex uint32) {
	d.record("BindTexture", target, tex)
}

func (d *Driver) BindTextureUnit(unit, tex uint32) {
	d.record("BindTextureUnit", unit, tex)
}

func (d *Driver) BindTextures(first uint32, texs []uint32) {
	d.record("BindTextures", first, clone(texs))
}

func (d *Driver) BindSampler(unit, sampler uint32) {
	d.record("BindSampler", unit, sampler)
}

func (d *Driver) BindSamplers(first uint32, samplers []uint32) {
	d.record("BindSamplers", first, clone(samplers))
}

func (d *Driver) BindImageTexture(unit, tex uint32, level int32, layered bool, layer int32, access, format dgl.Enum) {
	d.record("BindImageTexture", unit, tex, level, layered, layer, access, format)
}

func (d *Driver) UseProgram(prog uint32) {
	d.record("UseProgram", prog)
}

func (d *Driver) BindVertexArray(vao uint32) {
	d.record("BindVertexArray", vao)
}

func (d *Driver) BindProgramPipeline(pipeline uint32) {
	d.record("BindProgramPipeline", pipeline)
}

// Vertex arrays.

func (d *Driver) VertexArrayVertexBuffer(vao, binding, buf uint32, offset int, stride int32) {
	d.record("VertexArrayVertexBuffer", vao, binding, buf, offset, stride)
}

func (d *Driver) VertexArrayVertexBuffers(vao, first uint32, bufs []uint32, offsets []int, strides []int32) {
	d.record("VertexArrayVertexBuffers", vao, first, clone(bufs), clone(offsets), clone(strides))
}

func (d *Driver) VertexArrayElementBuffer(vao, buf uint32) {
	d.record("VertexArrayElementBuffer", vao, buf)
}

func (d *Driver) EnableVertexArrayAttrib(vao, attrib uint32) {
	d.record("EnableVertexArrayAttrib", vao, attrib)
}

func (d *Driver) DisableVertexArrayAttrib(vao, attrib uint32) {
	d.record("DisableVertexArrayAttrib", vao, attrib)
}

func (d *Driver) VertexArrayAttribFormat(vao, attrib uint32, size int32, typ dgl.Enum, normalized bool, relOffset uint32) {
	d.record("VertexArrayAttribFormat", vao, attrib, size, typ, normalized, relOffset)
}

func (d *Driver) VertexArrayAttribIFormat(vao, attrib uint32, size int32, typ dgl.Enum, relOffset uint32) {
	d.record("VertexArrayAttribIFormat", vao, attrib, size, typ, relOffset)
}

func (d *Driver) VertexArrayAttribLFormat(vao, attrib uint32, size int32, typ dgl.Enum, relOffset uint32) {
	d.record("VertexArrayAttribLFormat", vao, attrib, size, typ, relOffset)
}

func (d *Driver) VertexArrayAttribBinding(vao, attrib, binding uint32) {
	d.record("VertexArrayAttribBinding", vao, attrib, binding)
}

func (d *Driver) VertexArrayBindingDivisor(vao, binding, divisor uint32) {
	d.record("VertexArrayBindingDivisor", vao, binding, divisor)
}
