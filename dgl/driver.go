package dgl

// Driver is the set of native entry points the binding forwards to. Method
// names follow the GL functions they wrap; multi-object creation returns the
// new names in order. Data is passed as byte slices, nil meaning "allocate
// without initializing". Index and indirect arguments are byte offsets into
// the currently bound element or indirect buffer.
//
// A Driver is bound to one GL context and must only be called from the
// goroutine that owns that context.
type Driver interface {
	ObjectDriver
	BufferDriver
	BindingDriver
	VertexArrayDriver
	ShaderDriver
	UniformDriver
	TextureDriver
	SamplerDriver
	CommandDriver
	StateDriver
}

// ObjectDriver creates and deletes driver objects.
type ObjectDriver interface {
	CreateBuffers(n int) []uint32
	DeleteBuffers(ids []uint32)
	CreateTextures(target Enum, n int) []uint32
	DeleteTextures(ids []uint32)
	CreateSamplers(n int) []uint32
	DeleteSamplers(ids []uint32)
	CreateVertexArrays(n int) []uint32
	DeleteVertexArrays(ids []uint32)
	CreateProgramPipelines(n int) []uint32
	DeleteProgramPipelines(ids []uint32)
	CreateShader(stage Enum) uint32
	DeleteShader(id uint32)
	CreateProgram() uint32
	CreateShaderProgram(stage Enum, sources []string) uint32
	DeleteProgram(id uint32)
}

// BufferDriver moves data in and out of buffer objects.
type BufferDriver interface {
	NamedBufferData(buf uint32, size int, data []byte, usage Enum)
	NamedBufferSubData(buf uint32, offset int, data []byte)
	NamedBufferStorage(buf uint32, size int, data []byte, flags Bitfield)
	CopyNamedBufferSubData(src, dst uint32, readOffset, writeOffset, size int)
	GetNamedBufferSubData(buf uint32, offset int, out []byte)
}

// BindingDriver mutates the context binding state.
type BindingDriver interface {
	BindBuffer(target Enum, buf uint32)
	BindBufferBase(target Enum, index, buf uint32)
	BindBufferRange(target Enum, index, buf uint32, offset, size int)
	BindBuffersBase(target Enum, first uint32, bufs []uint32)
	BindTexture(target Enum, tex uint32)
	BindTextureUnit(unit, tex uint32)
	BindTextures(first uint32, texs []uint32)
	BindSampler(unit, sampler uint32)
	BindSamplers(first uint32, samplers []uint32)
	BindImageTexture(unit, tex uint32, level int32, layered bool, layer int32, access, format Enum)
	UseProgram(prog uint32)
	BindVertexArray(vao uint32)
	BindProgramPipeline(pipeline uint32)
}

type VertexArrayDriver interface {
	VertexArrayVertexBuffer(vao, binding, buf uint32, offset int, stride int32)
	VertexArrayVertexBuffers(vao, first uint32, bufs []uint32, offsets []int, strides []int32)
	VertexArrayElementBuffer(vao, buf uint32)
	EnableVertexArrayAttrib(vao, attrib uint32)
	DisableVertexArrayAttrib(vao, attrib uint32)
	VertexArrayAttribFormat(vao, attrib uint32, size int32, typ Enum, normalized bool, relOffset uint32)
	VertexArrayAttribIFormat(vao, attrib uint32, size int32, typ Enum, relOffset uint32)
	VertexArrayAttribLFormat(vao, attrib uint32, size int32, typ Enum, relOffset uint32)
	VertexArrayAttribBinding(vao, attrib, binding uint32)
	VertexArrayBindingDivisor(vao, binding, divisor uint32)
}

type ShaderDriver interface {
	ShaderSource(shader uint32, sources []string)
	ShaderBinary(shader uint32, format Enum, binary []byte)
	SpecializeShader(shader uint32, entry string, indices, values []uint32)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname Enum) int32
	GetShaderInfoLog(shader uint32) string
	AttachShader(prog, shader uint32)
	DetachShader(prog, shader uint32)
	LinkProgram(prog uint32)
	GetProgramiv(prog uint32, pname Enum) int32
	GetProgramInfoLog(prog uint32) string
	GetUniformLocation(prog uint32, name string) int32
	UseProgramStages(pipeline uint32, stages Bitfield, prog uint32)
	ActiveShaderProgram(pipeline, prog uint32)
}

type UniformDriver interface {
	ProgramUniform1i(prog uint32, loc int32, v int32)
	ProgramUniform1ui(prog uint32, loc int32, v uint32)
	ProgramUniform1f(prog uint32, loc int32, v float32)
	ProgramUniform1d(prog uint32, loc int32, v float64)
	ProgramUniform1i64(prog uint32, loc int32, v int64)
	ProgramUniform1ui64(prog uint32, loc int32, v uint64)
	ProgramUniform1iv(prog uint32, loc int32, v []int32)
	ProgramUniform1uiv(prog uint32, loc int32, v []uint32)
	ProgramUniform1fv(prog uint32, loc int32, v []float32)
	ProgramUniform1dv(prog uint32, loc int32, v []float64)
	ProgramUniform1i64v(prog uint32, loc int32, v []int64)
	ProgramUniform1ui64v(prog uint32, loc int32, v []uint64)
	ProgramUniform2fv(prog uint32, loc int32, count int32, v []float32)
	ProgramUniform3fv(prog uint32, loc int32, count int32, v []float32)
	ProgramUniform4fv(prog uint32, loc int32, count int32, v []float32)
	ProgramUniformMatrix4fv(prog uint32, loc int32, count int32, transpose bool, v []float32)
}

type TextureDriver interface {
	TextureParameteriv(tex uint32, pname Enum, v []int32)
	TextureParameterfv(tex uint32, pname Enum, v []float32)
	TextureParameterIiv(tex uint32, pname Enum, v []int32)
	TextureParameterIuiv(tex uint32, pname Enum, v []uint32)
	GetTextureParameteriv(tex uint32, pname Enum, out []int32)
	GetTextureParameterfv(tex uint32, pname Enum, out []float32)
	GetTextureParameterIiv(tex uint32, pname Enum, out []int32)
	GetTextureParameterIuiv(tex uint32, pname Enum, out []uint32)
	TextureStorage1D(tex uint32, levels int32, format Enum, width int32)
	TextureStorage2D(tex uint32, levels int32, format Enum, width, height int32)
	TextureStorage3D(tex uint32, levels int32, format Enum, width, height, depth int32)
	TextureSubImage1D(tex uint32, level, x, width int32, format, typ Enum, pixels []byte)
	TextureSubImage2D(tex uint32, level, x, y, width, height int32, format, typ Enum, pixels []byte)
	TextureSubImage3D(tex uint32, level, x, y, z, width, height, depth int32, format, typ Enum, pixels []byte)
	CopyImageSubData(src uint32, srcTarget Enum, srcLevel, srcX, srcY, srcZ int32,
		dst uint32, dstTarget Enum, dstLevel, dstX, dstY, dstZ int32,
		width, height, depth int32)
	TextureBuffer(tex uint32, format Enum, buf uint32)
	GenerateTextureMipmap(tex uint32)
	GetTextureLevelParameteriv(tex uint32, level int32, pname Enum) int32
}

type SamplerDriver interface {
	SamplerParameteriv(sampler uint32, pname Enum, v []int32)
	SamplerParameterfv(sampler uint32, pname Enum, v []float32)
	SamplerParameterIiv(sampler uint32, pname Enum, v []int32)
	SamplerParameterIuiv(sampler uint32, pname Enum, v []uint32)
	GetSamplerParameteriv(sampler uint32, pname Enum, out []int32)
	GetSamplerParameterfv(sampler uint32, pname Enum, out []float32)
	GetSamplerParameterIiv(sampler uint32, pname Enum, out []int32)
	GetSamplerParameterIuiv(sampler uint32, pname Enum, out []uint32)
}

// CommandDriver submits draw, dispatch and clear work.
type CommandDriver interface {
	DrawArraysInstanced(mode Enum, first, count, instances int32)
	DrawElementsInstanced(mode Enum, count int32, typ Enum, offset int, instances int32)
	DrawElementsBaseVertex(mode Enum, count int32, typ Enum, offset int, baseVertex int32)
	DrawRangeElements(mode Enum, start, end uint32, count int32, typ Enum, offset int)
	DrawArraysIndirect(mode Enum, offset int)
	DrawElementsIndirect(mode, typ Enum, offset int)
	DispatchCompute(x, y, z uint32)
	DispatchComputeIndirect(offset int)
	Clear(mask Bitfield)
	MemoryBarrier(barriers Bitfield)
}

// StateDriver sets fixed-function state and reports diagnostics.
type StateDriver interface {
	Enable(capability Enum)
	Disable(capability Enum)
	BlendFunc(src, dst Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	BlendEquation(mode Enum)
	BlendColor(r, g, b, a float32)
	BlendFunci(drawBuffer uint32, src, dst Enum)
	BlendFuncSeparatei(drawBuffer uint32, srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	BlendEquationi(drawBuffer uint32, mode Enum)
	LogicOp(op Enum)
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float64)
	Viewport(x, y, width, height int32)
	GetError() Enum
	GetString(name Enum) string
}
