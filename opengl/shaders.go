package opengl

import (
	"strings"

	gl "github.com/go-gl/gl/all-core/gl"

	"diamond-gl/dgl"
)

// cstrings converts sources for the ShaderSource family. An empty list
// becomes one empty string, gl.Strs rejects zero arguments.
func cstrings(sources []string) (**uint8, func()) {
	if len(sources) == 0 {
		sources = []string{""}
	}
	terminated := make([]string, len(sources))
	for i, s := range sources {
		terminated[i] = s + "\x00"
	}
	return gl.Strs(terminated...)
}

func (d *Driver) ShaderSource(shader uint32, sources []string) {
	csrc, free := cstrings(sources)
	defer free()
	gl.ShaderSource(shader, int32(max(len(sources), 1)), csrc, nil)
}

func (d *Driver) ShaderBinary(shader uint32, format dgl.Enum, binary []byte) {
	gl.ShaderBinary(1, &shader, uint32(format), pointer(binary), int32(len(binary)))
}

func (d *Driver) SpecializeShader(shader uint32, entry string, indices, values []uint32) {
	gl.SpecializeShader(shader, gl.Str(entry+"\x00"), uint32(len(indices)), ptr(indices), ptr(values))
}

func (d *Driver) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (d *Driver) GetShaderiv(shader uint32, pname dgl.Enum) int32 {
	var v int32
	gl.GetShaderiv(shader, uint32(pname), &v)
	return v
}

func (d *Driver) GetShaderInfoLog(shader uint32) string {
	logLen := d.GetShaderiv(shader, dgl.InfoLogLength)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Driver) AttachShader(prog, shader uint32) { gl.AttachShader(prog, shader) }
func (d *Driver) DetachShader(prog, shader uint32) { gl.DetachShader(prog, shader) }
func (d *Driver) LinkProgram(prog uint32)          { gl.LinkProgram(prog) }

func (d *Driver) GetProgramiv(prog uint32, pname dgl.Enum) int32 {
	var v int32
	gl.GetProgramiv(prog, uint32(pname), &v)
	return v
}

func (d *Driver) GetProgramInfoLog(prog uint32) string {
	logLen := d.GetProgramiv(prog, dgl.InfoLogLength)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Driver) GetUniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func (d *Driver) UseProgramStages(pipeline uint32, stages dgl.Bitfield, prog uint32) {
	gl.UseProgramStages(pipeline, uint32(stages), prog)
}

func (d *Driver) ActiveShaderProgram(pipeline, prog uint32) {
	gl.ActiveShaderProgram(pipeline, prog)
}

// Uniforms. The 64-bit integer forms come from ARB_gpu_shader_int64.

func (d *Driver) ProgramUniform1i(prog uint32, loc int32, v int32) {
	gl.ProgramUniform1i(prog, loc, v)
}

func (d *Driver) ProgramUniform1ui(prog uint32, loc int32, v uint32) {
	gl.ProgramUniform1ui(prog, loc, v)
}

func (d *Driver) ProgramUniform1f(prog uint32, loc int32, v float32) {
	gl.ProgramUniform1f(prog, loc, v)
}

func (d *Driver) ProgramUniform1d(prog uint32, loc int32, v float64) {
	gl.ProgramUniform1d(prog, loc, v)
}

func (d *Driver) ProgramUniform1i64(prog uint32, loc int32, v int64) {
	gl.ProgramUniform1i64ARB(prog, loc, v)
}

func (d *Driver) ProgramUniform1ui64(prog uint32, loc int32, v uint64) {
	gl.ProgramUniform1ui64ARB(prog, loc, v)
}

func (d *Driver) ProgramUniform1iv(prog uint32, loc int32, v []int32) {
	gl.ProgramUniform1iv(prog, loc, int32(len(v)), ptr(v))
}

func (d *Driver) ProgramUniform1uiv(prog uint32, loc int32, v []uint32) {
	gl.ProgramUniform1uiv(prog, loc, int32(len(v)), ptr(v))
}

func (d *Driver) ProgramUniform1fv(prog uint32, loc int32, v []float32) {
	gl.ProgramUniform1fv(prog, loc, int32(len(v)), ptr(v))
}

func (d *Driver) ProgramUniform1dv(prog uint32, loc int32, v []float64) {
	gl.ProgramUniform1dv(prog, loc, int32(len(v)), ptr(v))
}

func (d *Driver) ProgramUniform1i64v(prog uint32, loc int32, v []int64) {
	gl.ProgramUniform1i64vARB(prog, loc, int32(len(v)), ptr(v))
}

func (d *Driver) ProgramUniform1ui64v(prog uint32, loc int32, v []uint64) {
	gl.ProgramUniform1ui64vARB(prog, loc, int32(len(v)), ptr(v))
}

func (d *Driver) ProgramUniform2fv(prog uint32, loc int32, count int32, v []float32) {
	gl.ProgramUniform2fv(prog, loc, count, ptr(v))
}

func (d *Driver) ProgramUniform3fv(prog uint32, loc int32, count int32, v []float32) {
	gl.ProgramUniform3fv(prog, loc, count, ptr(v))
}

func (d *Driver) ProgramUniform4fv(prog uint32, loc int32, count int32, v []float32) {
	gl.ProgramUniform4fv(prog, loc, count, ptr(v))
}

func (d *Driver) ProgramUniformMatrix4fv(prog uint32, loc int32, count int32, transpose bool, v []float32) {
	gl.ProgramUniformMatrix4fv(prog, loc, count, transpose, ptr(v))
}
