package dgltest

import (
	"strings"

	"diamond-gl/dgl"
)

func boolean(b bool) int32 {
	if b {
		return dgl.True
	}
	return dgl.False
}

func (d *Driver) ShaderSource(shader uint32, sources []string) {
	if s := d.shaders[shader]; s != nil {
		s.source = strings.Join(sources, "")
	}
	d.record("ShaderSource", shader, clone(sources))
}

func (d *Driver) ShaderBinary(shader uint32, format dgl.Enum, binary []byte) {
	d.record("ShaderBinary", shader, format, len(binary))
}

func (d *Driver) SpecializeShader(shader uint32, entry string, indices, values []uint32) {
	if s := d.shaders[shader]; s != nil {
		s.compiled = true
	}
	d.record("SpecializeShader", shader, entry, clone(indices), clone(values))
}

func (d *Driver) CompileShader(shader uint32) {
	if s := d.shaders[shader]; s != nil {
		s.compiled = !d.compileFails(s.source)
	}
	d.record("CompileShader", shader)
}

func (d *Driver) GetShaderiv(shader uint32, pname dgl.Enum) int32 {
	d.record("GetShaderiv", shader, pname)
	s := d.shaders[shader]
	if s == nil {
		d.PushError(dgl.InvalidValue)
		return 0
	}
	switch pname {
	case dgl.CompileStatus:
		return boolean(s.compiled)
	case dgl.ShaderType:
		return int32(s.stage)
	case dgl.ShaderSourceLength:
		return int32(len(s.source))
	case dgl.InfoLogLength:
		if s.compiled {
			return 0
		}
		return int32(len(d.InfoLog))
	}
	return 0
}

func (d *Driver) GetShaderInfoLog(shader uint32) string {
	d.record("GetShaderInfoLog", shader)
	if s := d.shaders[shader]; s == nil || s.compiled {
		return ""
	}
	return d.InfoLog
}

func (d *Driver) AttachShader(prog, shader uint32) {
	if p := d.programs[prog]; p != nil {
		p.shaders[shader] = true
	}
	d.record("AttachShader", prog, shader)
}

func (d *Driver) DetachShader(prog, shader uint32) {
	if p := d.programs[prog]; p != nil {
		delete(p.shaders, shader)
	}
	d.record("DetachShader", prog, shader)
}

func (d *Driver) LinkProgram(prog uint32) {
	if p := d.programs[prog]; p != nil {
		p.linked = !d.FailLink
		for id := range p.shaders {
			if s := d.shaders[id]; s == nil || !s.compiled {
				p.linked = false
			}
		}
	}
	d.record("LinkProgram", prog)
}

func (d *Driver) GetProgramiv(prog uint32, pname dgl.Enum) int32 {
	d.record("GetProgramiv", prog, pname)
	p := d.programs[prog]
	if p == nil {
		d.PushError(dgl.InvalidValue)
		return 0
	}
	switch pname {
	case dgl.LinkStatus:
		return boolean(p.linked)
	case dgl.AttachedShaders:
		return int32(len(p.shaders))
	case dgl.ActiveUniforms:
		return int32(len(p.uniforms))
	case dgl.InfoLogLength:
		if p.linked {
			return 0
		}
		return int32(len(d.InfoLog))
	}
	return 0
}

func (d *Driver) GetProgramInfoLog(prog uint32) string {
	d.record("GetProgramInfoLog", prog)
	if p := d.programs[prog]; p == nil || p.linked {
		return ""
	}
	return d.InfoLog
}

// GetUniformLocation hands out locations in lookup order. Names starting
// with "gl_" or containing "unused" report -1.
func (d *Driver) GetUniformLocation(prog uint32, name string) int32 {
	d.record("GetUniformLocation", prog, name)
	p := d.programs[prog]
	if p == nil || strings.HasPrefix(name, "gl_") || strings.Contains(name, "unused") {
		return -1
	}
	loc, ok := p.uniforms[name]
	if !ok {
		loc = int32(len(p.uniforms))
		p.uniforms[name] = loc
	}
	return loc
}

func (d *Driver) UseProgramStages(pipeline uint32, stages dgl.Bitfield, prog uint32) {
	d.record("UseProgramStages", pipeline, stages, prog)
}

func (d *Driver) ActiveShaderProgram(pipeline, prog uint32) {
	d.record("ActiveShaderProgram", pipeline, prog)
}

// Uniforms.

func (d *Driver) ProgramUniform1i(prog uint32, loc int32, v int32) {
	d.record("ProgramUniform1i", prog, loc, v)
}

func (d *Driver) ProgramUniform1ui(prog uint32, loc int32, v uint32) {
	d.record("ProgramUniform1ui", prog, loc, v)
}

func (d *Driver) ProgramUniform1f(prog uint32, loc int32, v float32) {
	d.record("ProgramUniform1f", prog, loc, v)
}

func (d *Driver) ProgramUniform1d(prog uint32, loc int32, v float64) {
	d.record("ProgramUniform1d", prog, loc, v)
}

func (d *Driver) ProgramUniform1i64(prog uint32, loc int32, v int64) {
	d.record("ProgramUniform1i64", prog, loc, v)
}

func (d *Driver) ProgramUniform1ui64(prog uint32, loc int32, v uint64) {
	d.record("ProgramUniform1ui64", prog, loc, v)
}

func (d *Driver) ProgramUniform1iv(prog uint32, loc int32, v []int32) {
	d.record("ProgramUniform1iv", prog, loc, clone(v))
}

func (d *Driver) ProgramUniform1uiv(prog uint32, loc int32, v []uint32) {
	d.record("ProgramUniform1uiv", prog, loc, clone(v))
}

func (d *Driver) ProgramUniform1fv(prog uint32, loc int32, v []float32) {
	d.record("ProgramUniform1fv", prog, loc, clone(v))
}

func (d *Driver) ProgramUniform1dv(prog uint32, loc int32, v []float64) {
	d.record("ProgramUniform1dv", prog, loc, clone(v))
}

func (d *Driver) ProgramUniform1i64v(prog uint32, loc int32, v []int64) {
	d.record("ProgramUniform1i64v", prog, loc, clone(v))
}

func (d *Driver) ProgramUniform1ui64v(prog uint32, loc int32, v []uint64) {
	d.record("ProgramUniform1ui64v", prog, loc, clone(v))
}

func (d *Driver) ProgramUniform2fv(prog uint32, loc int32, count int32, v []float32) {
	d.record("ProgramUniform2fv", prog, loc, count, clone(v))
}

func (d *Driver) ProgramUniform3fv(prog uint32, loc int32, count int32, v []float32) {
	d.record("ProgramUniform3fv", prog, loc, count, clone(v))
}

func (d *Driver) ProgramUniform4fv(prog uint32, loc int32, count int32, v []float32) {
	d.record("ProgramUniform4fv", prog, loc, count, clone(v))
}

func (d *Driver) ProgramUniformMatrix4fv(prog uint32, loc int32, count int32, transpose bool, v []float32) {
	d.record("ProgramUniformMatrix4fv", prog, loc, count, transpose, clone(v))
}
