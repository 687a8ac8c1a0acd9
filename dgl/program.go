package dgl

import (
	"go.uber.org/zap"
)

// Program owns a program object.
type Program struct {
	*owner
}

func (c *Context) CreateProgram() *Program {
	return &Program{owner: c.own(KindProgram, c.driver().CreateProgram())}
}

// CreateShaderProgram compiles and links a separable single-stage program.
// Check Err for the result.
func (c *Context) CreateShaderProgram(stage Enum, sources ...string) *Program {
	return &Program{owner: c.own(KindProgram, c.driver().CreateShaderProgram(stage, sources))}
}

// LinkProgram creates a program, attaches shaders, links it and detaches
// the shaders again. On failure the program is released.
func (c *Context) LinkProgram(shaders ...*Shader) (*Program, error) {
	p := c.CreateProgram()
	for _, s := range shaders {
		p.Attach(s)
	}
	p.Link()
	if err := p.Err(); err != nil {
		p.Release()
		return nil, err
	}
	for _, s := range shaders {
		p.Detach(s)
	}
	return p, nil
}

// Ref returns a new owner of the same program.
func (p *Program) Ref() *Program {
	return &Program{owner: p.share()}
}

func (p *Program) Attach(s *Shader) {
	c := p.context()
	c.driver().AttachShader(p.Handle(), s.handleIn(c))
}

func (p *Program) Detach(s *Shader) {
	c := p.context()
	c.driver().DetachShader(p.Handle(), s.handleIn(c))
}

func (p *Program) Link() {
	p.context().driver().LinkProgram(p.Handle())
}

// Param queries a program parameter such as LinkStatus.
func (p *Program) Param(pname Enum) int32 {
	return p.context().driver().GetProgramiv(p.Handle(), pname)
}

func (p *Program) LinkStatus() bool {
	return p.Param(LinkStatus) != int32(False)
}

func (p *Program) InfoLog() string {
	return p.context().driver().GetProgramInfoLog(p.Handle())
}

// Err returns a *CompileError if the last link failed.
func (p *Program) Err() error {
	if p.LinkStatus() {
		return nil
	}
	err := &CompileError{Kind: KindProgram, Handle: p.Handle(), Log: p.InfoLog()}
	p.context().log.Error("program link failed",
		zap.Uint32("handle", err.Handle),
		zap.String("log", err.Log),
	)
	return err
}

// UniformLocation returns the location of a uniform, or -1.
func (p *Program) UniformLocation(name string) int32 {
	return p.context().driver().GetUniformLocation(p.Handle(), name)
}

// Uniform looks up a uniform by name.
func (p *Program) Uniform(name string) Uniform {
	return Uniform{prog: p, loc: p.UniformLocation(name)}
}

// UniformAt returns the uniform at a known location, such as one fixed with
// a layout qualifier.
func (p *Program) UniformAt(location int32) Uniform {
	return Uniform{prog: p, loc: location}
}
