package dgl

// Pipeline owns a program pipeline object, which combines separable
// programs stage by stage.
type Pipeline struct {
	*owner
}

func (c *Context) CreatePipeline() *Pipeline {
	return c.CreatePipelines(1)[0]
}

func (c *Context) CreatePipelines(n int) []*Pipeline {
	ids := c.driver().CreateProgramPipelines(n)
	pipes := make([]*Pipeline, len(ids))
	for i, id := range ids {
		pipes[i] = &Pipeline{owner: c.own(KindPipeline, id)}
	}
	return pipes
}

// Ref returns a new owner of the same pipeline.
func (p *Pipeline) Ref() *Pipeline {
	return &Pipeline{owner: p.share()}
}

// UseStages takes the stages selected by the bits in stages from prog.
// A nil prog clears them.
func (p *Pipeline) UseStages(stages Bitfield, prog *Program) {
	c := p.context()
	c.driver().UseProgramStages(p.Handle(), stages, programHandle(c, prog))
}

// ActiveProgram selects the program that receives glUniform calls made
// while the pipeline is bound.
func (p *Pipeline) ActiveProgram(prog *Program) {
	c := p.context()
	c.driver().ActiveShaderProgram(p.Handle(), programHandle(c, prog))
}

func programHandle(c *Context, p *Program) uint32 {
	if p == nil {
		return 0
	}
	return p.handleIn(c)
}
