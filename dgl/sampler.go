package dgl

// Sampler owns a sampler object.
type Sampler struct {
	*owner
}

func (c *Context) CreateSampler() *Sampler {
	return c.CreateSamplers(1)[0]
}

func (c *Context) CreateSamplers(n int) []*Sampler {
	ids := c.driver().CreateSamplers(n)
	samplers := make([]*Sampler, len(ids))
	for i, id := range ids {
		samplers[i] = &Sampler{owner: c.own(KindSampler, id)}
	}
	return samplers
}

// Ref returns a new owner of the same sampler.
func (s *Sampler) Ref() *Sampler {
	return &Sampler{owner: s.share()}
}

func (s *Sampler) SetInt(pname Enum, v int32)     { Parameter(s, pname, v) }
func (s *Sampler) SetFloat(pname Enum, v float32) { Parameter(s, pname, v) }

func (s *Sampler) setiv(pname Enum, v []int32) {
	s.context().driver().SamplerParameteriv(s.Handle(), pname, v)
}

func (s *Sampler) setfv(pname Enum, v []float32) {
	s.context().driver().SamplerParameterfv(s.Handle(), pname, v)
}

func (s *Sampler) setIiv(pname Enum, v []int32) {
	s.context().driver().SamplerParameterIiv(s.Handle(), pname, v)
}

func (s *Sampler) setIuiv(pname Enum, v []uint32) {
	s.context().driver().SamplerParameterIuiv(s.Handle(), pname, v)
}

func (s *Sampler) getiv(pname Enum, out []int32) {
	s.context().driver().GetSamplerParameteriv(s.Handle(), pname, out)
}

func (s *Sampler) getfv(pname Enum, out []float32) {
	s.context().driver().GetSamplerParameterfv(s.Handle(), pname, out)
}

func (s *Sampler) getIiv(pname Enum, out []int32) {
	s.context().driver().GetSamplerParameterIiv(s.Handle(), pname, out)
}

func (s *Sampler) getIuiv(pname Enum, out []uint32) {
	s.context().driver().GetSamplerParameterIuiv(s.Handle(), pname, out)
}

func samplerHandle(c *Context, s *Sampler) uint32 {
	if s == nil {
		return 0
	}
	return s.handleIn(c)
}
