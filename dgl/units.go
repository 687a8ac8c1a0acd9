package dgl

// TextureUnit is a texture image unit. A unit holds one texture and one
// sampler.
type TextureUnit struct {
	ctx  *Context
	unit uint32
}

func (c *Context) TextureUnit(unit uint32) TextureUnit {
	return TextureUnit{ctx: c, unit: unit}
}

func (u TextureUnit) Unit() uint32 { return u.unit }

// Bind binds tex to the unit. A nil tex unbinds.
func (u TextureUnit) Bind(tex *Texture) {
	id := textureHandle(u.ctx, tex)
	u.ctx.driver().BindTextureUnit(u.unit, id)
	u.ctx.state.units[u.unit] = id
}

// BindSampler binds s to the unit. A nil s unbinds.
func (u TextureUnit) BindSampler(s *Sampler) {
	id := samplerHandle(u.ctx, s)
	u.ctx.driver().BindSampler(u.unit, id)
	u.ctx.state.samplers[u.unit] = id
}

func (u TextureUnit) Bound() uint32        { return u.ctx.state.TextureUnit(u.unit) }
func (u TextureUnit) BoundSampler() uint32 { return u.ctx.state.SamplerUnit(u.unit) }

// Scope binds tex until the returned scope is closed.
func (u TextureUnit) Scope(tex *Texture) *Scope {
	u.Bind(tex)
	return newScope(textureHandle(u.ctx, tex), u.Bound, func() { u.Bind(nil) })
}

// BindTextures binds texs to consecutive units starting at first with one
// driver call. Nil entries unbind.
func (c *Context) BindTextures(first uint32, texs ...*Texture) {
	ids := make([]uint32, len(texs))
	for i, t := range texs {
		ids[i] = textureHandle(c, t)
	}
	c.driver().BindTextures(first, ids)
	for i, id := range ids {
		c.state.units[first+uint32(i)] = id
	}
}

// BindSamplers binds samplers to consecutive units starting at first.
func (c *Context) BindSamplers(first uint32, samplers ...*Sampler) {
	ids := make([]uint32, len(samplers))
	for i, s := range samplers {
		ids[i] = samplerHandle(c, s)
	}
	c.driver().BindSamplers(first, ids)
	for i, id := range ids {
		c.state.samplers[first+uint32(i)] = id
	}
}

// ImageUnit is an image unit used for load/store access from shaders.
type ImageUnit struct {
	ctx  *Context
	unit uint32
}

func (c *Context) ImageUnit(unit uint32) ImageUnit {
	return ImageUnit{ctx: c, unit: unit}
}

func (u ImageUnit) Unit() uint32 { return u.unit }

// Bind binds one level of tex. With layered set every layer is bound,
// otherwise only layer. Format is the internal format the shader sees.
func (u ImageUnit) Bind(tex *Texture, level int32, layered bool, layer int32, access, format Enum) {
	id := textureHandle(u.ctx, tex)
	u.ctx.driver().BindImageTexture(u.unit, id, level, layered, layer, access, format)
	u.ctx.state.images[u.unit] = id
}

// BindLevel binds a whole texture level.
func (u ImageUnit) BindLevel(l TextureLevel, access, format Enum) {
	u.Bind(l.tex, l.level, true, 0, access, format)
}

// Unbind clears the unit.
func (u ImageUnit) Unbind() {
	u.Bind(nil, 0, false, 0, ReadOnly, R8)
}

func (u ImageUnit) Bound() uint32 { return u.ctx.state.ImageUnit(u.unit) }
