package dgl

import (
	"diamond-gl/math"
)

// Texture owns a texture object. The target is fixed at creation.
type Texture struct {
	*owner
	target Enum
}

func (c *Context) CreateTexture(target Enum) *Texture {
	return c.CreateTextures(target, 1)[0]
}

// CreateTextures creates n textures of target with a single driver call.
func (c *Context) CreateTextures(target Enum, n int) []*Texture {
	ids := c.driver().CreateTextures(target, n)
	texs := make([]*Texture, len(ids))
	for i, id := range ids {
		texs[i] = &Texture{owner: c.own(KindTexture, id), target: target}
	}
	return texs
}

func (t *Texture) Target() Enum { return t.target }

// Ref returns a new owner of the same texture.
func (t *Texture) Ref() *Texture {
	return &Texture{owner: t.share(), target: t.target}
}

// Storage1D allocates immutable storage for levels mip levels.
func (t *Texture) Storage1D(levels int32, format Enum, width uint32) {
	t.context().driver().TextureStorage1D(t.Handle(), levels, format, int32(width))
}

func (t *Texture) Storage2D(levels int32, format Enum, size math.UVec2) {
	t.context().driver().TextureStorage2D(t.Handle(), levels, format, int32(size.X), int32(size.Y))
}

func (t *Texture) Storage3D(levels int32, format Enum, size math.UVec3) {
	t.context().driver().TextureStorage3D(t.Handle(), levels, format, int32(size.X), int32(size.Y), int32(size.Z))
}

// SubImage1D uploads width texels of the given pixel format and type.
func (t *Texture) SubImage1D(level, offset int32, width uint32, format, typ Enum, pixels []byte) {
	t.context().driver().TextureSubImage1D(t.Handle(), level, offset, int32(width), format, typ, pixels)
}

func (t *Texture) SubImage2D(level int32, offset math.IVec2, size math.UVec2, format, typ Enum, pixels []byte) {
	t.context().driver().TextureSubImage2D(t.Handle(), level, offset.X, offset.Y,
		int32(size.X), int32(size.Y), format, typ, pixels)
}

func (t *Texture) SubImage3D(level int32, offset math.IVec3, size math.UVec3, format, typ Enum, pixels []byte) {
	t.context().driver().TextureSubImage3D(t.Handle(), level, offset.X, offset.Y, offset.Z,
		int32(size.X), int32(size.Y), int32(size.Z), format, typ, pixels)
}

// CopySubData copies a box of texels from this texture into dst without a
// round trip through client memory.
func (t *Texture) CopySubData(srcLevel int32, srcOffset math.IVec3, dst *Texture, dstLevel int32, dstOffset math.IVec3, size math.UVec3) {
	c := t.context()
	c.driver().CopyImageSubData(
		t.Handle(), t.target, srcLevel, srcOffset.X, srcOffset.Y, srcOffset.Z,
		dst.handleIn(c), dst.target, dstLevel, dstOffset.X, dstOffset.Y, dstOffset.Z,
		int32(size.X), int32(size.Y), int32(size.Z),
	)
}

// SetBuffer attaches buf as the data store of a buffer texture.
func (t *Texture) SetBuffer(format Enum, buf *Buffer) {
	c := t.context()
	c.driver().TextureBuffer(t.Handle(), format, bufferHandle(c, buf))
}

func (t *Texture) GenerateMipmap() {
	t.context().driver().GenerateTextureMipmap(t.Handle())
}

// Level returns mip level l.
func (t *Texture) Level(l int32) TextureLevel {
	return TextureLevel{tex: t, level: l}
}

func (t *Texture) SetInt(pname Enum, v int32)     { Parameter(t, pname, v) }
func (t *Texture) SetFloat(pname Enum, v float32) { Parameter(t, pname, v) }

func (t *Texture) setiv(pname Enum, v []int32) {
	t.context().driver().TextureParameteriv(t.Handle(), pname, v)
}

func (t *Texture) setfv(pname Enum, v []float32) {
	t.context().driver().TextureParameterfv(t.Handle(), pname, v)
}

func (t *Texture) setIiv(pname Enum, v []int32) {
	t.context().driver().TextureParameterIiv(t.Handle(), pname, v)
}

func (t *Texture) setIuiv(pname Enum, v []uint32) {
	t.context().driver().TextureParameterIuiv(t.Handle(), pname, v)
}

func (t *Texture) getiv(pname Enum, out []int32) {
	t.context().driver().GetTextureParameteriv(t.Handle(), pname, out)
}

func (t *Texture) getfv(pname Enum, out []float32) {
	t.context().driver().GetTextureParameterfv(t.Handle(), pname, out)
}

func (t *Texture) getIiv(pname Enum, out []int32) {
	t.context().driver().GetTextureParameterIiv(t.Handle(), pname, out)
}

func (t *Texture) getIuiv(pname Enum, out []uint32) {
	t.context().driver().GetTextureParameterIuiv(t.Handle(), pname, out)
}

// TextureLevel is one mip level of a texture.
type TextureLevel struct {
	tex   *Texture
	level int32
}

func (l TextureLevel) Texture() *Texture { return l.tex }
func (l TextureLevel) Index() int32      { return l.level }

// Param queries a level parameter such as TextureWidth.
func (l TextureLevel) Param(pname Enum) int32 {
	return l.tex.context().driver().GetTextureLevelParameteriv(l.tex.Handle(), l.level, pname)
}

// Size returns the level's width, height and depth.
func (l TextureLevel) Size() math.UVec3 {
	return math.NewUVec3(
		uint32(l.Param(TextureWidth)),
		uint32(l.Param(TextureHeight)),
		uint32(l.Param(TextureDepth)),
	)
}

// InternalFormat returns the level's internal format.
func (l TextureLevel) InternalFormat() Enum {
	return Enum(l.Param(TextureInternalFormat))
}

func (l TextureLevel) SubImage2D(offset math.IVec2, size math.UVec2, format, typ Enum, pixels []byte) {
	l.tex.SubImage2D(l.level, offset, size, format, typ, pixels)
}

func (l TextureLevel) SubImage3D(offset math.IVec3, size math.UVec3, format, typ Enum, pixels []byte) {
	l.tex.SubImage3D(l.level, offset, size, format, typ, pixels)
}

// TextureTarget is a non-DSA texture binding point of the active texture unit.
type TextureTarget struct {
	ctx    *Context
	target Enum
}

func (c *Context) TextureTarget(target Enum) TextureTarget {
	return TextureTarget{ctx: c, target: target}
}

func (t TextureTarget) Target() Enum { return t.target }

// Create creates a texture for this target.
func (t TextureTarget) Create() *Texture {
	return t.ctx.CreateTexture(t.target)
}

// Bind binds tex, which must have been created for this target. A nil tex
// unbinds.
func (t TextureTarget) Bind(tex *Texture) {
	id := textureHandle(t.ctx, tex)
	if tex != nil && tex.target != t.target {
		panic("dgl: binding " + tex.target.String() + " texture to " + t.target.String())
	}
	t.ctx.driver().BindTexture(t.target, id)
	t.ctx.state.textures[t.target] = id
}

func (t TextureTarget) Bound() uint32 {
	return t.ctx.state.Texture(t.target)
}

func textureHandle(c *Context, t *Texture) uint32 {
	if t == nil {
		return 0
	}
	return t.handleIn(c)
}
