package opengl

import (
	gl "github.com/go-gl/gl/all-core/gl"

	"diamond-gl/dgl"
)

func (d *Driver) TextureParameteriv(tex uint32, pname dgl.Enum, v []int32) {
	gl.TextureParameteriv(tex, uint32(pname), ptr(v))
}

func (d *Driver) TextureParameterfv(tex uint32, pname dgl.Enum, v []float32) {
	gl.TextureParameterfv(tex, uint32(pname), ptr(v))
}

func (d *Driver) TextureParameterIiv(tex uint32, pname dgl.Enum, v []int32) {
	gl.TextureParameterIiv(tex, uint32(pname), ptr(v))
}

func (d *Driver) TextureParameterIuiv(tex uint32, pname dgl.Enum, v []uint32) {
	gl.TextureParameterIuiv(tex, uint32(pname), ptr(v))
}

func (d *Driver) GetTextureParameteriv(tex uint32, pname dgl.Enum, out []int32) {
	gl.GetTextureParameteriv(tex, uint32(pname), ptr(out))
}

func (d *Driver) GetTextureParameterfv(tex uint32, pname dgl.Enum, out []float32) {
	gl.GetTextureParameterfv(tex, uint32(pname), ptr(out))
}

func (d *Driver) GetTextureParameterIiv(tex uint32, pname dgl.Enum, out []int32) {
	gl.GetTextureParameterIiv(tex, uint32(pname), ptr(out))
}

func (d *Driver) GetTextureParameterIuiv(tex uint32, pname dgl.Enum, out []uint32) {
	gl.GetTextureParameterIuiv(tex, uint32(pname), ptr(out))
}

func (d *Driver) TextureStorage1D(tex uint32, levels int32, format dgl.Enum, width int32) {
	gl.TextureStorage1D(tex, levels, uint32(format), width)
}

func (d *Driver) TextureStorage2D(tex uint32, levels int32, format dgl.Enum, width, height int32) {
	gl.TextureStorage2D(tex, levels, uint32(format), width, height)
}

func (d *Driver) TextureStorage3D(tex uint32, levels int32, format dgl.Enum, width, height, depth int32) {
	gl.TextureStorage3D(tex, levels, uint32(format), width, height, depth)
}

func (d *Driver) TextureSubImage1D(tex uint32, level, x, width int32, format, typ dgl.Enum, pixels []byte) {
	gl.TextureSubImage1D(tex, level, x, width, uint32(format), uint32(typ), pointer(pixels))
}

func (d *Driver) TextureSubImage2D(tex uint32, level, x, y, width, height int32, format, typ dgl.Enum, pixels []byte) {
	gl.TextureSubImage2D(tex, level, x, y, width, height, uint32(format), uint32(typ), pointer(pixels))
}

func (d *Driver) TextureSubImage3D(tex uint32, level, x, y, z, width, height, depth int32, format, typ dgl.Enum, pixels []byte) {
	gl.TextureSubImage3D(tex, level, x, y, z, width, height, depth, uint32(format), uint32(typ), pointer(pixels))
}

func (d *Driver) CopyImageSubData(src uint32, srcTarget dgl.Enum, srcLevel, srcX, srcY, srcZ int32,
	dst uint32, dstTarget dgl.Enum, dstLevel, dstX, dstY, dstZ int32,
	width, height, depth int32) {
	gl.CopyImageSubData(src, uint32(srcTarget), srcLevel, srcX, srcY, srcZ,
		dst, uint32(dstTarget), dstLevel, dstX, dstY, dstZ, width, height, depth)
}

func (d *Driver) TextureBuffer(tex uint32, format dgl.Enum, buf uint32) {
	gl.TextureBuffer(tex, uint32(format), buf)
}

func (d *Driver) GenerateTextureMipmap(tex uint32) { gl.GenerateTextureMipmap(tex) }

func (d *Driver) GetTextureLevelParameteriv(tex uint32, level int32, pname dgl.Enum) int32 {
	var v int32
	gl.GetTextureLevelParameteriv(tex, level, uint32(pname), &v)
	return v
}

// Samplers.

func (d *Driver) SamplerParameteriv(sampler uint32, pname dgl.Enum, v []int32) {
	gl.SamplerParameteriv(sampler, uint32(pname), ptr(v))
}

func (d *Driver) SamplerParameterfv(sampler uint32, pname dgl.Enum, v []float32) {
	gl.SamplerParameterfv(sampler, uint32(pname), ptr(v))
}

func (d *Driver) SamplerParameterIiv(sampler uint32, pname dgl.Enum, v []int32) {
	gl.SamplerParameterIiv(sampler, uint32(pname), ptr(v))
}

func (d *Driver) SamplerParameterIuiv(sampler uint32, pname dgl.Enum, v []uint32) {
	gl.SamplerParameterIuiv(sampler, uint32(pname), ptr(v))
}

func (d *Driver) GetSamplerParameteriv(sampler uint32, pname dgl.Enum, out []int32) {
	gl.GetSamplerParameteriv(sampler, uint32(pname), ptr(out))
}

func (d *Driver) GetSamplerParameterfv(sampler uint32, pname dgl.Enum, out []float32) {
	gl.GetSamplerParameterfv(sampler, uint32(pname), ptr(out))
}

func (d *Driver) GetSamplerParameterIiv(sampler uint32, pname dgl.Enum, out []int32) {
	gl.GetSamplerParameterIiv(sampler, uint32(pname), ptr(out))
}

func (d *Driver) GetSamplerParameterIuiv(sampler uint32, pname dgl.Enum, out []uint32) {
	gl.GetSamplerParameterIuiv(sampler, uint32(pname), ptr(out))
}
