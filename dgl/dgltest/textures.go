package dgltest

import "diamond-gl/dgl"

func setParam[T int32 | uint32 | float32](params map[dgl.Enum][]float64, pname dgl.Enum, v []T) {
	if params == nil {
		return
	}
	vals := make([]float64, len(v))
	for i, x := range v {
		vals[i] = float64(x)
	}
	params[pname] = vals
}

func getParam[T int32 | uint32 | float32](params map[dgl.Enum][]float64, pname dgl.Enum, out []T) {
	for i, x := range params[pname] {
		if i >= len(out) {
			break
		}
		out[i] = T(x)
	}
}

func (d *Driver) textureParams(tex uint32) map[dgl.Enum][]float64 {
	if t := d.textures[tex]; t != nil {
		return t.params
	}
	d.PushError(dgl.InvalidOperation)
	return nil
}

func (d *Driver) TextureParameteriv(tex uint32, pname dgl.Enum, v []int32) {
	setParam(d.textureParams(tex), pname, v)
	d.record("TextureParameteriv", tex, pname, clone(v))
}

func (d *Driver) TextureParameterfv(tex uint32, pname dgl.Enum, v []float32) {
	setParam(d.textureParams(tex), pname, v)
	d.record("TextureParameterfv", tex, pname, clone(v))
}

func (d *Driver) TextureParameterIiv(tex uint32, pname dgl.Enum, v []int32) {
	setParam(d.textureParams(tex), pname, v)
	d.record("TextureParameterIiv", tex, pname, clone(v))
}

func (d *Driver) TextureParameterIuiv(tex uint32, pname dgl.Enum, v []uint32) {
	setParam(d.textureParams(tex), pname, v)
	d.record("TextureParameterIuiv", tex, pname, clone(v))
}

func (d *Driver) GetTextureParameteriv(tex uint32, pname dgl.Enum, out []int32) {
	getParam(d.textureParams(tex), pname, out)
	d.record("GetTextureParameteriv", tex, pname)
}

func (d *Driver) GetTextureParameterfv(tex uint32, pname dgl.Enum, out []float32) {
	getParam(d.textureParams(tex), pname, out)
	d.record("GetTextureParameterfv", tex, pname)
}

func (d *Driver) GetTextureParameterIiv(tex uint32, pname dgl.Enum, out []int32) {
	getParam(d.textureParams(tex), pname, out)
	d.record("GetTextureParameterIiv", tex, pname)
}

func (d *Driver) GetTextureParameterIuiv(tex uint32, pname dgl.Enum, out []uint32) {
	getParam(d.textureParams(tex), pname, out)
	d.record("GetTextureParameterIuiv", tex, pname)
}

// allocate fills in the level chain the way immutable storage does: each
// level halves the previous one, never below 1. Depth only shrinks for 3D
// textures; array layers stay constant.
func (d *Driver) allocate(tex uint32, levels int32, format dgl.Enum, w, h, depth int32) {
	t := d.textures[tex]
	if t == nil {
		d.PushError(dgl.InvalidOperation)
		return
	}
	t.format = format
	t.levels = make([][3]int32, levels)
	for l := range t.levels {
		t.levels[l] = [3]int32{w, h, depth}
		w = max(1, w/2)
		if t.target != dgl.Texture1DArray {
			h = max(1, h/2)
		}
		if t.target == dgl.Texture3D {
			depth = max(1, depth/2)
		}
	}
}

func (d *Driver) TextureStorage1D(tex uint32, levels int32, format dgl.Enum, width int32) {
	d.allocate(tex, levels, format, width, 1, 1)
	d.record("TextureStorage1D", tex, levels, format, width)
}

func (d *Driver) TextureStorage2D(tex uint32, levels int32, format dgl.Enum, width, height int32) {
	d.allocate(tex, levels, format, width, height, 1)
	d.record("TextureStorage2D", tex, levels, format, width, height)
}

func (d *Driver) TextureStorage3D(tex uint32, levels int32, format dgl.Enum, width, height, depth int32) {
	d.allocate(tex, levels, format, width, height, depth)
	d.record("TextureStorage3D", tex, levels, format, width, height, depth)
}

func (d *Driver) TextureSubImage1D(tex uint32, level, x, width int32, format, typ dgl.Enum, pixels []byte) {
	d.record("TextureSubImage1D", tex, level, x, width, format, typ, len(pixels))
}

func (d *Driver) TextureSubImage2D(tex uint32, level, x, y, width, height int32, format, typ dgl.Enum, pixels []byte) {
	d.record("TextureSubImage2D", tex, level, x, y, width, height, format, typ, len(pixels))
}

func (d *Driver) TextureSubImage3D(tex uint32, level, x, y, z, width, height, depth int32, format, typ dgl.Enum, pixels []byte) {
	d.record("TextureSubImage3D", tex, level, x, y, z, width, height, depth, format, typ, len(pixels))
}

func (d *Driver) CopyImageSubData(src uint32, srcTarget dgl.Enum, srcLevel, srcX, srcY, srcZ int32,
	dst uint32, dstTarget dgl.Enum, dstLevel, dstX, dstY, dstZ int32,
	width, height, depth int32) {
	d.record("CopyImageSubData", src, srcTarget, srcLevel, srcX, srcY, srcZ,
		dst, dstTarget, dstLevel, dstX, dstY, dstZ, width, height, depth)
}

func (d *Driver) TextureBuffer(tex uint32, format dgl.Enum, buf uint32) {
	if t := d.textures[tex]; t != nil {
		t.format = format
	}
	d.record("TextureBuffer", tex, format, buf)
}

func (d *Driver) GenerateTextureMipmap(tex uint32) {
	d.record("GenerateTextureMipmap", tex)
}

func (d *Driver) GetTextureLevelParameteriv(tex uint32, level int32, pname dgl.Enum) int32 {
	d.record("GetTextureLevelParameteriv", tex, level, pname)
	t := d.textures[tex]
	if t == nil || level < 0 || int(level) >= len(t.levels) {
		return 0
	}
	switch pname {
	case dgl.TextureWidth:
		return t.levels[level][0]
	case dgl.TextureHeight:
		return t.levels[level][1]
	case dgl.TextureDepth:
		return t.levels[level][2]
	case dgl.TextureInternalFormat:
		return int32(t.format)
	}
	return 0
}

// Samplers.

func (d *Driver) samplerParams(sampler uint32) map[dgl.Enum][]float64 {
	if p, ok := d.samplers[sampler]; ok {
		return p
	}
	d.PushError(dgl.InvalidOperation)
	return nil
}

func (d *Driver) SamplerParameteriv(sampler uint32, pname dgl.Enum, v []int32) {
	setParam(d.samplerParams(sampler), pname, v)
	d.record("SamplerParameteriv", sampler, pname, clone(v))
}

func (d *Driver) SamplerParameterfv(sampler uint32, pname dgl.Enum, v []float32) {
	setParam(d.samplerParams(sampler), pname, v)
	d.record("SamplerParameterfv", sampler, pname, clone(v))
}

func (d *Driver) SamplerParameterIiv(sampler uint32, pname dgl.Enum, v []int32) {
	setParam(d.samplerParams(sampler), pname, v)
	d.record("SamplerParameterIiv", sampler, pname, clone(v))
}

func (d *Driver) SamplerParameterIuiv(sampler uint32, pname dgl.Enum, v []uint32) {
	setParam(d.samplerParams(sampler), pname, v)
	d.record("SamplerParameterIuiv", sampler, pname, clone(v))
}

func (d *Driver) GetSamplerParameteriv(sampler uint32, pname dgl.Enum, out []int32) {
	getParam(d.samplerParams(sampler), pname, out)
	d.record("GetSamplerParameteriv", sampler, pname)
}

func (d *Driver) GetSamplerParameterfv(sampler uint32, pname dgl.Enum, out []float32) {
	getParam(d.samplerParams(sampler), pname, out)
	d.record("GetSamplerParameterfv", sampler, pname)
}

func (d *Driver) GetSamplerParameterIiv(sampler uint32, pname dgl.Enum, out []int32) {
	getParam(d.samplerParams(sampler), pname, out)
	d.record("GetSamplerParameterIiv", sampler, pname)
}

func (d *Driver) GetSamplerParameterIuiv(sampler uint32, pname dgl.Enum, out []uint32) {
	getParam(d.samplerParams(sampler), pname, out)
	d.record("GetSamplerParameterIuiv", sampler, pname)
}
