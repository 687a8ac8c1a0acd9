package asset

import (
	"math/bits"

	"diamond-gl/dgl"
	"diamond-gl/math"
)

// TextureOptions controls how an Image becomes a texture.
type TextureOptions struct {
	Mipmaps bool
	SRGB    bool
	FlipY   bool
	// MaxSize scales larger images down to fit. Zero disables scaling.
	MaxSize   int
	MinFilter dgl.Enum
	MagFilter dgl.Enum
	Wrap      dgl.Enum
}

func DefaultTextureOptions() TextureOptions {
	return TextureOptions{
		Mipmaps:   true,
		FlipY:     true,
		MinFilter: dgl.LinearMipmapLinear,
		MagFilter: dgl.Linear,
		Wrap:      dgl.Repeat,
	}
}

// MipLevels is the length of a full mip chain for a width x height image.
func MipLevels(width, height int) int32 {
	size := max(width, height, 1)
	return int32(bits.Len(uint(size)))
}

// UploadTexture creates a 2D texture holding img. The caller owns the
// returned texture; img is never modified.
func UploadTexture(ctx *dgl.Context, img *Image, opts TextureOptions) *dgl.Texture {
	if opts.MaxSize > 0 && (img.Width > opts.MaxSize || img.Height > opts.MaxSize) {
		scale := float64(opts.MaxSize) / float64(max(img.Width, img.Height))
		img = img.Resize(max(1, int(float64(img.Width)*scale)), max(1, int(float64(img.Height)*scale)))
	} else if opts.FlipY {
		img = img.Clone()
	}
	if opts.FlipY {
		img.FlipVertical()
	}

	format := dgl.MustFormat(dgl.RGBA8)
	if opts.SRGB {
		format = dgl.MustFormat(dgl.SRGB8Alpha8)
	}
	levels := int32(1)
	minFilter := opts.MinFilter
	if opts.Mipmaps {
		levels = MipLevels(img.Width, img.Height)
	} else if minFilter != dgl.Nearest && minFilter != dgl.Linear {
		minFilter = dgl.Linear
	}

	size := math.NewUVec2(uint32(img.Width), uint32(img.Height))
	tex := ctx.CreateTexture(dgl.Texture2D)
	tex.Storage2D(levels, format.Internal, size)
	tex.SubImage2D(0, math.IVec2{}, size, format.Pixel, format.Type, img.Pixels)
	if opts.Mipmaps {
		tex.GenerateMipmap()
	}
	tex.SetInt(dgl.TextureMinFilter, int32(minFilter))
	tex.SetInt(dgl.TextureMagFilter, int32(opts.MagFilter))
	tex.SetInt(dgl.TextureWrapS, int32(opts.Wrap))
	tex.SetInt(dgl.TextureWrapT, int32(opts.Wrap))
	return tex
}
