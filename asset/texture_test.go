package asset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diamond-gl/asset"
	"diamond-gl/dgl"
	"diamond-gl/dgl/dgltest"
)

func newContext(t *testing.T) (*dgl.Context, *dgltest.Driver) {
	t.Helper()
	drv := dgltest.New()
	cfg := dgl.DefaultConfig()
	cfg.TrackLeaks = false
	return dgl.NewContext(drv, cfg), drv
}

func TestMipLevels(t *testing.T) {
	assert.Equal(t, int32(1), asset.MipLevels(1, 1))
	assert.Equal(t, int32(9), asset.MipLevels(256, 16))
	assert.Equal(t, int32(10), asset.MipLevels(300, 512))
}

func TestUploadTextureWithMipmaps(t *testing.T) {
	ctx, drv := newContext(t)
	img := &asset.Image{Name: "checker", Width: 4, Height: 2, Pixels: make([]byte, 4*4*2)}

	tex := asset.UploadTexture(ctx, img, asset.DefaultTextureOptions())
	defer tex.Release()

	storage := drv.Find("TextureStorage2D")
	require.Len(t, storage, 1)
	assert.Equal(t, []any{tex.Handle(), int32(3), dgl.RGBA8, int32(4), int32(2)}, storage[0].Args)

	upload := drv.Find("TextureSubImage2D")
	require.Len(t, upload, 1)
	assert.Equal(t, []any{tex.Handle(), int32(0), int32(0), int32(0), int32(4), int32(2),
		dgl.RGBA, dgl.UnsignedByte, 32}, upload[0].Args)

	assert.Len(t, drv.Find("GenerateTextureMipmap"), 1)
	assert.Equal(t, int32(dgl.LinearMipmapLinear), dgl.GetParameter[int32](tex, dgl.TextureMinFilter, 1)[0])
	assert.Equal(t, int32(dgl.Repeat), dgl.GetParameter[int32](tex, dgl.TextureWrapT, 1)[0])
}

func TestUploadTextureWithoutMipmaps(t *testing.T) {
	ctx, drv := newContext(t)
	opts := asset.DefaultTextureOptions()
	opts.Mipmaps = false
	opts.SRGB = true

	tex := asset.UploadTexture(ctx, asset.NewSolidImage("white", 255, 255, 255, 255), opts)
	defer tex.Release()

	assert.Equal(t, dgl.SRGB8Alpha8, drv.Find("TextureStorage2D")[0].Args[2])
	assert.Equal(t, int32(1), drv.Find("TextureStorage2D")[0].Args[1])
	assert.Empty(t, drv.Find("GenerateTextureMipmap"))
	assert.Equal(t, int32(dgl.Linear), dgl.GetParameter[int32](tex, dgl.TextureMinFilter, 1)[0])
}

func TestUploadTextureScalesToMaxSize(t *testing.T) {
	ctx, drv := newContext(t)
	opts := asset.DefaultTextureOptions()
	opts.MaxSize = 8

	img := &asset.Image{Width: 32, Height: 16, Pixels: make([]byte, 4*32*16)}
	tex := asset.UploadTexture(ctx, img, opts)
	defer tex.Release()

	args := drv.Find("TextureStorage2D")[0].Args
	assert.Equal(t, int32(8), args[3])
	assert.Equal(t, int32(4), args[4])
}

func TestUploadTextureLeavesImageUntouched(t *testing.T) {
	ctx, _ := newContext(t)
	img := &asset.Image{Width: 1, Height: 2, Pixels: []byte{1, 1, 1, 1, 2, 2, 2, 2}}
	want := []byte{1, 1, 1, 1, 2, 2, 2, 2}

	first := asset.UploadTexture(ctx, img, asset.DefaultTextureOptions())
	defer first.Release()
	assert.Equal(t, want, img.Pixels)

	second := asset.UploadTexture(ctx, img, asset.DefaultTextureOptions())
	defer second.Release()
	assert.Equal(t, want, img.Pixels)

	opts := asset.DefaultTextureOptions()
	opts.MaxSize = 1
	scaled := asset.UploadTexture(ctx, img, opts)
	defer scaled.Release()
	assert.Equal(t, want, img.Pixels)
}
