// Package asset turns decoded images and glTF meshes into dgl objects.
package asset

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image holds RGBA8 pixels, 4 bytes per pixel, rows top to bottom.
type Image struct {
	Name   string
	Width  int
	Height int
	Pixels []byte
}

// LoadImage reads any registered image format from disk.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	defer f.Close()
	return DecodeImage(path, f)
}

// DecodeImage decodes r and converts the result to RGBA8.
func DecodeImage(name string, r io.Reader) (*Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", name, err)
	}
	return FromImage(name, img), nil
}

func decodeImageBytes(name string, data []byte) (*Image, error) {
	return DecodeImage(name, bytes.NewReader(data))
}

// FromImage converts img to RGBA8. A tightly packed *image.RGBA at the
// origin is used without copying.
func FromImage(name string, img image.Image) *Image {
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*rgba.Rect.Dx() || rgba.Rect.Min != (image.Point{}) {
		bounds := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	return &Image{
		Name:   name,
		Width:  rgba.Rect.Dx(),
		Height: rgba.Rect.Dy(),
		Pixels: rgba.Pix,
	}
}

// NewSolidImage creates a 1x1 image of one color.
func NewSolidImage(name string, r, g, b, a uint8) *Image {
	return &Image{Name: name, Width: 1, Height: 1, Pixels: []byte{r, g, b, a}}
}

func (img *Image) rgba() *image.RGBA {
	return &image.RGBA{
		Pix:    img.Pixels,
		Stride: 4 * img.Width,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
}

// Clone returns a copy that shares no pixel memory with img.
func (img *Image) Clone() *Image {
	c := *img
	c.Pixels = bytes.Clone(img.Pixels)
	return &c
}

// Resize returns a copy scaled to width x height with bilinear filtering.
func (img *Image) Resize(width, height int) *Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img.rgba(), img.rgba().Bounds(), draw.Src, nil)
	return &Image{Name: img.Name, Width: width, Height: height, Pixels: dst.Pix}
}

// FlipVertical reverses the row order in place. GL addresses texel rows
// bottom to top.
func (img *Image) FlipVertical() {
	stride := 4 * img.Width
	row := make([]byte, stride)
	for top, bottom := 0, img.Height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := img.Pixels[top*stride : (top+1)*stride]
		b := img.Pixels[bottom*stride : (bottom+1)*stride]
		copy(row, a)
		copy(a, b)
		copy(b, row)
	}
}
