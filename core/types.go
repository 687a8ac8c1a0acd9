package core

import (
	"diamond-gl/math"
)

type Color struct {
	R float32 `toml:"r"`
	G float32 `toml:"g"`
	B float32 `toml:"b"`
	A float32 `toml:"a"`
}

var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorGreen  = Color{0, 1, 0, 1}
	ColorBlue   = Color{0, 0, 1, 1}
	ColorYellow = Color{1, 1, 0, 1}
)

func (c Color) Vec4() math.Vec4 {
	return math.NewVec4(c.R, c.G, c.B, c.A)
}

// ColorVertex is a position with a per-vertex color, laid out for a
// single interleaved vertex buffer.
type ColorVertex struct {
	Position math.Vec3
	Color    Color
}
