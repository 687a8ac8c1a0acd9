package math

// Integer vectors carry texel offsets, extents and compute group counts.

type IVec2 struct {
	X, Y int32
}

type IVec3 struct {
	X, Y, Z int32
}

type UVec2 struct {
	X, Y uint32
}

type UVec3 struct {
	X, Y, Z uint32
}

func NewIVec2(x, y int32) IVec2 {
	return IVec2{X: x, Y: y}
}

func NewIVec3(x, y, z int32) IVec3 {
	return IVec3{X: x, Y: y, Z: z}
}

func NewUVec2(x, y uint32) UVec2 {
	return UVec2{X: x, Y: y}
}

func NewUVec3(x, y, z uint32) UVec3 {
	return UVec3{X: x, Y: y, Z: z}
}

// Extend widens v with a z component.
func (v UVec2) Extend(z uint32) UVec3 {
	return UVec3{X: v.X, Y: v.Y, Z: z}
}

// Extend widens v with a z component.
func (v IVec2) Extend(z int32) IVec3 {
	return IVec3{X: v.X, Y: v.Y, Z: z}
}

// Volume is the number of cells covered by the extent.
func (v UVec3) Volume() uint64 {
	return uint64(v.X) * uint64(v.Y) * uint64(v.Z)
}
