package dgl

import "fmt"

// Sized internal formats.
const (
	RGBA32F     Enum = 0x8814
	RGBA16F     Enum = 0x881A
	RGBA8       Enum = 0x8058
	RGBA8SNorm  Enum = 0x8F97
	RGBA8UI     Enum = 0x8D7C
	RGBA8I      Enum = 0x8D8E
	RGBA16      Enum = 0x805B
	RGBA16SNorm Enum = 0x8F9B
	RGBA16UI    Enum = 0x8D76
	RGBA16I     Enum = 0x8D88
	RGBA32UI    Enum = 0x8D70
	RGBA32I     Enum = 0x8D82

	RGB32F     Enum = 0x8815
	RGB16F     Enum = 0x881B
	RGB8       Enum = 0x8051
	RGB8SNorm  Enum = 0x8F96
	RGB8UI     Enum = 0x8D7D
	RGB8I      Enum = 0x8D8F
	RGB16      Enum = 0x8054
	RGB16SNorm Enum = 0x8F9A
	RGB16UI    Enum = 0x8D77
	RGB16I     Enum = 0x8D89
	RGB32UI    Enum = 0x8D71
	RGB32I     Enum = 0x8D83

	RG32F     Enum = 0x8230
	RG16F     Enum = 0x822F
	RG8       Enum = 0x822B
	RG8SNorm  Enum = 0x8F95
	RG8UI     Enum = 0x8238
	RG8I      Enum = 0x8237
	RG16      Enum = 0x822C
	RG16SNorm Enum = 0x8F99
	RG16UI    Enum = 0x823A
	RG16I     Enum = 0x8239
	RG32UI    Enum = 0x823C
	RG32I     Enum = 0x823B

	R32F     Enum = 0x822E
	R16F     Enum = 0x822D
	R8       Enum = 0x8229
	R8SNorm  Enum = 0x8F94
	R8UI     Enum = 0x8232
	R8I      Enum = 0x8231
	R16      Enum = 0x822A
	R16SNorm Enum = 0x8F98
	R16UI    Enum = 0x8234
	R16I     Enum = 0x8233
	R32UI    Enum = 0x8236
	R32I     Enum = 0x8235

	SRGB8Alpha8       Enum = 0x8C43
	DepthComponent16  Enum = 0x81A5
	DepthComponent24  Enum = 0x81A6
	DepthComponent32F Enum = 0x8CAC
	Depth24Stencil8   Enum = 0x88F0
)

// Pixel transfer formats.
const (
	Red            Enum = 0x1903
	RG             Enum = 0x8227
	RGB            Enum = 0x1907
	RGBA           Enum = 0x1908
	RedInteger     Enum = 0x8D94
	RGInteger      Enum = 0x8228
	RGBInteger     Enum = 0x8D98
	RGBAInteger    Enum = 0x8D99
	DepthComponent Enum = 0x1902
	DepthStencil   Enum = 0x84F9
)

// Format pairs a sized internal format with the pixel format and component
// type used to upload or read back texels of that format.
type Format struct {
	Internal Enum
	Pixel    Enum
	Type     Enum
}

// Components is the number of channels in one pixel.
func (f Format) Components() int {
	switch f.Pixel {
	case Red, RedInteger, DepthComponent, DepthStencil:
		return 1
	case RG, RGInteger:
		return 2
	case RGB, RGBInteger:
		return 3
	case RGBA, RGBAInteger:
		return 4
	}
	return 0
}

// PixelSize is the size in bytes of one pixel in client memory.
func (f Format) PixelSize() int {
	if f.Type == UnsignedInt24_8 {
		return 4
	}
	return f.Components() * typeSize(f.Type)
}

// Integer reports whether the format is read as unnormalized integers.
func (f Format) Integer() bool {
	switch f.Pixel {
	case RedInteger, RGInteger, RGBInteger, RGBAInteger:
		return true
	}
	return false
}

func (f Format) String() string {
	return fmt.Sprintf("%s/%s/%s", f.Internal, f.Pixel, f.Type)
}

var formats = func() map[Enum]Format {
	table := [][3]Enum{
		{RGBA32F, RGBA, Float},
		{RGBA16F, RGBA, HalfFloat},
		{RGBA8, RGBA, UnsignedByte},
		{RGBA8SNorm, RGBA, Byte},
		{RGBA8UI, RGBAInteger, UnsignedByte},
		{RGBA8I, RGBAInteger, Byte},
		{RGBA16, RGBA, UnsignedShort},
		{RGBA16SNorm, RGBA, Short},
		{RGBA16UI, RGBAInteger, UnsignedShort},
		{RGBA16I, RGBAInteger, Short},
		{RGBA32UI, RGBAInteger, UnsignedInt},
		{RGBA32I, RGBAInteger, Int},

		{RGB32F, RGB, Float},
		{RGB16F, RGB, HalfFloat},
		{RGB8, RGB, UnsignedByte},
		{RGB8SNorm, RGB, Byte},
		{RGB8UI, RGBInteger, UnsignedByte},
		{RGB8I, RGBInteger, Byte},
		{RGB16, RGB, UnsignedShort},
		{RGB16SNorm, RGB, Short},
		{RGB16UI, RGBInteger, UnsignedShort},
		{RGB16I, RGBInteger, Short},
		{RGB32UI, RGBInteger, UnsignedInt},
		{RGB32I, RGBInteger, Int},

		{RG32F, RG, Float},
		{RG16F, RG, HalfFloat},
		{RG8, RG, UnsignedByte},
		{RG8SNorm, RG, Byte},
		{RG8UI, RGInteger, UnsignedByte},
		{RG8I, RGInteger, Byte},
		{RG16, RG, UnsignedShort},
		{RG16SNorm, RG, Short},
		{RG16UI, RGInteger, UnsignedShort},
		{RG16I, RGInteger, Short},
		{RG32UI, RGInteger, UnsignedInt},
		{RG32I, RGInteger, Int},

		{R32F, Red, Float},
		{R16F, Red, HalfFloat},
		{R8, Red, UnsignedByte},
		{R8SNorm, Red, Byte},
		{R8UI, RedInteger, UnsignedByte},
		{R8I, RedInteger, Byte},
		{R16, Red, UnsignedShort},
		{R16SNorm, Red, Short},
		{R16UI, RedInteger, UnsignedShort},
		{R16I, RedInteger, Short},
		{R32UI, RedInteger, UnsignedInt},
		{R32I, RedInteger, Int},

		{SRGB8Alpha8, RGBA, UnsignedByte},
		{DepthComponent16, DepthComponent, UnsignedShort},
		{DepthComponent24, DepthComponent, UnsignedInt},
		{DepthComponent32F, DepthComponent, Float},
		{Depth24Stencil8, DepthStencil, UnsignedInt24_8},
	}
	m := make(map[Enum]Format, len(table))
	for _, row := range table {
		m[row[0]] = Format{Internal: row[0], Pixel: row[1], Type: row[2]}
	}
	return m
}()

// LookupFormat returns the transfer format for a sized internal format.
func LookupFormat(internal Enum) (Format, bool) {
	f, ok := formats[internal]
	return f, ok
}

// MustFormat is LookupFormat for formats known to be in the table.
func MustFormat(internal Enum) Format {
	f, ok := formats[internal]
	if !ok {
		panic(fmt.Sprintf("dgl: unknown internal format %s", internal))
	}
	return f
}

func typeSize(typ Enum) int {
	switch typ {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort, HalfFloat:
		return 2
	case Int, UnsignedInt, Float:
		return 4
	case Double:
		return 8
	}
	return 0
}
