package dgl

import "fmt"

// Enum is a GL enumerant.
type Enum uint32

// Bitfield is a GL mask built from *Bit constants.
type Bitfield uint32

const (
	False = 0
	True  = 1
)

// Buffer targets.
const (
	ArrayBuffer             Enum = 0x8892
	ElementArrayBuffer      Enum = 0x8893
	UniformBuffer           Enum = 0x8A11
	ShaderStorageBuffer     Enum = 0x90D2
	AtomicCounterBuffer     Enum = 0x92C0
	TransformFeedbackBuffer Enum = 0x8C8E
	DrawIndirectBuffer      Enum = 0x8F3F
	DispatchIndirectBuffer  Enum = 0x90EE
	CopyReadBuffer          Enum = 0x8F36
	CopyWriteBuffer         Enum = 0x8F37
	PixelPackBuffer         Enum = 0x88EB
	PixelUnpackBuffer       Enum = 0x88EC
	QueryBuffer             Enum = 0x9192
)

// Buffer usage hints.
const (
	StreamDraw  Enum = 0x88E0
	StreamRead  Enum = 0x88E1
	StreamCopy  Enum = 0x88E2
	StaticDraw  Enum = 0x88E4
	StaticRead  Enum = 0x88E5
	StaticCopy  Enum = 0x88E6
	DynamicDraw Enum = 0x88E8
	DynamicRead Enum = 0x88E9
	DynamicCopy Enum = 0x88EA
)

// Buffer storage flags.
const (
	MapReadBit        Bitfield = 0x0001
	MapWriteBit       Bitfield = 0x0002
	MapPersistentBit  Bitfield = 0x0040
	MapCoherentBit    Bitfield = 0x0080
	DynamicStorageBit Bitfield = 0x0100
	ClientStorageBit  Bitfield = 0x0200
)

// Texture targets.
const (
	Texture1D            Enum = 0x0DE0
	Texture2D            Enum = 0x0DE1
	Texture3D            Enum = 0x806F
	TextureCubeMap       Enum = 0x8513
	TextureBuffer        Enum = 0x8C2A
	Texture2DMultisample Enum = 0x9100
	Texture1DArray       Enum = 0x8C18
	Texture2DArray       Enum = 0x8C1A
	TextureCubeMapArray  Enum = 0x9009
	TextureRectangle     Enum = 0x84F5
)

// Shader stages.
const (
	VertexShader         Enum = 0x8B31
	FragmentShader       Enum = 0x8B30
	GeometryShader       Enum = 0x8DD9
	TessControlShader    Enum = 0x8E88
	TessEvaluationShader Enum = 0x8E87
	ComputeShader        Enum = 0x91B9
)

// Program pipeline stage bits.
const (
	VertexShaderBit         Bitfield = 0x01
	FragmentShaderBit       Bitfield = 0x02
	GeometryShaderBit       Bitfield = 0x04
	TessControlShaderBit    Bitfield = 0x08
	TessEvaluationShaderBit Bitfield = 0x10
	ComputeShaderBit        Bitfield = 0x20
	AllShaderBits           Bitfield = 0xFFFFFFFF
)

// Shader and program queries.
const (
	DeleteStatus       Enum = 0x8B80
	CompileStatus      Enum = 0x8B81
	LinkStatus         Enum = 0x8B82
	ValidateStatus     Enum = 0x8B83
	InfoLogLength      Enum = 0x8B84
	AttachedShaders    Enum = 0x8B85
	ActiveUniforms     Enum = 0x8B86
	ShaderType         Enum = 0x8B4F
	ShaderSourceLength Enum = 0x8B88

	ShaderBinaryFormatSPIRV Enum = 0x9551
	SPIRVBinary             Enum = 0x9552
)

// Component types.
const (
	Byte          Enum = 0x1400
	UnsignedByte  Enum = 0x1401
	Short         Enum = 0x1402
	UnsignedShort Enum = 0x1403
	Int           Enum = 0x1404
	UnsignedInt   Enum = 0x1405
	Float         Enum = 0x1406
	Double        Enum = 0x140A
	HalfFloat     Enum = 0x140B

	UnsignedInt24_8 Enum = 0x84FA
)

// Primitive modes.
const (
	Points                 Enum = 0x0
	Lines                  Enum = 0x1
	LineLoop               Enum = 0x2
	LineStrip              Enum = 0x3
	Triangles              Enum = 0x4
	TriangleStrip          Enum = 0x5
	TriangleFan            Enum = 0x6
	LinesAdjacency         Enum = 0xA
	LineStripAdjacency     Enum = 0xB
	TrianglesAdjacency     Enum = 0xC
	TriangleStripAdjacency Enum = 0xD
	Patches                Enum = 0xE
)

// Clear mask bits.
const (
	DepthBufferBit   Bitfield = 0x0100
	StencilBufferBit Bitfield = 0x0400
	ColorBufferBit   Bitfield = 0x4000
)

// Capabilities for Enable and Disable.
const (
	Blend                       Enum = 0x0BE2
	ColorLogicOp                Enum = 0x0BF2
	CullFace                    Enum = 0x0B44
	DepthClamp                  Enum = 0x864F
	DepthTest                   Enum = 0x0B71
	DebugOutput                 Enum = 0x92E0
	FramebufferSRGB             Enum = 0x8DB9
	Multisample                 Enum = 0x809D
	PolygonOffsetFill           Enum = 0x8037
	PrimitiveRestart            Enum = 0x8F9D
	ProgramPointSize            Enum = 0x8642
	RasterizerDiscard           Enum = 0x8C89
	ScissorTest                 Enum = 0x0C11
	StencilTest                 Enum = 0x0B90
	TextureCubeMapSeamless      Enum = 0x884F
	ConservativeRasterizationNV Enum = 0x9346
)

// Blend factors.
const (
	Zero                  Enum = 0x0
	One                   Enum = 0x1
	SrcColor              Enum = 0x0300
	OneMinusSrcColor      Enum = 0x0301
	SrcAlpha              Enum = 0x0302
	OneMinusSrcAlpha      Enum = 0x0303
	DstAlpha              Enum = 0x0304
	OneMinusDstAlpha      Enum = 0x0305
	DstColor              Enum = 0x0306
	OneMinusDstColor      Enum = 0x0307
	ConstantColor         Enum = 0x8001
	OneMinusConstantColor Enum = 0x8002
	ConstantAlpha         Enum = 0x8003
	OneMinusConstantAlpha Enum = 0x8004
)

// Blend equations.
const (
	FuncAdd             Enum = 0x8006
	Min                 Enum = 0x8007
	Max                 Enum = 0x8008
	FuncSubtract        Enum = 0x800A
	FuncReverseSubtract Enum = 0x800B
)

// Logic operations.
const (
	LogicClear  Enum = 0x1500
	LogicAnd    Enum = 0x1501
	LogicCopy   Enum = 0x1503
	LogicNoop   Enum = 0x1505
	LogicXor    Enum = 0x1506
	LogicOr     Enum = 0x1507
	LogicInvert Enum = 0x150A
)

// Texture and sampler parameters.
const (
	TextureMagFilter     Enum = 0x2800
	TextureMinFilter     Enum = 0x2801
	TextureWrapS         Enum = 0x2802
	TextureWrapT         Enum = 0x2803
	TextureWrapR         Enum = 0x8072
	TextureBorderColor   Enum = 0x1004
	TextureMinLOD        Enum = 0x813A
	TextureMaxLOD        Enum = 0x813B
	TextureBaseLevel     Enum = 0x813C
	TextureMaxLevel      Enum = 0x813D
	TextureLODBias       Enum = 0x8501
	TextureCompareMode   Enum = 0x884C
	TextureCompareFunc   Enum = 0x884D
	TextureMaxAnisotropy Enum = 0x84FE
	TextureSwizzleRGBA   Enum = 0x8E46

	Nearest              Enum = 0x2600
	Linear               Enum = 0x2601
	NearestMipmapNearest Enum = 0x2700
	LinearMipmapNearest  Enum = 0x2701
	NearestMipmapLinear  Enum = 0x2702
	LinearMipmapLinear   Enum = 0x2703

	Repeat         Enum = 0x2901
	ClampToEdge    Enum = 0x812F
	ClampToBorder  Enum = 0x812D
	MirroredRepeat Enum = 0x8370
)

// Texture level queries.
const (
	TextureWidth          Enum = 0x1000
	TextureHeight         Enum = 0x1001
	TextureInternalFormat Enum = 0x1003
	TextureDepth          Enum = 0x8071
)

// Image unit access.
const (
	ReadOnly  Enum = 0x88B8
	WriteOnly Enum = 0x88B9
	ReadWrite Enum = 0x88BA
)

// Memory barrier bits.
const (
	VertexAttribArrayBarrierBit Bitfield = 0x0001
	ElementArrayBarrierBit      Bitfield = 0x0002
	UniformBarrierBit           Bitfield = 0x0004
	TextureFetchBarrierBit      Bitfield = 0x0008
	ShaderImageAccessBarrierBit Bitfield = 0x0020
	CommandBarrierBit           Bitfield = 0x0040
	BufferUpdateBarrierBit      Bitfield = 0x0200
	ShaderStorageBarrierBit     Bitfield = 0x2000
	AllBarrierBits              Bitfield = 0xFFFFFFFF
)

// Driver strings.
const (
	Vendor                 Enum = 0x1F00
	Renderer               Enum = 0x1F01
	Version                Enum = 0x1F02
	ShadingLanguageVersion Enum = 0x8B8C
)

// Error codes returned by GetError.
const (
	NoError                     Enum = 0x0
	InvalidEnum                 Enum = 0x0500
	InvalidValue                Enum = 0x0501
	InvalidOperation            Enum = 0x0502
	StackOverflow               Enum = 0x0503
	StackUnderflow              Enum = 0x0504
	OutOfMemory                 Enum = 0x0505
	InvalidFramebufferOperation Enum = 0x0506
)

var enumNames = map[Enum]string{
	ArrayBuffer:                 "ARRAY_BUFFER",
	ElementArrayBuffer:          "ELEMENT_ARRAY_BUFFER",
	UniformBuffer:               "UNIFORM_BUFFER",
	ShaderStorageBuffer:         "SHADER_STORAGE_BUFFER",
	AtomicCounterBuffer:         "ATOMIC_COUNTER_BUFFER",
	DrawIndirectBuffer:          "DRAW_INDIRECT_BUFFER",
	Texture2D:                   "TEXTURE_2D",
	Texture3D:                   "TEXTURE_3D",
	TextureCubeMap:              "TEXTURE_CUBE_MAP",
	VertexShader:                "VERTEX_SHADER",
	FragmentShader:              "FRAGMENT_SHADER",
	GeometryShader:              "GEOMETRY_SHADER",
	ComputeShader:               "COMPUTE_SHADER",
	TessControlShader:           "TESS_CONTROL_SHADER",
	TessEvaluationShader:        "TESS_EVALUATION_SHADER",
	InvalidEnum:                 "INVALID_ENUM",
	InvalidValue:                "INVALID_VALUE",
	InvalidOperation:            "INVALID_OPERATION",
	StackOverflow:               "STACK_OVERFLOW",
	StackUnderflow:              "STACK_UNDERFLOW",
	OutOfMemory:                 "OUT_OF_MEMORY",
	InvalidFramebufferOperation: "INVALID_FRAMEBUFFER_OPERATION",
}

// String returns the GL name for the enumerants this package reports in
// errors and logs, and the hex value for everything else.
func (e Enum) String() string {
	if name, ok := enumNames[e]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", uint32(e))
}
