// Package triangle is the smoke-test scene: one colored triangle drawn
// through the dgl wrappers.
package triangle

import (
	"fmt"
	"unsafe"

	"diamond-gl/core"
	"diamond-gl/dgl"
	"diamond-gl/math"
)

const vertexSource = `#version 450 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec4 color;

uniform float angle;

out vec4 vertexColor;

void main() {
	float c = cos(angle);
	float s = sin(angle);
	gl_Position = vec4(c*position.x - s*position.y, s*position.x + c*position.y, position.z, 1.0);
	vertexColor = color;
}
`

const fragmentSource = `#version 450 core
in vec4 vertexColor;
out vec4 fragColor;

void main() {
	fragColor = vertexColor;
}
`

// Vertices is the triangle drawn by Scene.
var Vertices = []core.ColorVertex{
	{Position: math.NewVec3(0, 0.5, 0), Color: core.ColorRed},
	{Position: math.NewVec3(0.5, -0.5, 0), Color: core.ColorGreen},
	{Position: math.NewVec3(-0.5, -0.5, 0), Color: core.ColorBlue},
}

const (
	positionAttrib uint32 = 0
	colorAttrib    uint32 = 1
	vertexBinding  uint32 = 0
)

// Scene owns the program, buffer and vertex array of the triangle.
type Scene struct {
	ctx      *dgl.Context
	program  *dgl.Program
	angle    dgl.TypedUniform[float32]
	vertices dgl.StructuredBuffer[core.ColorVertex]
	array    *dgl.VertexArray
}

// New compiles the shaders and uploads the triangle.
func New(ctx *dgl.Context, background core.Color) (*Scene, error) {
	vs, err := ctx.CompileShader(dgl.VertexShader, vertexSource)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	defer vs.Release()
	fs, err := ctx.CompileShader(dgl.FragmentShader, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	defer fs.Release()

	program, err := ctx.LinkProgram(vs, fs)
	if err != nil {
		return nil, fmt.Errorf("triangle program: %w", err)
	}

	s := &Scene{
		ctx:     ctx,
		program: program,
		angle:   dgl.UniformOf[float32](program, "angle"),
	}

	s.vertices = dgl.CreateStructuredBuffer[core.ColorVertex](ctx)
	s.vertices.Storage(len(Vertices), Vertices, 0)

	s.array = ctx.CreateVertexArray()
	binding := s.array.Binding(vertexBinding)
	binding.Attach(s.vertices, 0)

	var v core.ColorVertex
	position := s.array.Attribute(positionAttrib)
	position.Format(3, dgl.Float, false, uint32(unsafe.Offsetof(v.Position)))
	position.Binding(binding)

	color := s.array.Attribute(colorAttrib)
	color.Format(4, dgl.Float, false, uint32(unsafe.Offsetof(v.Color)))
	color.Binding(binding)

	ctx.ClearColor(background.Vec4())
	return s, nil
}

// Frame draws one frame with the triangle rotated by angle radians.
func (s *Scene) Frame(angle float32) {
	s.ctx.UseProgram(s.program)
	s.angle.Set(angle)
	s.ctx.BindVertexArray(s.array)
	s.ctx.Clear(dgl.ColorBufferBit)
	s.ctx.DrawArrays(dgl.Triangles, 0, int32(len(Vertices)), 1)
}

func (s *Scene) Release() {
	s.array.Release()
	s.vertices.Release()
	s.program.Release()
}
