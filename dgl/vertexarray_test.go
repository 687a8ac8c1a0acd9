package dgl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"diamond-gl/dgl"
	"diamond-gl/math"
)

func TestVertexArraySetup(t *testing.T) {
	ctx, drv := newContext(t)
	vao := ctx.CreateVertexArray()
	positions := dgl.CreateStructuredBuffer[math.Vec3](ctx)
	indices := dgl.CreateStructuredBuffer[uint32](ctx)
	defer vao.Release()
	defer positions.Release()
	defer indices.Release()

	drv.Reset()
	binding := vao.Binding(0)
	binding.Attach(positions, 0)
	attr := vao.Attribute(2)
	attr.Format(3, dgl.Float, false, 0)
	attr.Binding(binding)
	vao.ElementBuffer(indices.Buffer())

	assert.Equal(t, []string{
		"VertexArrayVertexBuffer",
		"EnableVertexArrayAttrib",
		"VertexArrayAttribFormat",
		"VertexArrayAttribBinding",
		"VertexArrayElementBuffer",
	}, drv.Names())
	assert.Equal(t, []any{vao.Handle(), uint32(0), positions.Buffer().Handle(), 0, int32(12)}, drv.Calls[0].Args)
	assert.Equal(t, []any{vao.Handle(), uint32(2), uint32(0)}, drv.Calls[3].Args)

	attr.Disable()
	assert.Equal(t, "DisableVertexArrayAttrib", drv.Last().Name)
}

func TestVertexArrayMultiBind(t *testing.T) {
	ctx, drv := newContext(t)
	vao := ctx.CreateVertexArray()
	positions := dgl.CreateStructuredBuffer[math.Vec3](ctx)
	uvs := dgl.CreateStructuredBuffer[math.Vec2](ctx)
	defer vao.Release()
	defer positions.Release()
	defer uvs.Release()

	vao.VertexBuffers(1, positions, uvs)
	assert.Equal(t, []any{
		vao.Handle(), uint32(1),
		[]uint32{positions.Buffer().Handle(), uvs.Buffer().Handle()},
		[]int{0, 0},
		[]int32{12, 8},
	}, drv.Last().Args)

	vao.Binding(2).Divisor(1)
	vao.Attribute(3).FormatInt(4, dgl.UnsignedByte, 0)
	vao.Attribute(4).FormatLong(2, dgl.Double, 8)
	vao.Attribute(4).BindingIndex(2)
	assert.Equal(t, []any{vao.Handle(), uint32(4), uint32(2)}, drv.Last().Args)
	assert.Len(t, drv.Find("EnableVertexArrayAttrib"), 3)
}
