package dgl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diamond-gl/dgl"
	"diamond-gl/math"
)

func TestBufferDataAndRead(t *testing.T) {
	ctx, drv := newContext(t)
	buf := ctx.CreateBuffer()
	defer buf.Release()

	buf.Data([]byte{1, 2, 3, 4, 5, 6}, dgl.DynamicDraw)
	buf.SubData(2, []byte{9, 9})

	out := make([]byte, 4)
	buf.Read(1, out)
	assert.Equal(t, []byte{2, 9, 9, 5}, out)

	drv.Reset()
	buf.SubData(0, nil)
	buf.Read(0, nil)
	assert.Empty(t, drv.Calls)
}

func TestBufferStoragePadsShortData(t *testing.T) {
	ctx, drv := newContext(t)
	buf := ctx.CreateBuffer()
	defer buf.Release()

	buf.Storage(8, []byte{1, 2}, dgl.DynamicStorageBit|dgl.MapReadBit)
	assert.Equal(t, []byte{1, 2, 0, 0, 0, 0, 0, 0}, drv.BufferContents(buf.Handle()))
	assert.Equal(t, dgl.DynamicStorageBit|dgl.MapReadBit, drv.Last().Args[3])

	assert.Panics(t, func() { buf.Storage(1, []byte{1, 2}, 0) })
}

func TestBufferCopy(t *testing.T) {
	ctx, drv := newContext(t)
	src, dst := ctx.CreateBuffer(), ctx.CreateBuffer()
	defer src.Release()
	defer dst.Release()

	src.Data([]byte{1, 2, 3, 4}, dgl.StaticCopy)
	dst.Allocate(4, dgl.StaticDraw)
	src.CopyTo(dst, 1, 0, 3)

	assert.Equal(t, []byte{2, 3, 4, 0}, drv.BufferContents(dst.Handle()))
}

type vertex struct {
	Position math.Vec3
	UV       math.Vec2
}

func TestStructuredBuffer(t *testing.T) {
	ctx, drv := newContext(t)
	vertices := dgl.CreateStructuredBuffer[vertex](ctx)
	defer vertices.Release()

	assert.Equal(t, 20, vertices.Stride())

	in := []vertex{
		{math.NewVec3(0, 1, 2), math.NewVec2(0, 0)},
		{math.NewVec3(3, 4, 5), math.NewVec2(1, 0)},
		{math.NewVec3(6, 7, 8), math.NewVec2(1, 1)},
	}
	vertices.Storage(4, in, dgl.DynamicStorageBit)
	assert.Len(t, drv.BufferContents(vertices.Buffer().Handle()), 80)

	vertices.SubData(3, in[:1])

	out := make([]vertex, 4)
	vertices.Read(0, out)
	assert.Equal(t, append(in, in[0]), out)

	one := make([]vertex, 1)
	vertices.Read(1, one)
	assert.Equal(t, in[1], one[0])
}

func TestStructuredViewSharesBuffer(t *testing.T) {
	ctx, drv := newContext(t)
	buf := ctx.CreateBuffer()

	indices := dgl.Structured[uint16](buf)
	indices.Data([]uint16{0, 1, 2, 2, 3, 0}, dgl.StaticDraw)
	require.Equal(t, 2, indices.Stride())
	assert.Len(t, drv.BufferContents(buf.Handle()), 12)

	indices.Release()
	assert.Equal(t, 1, drv.Deleted(dgl.KindBuffer))
	assert.True(t, buf.Released())
}
