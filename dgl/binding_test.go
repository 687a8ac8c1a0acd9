package dgl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diamond-gl/dgl"
)

func TestBufferTargetForwardsEveryBind(t *testing.T) {
	ctx, drv := newContext(t)
	buf := ctx.CreateBuffer()
	defer buf.Release()

	target := ctx.BufferTarget(dgl.ArrayBuffer)
	target.Bind(buf)
	target.Bind(buf)

	assert.Len(t, drv.Find("BindBuffer"), 2)
	assert.Equal(t, buf.Handle(), target.Bound())
	assert.Equal(t, buf.Handle(), ctx.State().Buffer(dgl.ArrayBuffer))

	target.Bind(nil)
	assert.Zero(t, target.Bound())
	assert.Equal(t, []any{dgl.ArrayBuffer, uint32(0)}, drv.Last().Args)
}

func TestIndexedBindings(t *testing.T) {
	ctx, drv := newContext(t)
	bufs := ctx.CreateBuffers(3)

	ubo := ctx.BufferTarget(dgl.UniformBuffer)
	ubo.Binding(2).BindRange(bufs[0], 256, 64)
	assert.Equal(t, bufs[0].Handle(), ubo.Binding(2).Bound())
	assert.Equal(t, bufs[0].Handle(), ubo.Bound(), "indexed bind also sets the generic binding")
	assert.Equal(t, []any{dgl.UniformBuffer, uint32(2), bufs[0].Handle(), 256, 64}, drv.Last().Args)

	ssbo := ctx.BufferTarget(dgl.ShaderStorageBuffer)
	ssbo.BindBase(4, bufs[1], nil, bufs[2])
	assert.Equal(t, "BindBuffersBase", drv.Last().Name)
	assert.Equal(t, []uint32{bufs[1].Handle(), 0, bufs[2].Handle()}, drv.Last().Args[2])
	assert.Equal(t, bufs[1].Handle(), ctx.State().IndexedBuffer(dgl.ShaderStorageBuffer, 4))
	assert.Zero(t, ctx.State().IndexedBuffer(dgl.ShaderStorageBuffer, 5))
	assert.Equal(t, bufs[2].Handle(), ctx.State().IndexedBuffer(dgl.ShaderStorageBuffer, 6))

	ubo.Binding(2).Unbind()
	assert.Zero(t, ubo.Binding(2).Bound())

	for _, b := range bufs {
		b.Release()
	}
	require.NoError(t, ctx.Close())
}

func TestMultiBindKeepsGenericBinding(t *testing.T) {
	ctx, drv := newContext(t)
	bufs := ctx.CreateBuffers(3)

	ubo := ctx.BufferTarget(dgl.UniformBuffer)
	ubo.Bind(bufs[0])
	ubo.BindBase(0, bufs[1], bufs[2])

	assert.Equal(t, "BindBuffersBase", drv.Last().Name)
	assert.Equal(t, bufs[0].Handle(), ubo.Bound())
	assert.Equal(t, bufs[1].Handle(), ubo.Binding(0).Bound())
	assert.Equal(t, bufs[2].Handle(), ubo.Binding(1).Bound())

	ubo.Binding(1).Bind(bufs[1])
	assert.Equal(t, bufs[1].Handle(), ubo.Bound(), "single indexed bind replaces the generic binding")

	for _, b := range bufs {
		b.Release()
	}
	require.NoError(t, ctx.Close())
}

func TestScopeUnbindsOnClose(t *testing.T) {
	ctx, drv := newContext(t)
	buf := ctx.CreateBuffer()
	defer buf.Release()

	binding := ctx.BufferTarget(dgl.UniformBuffer).Binding(0)
	scope := binding.Scope(buf)
	assert.Equal(t, buf.Handle(), binding.Bound())

	scope.Close()
	assert.Zero(t, binding.Bound())
	assert.Equal(t, []any{dgl.UniformBuffer, uint32(0), uint32(0)}, drv.Last().Args)

	drv.Reset()
	scope.Close()
	assert.Empty(t, drv.Calls, "second close is a no-op")
}

func TestScopeLeavesReboundSlot(t *testing.T) {
	ctx, drv := newContext(t)
	bufs := ctx.CreateBuffers(2)

	binding := ctx.BufferTarget(dgl.ShaderStorageBuffer).Binding(1)
	scope := binding.Scope(bufs[0])
	binding.Bind(bufs[1])

	drv.Reset()
	scope.Close()
	assert.Empty(t, drv.Calls)
	assert.Equal(t, bufs[1].Handle(), binding.Bound())

	for _, b := range bufs {
		b.Release()
	}
}

func TestTextureUnitScope(t *testing.T) {
	ctx, _ := newContext(t)
	tex := ctx.CreateTexture(dgl.Texture2D)
	unit := ctx.TextureUnit(3)

	scope := unit.Scope(tex)
	assert.Equal(t, tex.Handle(), ctx.State().TextureUnit(3))
	scope.Close()
	assert.Zero(t, unit.Bound())

	tex.Release()
}

func TestDeletionClearsBindingSlots(t *testing.T) {
	ctx, _ := newContext(t)

	buf := ctx.CreateBuffer()
	ctx.BufferTarget(dgl.ArrayBuffer).Bind(buf)
	ctx.BufferTarget(dgl.UniformBuffer).Binding(7).Bind(buf)

	tex := ctx.CreateTexture(dgl.Texture2D)
	ctx.TextureTarget(dgl.Texture2D).Bind(tex)
	ctx.BindTextures(0, nil, tex)
	ctx.ImageUnit(2).Bind(tex, 0, false, 0, dgl.WriteOnly, dgl.RGBA8)

	sampler := ctx.CreateSampler()
	ctx.TextureUnit(1).BindSampler(sampler)

	vao := ctx.CreateVertexArray()
	ctx.BindVertexArray(vao)
	pipe := ctx.CreatePipeline()
	ctx.BindPipeline(pipe)
	prog := ctx.CreateProgram()
	ctx.UseProgram(prog)

	state := ctx.State()
	require.Equal(t, tex.Handle(), state.TextureUnit(1))
	progID := prog.Handle()

	buf.Release()
	tex.Release()
	sampler.Release()
	vao.Release()
	pipe.Release()
	prog.Release()

	assert.Zero(t, state.Buffer(dgl.ArrayBuffer))
	assert.Zero(t, state.Buffer(dgl.UniformBuffer))
	assert.Zero(t, state.IndexedBuffer(dgl.UniformBuffer, 7))
	assert.Zero(t, state.Texture(dgl.Texture2D))
	assert.Zero(t, state.TextureUnit(1))
	assert.Zero(t, state.ImageUnit(2))
	assert.Zero(t, state.SamplerUnit(1))
	assert.Zero(t, state.VertexArray())
	assert.Zero(t, state.Pipeline())
	assert.Equal(t, progID, state.Program(), "a deleted program stays current")

	ctx.UseProgram(nil)
	assert.Zero(t, state.Program())
}

func TestTextureTargetRejectsOtherTargets(t *testing.T) {
	ctx, _ := newContext(t)
	cube := ctx.TextureTarget(dgl.TextureCubeMap).Create()
	defer cube.Release()

	assert.Equal(t, dgl.TextureCubeMap, cube.Target())
	assert.Panics(t, func() { ctx.TextureTarget(dgl.Texture2D).Bind(cube) })
	assert.NotPanics(t, func() { ctx.TextureTarget(dgl.TextureCubeMap).Bind(cube) })
}

func TestMultiBindTexturesAndSamplers(t *testing.T) {
	ctx, drv := newContext(t)
	texs := ctx.CreateTextures(dgl.Texture2D, 2)
	samplers := ctx.CreateSamplers(2)

	ctx.BindTextures(4, texs...)
	ctx.BindSamplers(4, samplers...)

	assert.Equal(t, []any{uint32(4), []uint32{texs[0].Handle(), texs[1].Handle()}}, drv.Find("BindTextures")[0].Args)
	assert.Equal(t, samplers[1].Handle(), ctx.TextureUnit(5).BoundSampler())
	assert.Equal(t, texs[1].Handle(), ctx.TextureUnit(5).Bound())

	img := ctx.ImageUnit(0)
	img.BindLevel(texs[0].Level(2), dgl.ReadWrite, dgl.RGBA32F)
	assert.Equal(t, []any{uint32(0), texs[0].Handle(), int32(2), true, int32(0), dgl.ReadWrite, dgl.RGBA32F}, drv.Last().Args)
	img.Unbind()
	assert.Zero(t, img.Bound())
}
