package dgl_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

type releaser interface {
	Handle() uint32
	Release()
}

func TestOwnershipDeletesOnLastRelease(t *testing.T) {
	tests := []struct {
		kind   dgl.Kind
		create func(*dgl.Context) (releaser, releaser)
	}{
		{dgl.KindBuffer, func(c *dgl.Context) (releaser, releaser) {
			b := c.CreateBuffer()
			return b, b.Ref()
		}},
		{dgl.KindTexture, func(c *dgl.Context) (releaser, releaser) {
			tex := c.CreateTexture(dgl.Texture2D)
			return tex, tex.Ref()
		}},
		{dgl.KindSampler, func(c *dgl.Context) (releaser, releaser) {
			s := c.CreateSampler()
			return s, s.Ref()
		}},
		{dgl.KindVertexArray, func(c *dgl.Context) (releaser, releaser) {
			v := c.CreateVertexArray()
			return v, v.Ref()
		}},
		{dgl.KindShader, func(c *dgl.Context) (releaser, releaser) {
			s := c.CreateShader(dgl.VertexShader)
			return s, s.Ref()
		}},
		{dgl.KindProgram, func(c *dgl.Context) (releaser, releaser) {
			p := c.CreateProgram()
			return p, p.Ref()
		}},
		{dgl.KindPipeline, func(c *dgl.Context) (releaser, releaser) {
			p := c.CreatePipeline()
			return p, p.Ref()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			ctx, drv := newContext(t)

			first, second := tt.create(ctx)
			assert.Equal(t, first.Handle(), second.Handle())
			assert.Equal(t, 1, ctx.Live(tt.kind))

			first.Release()
			first.Release()
			assert.Equal(t, 0, drv.Deleted(tt.kind), "shared handle deleted while still owned")

			second.Release()
			assert.Equal(t, 1, drv.Created(tt.kind))
			assert.Equal(t, 1, drv.Deleted(tt.kind))
			assert.Equal(t, 0, ctx.Live(tt.kind))
			assert.Empty(t, drv.Violations())
			require.NoError(t, ctx.Close())
		})
	}
}

func TestOwnershipRefChains(t *testing.T) {
	ctx, drv := newContext(t)

	buf := ctx.CreateBuffer()
	owners := []*dgl.Buffer{buf}
	for i := 0; i < 5; i++ {
		owners = append(owners, owners[len(owners)-1].Ref())
	}
	assert.Equal(t, 6, buf.Refs())

	// Release in an order unrelated to creation.
	for _, i := range []int{3, 0, 5, 1, 4} {
		owners[i].Release()
		assert.Equal(t, 0, drv.Deleted(dgl.KindBuffer))
	}
	owners[2].Release()
	assert.Equal(t, 1, drv.Deleted(dgl.KindBuffer))
	assert.Empty(t, drv.Violations())
}

func TestCreateMultipleUsesOneCall(t *testing.T) {
	ctx, drv := newContext(t)

	bufs := ctx.CreateBuffers(3)
	texs := ctx.CreateTextures(dgl.Texture3D, 2)
	require.Len(t, bufs, 3)
	require.Len(t, texs, 2)
	assert.Len(t, drv.Find("CreateBuffers"), 1)
	assert.Len(t, drv.Find("CreateTextures"), 1)
	assert.Equal(t, dgl.Texture3D, texs[1].Target())

	second := bufs[1].Handle()
	bufs[1].Release()
	assert.Equal(t, []any{[]uint32{second}}, drv.Last().Args)
	assert.Equal(t, 2, ctx.Live(dgl.KindBuffer))

	for _, b := range bufs {
		b.Release()
	}
	for _, tex := range texs {
		tex.Release()
	}
	assert.Equal(t, 0, drv.Live())
}

func TestUseAfterReleasePanics(t *testing.T) {
	ctx, _ := newContext(t)

	buf := ctx.CreateBuffer()
	keep := buf.Ref()
	buf.Release()

	assert.True(t, buf.Released())
	assert.PanicsWithError(t, "dgl: object used after release: buffer 1", func() { buf.Data([]byte{1}, dgl.StaticDraw) })
	assert.NotPanics(t, func() { keep.Data([]byte{1}, dgl.StaticDraw) })
	keep.Release()
}

func TestForeignObjectPanics(t *testing.T) {
	a, _ := newContext(t)
	b, _ := newContext(t)

	buf := a.CreateBuffer()
	defer buf.Release()

	assert.Panics(t, func() { b.BufferTarget(dgl.ArrayBuffer).Bind(buf) })
}

func TestCloseDeletesLeakedObjects(t *testing.T) {
	ctx, drv := newContext(t)

	ctx.CreateBuffer()
	ctx.CreateShader(dgl.FragmentShader)
	released := ctx.CreateTexture(dgl.Texture2D)
	released.Release()

	err := ctx.Close()
	require.ErrorIs(t, err, dgl.ErrLeaked)
	assert.Contains(t, err.Error(), "2 objects")
	assert.Equal(t, 0, drv.Live())
	assert.Empty(t, drv.Violations())

	assert.NoError(t, ctx.Close())
	assert.PanicsWithValue(t, dgl.ErrContextClosed, func() { ctx.CreateBuffer() })
}

func TestReleaseAfterCloseIsNoop(t *testing.T) {
	ctx, drv := newContext(t)

	buf := ctx.CreateBuffer()
	require.Error(t, ctx.Close())
	buf.Release()
	assert.Equal(t, 1, drv.Deleted(dgl.KindBuffer))
	assert.Empty(t, drv.Violations())
}

func TestCollectDeletesDroppedOwners(t *testing.T) {
	drv := dgltest.New()
	ctx := dgl.NewContext(drv, dgl.DefaultConfig())

	func() {
		for i := 0; i < 4; i++ {
			ctx.CreateBuffer()
		}
	}()
	kept := ctx.CreateBuffer()

	collected := 0
	require.Eventually(t, func() bool {
		runtime.GC()
		collected += ctx.Collect()
		return collected == 4
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, 4, drv.Deleted(dgl.KindBuffer))
	assert.Equal(t, 1, ctx.Live(dgl.KindBuffer))
	kept.Release()
	require.NoError(t, ctx.Close())
}

func TestErrDrainsDriverErrors(t *testing.T) {
	ctx, drv := newContext(t)

	assert.NoError(t, ctx.Err())

	drv.PushError(dgl.InvalidEnum)
	drv.PushError(dgl.OutOfMemory)
	err := ctx.Err()
	require.Error(t, err)

	var glErr dgl.GLError
	require.ErrorAs(t, err, &glErr)
	assert.Equal(t, dgl.InvalidEnum, glErr.Code)
	assert.ErrorIs(t, err, dgl.GLError{Code: dgl.OutOfMemory})
	assert.Contains(t, err.Error(), "INVALID_ENUM")
	assert.NoError(t, ctx.Err())
}
