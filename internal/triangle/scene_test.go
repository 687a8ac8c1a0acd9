package triangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diamond-gl/core"
	"diamond-gl/dgl"
	"diamond-gl/dgl/dgltest"
)

func newScene(t *testing.T) (*Scene, *dgl.Context, *dgltest.Driver) {
	t.Helper()
	drv := dgltest.New()
	cfg := dgl.DefaultConfig()
	cfg.TrackLeaks = false
	ctx := dgl.NewContext(drv, cfg)
	s, err := New(ctx, core.ColorBlack)
	require.NoError(t, err)
	return s, ctx, drv
}

// subsequence reports whether want appears in got in order.
func subsequence(got, want []string) bool {
	i := 0
	for _, name := range got {
		if i < len(want) && name == want[i] {
			i++
		}
	}
	return i == len(want)
}

func TestSetupCallOrder(t *testing.T) {
	s, _, drv := newScene(t)
	defer s.Release()

	want := []string{
		"CreateProgram",
		"AttachShader",
		"AttachShader",
		"LinkProgram",
		"CreateBuffers",
		"NamedBufferStorage",
		"CreateVertexArrays",
		"VertexArrayVertexBuffer",
		"VertexArrayAttribFormat",
		"VertexArrayAttribBinding",
	}
	assert.True(t, subsequence(drv.Names(), want), "calls: %v", drv.Names())
}

func TestSetupUploadsTriangle(t *testing.T) {
	s, _, drv := newScene(t)
	defer s.Release()

	assert.Equal(t, 28, s.vertices.Stride())
	assert.Len(t, drv.BufferContents(s.vertices.Buffer().Handle()), 3*28)

	vao := s.array.Handle()
	assert.Equal(t, []any{vao, vertexBinding, s.vertices.Buffer().Handle(), 0, int32(28)},
		drv.Find("VertexArrayVertexBuffer")[0].Args)

	formats := drv.Find("VertexArrayAttribFormat")
	require.Len(t, formats, 2)
	assert.Equal(t, []any{vao, positionAttrib, int32(3), dgl.Float, false, uint32(0)}, formats[0].Args)
	assert.Equal(t, []any{vao, colorAttrib, int32(4), dgl.Float, false, uint32(12)}, formats[1].Args)
}

func TestFrameCallOrder(t *testing.T) {
	s, _, drv := newScene(t)
	defer s.Release()

	drv.Reset()
	s.Frame(0.5)

	assert.True(t, subsequence(drv.Names(), []string{
		"UseProgram", "BindVertexArray", "Clear", "DrawArraysInstanced",
	}), "calls: %v", drv.Names())
	assert.Equal(t, []any{dgl.Triangles, int32(0), int32(3), int32(1)}, drv.Last().Args)

	uniform := drv.Find("ProgramUniform1f")
	require.Len(t, uniform, 1)
	assert.Equal(t, float32(0.5), uniform[0].Args[2])
}

func TestReleaseDeletesEverything(t *testing.T) {
	s, ctx, drv := newScene(t)
	s.Release()

	assert.Equal(t, 0, drv.Live())
	assert.Empty(t, drv.Violations())
	require.NoError(t, ctx.Close())
}

func TestShaderErrorReleasesObjects(t *testing.T) {
	drv := dgltest.New()
	drv.FailCompile = "fragColor"
	cfg := dgl.DefaultConfig()
	cfg.TrackLeaks = false
	ctx := dgl.NewContext(drv, cfg)

	_, err := New(ctx, core.ColorBlack)
	require.Error(t, err)
	var compileErr *dgl.CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, dgl.FragmentShader, compileErr.Stage)
	assert.Equal(t, 0, drv.Live())
}
