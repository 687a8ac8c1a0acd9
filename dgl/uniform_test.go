package dgl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diamond-gl/dgl"
	"diamond-gl/math"
)

func linkedProgram(t *testing.T, ctx *dgl.Context) *dgl.Program {
	t.Helper()
	prog := ctx.CreateShaderProgram(dgl.VertexShader, "void main() {}")
	require.NoError(t, prog.Err())
	return prog
}

func TestSetUniformPicksEntryPointByType(t *testing.T) {
	ctx, drv := newContext(t)
	prog := linkedProgram(t, ctx)
	defer prog.Release()
	u := prog.Uniform("value")

	tests := []struct {
		name string
		set  func()
		call string
		arg  any
	}{
		{"int32", func() { dgl.SetUniform(u, int32(-3)) }, "ProgramUniform1i", int32(-3)},
		{"uint32", func() { dgl.SetUniform(u, uint32(3)) }, "ProgramUniform1ui", uint32(3)},
		{"float32", func() { dgl.SetUniform(u, float32(0.5)) }, "ProgramUniform1f", float32(0.5)},
		{"float64", func() { dgl.SetUniform(u, 0.25) }, "ProgramUniform1d", 0.25},
		{"int64", func() { dgl.SetUniform(u, int64(-1<<40)) }, "ProgramUniform1i64", int64(-1 << 40)},
		{"uint64", func() { dgl.SetUniform(u, uint64(1<<40)) }, "ProgramUniform1ui64", uint64(1 << 40)},
		{"[]int32", func() { dgl.SetUniforms(u, []int32{1, 2}) }, "ProgramUniform1iv", []int32{1, 2}},
		{"[]uint32", func() { dgl.SetUniforms(u, []uint32{1, 2}) }, "ProgramUniform1uiv", []uint32{1, 2}},
		{"[]float32", func() { dgl.SetUniforms(u, []float32{1, 2}) }, "ProgramUniform1fv", []float32{1, 2}},
		{"[]float64", func() { dgl.SetUniforms(u, []float64{1, 2}) }, "ProgramUniform1dv", []float64{1, 2}},
		{"[]int64", func() { dgl.SetUniforms(u, []int64{1, 2}) }, "ProgramUniform1i64v", []int64{1, 2}},
		{"[]uint64", func() { dgl.SetUniforms(u, []uint64{1, 2}) }, "ProgramUniform1ui64v", []uint64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drv.Reset()
			tt.set()
			require.Len(t, drv.Calls, 1)
			assert.Equal(t, tt.call, drv.Calls[0].Name)
			assert.Equal(t, []any{prog.Handle(), u.Location(), tt.arg}, drv.Calls[0].Args)
		})
	}
}

func TestTypedUniform(t *testing.T) {
	ctx, drv := newContext(t)
	prog := linkedProgram(t, ctx)
	defer prog.Release()

	scale := dgl.UniformOf[float32](prog, "scale")
	fixed := dgl.UniformAt[uint32](prog, 9)
	missing := dgl.UniformOf[int32](prog, "unused_weight")

	scale.Set(2)
	fixed.SetSlice([]uint32{4, 5})
	fixed.SetSlice(nil)
	missing.Set(1)

	assert.True(t, scale.Valid())
	assert.False(t, missing.Valid())
	assert.Equal(t, []string{"ProgramUniform1f", "ProgramUniform1uiv", "ProgramUniform1i"},
		drv.Names()[len(drv.Names())-3:])
	assert.Equal(t, int32(9), drv.Find("ProgramUniform1uiv")[0].Args[1])
	assert.Equal(t, int32(-1), drv.Last().Args[1])
}

func TestVectorAndMatrixUniforms(t *testing.T) {
	ctx, drv := newContext(t)
	prog := linkedProgram(t, ctx)
	defer prog.Release()

	u := prog.Uniform("transform")
	u.SetVec3(math.NewVec3(1, 2, 3))
	assert.Equal(t, []any{prog.Handle(), int32(0), int32(1), []float32{1, 2, 3}}, drv.Last().Args)

	m := math.Mat4Translation(math.NewVec3(4, 5, 6))
	u.SetMat4(m)
	args := drv.Last().Args
	assert.Equal(t, "ProgramUniformMatrix4fv", drv.Last().Name)
	assert.Equal(t, false, args[3])
	assert.Equal(t, m.Slice(), args[4])

	u.SetInt(7)
	assert.Equal(t, "ProgramUniform1i", drv.Last().Name)
	u.SetFloat(0.5)
	assert.Equal(t, "ProgramUniform1f", drv.Last().Name)
}
