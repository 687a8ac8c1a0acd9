package dgl

import (
	"fmt"

	"diamond-gl/math"
)

// Scalar is the set of element types with a ProgramUniform entry point.
type Scalar interface {
	int32 | uint32 | float32 | float64 | int64 | uint64
}

// Uniform is a uniform location of a program. Setting a uniform at
// location -1 is accepted by the driver and has no effect.
type Uniform struct {
	prog *Program
	loc  int32
}

func (u Uniform) Location() int32 { return u.loc }

// Valid reports whether the uniform exists in the program.
func (u Uniform) Valid() bool { return u.loc >= 0 }

func (u Uniform) target() (UniformDriver, uint32) {
	return u.prog.context().driver(), u.prog.Handle()
}

// SetUniform sets a scalar uniform. The entry point is chosen by T.
func SetUniform[T Scalar](u Uniform, v T) {
	drv, prog := u.target()
	switch v := any(v).(type) {
	case int32:
		drv.ProgramUniform1i(prog, u.loc, v)
	case uint32:
		drv.ProgramUniform1ui(prog, u.loc, v)
	case float32:
		drv.ProgramUniform1f(prog, u.loc, v)
	case float64:
		drv.ProgramUniform1d(prog, u.loc, v)
	case int64:
		drv.ProgramUniform1i64(prog, u.loc, v)
	case uint64:
		drv.ProgramUniform1ui64(prog, u.loc, v)
	default:
		panic(fmt.Sprintf("dgl: no uniform entry point for %T", v))
	}
}

// SetUniforms sets a scalar array uniform starting at u.
func SetUniforms[T Scalar](u Uniform, values []T) {
	if len(values) == 0 {
		return
	}
	drv, prog := u.target()
	switch v := any(values).(type) {
	case []int32:
		drv.ProgramUniform1iv(prog, u.loc, v)
	case []uint32:
		drv.ProgramUniform1uiv(prog, u.loc, v)
	case []float32:
		drv.ProgramUniform1fv(prog, u.loc, v)
	case []float64:
		drv.ProgramUniform1dv(prog, u.loc, v)
	case []int64:
		drv.ProgramUniform1i64v(prog, u.loc, v)
	case []uint64:
		drv.ProgramUniform1ui64v(prog, u.loc, v)
	default:
		panic(fmt.Sprintf("dgl: no uniform entry point for %T", v))
	}
}

func (u Uniform) SetInt(v int32)     { SetUniform(u, v) }
func (u Uniform) SetFloat(v float32) { SetUniform(u, v) }

func (u Uniform) SetVec2(v math.Vec2) {
	drv, prog := u.target()
	drv.ProgramUniform2fv(prog, u.loc, 1, v.Slice())
}

func (u Uniform) SetVec3(v math.Vec3) {
	drv, prog := u.target()
	drv.ProgramUniform3fv(prog, u.loc, 1, v.Slice())
}

func (u Uniform) SetVec4(v math.Vec4) {
	drv, prog := u.target()
	drv.ProgramUniform4fv(prog, u.loc, 1, v.Slice())
}

// SetMat4 uploads m in its column-major layout.
func (u Uniform) SetMat4(m math.Mat4) {
	drv, prog := u.target()
	drv.ProgramUniformMatrix4fv(prog, u.loc, 1, false, m.Slice())
}

// TypedUniform is a uniform whose element type is fixed at compile time.
type TypedUniform[T Scalar] struct {
	Uniform
}

// UniformOf looks up a uniform of element type T by name.
func UniformOf[T Scalar](p *Program, name string) TypedUniform[T] {
	return TypedUniform[T]{Uniform: p.Uniform(name)}
}

// UniformAt wraps a known location as a uniform of element type T.
func UniformAt[T Scalar](p *Program, location int32) TypedUniform[T] {
	return TypedUniform[T]{Uniform: p.UniformAt(location)}
}

func (u TypedUniform[T]) Set(v T)             { SetUniform(u.Uniform, v) }
func (u TypedUniform[T]) SetSlice(values []T) { SetUniforms(u.Uniform, values) }
