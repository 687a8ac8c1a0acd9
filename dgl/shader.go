package dgl

import (
	"fmt"

	"go.uber.org/zap"
)

// Shader owns a shader object of one stage.
type Shader struct {
	*owner
	stage Enum
}

// CreateShader creates an empty shader object for stage.
func (c *Context) CreateShader(stage Enum) *Shader {
	id := c.driver().CreateShader(stage)
	return &Shader{owner: c.own(KindShader, id), stage: stage}
}

// CompileShader creates a shader from source and compiles it. On failure
// the shader is released and the error carries the info log.
func (c *Context) CompileShader(stage Enum, sources ...string) (*Shader, error) {
	s := c.CreateShader(stage)
	s.Source(sources...)
	s.Compile()
	if err := s.Err(); err != nil {
		s.Release()
		return nil, err
	}
	return s, nil
}

func (s *Shader) Stage() Enum { return s.stage }

// Ref returns a new owner of the same shader.
func (s *Shader) Ref() *Shader {
	return &Shader{owner: s.share(), stage: s.stage}
}

// Source replaces the shader source with the concatenation of parts.
func (s *Shader) Source(parts ...string) {
	s.context().driver().ShaderSource(s.Handle(), parts)
}

// Binary loads a precompiled binary such as SPIR-V.
func (s *Shader) Binary(format Enum, binary []byte) {
	s.context().driver().ShaderBinary(s.Handle(), format, binary)
}

// Specialize selects the entry point of a SPIR-V binary and sets its
// specialization constants. An empty entry selects "main".
func (s *Shader) Specialize(entry string, indices, values []uint32) {
	if len(indices) != len(values) {
		panic(fmt.Sprintf("dgl: %d specialization indices for %d values", len(indices), len(values)))
	}
	if entry == "" {
		entry = "main"
	}
	s.context().driver().SpecializeShader(s.Handle(), entry, indices, values)
}

func (s *Shader) Compile() {
	s.context().driver().CompileShader(s.Handle())
}

// Param queries a shader parameter such as CompileStatus.
func (s *Shader) Param(pname Enum) int32 {
	return s.context().driver().GetShaderiv(s.Handle(), pname)
}

func (s *Shader) CompileStatus() bool {
	return s.Param(CompileStatus) != int32(False)
}

func (s *Shader) InfoLog() string {
	return s.context().driver().GetShaderInfoLog(s.Handle())
}

// Err returns a *CompileError if the last compile failed.
func (s *Shader) Err() error {
	if s.CompileStatus() {
		return nil
	}
	err := &CompileError{Kind: KindShader, Stage: s.stage, Handle: s.Handle(), Log: s.InfoLog()}
	s.context().log.Error("shader compile failed",
		zap.Stringer("stage", s.stage),
		zap.Uint32("handle", err.Handle),
		zap.String("log", err.Log),
	)
	return err
}
