package dgl

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrReleased is the panic value for use of an owner after Release.
	ErrReleased = errors.New("dgl: object used after release")
	// ErrForeignObject is the panic value for passing an object to a context
	// that did not create it.
	ErrForeignObject = errors.New("dgl: object belongs to another context")
	// ErrContextClosed is the panic value for creating objects on a closed context.
	ErrContextClosed = errors.New("dgl: context closed")
	// ErrUnsupported reports a driver that lacks a required GL version or extension.
	ErrUnsupported = errors.New("dgl: unsupported by driver")
	// ErrLeaked is returned by Context.Close when owners were never released.
	ErrLeaked = errors.New("dgl: objects leaked")
)

// CompileError reports a failed shader compile or program link together
// with the driver's info log.
type CompileError struct {
	Kind   Kind
	Stage  Enum // zero for programs
	Handle uint32
	Log    string
}

func (e *CompileError) Error() string {
	var b strings.Builder
	if e.Kind == KindProgram {
		fmt.Fprintf(&b, "link program %d failed", e.Handle)
	} else {
		fmt.Fprintf(&b, "compile %s %d failed", e.Stage, e.Handle)
	}
	if log := strings.TrimSpace(e.Log); log != "" {
		b.WriteString(": ")
		b.WriteString(log)
	}
	return b.String()
}

// GLError is an error code reported by the driver.
type GLError struct {
	Code Enum
}

func (e GLError) Error() string {
	return "gl error " + e.Code.String()
}
