package opengl

import (
	"unsafe"

	gl "github.com/go-gl/gl/all-core/gl"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnableDebugOutput routes driver debug messages to the logger. The
// context should have been created with the debug flag; without it most
// drivers report nothing.
func (d *Driver) EnableDebugOutput() {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(d.debugMessage, nil)
}

func (d *Driver) debugMessage(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
	level := zapcore.DebugLevel
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		level = zapcore.ErrorLevel
	case gl.DEBUG_SEVERITY_MEDIUM:
		level = zapcore.WarnLevel
	case gl.DEBUG_SEVERITY_LOW:
		level = zapcore.InfoLevel
	}
	if ce := d.log.Check(level, "gl debug message"); ce != nil {
		ce.Write(
			zap.Uint32("id", id),
			zap.Uint32("source", source),
			zap.Uint32("type", gltype),
			zap.String("message", message),
		)
	}
}
