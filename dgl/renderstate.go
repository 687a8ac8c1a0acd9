package dgl

import (
	"diamond-gl/math"
)

func (c *Context) Enable(capability Enum) {
	c.driver().Enable(capability)
	c.state.enabled[capability] = true
}

func (c *Context) Disable(capability Enum) {
	c.driver().Disable(capability)
	delete(c.state.enabled, capability)
}

// Toggle enables or disables capability.
func (c *Context) Toggle(capability Enum, on bool) {
	if on {
		c.Enable(capability)
	} else {
		c.Disable(capability)
	}
}

func (c *Context) BlendFunc(src, dst Enum) {
	c.driver().BlendFunc(src, dst)
}

func (c *Context) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum) {
	c.driver().BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (c *Context) BlendEquation(mode Enum) {
	c.driver().BlendEquation(mode)
}

// BlendColor sets the constant used by the ConstantColor factors.
func (c *Context) BlendColor(color math.Vec4) {
	c.driver().BlendColor(color.X, color.Y, color.Z, color.W)
}

// BlendFuncAt sets the blend factors of one draw buffer.
func (c *Context) BlendFuncAt(drawBuffer uint32, src, dst Enum) {
	c.driver().BlendFunci(drawBuffer, src, dst)
}

func (c *Context) BlendFuncSeparateAt(drawBuffer uint32, srcRGB, dstRGB, srcAlpha, dstAlpha Enum) {
	c.driver().BlendFuncSeparatei(drawBuffer, srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (c *Context) BlendEquationAt(drawBuffer uint32, mode Enum) {
	c.driver().BlendEquationi(drawBuffer, mode)
}

// LogicOp sets the operation used while ColorLogicOp is enabled.
func (c *Context) LogicOp(op Enum) {
	c.driver().LogicOp(op)
}

func (c *Context) ClearColor(color math.Vec4) {
	c.driver().ClearColor(color.X, color.Y, color.Z, color.W)
}

func (c *Context) ClearDepth(depth float64) {
	c.driver().ClearDepth(depth)
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.driver().Viewport(x, y, width, height)
}
