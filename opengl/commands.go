package opengl

import (
	gl "github.com/go-gl/gl/all-core/gl"

	"diamond-gl/dgl"
)

func (d *Driver) DrawArraysInstanced(mode dgl.Enum, first, count, instances int32) {
	gl.DrawArraysInstanced(uint32(mode), first, count, instances)
}

func (d *Driver) DrawElementsInstanced(mode dgl.Enum, count int32, typ dgl.Enum, offset int, instances int32) {
	gl.DrawElementsInstanced(uint32(mode), count, uint32(typ), gl.PtrOffset(offset), instances)
}

func (d *Driver) DrawElementsBaseVertex(mode dgl.Enum, count int32, typ dgl.Enum, offset int, baseVertex int32) {
	gl.DrawElementsBaseVertex(uint32(mode), count, uint32(typ), gl.PtrOffset(offset), baseVertex)
}

func (d *Driver) DrawRangeElements(mode dgl.Enum, start, end uint32, count int32, typ dgl.Enum, offset int) {
	gl.DrawRangeElements(uint32(mode), start, end, count, uint32(typ), gl.PtrOffset(offset))
}

func (d *Driver) DrawArraysIndirect(mode dgl.Enum, offset int) {
	gl.DrawArraysIndirect(uint32(mode), gl.PtrOffset(offset))
}

func (d *Driver) DrawElementsIndirect(mode, typ dgl.Enum, offset int) {
	gl.DrawElementsIndirect(uint32(mode), uint32(typ), gl.PtrOffset(offset))
}

func (d *Driver) DispatchCompute(x, y, z uint32)      { gl.DispatchCompute(x, y, z) }
func (d *Driver) DispatchComputeIndirect(offset int)  { gl.DispatchComputeIndirect(offset) }
func (d *Driver) Clear(mask dgl.Bitfield)             { gl.Clear(uint32(mask)) }
func (d *Driver) MemoryBarrier(barriers dgl.Bitfield) { gl.MemoryBarrier(uint32(barriers)) }

// State.

func (d *Driver) Enable(capability dgl.Enum)  { gl.Enable(uint32(capability)) }
func (d *Driver) Disable(capability dgl.Enum) { gl.Disable(uint32(capability)) }

func (d *Driver) BlendFunc(src, dst dgl.Enum) {
	gl.BlendFunc(uint32(src), uint32(dst))
}

func (d *Driver) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha dgl.Enum) {
	gl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (d *Driver) BlendEquation(mode dgl.Enum)   { gl.BlendEquation(uint32(mode)) }
func (d *Driver) BlendColor(r, g, b, a float32) { gl.BlendColor(r, g, b, a) }

func (d *Driver) BlendFunci(drawBuffer uint32, src, dst dgl.Enum) {
	gl.BlendFunci(drawBuffer, uint32(src), uint32(dst))
}

func (d *Driver) BlendFuncSeparatei(drawBuffer uint32, srcRGB, dstRGB, srcAlpha, dstAlpha dgl.Enum) {
	gl.BlendFuncSeparatei(drawBuffer, uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (d *Driver) BlendEquationi(drawBuffer uint32, mode dgl.Enum) {
	gl.BlendEquationi(drawBuffer, uint32(mode))
}

func (d *Driver) LogicOp(op dgl.Enum)                { gl.LogicOp(uint32(op)) }
func (d *Driver) ClearColor(r, g, b, a float32)      { gl.ClearColor(r, g, b, a) }
func (d *Driver) ClearDepth(depth float64)           { gl.ClearDepth(depth) }
func (d *Driver) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }
func (d *Driver) GetError() dgl.Enum                 { return dgl.Enum(gl.GetError()) }

func (d *Driver) GetString(name dgl.Enum) string {
	s := gl.GetString(uint32(name))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}
