package dgltest

import "diamond-gl/dgl"

func (d *Driver) DrawArraysInstanced(mode dgl.Enum, first, count, instances int32) {
	d.record("DrawArraysInstanced", mode, first, count, instances)
}

func (d *Driver) DrawElementsInstanced(mode dgl.Enum, count int32, typ dgl.Enum, offset int, instances int32) {
	d.record("DrawElementsInstanced", mode, count, typ, offset, instances)
}

func (d *Driver) DrawElementsBaseVertex(mode dgl.Enum, count int32, typ dgl.Enum, offset int, baseVertex int32) {
	d.record("DrawElementsBaseVertex", mode, count, typ, offset, baseVertex)
}

func (d *Driver) DrawRangeElements(mode dgl.Enum, start, end uint32, count int32, typ dgl.Enum, offset int) {
	d.record("DrawRangeElements", mode, start, end, count, typ, offset)
}

func (d *Driver) DrawArraysIndirect(mode dgl.Enum, offset int) {
	d.record("DrawArraysIndirect", mode, offset)
}

func (d *Driver) DrawElementsIndirect(mode, typ dgl.Enum, offset int) {
	d.record("DrawElementsIndirect", mode, typ, offset)
}

func (d *Driver) DispatchCompute(x, y, z uint32) {
	d.record("DispatchCompute", x, y, z)
}

func (d *Driver) DispatchComputeIndirect(offset int) {
	d.record("DispatchComputeIndirect", offset)
}

func (d *Driver) Clear(mask dgl.Bitfield) {
	d.record("Clear", mask)
}

func (d *Driver) MemoryBarrier(barriers dgl.Bitfield) {
	d.record("MemoryBarrier", barriers)
}

// State.

func (d *Driver) Enable(capability dgl.Enum)  { d.record("Enable", capability) }
func (d *Driver) Disable(capability dgl.Enum) { d.record("Disable", capability) }

func (d *Driver) BlendFunc(src, dst dgl.Enum) {
	d.record("BlendFunc", src, dst)
}

func (d *Driver) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha dgl.Enum) {
	d.record("BlendFuncSeparate", srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (d *Driver) BlendEquation(mode dgl.Enum) {
	d.record("BlendEquation", mode)
}

func (d *Driver) BlendColor(r, g, b, a float32) {
	d.record("BlendColor", r, g, b, a)
}

func (d *Driver) BlendFunci(drawBuffer uint32, src, dst dgl.Enum) {
	d.record("BlendFunci", drawBuffer, src, dst)
}

func (d *Driver) BlendFuncSeparatei(drawBuffer uint32, srcRGB, dstRGB, srcAlpha, dstAlpha dgl.Enum) {
	d.record("BlendFuncSeparatei", drawBuffer, srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (d *Driver) BlendEquationi(drawBuffer uint32, mode dgl.Enum) {
	d.record("BlendEquationi", drawBuffer, mode)
}

func (d *Driver) LogicOp(op dgl.Enum) {
	d.record("LogicOp", op)
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.record("ClearColor", r, g, b, a)
}

func (d *Driver) ClearDepth(depth float64) {
	d.record("ClearDepth", depth)
}

func (d *Driver) Viewport(x, y, width, height int32) {
	d.record("Viewport", x, y, width, height)
}

// GetError pops the oldest queued error. It is not recorded.
func (d *Driver) GetError() dgl.Enum {
	if len(d.errors) == 0 {
		return dgl.NoError
	}
	code := d.errors[0]
	d.errors = d.errors[1:]
	return code
}

func (d *Driver) GetString(name dgl.Enum) string {
	d.record("GetString", name)
	return d.Strings[name]
}
