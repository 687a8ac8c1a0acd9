package dgl

import (
	"diamond-gl/math"
)

// DrawArrays draws count vertices starting at first, instances times.
func (c *Context) DrawArrays(mode Enum, first, count, instances int32) {
	c.driver().DrawArraysInstanced(mode, first, count, instances)
}

// DrawElements draws count indices of type typ read from the element
// buffer at byte offset.
func (c *Context) DrawElements(mode Enum, count int32, typ Enum, offset int, instances int32) {
	c.driver().DrawElementsInstanced(mode, count, typ, offset, instances)
}

// DrawElementsBaseVertex adds baseVertex to every index before fetching.
func (c *Context) DrawElementsBaseVertex(mode Enum, count int32, typ Enum, offset int, baseVertex int32) {
	c.driver().DrawElementsBaseVertex(mode, count, typ, offset, baseVertex)
}

// DrawRangeElements is DrawElements with a hint that every index lies in
// [start, end].
func (c *Context) DrawRangeElements(mode Enum, start, end uint32, count int32, typ Enum, offset int) {
	c.driver().DrawRangeElements(mode, start, end, count, typ, offset)
}

// DrawArraysIndirect reads the draw parameters from the draw indirect
// buffer at byte offset.
func (c *Context) DrawArraysIndirect(mode Enum, offset int) {
	c.driver().DrawArraysIndirect(mode, offset)
}

func (c *Context) DrawElementsIndirect(mode, typ Enum, offset int) {
	c.driver().DrawElementsIndirect(mode, typ, offset)
}

// DispatchCompute launches groups work groups of the current compute program.
func (c *Context) DispatchCompute(groups math.UVec3) {
	c.driver().DispatchCompute(groups.X, groups.Y, groups.Z)
}

func (c *Context) DispatchCompute1(x uint32) {
	c.DispatchCompute(math.NewUVec3(x, 1, 1))
}

func (c *Context) DispatchCompute2(groups math.UVec2) {
	c.DispatchCompute(groups.Extend(1))
}

// DispatchComputeIndirect reads the group counts from the dispatch
// indirect buffer at byte offset.
func (c *Context) DispatchComputeIndirect(offset int) {
	c.driver().DispatchComputeIndirect(offset)
}

func (c *Context) Clear(mask Bitfield) {
	c.driver().Clear(mask)
}

func (c *Context) MemoryBarrier(barriers Bitfield) {
	c.driver().MemoryBarrier(barriers)
}

// UseProgram makes p current. A nil p clears the current program.
func (c *Context) UseProgram(p *Program) {
	id := programHandle(c, p)
	c.driver().UseProgram(id)
	c.state.program = id
}

// BindVertexArray binds v. A nil v unbinds.
func (c *Context) BindVertexArray(v *VertexArray) {
	var id uint32
	if v != nil {
		id = v.handleIn(c)
	}
	c.driver().BindVertexArray(id)
	c.state.vertexArray = id
}

// BindPipeline binds p. It takes effect only while no program is current.
func (c *Context) BindPipeline(p *Pipeline) {
	var id uint32
	if p != nil {
		id = p.handleIn(c)
	}
	c.driver().BindProgramPipeline(id)
	c.state.pipeline = id
}
