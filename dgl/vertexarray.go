package dgl

// VertexArray owns a vertex array object.
type VertexArray struct {
	*owner
}

func (c *Context) CreateVertexArray() *VertexArray {
	return c.CreateVertexArrays(1)[0]
}

// CreateVertexArrays creates n vertex arrays with a single driver call.
func (c *Context) CreateVertexArrays(n int) []*VertexArray {
	ids := c.driver().CreateVertexArrays(n)
	vaos := make([]*VertexArray, len(ids))
	for i, id := range ids {
		vaos[i] = &VertexArray{owner: c.own(KindVertexArray, id)}
	}
	return vaos
}

// Ref returns a new owner of the same vertex array.
func (v *VertexArray) Ref() *VertexArray {
	return &VertexArray{owner: v.share()}
}

// Binding returns vertex buffer binding point index.
func (v *VertexArray) Binding(index uint32) VertexBinding {
	return VertexBinding{vao: v, index: index}
}

// Attribute enables attribute index and returns it.
func (v *VertexArray) Attribute(index uint32) VertexAttribute {
	a := VertexAttribute{vao: v, index: index}
	a.Enable()
	return a
}

// ElementBuffer sets the index buffer. A nil buf clears it.
func (v *VertexArray) ElementBuffer(buf *Buffer) {
	c := v.context()
	c.driver().VertexArrayElementBuffer(v.Handle(), bufferHandle(c, buf))
}

// VertexBuffers binds views to consecutive binding points starting at first,
// each at offset zero with the view's stride, in one driver call.
func (v *VertexArray) VertexBuffers(first uint32, views ...BufferView) {
	c := v.context()
	ids := make([]uint32, len(views))
	offsets := make([]int, len(views))
	strides := make([]int32, len(views))
	for i, view := range views {
		ids[i] = bufferHandle(c, view.Buffer())
		strides[i] = int32(view.Stride())
	}
	c.driver().VertexArrayVertexBuffers(v.Handle(), first, ids, offsets, strides)
}

// VertexBinding is a vertex buffer binding point of a vertex array.
type VertexBinding struct {
	vao   *VertexArray
	index uint32
}

func (b VertexBinding) Index() uint32 { return b.index }

// VertexBuffer sources vertices from buf, starting at offset bytes with
// stride bytes between consecutive vertices.
func (b VertexBinding) VertexBuffer(buf *Buffer, offset, stride int) {
	c := b.vao.context()
	c.driver().VertexArrayVertexBuffer(b.vao.Handle(), b.index, bufferHandle(c, buf), offset, int32(stride))
}

// Attach sources vertices from view using its element stride.
func (b VertexBinding) Attach(view BufferView, offset int) {
	b.VertexBuffer(view.Buffer(), offset, view.Stride())
}

// Divisor sets the instancing divisor. Zero advances per vertex.
func (b VertexBinding) Divisor(divisor uint32) {
	b.vao.context().driver().VertexArrayBindingDivisor(b.vao.Handle(), b.index, divisor)
}

// VertexAttribute is a generic vertex attribute of a vertex array.
type VertexAttribute struct {
	vao   *VertexArray
	index uint32
}

func (a VertexAttribute) Index() uint32 { return a.index }

// Format declares size components of typ, read as floats, at relOffset bytes
// into the vertex.
func (a VertexAttribute) Format(size int32, typ Enum, normalized bool, relOffset uint32) {
	a.vao.context().driver().VertexArrayAttribFormat(a.vao.Handle(), a.index, size, typ, normalized, relOffset)
}

// FormatInt declares integer components that reach the shader unconverted.
func (a VertexAttribute) FormatInt(size int32, typ Enum, relOffset uint32) {
	a.vao.context().driver().VertexArrayAttribIFormat(a.vao.Handle(), a.index, size, typ, relOffset)
}

// FormatLong declares 64-bit float components.
func (a VertexAttribute) FormatLong(size int32, typ Enum, relOffset uint32) {
	a.vao.context().driver().VertexArrayAttribLFormat(a.vao.Handle(), a.index, size, typ, relOffset)
}

// Binding sources the attribute from binding b.
func (a VertexAttribute) Binding(b VertexBinding) {
	a.BindingIndex(b.index)
}

func (a VertexAttribute) BindingIndex(binding uint32) {
	a.vao.context().driver().VertexArrayAttribBinding(a.vao.Handle(), a.index, binding)
}

func (a VertexAttribute) Enable() {
	a.vao.context().driver().EnableVertexArrayAttrib(a.vao.Handle(), a.index)
}

func (a VertexAttribute) Disable() {
	a.vao.context().driver().DisableVertexArrayAttrib(a.vao.Handle(), a.index)
}
