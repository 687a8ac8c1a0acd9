package dgl

// Buffer owns a buffer object.
type Buffer struct {
	*owner
}

// CreateBuffer creates one buffer object.
func (c *Context) CreateBuffer() *Buffer {
	return c.CreateBuffers(1)[0]
}

// CreateBuffers creates n buffer objects with a single driver call.
func (c *Context) CreateBuffers(n int) []*Buffer {
	ids := c.driver().CreateBuffers(n)
	bufs := make([]*Buffer, len(ids))
	for i, id := range ids {
		bufs[i] = &Buffer{owner: c.own(KindBuffer, id)}
	}
	return bufs
}

// Ref returns a new owner of the same buffer.
func (b *Buffer) Ref() *Buffer {
	return &Buffer{owner: b.share()}
}

// Data replaces the buffer's data store with a copy of data.
func (b *Buffer) Data(data []byte, usage Enum) {
	b.context().driver().NamedBufferData(b.Handle(), len(data), data, usage)
}

// Allocate replaces the buffer's data store with size uninitialized bytes.
func (b *Buffer) Allocate(size int, usage Enum) {
	b.context().driver().NamedBufferData(b.Handle(), size, nil, usage)
}

// SubData overwrites part of the data store starting at offset.
func (b *Buffer) SubData(offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	b.context().driver().NamedBufferSubData(b.Handle(), offset, data)
}

// Storage creates an immutable data store of size bytes. A non-nil data is
// copied into the start of the store; it must not be longer than size.
func (b *Buffer) Storage(size int, data []byte, flags Bitfield) {
	if len(data) > size {
		panic("dgl: buffer storage data exceeds size")
	}
	if data != nil && len(data) < size {
		padded := make([]byte, size)
		copy(padded, data)
		data = padded
	}
	b.context().driver().NamedBufferStorage(b.Handle(), size, data, flags)
}

// CopyTo copies size bytes from this buffer at readOffset into dst at writeOffset.
func (b *Buffer) CopyTo(dst *Buffer, readOffset, writeOffset, size int) {
	c := b.context()
	c.driver().CopyNamedBufferSubData(b.Handle(), dst.handleIn(c), readOffset, writeOffset, size)
}

// Read fills out with the buffer contents starting at offset.
func (b *Buffer) Read(offset int, out []byte) {
	if len(out) == 0 {
		return
	}
	b.context().driver().GetNamedBufferSubData(b.Handle(), offset, out)
}

func bufferHandle(c *Context, b *Buffer) uint32 {
	if b == nil {
		return 0
	}
	return b.handleIn(c)
}
