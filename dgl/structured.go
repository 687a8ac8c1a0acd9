package dgl

import "unsafe"

// BufferView is a buffer read as an array of fixed-size elements.
type BufferView interface {
	Buffer() *Buffer
	Stride() int
}

// StructuredBuffer views a buffer as an array of T. It holds nothing but the
// buffer, so copies share the same owner. T must not contain pointers.
type StructuredBuffer[T any] struct {
	buf *Buffer
}

// Structured views b as an array of T.
func Structured[T any](b *Buffer) StructuredBuffer[T] {
	return StructuredBuffer[T]{buf: b}
}

// CreateStructuredBuffer creates a buffer viewed as an array of T.
func CreateStructuredBuffer[T any](c *Context) StructuredBuffer[T] {
	return Structured[T](c.CreateBuffer())
}

func (s StructuredBuffer[T]) Buffer() *Buffer { return s.buf }

// Stride is the size of one element in bytes.
func (s StructuredBuffer[T]) Stride() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Data replaces the data store with values.
func (s StructuredBuffer[T]) Data(values []T, usage Enum) {
	s.buf.Data(bytesOf(values), usage)
}

// Allocate replaces the data store with room for count elements.
func (s StructuredBuffer[T]) Allocate(count int, usage Enum) {
	s.buf.Allocate(count*s.Stride(), usage)
}

// Storage creates an immutable store for count elements, initialized from
// init when it is not nil.
func (s StructuredBuffer[T]) Storage(count int, init []T, flags Bitfield) {
	s.buf.Storage(count*s.Stride(), bytesOf(init), flags)
}

// SubData overwrites elements starting at index.
func (s StructuredBuffer[T]) SubData(index int, values []T) {
	s.buf.SubData(index*s.Stride(), bytesOf(values))
}

// Read fills out with elements starting at index.
func (s StructuredBuffer[T]) Read(index int, out []T) {
	s.buf.Read(index*s.Stride(), bytesOf(out))
}

// Release drops the view's owner of the buffer.
func (s StructuredBuffer[T]) Release() { s.buf.Release() }

func bytesOf[T any](values []T) []byte {
	if values == nil {
		return nil
	}
	var zero T
	n := len(values) * int(unsafe.Sizeof(zero))
	if n == 0 {
		return []byte{}
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(values))), n)
}
