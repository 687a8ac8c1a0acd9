package dgl

import (
	"fmt"
	"runtime"
	"sync"
)

// Kind identifies the type of driver object behind a handle.
type Kind uint8

const (
	KindBuffer Kind = iota
	KindTexture
	KindSampler
	KindVertexArray
	KindShader
	KindProgram
	KindPipeline

	numKinds
)

var kindNames = [numKinds]string{
	KindBuffer:      "buffer",
	KindTexture:     "texture",
	KindSampler:     "sampler",
	KindVertexArray: "vertex array",
	KindShader:      "shader",
	KindProgram:     "program",
	KindPipeline:    "program pipeline",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// object is the record shared by every owner of one driver name.
type object struct {
	ctx  *Context
	kind Kind
	id   uint32
	refs int
}

// owner is one reference to an object. Every resource wrapper embeds one.
type owner struct {
	obj      *object
	released bool
}

// Handle returns the driver name. It panics if this owner was released.
func (o *owner) Handle() uint32 {
	return o.object().id
}

// Kind reports the object type.
func (o *owner) Kind() Kind {
	return o.obj.kind
}

// Refs reports how many owners currently share the handle.
func (o *owner) Refs() int {
	return o.object().refs
}

// Released reports whether Release was called on this owner.
func (o *owner) Released() bool {
	return o.released
}

// Release drops this owner. The driver object is deleted when its last
// owner is released. Releasing an owner twice has no effect.
func (o *owner) Release() {
	if o == nil || o.released {
		return
	}
	o.released = true
	runtime.SetFinalizer(o, nil)
	o.obj.ctx.unref(o.obj)
}

func (o *owner) object() *object {
	if o.released {
		panic(fmt.Errorf("%w: %s %d", ErrReleased, o.obj.kind, o.obj.id))
	}
	return o.obj
}

// share returns a new owner of the same object.
func (o *owner) share() *owner {
	obj := o.object()
	obj.refs++
	return obj.ctx.track(obj)
}

// handleIn returns the handle after checking that it was created by c.
func (o *owner) handleIn(c *Context) uint32 {
	obj := o.object()
	if obj.ctx != c {
		panic(fmt.Errorf("%w: %s %d", ErrForeignObject, obj.kind, obj.id))
	}
	return obj.id
}

// context returns the context that created the object.
func (o *owner) context() *Context {
	return o.object().ctx
}

// trash collects objects whose owners were garbage collected without a
// Release. Finalizers run on their own goroutine, so the driver is only
// called when the context drains the queue.
type trash struct {
	mu   sync.Mutex
	objs []*object
}

func (t *trash) add(obj *object) {
	t.mu.Lock()
	t.objs = append(t.objs, obj)
	t.mu.Unlock()
}

func (t *trash) drain() []*object {
	t.mu.Lock()
	objs := t.objs
	t.objs = nil
	t.mu.Unlock()
	return objs
}

func finalizeOwner(o *owner) {
	o.obj.ctx.garbage.add(o.obj)
}
