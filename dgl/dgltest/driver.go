// Package dgltest provides a recording dgl.Driver for tests that run
// without a GPU.
package dgltest

import (
	"fmt"
	"strings"

	"diamond-gl/dgl"
)

var _ dgl.Driver = (*Driver)(nil)

// Call is one recorded driver call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

type texture struct {
	target dgl.Enum
	format dgl.Enum
	levels [][3]int32
	params map[dgl.Enum][]float64
}

type shader struct {
	stage    dgl.Enum
	source   string
	compiled bool
}

type program struct {
	shaders  map[uint32]bool
	linked   bool
	uniforms map[string]int32
}

// Driver records every call and simulates enough object state for the
// binding layer's queries: buffer memory, texture levels and parameters,
// compile and link status, uniform locations and the error queue.
type Driver struct {
	Calls []Call

	// FailCompile makes compilation fail for shaders whose source contains it.
	FailCompile string
	// FailLink makes every link fail.
	FailLink bool
	// InfoLog is reported for failed compiles and links.
	InfoLog string
	// Strings answers GetString.
	Strings map[dgl.Enum]string

	next       uint32
	live       map[uint32]dgl.Kind
	created    map[dgl.Kind]int
	deleted    map[dgl.Kind]int
	violations []string

	buffers  map[uint32][]byte
	textures map[uint32]*texture
	samplers map[uint32]map[dgl.Enum][]float64
	shaders  map[uint32]*shader
	programs map[uint32]*program
	errors   []dgl.Enum
}

// New returns a driver whose handles start at 1.
func New() *Driver {
	return &Driver{
		InfoLog: "0:1(1): error: syntax error",
		Strings: map[dgl.Enum]string{
			dgl.Vendor:   "dgltest",
			dgl.Renderer: "recording driver",
			dgl.Version:  "4.6.0 dgltest",
		},
		live:     make(map[uint32]dgl.Kind),
		created:  make(map[dgl.Kind]int),
		deleted:  make(map[dgl.Kind]int),
		buffers:  make(map[uint32][]byte),
		textures: make(map[uint32]*texture),
		samplers: make(map[uint32]map[dgl.Enum][]float64),
		shaders:  make(map[uint32]*shader),
		programs: make(map[uint32]*program),
	}
}

// Names returns the names of the recorded calls in order.
func (d *Driver) Names() []string {
	names := make([]string, len(d.Calls))
	for i, c := range d.Calls {
		names[i] = c.Name
	}
	return names
}

// Find returns the recorded calls named name.
func (d *Driver) Find(name string) []Call {
	var calls []Call
	for _, c := range d.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}

// Last returns the most recent call. It panics if nothing was recorded.
func (d *Driver) Last() Call {
	return d.Calls[len(d.Calls)-1]
}

// Reset forgets the recorded calls but keeps object state.
func (d *Driver) Reset() {
	d.Calls = nil
}

// Created counts objects of kind created so far.
func (d *Driver) Created(kind dgl.Kind) int { return d.created[kind] }

// Deleted counts objects of kind deleted so far.
func (d *Driver) Deleted(kind dgl.Kind) int { return d.deleted[kind] }

// Live counts objects not yet deleted.
func (d *Driver) Live() int { return len(d.live) }

// Violations lists deletes of unknown or already deleted handles.
func (d *Driver) Violations() []string { return d.violations }

// BufferContents returns the simulated data store of buf.
func (d *Driver) BufferContents(buf uint32) []byte { return d.buffers[buf] }

// Source returns the source last given to shader.
func (d *Driver) Source(shader uint32) string {
	if s := d.shaders[shader]; s != nil {
		return s.source
	}
	return ""
}

// Attached reports whether shader is attached to prog.
func (d *Driver) Attached(prog, shader uint32) bool {
	p := d.programs[prog]
	return p != nil && p.shaders[shader]
}

// PushError queues an error code for GetError.
func (d *Driver) PushError(code dgl.Enum) {
	d.errors = append(d.errors, code)
}

func (d *Driver) record(name string, args ...any) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
}

func (d *Driver) create(kind dgl.Kind, n int) []uint32 {
	ids := make([]uint32, n)
	for i := range ids {
		d.next++
		ids[i] = d.next
		d.live[d.next] = kind
		d.created[kind]++
	}
	return ids
}

func (d *Driver) delete(kind dgl.Kind, ids []uint32) {
	for _, id := range ids {
		if id == 0 {
			continue
		}
		got, ok := d.live[id]
		if !ok || got != kind {
			d.violations = append(d.violations, fmt.Sprintf("delete %s %d: not live", kind, id))
			continue
		}
		delete(d.live, id)
		d.deleted[kind]++
	}
}

func clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append([]T(nil), s...)
}
