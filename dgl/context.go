package dgl

import (
	"cmp"
	"errors"
	"fmt"
	"runtime"
	"slices"

	"go.uber.org/zap"
)

// maxErrors bounds the GetError drain in Context.Err.
const maxErrors = 32

// Config holds context options.
type Config struct {
	// Logger receives lifecycle and leak messages. Nil uses Logger().
	Logger *zap.Logger
	// TrackLeaks installs a finalizer on every owner so that owners dropped
	// without Release are queued and deleted by Collect.
	TrackLeaks bool
}

// DefaultConfig returns the options used by most programs.
func DefaultConfig() Config {
	return Config{TrackLeaks: true}
}

// Context is the binding layer for one GL context. It owns the live object
// registry and the binding state table. A Context must only be used from the
// goroutine that owns the GL context.
type Context struct {
	drv     Driver
	cfg     Config
	log     *zap.Logger
	state   *State
	live    map[*object]struct{}
	garbage trash
	closed  bool
}

// NewContext wraps drv. The GL context behind drv must be current.
func NewContext(drv Driver, cfg Config) *Context {
	log := cfg.Logger
	if log == nil {
		log = Logger()
	}
	c := &Context{
		drv:   drv,
		cfg:   cfg,
		log:   log,
		state: newState(),
		live:  make(map[*object]struct{}),
	}
	log.Debug("context opened", zap.Bool("track_leaks", cfg.TrackLeaks))
	return c
}

// Driver returns the wrapped driver for calls the binding does not cover.
func (c *Context) Driver() Driver {
	return c.drv
}

// State returns the binding state table.
func (c *Context) State() *State {
	return c.state
}

// Info queries a driver string such as Version or Renderer.
func (c *Context) Info(name Enum) string {
	return c.drv.GetString(name)
}

// Live reports the number of live objects of the given kind.
func (c *Context) Live(kind Kind) int {
	n := 0
	for obj := range c.live {
		if obj.kind == kind {
			n++
		}
	}
	return n
}

// Collect deletes objects whose owners were garbage collected without being
// released, and returns how many references it dropped. Call it on the GL
// goroutine, for example once per frame.
func (c *Context) Collect() int {
	objs := c.garbage.drain()
	n := 0
	for _, obj := range objs {
		if _, ok := c.live[obj]; !ok {
			continue
		}
		c.log.Warn("collected unreleased object",
			zap.Stringer("kind", obj.kind),
			zap.Uint32("handle", obj.id),
		)
		c.unref(obj)
		n++
	}
	return n
}

// Err drains the driver error queue. It returns nil when no error is
// pending, otherwise the GLErrors joined in the order they were reported.
func (c *Context) Err() error {
	var errs []error
	for i := 0; i < maxErrors; i++ {
		code := c.drv.GetError()
		if code == NoError {
			break
		}
		errs = append(errs, GLError{Code: code})
	}
	return errors.Join(errs...)
}

// Close deletes every object still alive. Leftover objects are logged and
// reported as an error wrapping ErrLeaked. Closing twice has no effect.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.Collect()

	leaked := make([]*object, 0, len(c.live))
	for obj := range c.live {
		leaked = append(leaked, obj)
	}
	slices.SortFunc(leaked, func(a, b *object) int {
		if a.kind != b.kind {
			return cmp.Compare(a.kind, b.kind)
		}
		return cmp.Compare(a.id, b.id)
	})
	for _, obj := range leaked {
		c.log.Warn("leaked object",
			zap.Stringer("kind", obj.kind),
			zap.Uint32("handle", obj.id),
			zap.Int("refs", obj.refs),
		)
		obj.refs = 0
		c.destroy(obj)
	}
	c.closed = true
	c.log.Debug("context closed", zap.Int("leaked", len(leaked)))

	if len(leaked) > 0 {
		return fmt.Errorf("close context: %w: %d objects", ErrLeaked, len(leaked))
	}
	return nil
}

func (c *Context) driver() Driver {
	if c.closed {
		panic(ErrContextClosed)
	}
	return c.drv
}

// own registers a freshly created driver name and returns its first owner.
func (c *Context) own(kind Kind, id uint32) *owner {
	obj := &object{ctx: c, kind: kind, id: id, refs: 1}
	c.live[obj] = struct{}{}
	return c.track(obj)
}

func (c *Context) track(obj *object) *owner {
	o := &owner{obj: obj}
	if c.cfg.TrackLeaks {
		runtime.SetFinalizer(o, finalizeOwner)
	}
	return o
}

func (c *Context) unref(obj *object) {
	if _, ok := c.live[obj]; !ok {
		return
	}
	obj.refs--
	if obj.refs > 0 {
		return
	}
	c.destroy(obj)
}

func (c *Context) destroy(obj *object) {
	delete(c.live, obj)
	ids := []uint32{obj.id}
	switch obj.kind {
	case KindBuffer:
		c.drv.DeleteBuffers(ids)
	case KindTexture:
		c.drv.DeleteTextures(ids)
	case KindSampler:
		c.drv.DeleteSamplers(ids)
	case KindVertexArray:
		c.drv.DeleteVertexArrays(ids)
	case KindShader:
		c.drv.DeleteShader(obj.id)
	case KindProgram:
		c.drv.DeleteProgram(obj.id)
	case KindPipeline:
		c.drv.DeleteProgramPipelines(ids)
	}
	c.state.forget(obj.kind, obj.id)
}
