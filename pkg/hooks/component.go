// Package hooks wraps common containers so that mutating calls request a
// re-render of the owning Component while read-only calls do not.
//
// A Component plays the part of a view: every allow-listed mutation on a
// container obtained through one of the Use* hooks bumps the component's
// version exactly once and invokes its render callback.
//
//	c := hooks.NewComponent(hooks.WithRender(redraw))
//	c.Begin()
//	q := hooks.UseQueue(c, []int{1, 2, 3})
//	q.Enqueue(4) // redraw is called once
//	q.Peek()     // no redraw
//
// Hooks behave like slots: calling them in the same order after Begin
// returns the same container every time.
package hooks

import (
	"fmt"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
)

// Option configures a Component.
type Option func(*Component)

// WithRender sets the callback invoked after every mutation.
func WithRender(fn func()) Option {
	return func(c *Component) {
		c.onRender = fn
	}
}

// WithLogger sets the logger used to trace mutations.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Component) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Component owns hook slots and counts render requests.
//
// Component is NOT thread-safe apart from Version. Containers obtained from it
// must be used from one goroutine or behind an external lock.
type Component struct {
	version  atomic.Uint64
	disposed atomic.Bool
	onRender func()
	logger   hclog.Logger

	slots  []any
	cursor int
}

// NewComponent creates a component with no hooks registered yet.
func NewComponent(opts ...Option) *Component {
	c := &Component{
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Begin starts a render pass. Hooks called after Begin are matched to their
// slots by call order.
func (c *Component) Begin() {
	c.cursor = 0
}

// Render requests a re-render. It is a no-op once the component is disposed.
func (c *Component) Render() {
	if c.disposed.Load() {
		return
	}
	v := c.version.Add(1)
	c.logger.Trace("render requested", "version", v)
	if c.onRender != nil {
		c.onRender()
	}
}

// Version returns how many renders were requested so far.
func (c *Component) Version() uint64 {
	return c.version.Load()
}

// Dispose detaches the component. Containers stay usable but no longer render.
func (c *Component) Dispose() {
	if c.disposed.Swap(true) {
		return
	}
	c.logger.Debug("component disposed", "version", c.Version(), "hooks", len(c.slots))
}

// Disposed reports whether Dispose was called.
func (c *Component) Disposed() bool {
	return c.disposed.Load()
}

// notify records a completed mutation and renders.
func (c *Component) notify(op string) {
	c.logger.Trace("mutation", "op", op)
	c.Render()
}

// use returns the hook stored in the current slot, creating it on the first
// pass. Calling hooks in a different order between passes is a programming
// error and panics.
func use[H any](c *Component, create func() H) H {
	idx := c.cursor
	c.cursor++

	if idx < len(c.slots) {
		h, ok := c.slots[idx].(H)
		if !ok {
			panic(fmt.Sprintf("hooks: slot %d holds %T but %T was requested; hooks must be called in the same order on every render",
				idx, c.slots[idx], *new(H)))
		}
		return h
	}

	h := create()
	c.slots = append(c.slots, h)
	return h
}
