// Package kit bundles the per-frame UI state a declarative widget tree
// cannot hold itself: the theme, the per-widget state registry, and keyboard
// focus.
//
// A Context is created once before the frame loop and passed by pointer to
// widget code. It is not safe for concurrent use; all calls are expected
// from the single goroutine driving frames.
//
// A typical frame:
//
//	ctx.BeginFrame()
//	// build the tree: ctx.State(id), ctx.HasFocus(id), ...
//	// replay key and character events into the focused textedit.State
//	// lay out and render
package kit

import (
	"github.com/go-drift/kit/pkg/errors"
	"github.com/go-drift/kit/pkg/focus"
	"github.com/go-drift/kit/pkg/state"
	"github.com/go-drift/kit/pkg/theme"
)

// Icon references a host-drawn icon. ID 0 means no icon.
type Icon struct {
	ID   uint16
	Size uint16
}

// Box is the screen rectangle an icon is drawn into.
type Box struct {
	X, Y, Width, Height float32
}

// IconCallback draws an icon into box. userData is Context.IconUserData.
type IconCallback func(icon Icon, box Box, userData any)

// Context is the shared UI state for one window or screen.
type Context struct {
	// Theme is read by widget code. It is never nil after Init.
	Theme *theme.Theme

	// States holds per-widget records.
	States state.Registry

	// Focus tracks the focused widget.
	Focus focus.Tracker

	// IconCallback draws icons for widgets that carry one.
	IconCallback IconCallback
	IconUserData any

	reportedFull bool
}

// New returns a Context initialized with th and backing.
func New(th *theme.Theme, backing []state.Record) *Context {
	c := &Context{}
	c.Init(th, backing)
	return c
}

// Init resets the context: the registry is re-initialized over backing,
// focus is cleared and the icon hook removed. A nil theme selects the light
// preset.
func (c *Context) Init(th *theme.Theme, backing []state.Record) {
	if th == nil {
		th = theme.Light()
	}
	c.Theme = th
	c.States.Init(backing)
	c.Focus = focus.Tracker{}
	c.IconCallback = nil
	c.IconUserData = nil
	c.reportedFull = false
}

// BeginFrame marks the start of a frame. Call it once per frame before any
// other Context call in that frame.
func (c *Context) BeginFrame() {
	c.Focus.BeginFrame()
}

// State returns the record for id, creating it on first use. It returns nil
// when the registry is full; widgets then render with default state. The
// first rejection after Init is reported to the errors handler.
func (c *Context) State(id uint32) *state.Record {
	rec := c.States.GetOrCreate(id)
	if rec == nil && !c.reportedFull {
		c.reportedFull = true
		errors.Report(&errors.KitError{
			Op:   "kit.State",
			Kind: errors.KindCapacity,
			Err:  errors.ErrRegistryFull,
		})
	}
	return rec
}

// LookupState returns the record for id without creating it.
func (c *Context) LookupState(id uint32) *state.Record {
	return c.States.Get(id)
}

// SetFocus gives keyboard focus to id.
func (c *Context) SetFocus(id uint32) {
	c.Focus.SetFocus(id)
}

// ClearFocus removes keyboard focus.
func (c *Context) ClearFocus() {
	c.Focus.ClearFocus()
}

// HasFocus reports whether id is focused.
func (c *Context) HasFocus(id uint32) bool {
	return c.Focus.HasFocus(id)
}

// FocusChanged reports whether focus moved since BeginFrame.
func (c *Context) FocusChanged() bool {
	return c.Focus.FocusChanged()
}

// FocusNext moves focus forward using the host's traversal policy.
func (c *Context) FocusNext() bool {
	return c.Focus.FocusNext()
}

// FocusPrev moves focus backward using the host's traversal policy.
func (c *Context) FocusPrev() bool {
	return c.Focus.FocusPrev()
}

// DrawIcon forwards icon to the IconCallback. It reports whether the
// callback ran.
func (c *Context) DrawIcon(icon Icon, box Box) bool {
	if icon.ID == 0 || c.IconCallback == nil {
		return false
	}
	c.IconCallback(icon, box, c.IconUserData)
	return true
}
