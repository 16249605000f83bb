// Package focus provides single-slot focus tracking with per-frame change
// detection.
//
// Exactly one widget id can hold focus at a time; 0 means nothing is
// focused. The tracker snapshots focus at the start of each frame so widget
// code can ask whether focus moved during the current frame.
package focus

// TraversalPolicy supplies the order in which focusable ids are visited by
// FocusNext and FocusPrev. The tracker does not retain the widget tree, so
// the host decides the order, typically rebuilding it every frame.
type TraversalPolicy interface {
	Order() []uint32
}

// OrderedPolicy is a TraversalPolicy backed by a slice of ids.
type OrderedPolicy struct {
	IDs []uint32
}

// Order returns the ids in traversal order.
func (p *OrderedPolicy) Order() []uint32 {
	if p == nil {
		return nil
	}
	return p.IDs
}

// Reset empties the order while keeping its storage.
func (p *OrderedPolicy) Reset() {
	p.IDs = p.IDs[:0]
}

// Add appends a focusable id. Zero ids are ignored.
func (p *OrderedPolicy) Add(id uint32) {
	if id == 0 {
		return
	}
	p.IDs = append(p.IDs, id)
}

// Tracker holds the focused id for the current and previous frame.
type Tracker struct {
	current  uint32
	previous uint32

	// Policy orders ids for FocusNext and FocusPrev. Both are no-ops while
	// Policy is nil.
	Policy TraversalPolicy
}

// BeginFrame snapshots the focused id. Call it once at the start of every
// frame, before any SetFocus, ClearFocus or FocusChanged call for that frame.
func (t *Tracker) BeginFrame() {
	t.previous = t.current
}

// SetFocus gives focus to id, taking it from whichever widget held it.
func (t *Tracker) SetFocus(id uint32) {
	t.current = id
}

// ClearFocus removes focus from every widget.
func (t *Tracker) ClearFocus() {
	t.current = 0
}

// HasFocus reports whether id is focused.
func (t *Tracker) HasFocus(id uint32) bool {
	return t.current == id
}

// Focused returns the focused id, or 0.
func (t *Tracker) Focused() uint32 {
	return t.current
}

// Previous returns the id that was focused when the frame began.
func (t *Tracker) Previous() uint32 {
	return t.previous
}

// FocusChanged reports whether focus differs from the start of the frame.
func (t *Tracker) FocusChanged() bool {
	return t.current != t.previous
}

// GainedFocus reports whether id became focused during this frame.
func (t *Tracker) GainedFocus(id uint32) bool {
	return id != 0 && t.current == id && t.previous != id
}

// LostFocus reports whether id lost focus during this frame.
func (t *Tracker) LostFocus(id uint32) bool {
	return id != 0 && t.previous == id && t.current != id
}

// FocusNext moves focus to the id after the focused one in the policy order.
func (t *Tracker) FocusNext() bool {
	return t.MoveFocus(1)
}

// FocusPrev moves focus to the id before the focused one in the policy order.
func (t *Tracker) FocusPrev() bool {
	return t.MoveFocus(-1)
}

// MoveFocus moves focus by delta positions within the policy order, wrapping
// at both ends. When the focused id is not in the order, moving forward lands
// on the first id and moving backward on the last.
func (t *Tracker) MoveFocus(delta int) bool {
	if t.Policy == nil || delta == 0 {
		return false
	}
	order := t.Policy.Order()
	count := len(order)
	if count == 0 {
		return false
	}

	currentIndex := indexOf(order, t.current)
	if currentIndex < 0 && delta < 0 {
		// Stepping back from "before the first" lands on the last entry.
		currentIndex = 0
	}

	for step := 1; step <= count; step++ {
		candidate := order[wrapIndex(currentIndex+delta*step, count)]
		if candidate != 0 {
			t.current = candidate
			return true
		}
	}
	return false
}

// indexOf returns the position of id in order, or -1.
func indexOf(order []uint32, id uint32) int {
	if id == 0 {
		return -1
	}
	for i, candidate := range order {
		if candidate == id {
			return i
		}
	}
	return -1
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
