package kit

// Flag bits shared by the stock controls.
const (
	// FlagChecked is set on checkboxes, switches and radio items that are on.
	FlagChecked uint32 = 1 << iota
	// FlagHovered is set while the pointer is over the control.
	FlagHovered
	// FlagPressed is set while the control is held down.
	FlagPressed
	// FlagOpen is set on disclosures such as menus, accordions and modals.
	FlagOpen
)

// Checked reports whether the control id is on.
func (c *Context) Checked(id uint32) bool {
	rec := c.States.Get(id)
	return rec != nil && rec.Has(FlagChecked)
}

// Toggle flips flag on the control id and returns its new state. It
// returns false without effect when no record can be created.
func (c *Context) Toggle(id uint32, flag uint32) bool {
	rec := c.State(id)
	if rec == nil {
		return false
	}
	on := !rec.Has(flag)
	rec.Set(flag, on)
	return on
}

// Value returns the scalar value of the control id, or 0.
func (c *Context) Value(id uint32) float32 {
	if rec := c.States.Get(id); rec != nil {
		return rec.Value
	}
	return 0
}

// SetValue stores v, clamped to [0, 1], as the value of control id. It
// reports whether the value was stored.
func (c *Context) SetValue(id uint32, v float32) bool {
	rec := c.State(id)
	if rec == nil {
		return false
	}
	rec.Value = clamp01(v)
	return true
}

func clamp01(v float32) float32 {
	if v != v || v < 0 { // NaN
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
