package kit

import (
	"math"
	"testing"

	"github.com/go-drift/kit/pkg/errors"
	"github.com/go-drift/kit/pkg/focus"
	"github.com/go-drift/kit/pkg/state"
	"github.com/go-drift/kit/pkg/textedit"
	"github.com/go-drift/kit/pkg/theme"
)

// captureErrors installs a handler recording reported errors for the test.
func captureErrors(t *testing.T) *[]*errors.KitError {
	t.Helper()
	var got []*errors.KitError
	errors.SetHandler(errors.HandlerFunc(func(err *errors.KitError) {
		got = append(got, err)
	}))
	t.Cleanup(func() { errors.SetHandler(nil) })
	return &got
}

func TestInitContext(t *testing.T) {
	th := theme.Dark()
	backing := make([]state.Record, 8)
	backing[3] = state.Record{ID: 5, Value: 1}

	c := New(th, backing)
	if c.Theme != th {
		t.Error("Theme not stored")
	}
	if c.States.Count() != 0 || c.States.Cap() != 8 {
		t.Errorf("registry Count/Cap = %d/%d, want 0/8", c.States.Count(), c.States.Cap())
	}
	if backing[3] != (state.Record{}) {
		t.Errorf("backing[3] = %+v, want zeroed", backing[3])
	}
	if c.Focus.Focused() != 0 || c.FocusChanged() {
		t.Error("fresh context has focus state")
	}
}

func TestInitDefaultsTheme(t *testing.T) {
	c := New(nil, nil)
	if c.Theme == nil || *c.Theme != *theme.Light() {
		t.Error("nil theme did not default to the light preset")
	}
}

func TestReinitClearsFocusAndState(t *testing.T) {
	backing := make([]state.Record, 4)
	c := New(nil, backing)
	c.State(1).Value = 0.5
	c.SetFocus(1)
	c.IconCallback = func(Icon, Box, any) {}

	c.Init(theme.Light(), backing)
	if c.LookupState(1) != nil {
		t.Error("state survived Init")
	}
	if c.HasFocus(1) {
		t.Error("focus survived Init")
	}
	if c.IconCallback != nil {
		t.Error("icon callback survived Init")
	}
}

func TestStateCapacityReportedOnce(t *testing.T) {
	reported := captureErrors(t)
	c := New(nil, make([]state.Record, 2))

	c.State(1)
	c.State(2)
	for id := uint32(3); id < 6; id++ {
		if rec := c.State(id); rec != nil {
			t.Fatalf("State(%d) = %+v, want nil when full", id, rec)
		}
	}
	if c.States.Count() != 2 {
		t.Errorf("Count() = %d, want 2", c.States.Count())
	}
	if len(*reported) != 1 {
		t.Fatalf("reported %d errors, want 1", len(*reported))
	}
	if err := (*reported)[0]; err.Kind != errors.KindCapacity || !errors.Is(err, errors.ErrRegistryFull) {
		t.Errorf("reported %v, want capacity error", err)
	}

	// Existing widgets keep working without further reports.
	if c.State(1) == nil {
		t.Error("State(1) = nil for existing id")
	}
	if len(*reported) != 1 {
		t.Errorf("reported %d errors after lookup, want 1", len(*reported))
	}
}

func TestFocusPassthrough(t *testing.T) {
	c := New(nil, nil)

	c.BeginFrame()
	c.SetFocus(10)
	if !c.HasFocus(10) || !c.FocusChanged() {
		t.Error("SetFocus not visible through the context")
	}

	c.BeginFrame()
	if c.FocusChanged() {
		t.Error("FocusChanged() = true on a steady frame")
	}

	c.ClearFocus()
	if c.HasFocus(10) || !c.FocusChanged() {
		t.Error("ClearFocus not visible through the context")
	}
}

func TestFocusTraversalUsesPolicy(t *testing.T) {
	c := New(nil, nil)
	if c.FocusNext() {
		t.Error("FocusNext() = true without policy")
	}

	order := &focus.OrderedPolicy{IDs: []uint32{1, 2, 3}}
	c.Focus.Policy = order
	c.FocusNext()
	if !c.HasFocus(1) {
		t.Errorf("Focused() = %d, want 1", c.Focus.Focused())
	}
	c.FocusPrev()
	if !c.HasFocus(3) {
		t.Errorf("Focused() = %d, want 3", c.Focus.Focused())
	}
}

func TestToggle(t *testing.T) {
	c := New(nil, make([]state.Record, 1))

	if c.Checked(7) {
		t.Error("Checked(7) = true before any toggle")
	}
	if !c.Toggle(7, FlagChecked) {
		t.Error("first Toggle = false, want true")
	}
	if !c.Checked(7) {
		t.Error("Checked(7) = false after toggle")
	}
	if c.Toggle(7, FlagChecked) {
		t.Error("second Toggle = true, want false")
	}

	// Registry full: the new control cannot hold state.
	captureErrors(t)
	if c.Toggle(8, FlagChecked) || c.Checked(8) {
		t.Error("Toggle on a full registry changed state")
	}
}

func TestSetValueClamps(t *testing.T) {
	c := New(nil, make([]state.Record, 4))
	tests := []struct {
		in, want float32
	}{
		{0.25, 0.25},
		{-1, 0},
		{3, 1},
		{float32(math.NaN()), 0},
	}
	for _, tt := range tests {
		if !c.SetValue(1, tt.in) {
			t.Fatalf("SetValue(%v) = false", tt.in)
		}
		if got := c.Value(1); got != tt.want {
			t.Errorf("SetValue(%v): Value = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := c.Value(99); got != 0 {
		t.Errorf("Value(unknown) = %v, want 0", got)
	}
}

func TestDrawIcon(t *testing.T) {
	c := New(nil, nil)
	if c.DrawIcon(Icon{ID: 1, Size: 16}, Box{}) {
		t.Error("DrawIcon without callback = true")
	}

	var got Icon
	var gotData any
	c.IconCallback = func(icon Icon, box Box, userData any) {
		got = icon
		gotData = userData
	}
	c.IconUserData = "atlas"

	if c.DrawIcon(Icon{ID: 0, Size: 16}, Box{}) {
		t.Error("DrawIcon with ID 0 = true")
	}
	if !c.DrawIcon(Icon{ID: 4, Size: 24}, Box{X: 1, Y: 2, Width: 24, Height: 24}) {
		t.Fatal("DrawIcon = false with callback set")
	}
	if got != (Icon{ID: 4, Size: 24}) || gotData != "atlas" {
		t.Errorf("callback got %+v, %v", got, gotData)
	}
}

func TestFrameWithFocusedField(t *testing.T) {
	// One field gains focus and receives that frame's typed characters.
	const nameID, emailID = 101, 102
	c := New(nil, make([]state.Record, 8))
	name := textedit.New(make([]byte, 32))
	email := textedit.New(make([]byte, 32))
	fields := map[uint32]*textedit.State{nameID: name, emailID: email}

	c.BeginFrame()
	c.SetFocus(emailID)
	if !c.FocusChanged() {
		t.Fatal("FocusChanged() = false after SetFocus")
	}
	for id, f := range fields {
		f.SetFlag(textedit.FlagFocused, c.HasFocus(id))
	}
	focused := fields[c.Focus.Focused()]
	focused.InsertString("a@b.c")
	focused.HandleKey(textedit.KeyHome, textedit.ModNone)

	if email.Text() != "a@b.c" || email.Cursor() != 0 {
		t.Errorf("email = %q cursor %d", email.Text(), email.Cursor())
	}
	if name.Len() != 0 || name.Has(textedit.FlagFocused) {
		t.Error("unfocused field received input")
	}
}
