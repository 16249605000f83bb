package script

import (
	"fmt"
	"hash/fnv"
	"io"
	"strings"

	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/kit/pkg/focus"
	"github.com/go-drift/kit/pkg/kit"
	"github.com/go-drift/kit/pkg/state"
	"github.com/go-drift/kit/pkg/textedit"
	"github.com/go-drift/kit/pkg/theme"
)

// ID hashes a widget name into a widget id with FNV-1a. Zero is reserved,
// so a name hashing to zero maps to 1.
func ID(name string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(name))
	if id := h.Sum32(); id != 0 {
		return id
	}
	return 1
}

type field struct {
	name string
	id   uint32
	edit *textedit.State
}

// Runner plays a Script's frames against a fresh kit.Context, acting as
// the host: it owns all buffers, builds the focus order every frame and
// routes events to the focused field.
type Runner struct {
	ctx      *kit.Context
	fields   []*field
	byID     map[uint32]*field
	controls []string
	order    focus.OrderedPolicy
	measure  textedit.Measurer
	out      io.Writer
	frame    int
}

// NewRunner allocates the registry and field buffers declared by s. A nil
// theme selects the light preset.
func NewRunner(s *Script, th *theme.Theme, out io.Writer) *Runner {
	states := s.States
	if states == 0 {
		states = DefaultStates
	}
	r := &Runner{
		ctx:     kit.New(th, make([]state.Record, states)),
		byID:    make(map[uint32]*field, len(s.Fields)),
		measure: textedit.FaceMeasurer{Face: basicfont.Face7x13},
		out:     out,
	}
	r.ctx.Focus.Policy = &r.order

	for _, decl := range s.Fields {
		f := &field{
			name: decl.Name,
			id:   ID(decl.Name),
			edit: textedit.New(make([]byte, decl.Capacity)),
		}
		f.edit.SetText(decl.Text)
		// Validate already rejected unknown flags.
		f.edit.Flags, _ = ParseFlags(decl.Flags)
		r.fields = append(r.fields, f)
		r.byID[f.id] = f
	}
	return r
}

// Context returns the context the runner drives.
func (r *Runner) Context() *kit.Context {
	return r.ctx
}

// Field returns the editing state of the named field, or nil.
func (r *Runner) Field(name string) *textedit.State {
	if f := r.byID[ID(name)]; f != nil && f.name == name {
		return f.edit
	}
	return nil
}

// Run plays frames in order, writing a report after each one.
func (r *Runner) Run(frames []Frame) error {
	for _, frame := range frames {
		if err := r.Step(frame); err != nil {
			return err
		}
	}
	return nil
}

// Step plays one frame.
func (r *Runner) Step(frame Frame) error {
	r.frame++
	r.ctx.BeginFrame()

	r.order.Reset()
	for _, f := range r.fields {
		if !f.edit.Has(textedit.FlagDisabled) {
			r.order.Add(f.id)
		}
	}

	for _, ev := range frame.Events {
		r.apply(ev)
	}

	for _, f := range r.fields {
		f.edit.SetFlag(textedit.FlagFocused, r.ctx.HasFocus(f.id))
	}
	return r.report()
}

func (r *Runner) apply(ev Event) {
	switch {
	case ev.Focus != "":
		r.ctx.SetFocus(ID(ev.Focus))
	case ev.Clear:
		r.ctx.ClearFocus()
	case ev.Next:
		r.ctx.FocusNext()
	case ev.Prev:
		r.ctx.FocusPrev()
	case ev.Toggle != "":
		r.remember(ev.Toggle)
		r.ctx.Toggle(ID(ev.Toggle), kit.FlagChecked)
	case ev.Value != nil:
		r.remember(ev.Value.Control)
		r.ctx.SetValue(ID(ev.Value.Control), ev.Value.To)
	default:
		r.applyInput(ev)
	}
}

// applyInput forwards text input to the focused field. Input arriving while
// no field is focused is dropped.
func (r *Runner) applyInput(ev Event) {
	if ev.Key != "" {
		key, _ := textedit.ParseKey(ev.Key)
		mods, _ := textedit.ParseModifiers(ev.Mods)
		if key == textedit.KeyTab {
			if mods.Shift() {
				r.ctx.FocusPrev()
			} else {
				r.ctx.FocusNext()
			}
			return
		}
		if f := r.focused(); f != nil {
			if key == textedit.KeyEnter {
				fmt.Fprintf(r.out, "  submit %s: %q\n", f.name, f.edit.AppendDisplay(nil))
				return
			}
			f.edit.HandleKey(key, mods)
		}
		return
	}

	f := r.focused()
	if f == nil {
		return
	}
	switch {
	case ev.Type != "":
		f.edit.InsertString(ev.Type)
	case ev.Char != nil:
		f.edit.InsertChar(*ev.Char)
	case ev.Click != nil:
		f.edit.SetCursor(f.edit.OffsetAt(r.measure, *ev.Click), false)
	}
}

func (r *Runner) focused() *field {
	return r.byID[r.ctx.Focus.Focused()]
}

func (r *Runner) remember(control string) {
	for _, c := range r.controls {
		if c == control {
			return
		}
	}
	r.controls = append(r.controls, control)
}

func (r *Runner) report() error {
	focusName := "none"
	if id := r.ctx.Focus.Focused(); id != 0 {
		if f := r.byID[id]; f != nil {
			focusName = f.name
		} else {
			focusName = fmt.Sprintf("#%08x", id)
		}
	}
	changed := ""
	if r.ctx.FocusChanged() {
		changed = " (changed)"
	}
	if _, err := fmt.Fprintf(r.out, "frame %d: focus=%s%s\n", r.frame, focusName, changed); err != nil {
		return err
	}

	th := r.ctx.Theme
	for _, f := range r.fields {
		border := th.Border
		if r.ctx.HasFocus(f.id) {
			border = th.Primary
		}
		line := fmt.Sprintf("  %-10s %q cursor=%d anchor=%d caret_x=%g border=%s",
			f.name, f.edit.AppendDisplay(nil), f.edit.Cursor(), f.edit.Anchor(), f.edit.CaretX(r.measure), border)
		if f.edit.HasSelection() {
			x0, x1 := f.edit.SelectionSpan(r.measure)
			line += fmt.Sprintf(" selection=%g..%g", x0, x1)
		}
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return err
		}
	}

	if len(r.controls) > 0 {
		parts := make([]string, 0, len(r.controls))
		for _, c := range r.controls {
			rec := r.ctx.LookupState(ID(c))
			switch {
			case rec == nil:
				parts = append(parts, c+"=unset")
			case rec.Has(kit.FlagChecked):
				parts = append(parts, fmt.Sprintf("%s=on(%.2f)", c, rec.Value))
			default:
				parts = append(parts, fmt.Sprintf("%s=off(%.2f)", c, rec.Value))
			}
		}
		if _, err := fmt.Fprintf(r.out, "  controls: %s\n", strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}
