// Package script reads replay scripts: a set of text fields and controls
// plus a list of frames, each carrying the input events a host would have
// delivered during that frame.
package script

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/kit/pkg/errors"
	"github.com/go-drift/kit/pkg/textedit"
)

// Script is a replay session.
type Script struct {
	// States is the registry capacity. Zero means DefaultStates.
	States int `yaml:"states,omitempty"`

	// Theme optionally names a theme file, relative to the working directory.
	Theme string `yaml:"theme,omitempty"`

	Fields []Field `yaml:"fields"`
	Frames []Frame `yaml:"frames"`
}

// DefaultStates is the registry capacity used when a script sets none.
const DefaultStates = 64

// Field declares a text field. Fields are focusable in declaration order.
type Field struct {
	Name     string   `yaml:"name"`
	Capacity int      `yaml:"capacity"`
	Text     string   `yaml:"text,omitempty"`
	Flags    []string `yaml:"flags,omitempty"`
}

// Frame is one frame's worth of events.
type Frame struct {
	Events []Event `yaml:"events"`
}

// Event is a single host action. Exactly one action field must be set.
type Event struct {
	Focus  string       `yaml:"focus,omitempty"`
	Clear  bool         `yaml:"clear,omitempty"`
	Next   bool         `yaml:"next,omitempty"`
	Prev   bool         `yaml:"prev,omitempty"`
	Type   string       `yaml:"type,omitempty"`
	Char   *rune        `yaml:"char,omitempty"`
	Key    string       `yaml:"key,omitempty"`
	Mods   string       `yaml:"mods,omitempty"`
	Click  *float32     `yaml:"click,omitempty"`
	Toggle string       `yaml:"toggle,omitempty"`
	Value  *ValueChange `yaml:"value,omitempty"`
}

// ValueChange sets a control's scalar value.
type ValueChange struct {
	Control string  `yaml:"control"`
	To      float32 `yaml:"to"`
}

// LoadFile reads and validates a script.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.KitError{Op: "script.LoadFile", Kind: errors.KindInput, Path: path, Err: err}
	}
	s, err := Parse(data)
	if err != nil {
		var ke *errors.KitError
		if errors.As(err, &ke) {
			ke.Path = path
		}
		return nil, err
	}
	return s, nil
}

// Parse decodes and validates a script. Unknown keys are rejected.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			err = fmt.Errorf("empty script")
		}
		return nil, errors.New("script.Parse", errors.KindInput, err)
	}
	if err := s.Validate(); err != nil {
		return nil, errors.New("script.Parse", errors.KindInput, err)
	}
	return &s, nil
}

// Validate checks field declarations and that every event names exactly
// one action with valid arguments.
func (s *Script) Validate() error {
	if s.States < 0 {
		return fmt.Errorf("states must not be negative (got %d)", s.States)
	}
	names := make(map[string]bool, len(s.Fields))
	for i, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("field %d has no name", i)
		}
		if names[f.Name] {
			return fmt.Errorf("field %q declared twice", f.Name)
		}
		names[f.Name] = true
		if f.Capacity < 1 {
			return fmt.Errorf("field %q: capacity must be at least 1 (got %d)", f.Name, f.Capacity)
		}
		if _, err := ParseFlags(f.Flags); err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
	}

	for fi, frame := range s.Frames {
		for ei, ev := range frame.Events {
			if err := ev.validate(names); err != nil {
				return fmt.Errorf("frame %d event %d: %w", fi+1, ei+1, err)
			}
		}
	}
	return nil
}

func (e *Event) validate(fields map[string]bool) error {
	actions := 0
	count := func(set bool) {
		if set {
			actions++
		}
	}
	count(e.Focus != "")
	count(e.Clear)
	count(e.Next)
	count(e.Prev)
	count(e.Type != "")
	count(e.Char != nil)
	count(e.Key != "")
	count(e.Click != nil)
	count(e.Toggle != "")
	count(e.Value != nil)
	if actions != 1 {
		return fmt.Errorf("want exactly one action, got %d", actions)
	}

	if e.Mods != "" && e.Key == "" {
		return fmt.Errorf("mods given without key")
	}
	if e.Focus != "" && !fields[e.Focus] {
		return fmt.Errorf("focus: unknown field %q", e.Focus)
	}
	if e.Key != "" {
		if _, ok := textedit.ParseKey(e.Key); !ok {
			return fmt.Errorf("unknown key %q", e.Key)
		}
		if _, ok := textedit.ParseModifiers(e.Mods); !ok {
			return fmt.Errorf("unknown modifiers %q", e.Mods)
		}
	}
	if e.Value != nil && e.Value.Control == "" {
		return fmt.Errorf("value: control name missing")
	}
	return nil
}

// ParseFlags converts flag names to textedit flags.
func ParseFlags(names []string) (textedit.Flags, error) {
	var flags textedit.Flags
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "password":
			flags |= textedit.FlagPassword
		case "readonly", "read-only":
			flags |= textedit.FlagReadOnly
		case "disabled":
			flags |= textedit.FlagDisabled
		default:
			return 0, fmt.Errorf("unknown flag %q", name)
		}
	}
	return flags, nil
}
