package textedit

import "strings"

// Key identifies an editing key. Hosts map platform key codes to these
// values before calling HandleKey.
type Key uint32

const (
	KeyNone Key = iota
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	// KeyEnter and KeyTab are routed by the host (submit, focus traversal);
	// HandleKey ignores them.
	KeyEnter
	KeyTab
)

var keyNames = [...]string{
	KeyNone:      "none",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyEnter:     "enter",
	KeyTab:       "tab",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey returns the key with the given name, ignoring case.
func ParseKey(name string) (Key, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range keyNames {
		if n == name {
			return Key(i), true
		}
	}
	return KeyNone, false
}

// Modifier is a set of held modifier keys.
type Modifier uint32

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	// ModAlt is carried for hosts but does not change editing behavior.
	ModAlt

	ModNone Modifier = 0
)

// Shift reports whether shift is held.
func (m Modifier) Shift() bool {
	return m&ModShift != 0
}

// Ctrl reports whether ctrl is held.
func (m Modifier) Ctrl() bool {
	return m&ModCtrl != 0
}

// Alt reports whether alt is held.
func (m Modifier) Alt() bool {
	return m&ModAlt != 0
}

func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	var parts []string
	if m.Ctrl() {
		parts = append(parts, "ctrl")
	}
	if m.Alt() {
		parts = append(parts, "alt")
	}
	if m.Shift() {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

// ParseModifiers parses a "+"-separated list such as "ctrl+shift".
func ParseModifiers(s string) (Modifier, bool) {
	var mods Modifier
	if strings.TrimSpace(s) == "" {
		return ModNone, true
	}
	for _, part := range strings.Split(s, "+") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "shift":
			mods |= ModShift
		case "ctrl", "control":
			mods |= ModCtrl
		case "alt", "option":
			mods |= ModAlt
		case "none", "":
		default:
			return ModNone, false
		}
	}
	return mods, true
}
