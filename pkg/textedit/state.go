// Package textedit implements single-line text editing over a caller-owned
// byte buffer.
//
// A State borrows a fixed-size buffer and tracks the text length, a cursor
// and a selection anchor, all as byte offsets. Editing is driven by discrete
// key and character events and never allocates. One byte of the buffer is
// always reserved and kept zero after the text, so the buffer can be handed
// to code that expects a terminated string.
package textedit

// Flags describe how a field accepts input.
type Flags uint8

const (
	// FlagFocused marks the field as the current keyboard target. It is
	// informational; the host decides which field receives events.
	FlagFocused Flags = 1 << iota
	// FlagPassword masks the text in AppendDisplay and caret geometry.
	FlagPassword
	// FlagReadOnly allows navigation and selection but no text changes.
	FlagReadOnly
	// FlagDisabled rejects every event.
	FlagDisabled
)

// State is the editing state of one text field.
//
// Invariants: 0 <= cursor, anchor <= length < len(buf) whenever len(buf) > 0.
// The selection is the range between anchor and cursor; it is empty when
// they are equal.
type State struct {
	buf    []byte
	length int
	cursor int
	anchor int

	Flags Flags
}

// New returns an empty State over buf.
func New(buf []byte) *State {
	s := &State{}
	s.Init(buf)
	return s
}

// Init makes buf the field's storage and empties the text.
func (s *State) Init(buf []byte) {
	s.buf = buf
	s.length = 0
	s.cursor = 0
	s.anchor = 0
	s.terminate()
}

// Cap returns the buffer size. At most Cap()-1 bytes of text fit.
func (s *State) Cap() int {
	return len(s.buf)
}

// Len returns the text length in bytes.
func (s *State) Len() int {
	return s.length
}

// Cursor returns the cursor offset.
func (s *State) Cursor() int {
	return s.cursor
}

// Anchor returns the selection anchor offset.
func (s *State) Anchor() int {
	return s.anchor
}

// Bytes returns the text. The slice aliases the buffer and is only valid
// until the next edit.
func (s *State) Bytes() []byte {
	return s.buf[:s.length]
}

// Text returns a copy of the text.
func (s *State) Text() string {
	return string(s.buf[:s.length])
}

// HasSelection reports whether a non-empty range is selected.
func (s *State) HasSelection() bool {
	return s.cursor != s.anchor
}

// Selection returns the selected range as ordered offsets.
func (s *State) Selection() (lo, hi int) {
	if s.anchor < s.cursor {
		return s.anchor, s.cursor
	}
	return s.cursor, s.anchor
}

// SelectedText returns the selected bytes, aliasing the buffer.
func (s *State) SelectedText() []byte {
	lo, hi := s.Selection()
	return s.buf[lo:hi]
}

// SetText replaces the text, truncating it to fit, and places a collapsed
// cursor at the end.
func (s *State) SetText(text string) {
	n := min(len(text), s.maxLen())
	copy(s.buf, text[:n])
	s.length = n
	s.cursor = n
	s.anchor = n
	s.terminate()
}

// Clear empties the text.
func (s *State) Clear() {
	s.length = 0
	s.cursor = 0
	s.anchor = 0
	s.terminate()
}

// SetCursor moves the cursor to pos, clamped to the text. When extend is
// false the selection collapses onto the cursor.
func (s *State) SetCursor(pos int, extend bool) {
	s.cursor = s.clamp(pos)
	if !extend {
		s.anchor = s.cursor
	}
}

// Select sets the anchor and cursor, clamped to the text.
func (s *State) Select(anchor, cursor int) {
	s.anchor = s.clamp(anchor)
	s.cursor = s.clamp(cursor)
}

// SelectAll selects the whole text with the cursor at the end.
func (s *State) SelectAll() {
	s.anchor = 0
	s.cursor = s.length
}

// Has reports whether all bits in f are set.
func (s *State) Has(f Flags) bool {
	return s.Flags&f == f
}

// SetFlag sets or clears the bits in f.
func (s *State) SetFlag(f Flags, on bool) {
	if on {
		s.Flags |= f
	} else {
		s.Flags &^= f
	}
}

// AppendDisplay appends the text as it should be drawn to dst: the text
// itself, or one '*' per byte for password fields.
func (s *State) AppendDisplay(dst []byte) []byte {
	if !s.Has(FlagPassword) {
		return append(dst, s.buf[:s.length]...)
	}
	for i := 0; i < s.length; i++ {
		dst = append(dst, maskByte)
	}
	return dst
}

const maskByte = '*'

// maxLen is the largest text length the buffer can hold.
func (s *State) maxLen() int {
	if len(s.buf) == 0 {
		return 0
	}
	return len(s.buf) - 1
}

func (s *State) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > s.length {
		return s.length
	}
	return pos
}

// terminate zeroes the byte after the text.
func (s *State) terminate() {
	if s.length < len(s.buf) {
		s.buf[s.length] = 0
	}
}
