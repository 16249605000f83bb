package textedit

const (
	firstPrintable = 0x20
	lastPrintable  = 0x7E
	wordSeparator  = ' '
)

// InsertChar inserts a printable ASCII character at the cursor, replacing
// the selection if there is one. It reports whether the text changed.
// Control characters, non-ASCII code points and insertions into a full
// buffer are rejected.
func (s *State) InsertChar(codepoint rune) bool {
	if codepoint < firstPrintable || codepoint > lastPrintable {
		return false
	}
	if !s.editable() {
		return false
	}
	s.deleteSelection()
	if s.length >= len(s.buf)-1 {
		return false
	}

	copy(s.buf[s.cursor+1:s.length+1], s.buf[s.cursor:s.length])
	s.buf[s.cursor] = byte(codepoint)
	s.length++
	s.cursor++
	s.anchor = s.cursor
	s.terminate()
	return true
}

// InsertString inserts each byte of text through InsertChar and returns the
// number of bytes inserted. Insertion stops at the first rejected byte.
func (s *State) InsertString(text string) int {
	for i := 0; i < len(text); i++ {
		if !s.InsertChar(rune(text[i])) {
			return i
		}
	}
	return len(text)
}

// HandleKey applies an editing or navigation key and reports whether it was
// handled with an effect on the field.
//
// Shift extends the selection while the cursor moves; without shift the
// selection collapses onto the cursor. Ctrl turns Left and Right into
// word steps. Left, Right, Home and End report true even when the cursor is
// already at the boundary.
func (s *State) HandleKey(key Key, mods Modifier) bool {
	if s.Has(FlagDisabled) {
		return false
	}

	switch key {
	case KeyBackspace:
		if !s.editable() {
			return false
		}
		if s.HasSelection() {
			s.deleteSelection()
			return true
		}
		if s.cursor == 0 {
			return false
		}
		s.remove(s.cursor - 1)
		s.cursor--
		s.anchor = s.cursor
		return true

	case KeyDelete:
		if !s.editable() {
			return false
		}
		if s.HasSelection() {
			s.deleteSelection()
			return true
		}
		if s.cursor >= s.length {
			return false
		}
		s.remove(s.cursor)
		return true

	case KeyLeft:
		if mods.Ctrl() {
			s.cursor = s.wordStartBefore(s.cursor)
		} else if s.cursor > 0 {
			s.cursor--
		}
		s.collapseUnless(mods.Shift())
		return true

	case KeyRight:
		if mods.Ctrl() {
			s.cursor = s.wordEndAfter(s.cursor)
		} else if s.cursor < s.length {
			s.cursor++
		}
		s.collapseUnless(mods.Shift())
		return true

	case KeyHome:
		s.cursor = 0
		s.collapseUnless(mods.Shift())
		return true

	case KeyEnd:
		s.cursor = s.length
		s.collapseUnless(mods.Shift())
		return true
	}
	return false
}

// editable reports whether the text may change.
func (s *State) editable() bool {
	return s.Flags&(FlagReadOnly|FlagDisabled) == 0
}

func (s *State) collapseUnless(extend bool) {
	if !extend {
		s.anchor = s.cursor
	}
}

// deleteSelection removes the selected bytes and collapses the cursor and
// anchor onto the start of the removed range.
func (s *State) deleteSelection() {
	if s.cursor == s.anchor {
		return
	}
	lo, hi := s.Selection()
	copy(s.buf[lo:], s.buf[hi:s.length])
	s.length -= hi - lo
	s.cursor = lo
	s.anchor = lo
	s.terminate()
}

// remove deletes the byte at i.
func (s *State) remove(i int) {
	copy(s.buf[i:], s.buf[i+1:s.length])
	s.length--
	s.terminate()
}

// wordStartBefore skips the spaces left of pos, then the word before them.
func (s *State) wordStartBefore(pos int) int {
	for pos > 0 && s.buf[pos-1] == wordSeparator {
		pos--
	}
	for pos > 0 && s.buf[pos-1] != wordSeparator {
		pos--
	}
	return pos
}

// wordEndAfter skips the word right of pos, then the spaces after it.
func (s *State) wordEndAfter(pos int) int {
	for pos < s.length && s.buf[pos] != wordSeparator {
		pos++
	}
	for pos < s.length && s.buf[pos] == wordSeparator {
		pos++
	}
	return pos
}
