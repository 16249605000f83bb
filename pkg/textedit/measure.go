package textedit

import (
	"golang.org/x/image/font"
)

// Measurer reports the horizontal advance of a run of text, in the host's
// layout units.
type Measurer interface {
	Advance(text []byte) float32
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(text []byte) float32

// Advance calls f(text).
func (f MeasureFunc) Advance(text []byte) float32 {
	return f(text)
}

// FaceMeasurer measures text with a font face.
type FaceMeasurer struct {
	Face font.Face
}

// Advance returns the advance of text in pixels.
func (m FaceMeasurer) Advance(text []byte) float32 {
	if m.Face == nil || len(text) == 0 {
		return 0
	}
	adv := font.MeasureBytes(m.Face, text)
	return float32(adv) / 64
}

// CaretX returns the x offset of the cursor from the start of the text.
func (s *State) CaretX(m Measurer) float32 {
	return s.offsetX(m, s.cursor)
}

// SelectionSpan returns the x range covered by the selection. Both values
// are equal when nothing is selected.
func (s *State) SelectionSpan(m Measurer) (x0, x1 float32) {
	lo, hi := s.Selection()
	return s.offsetX(m, lo), s.offsetX(m, hi)
}

// OffsetAt returns the byte offset nearest to x, for placing the cursor
// where the pointer hit the field.
func (s *State) OffsetAt(m Measurer, x float32) int {
	if x <= 0 || s.length == 0 {
		return 0
	}
	prev := float32(0)
	for i := 1; i <= s.length; i++ {
		next := s.offsetX(m, i)
		if x < (prev+next)/2 {
			return i - 1
		}
		prev = next
	}
	return s.length
}

// offsetX measures the displayed text before pos.
func (s *State) offsetX(m Measurer, pos int) float32 {
	if pos <= 0 {
		return 0
	}
	if s.Has(FlagPassword) {
		return m.Advance(maskGlyph[:]) * float32(pos)
	}
	return m.Advance(s.buf[:pos])
}

var maskGlyph = [1]byte{maskByte}
