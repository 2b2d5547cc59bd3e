// internal/types/selection.go
package types

// Selection is a pair of character offsets into a flat text buffer.
// Start <= End always holds after Normalize; Start == End is a caret
// with no selected text.
type Selection struct {
	Start int
	End   int
}

// Caret returns a collapsed selection at the given offset.
func Caret(off int) Selection {
	return Selection{Start: off, End: off}
}

// Empty reports whether the selection is a bare caret.
func (s Selection) Empty() bool {
	return s.Start == s.End
}

// Normalize returns the selection with Start <= End.
func (s Selection) Normalize() Selection {
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	return s
}

// Clamp constrains both offsets to [0, length].
func (s Selection) Clamp(length int) Selection {
	s = s.Normalize()
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End < 0 {
		s.End = 0
	}
	if s.Start > length {
		s.Start = length
	}
	if s.End > length {
		s.End = length
	}
	return s
}
