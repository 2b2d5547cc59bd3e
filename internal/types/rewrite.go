// internal/types/rewrite.go
package types

// Rewrite replaces the byte range [Start, End) of a buffer with Text.
// Every editing operation produces at most one Rewrite, so the host sees
// a single mutation (and runs a single re-highlight cycle) per key press.
type Rewrite struct {
	Start int
	End   int
	Text  string
}

// Apply performs the rewrite on the given buffer text.
func (r Rewrite) Apply(text string) string {
	return text[:r.Start] + r.Text + text[r.End:]
}

// Edit records a completed range rewrite in byte offsets. It is the payload
// delivered to change-notification subscribers so they can re-highlight and
// resynchronize scroll without diffing the whole buffer.
type Edit struct {
	Start  int // start byte of the edit
	OldEnd int // end byte of the replaced range in the old text
	NewEnd int // end byte of the inserted text in the new text
}

// EditFor builds the Edit describing the given rewrite.
func EditFor(r Rewrite) Edit {
	return Edit{
		Start:  r.Start,
		OldEnd: r.End,
		NewEnd: r.Start + len(r.Text),
	}
}

// StyledRange marks a run of a line with a named style. Columns are rune
// indexes within the line, end exclusive.
type StyledRange struct {
	StartCol  int
	EndCol    int
	StyleName string
}
