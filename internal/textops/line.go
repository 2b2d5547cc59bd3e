// internal/textops/line.go
package textops

import "strings"

// LineStart returns the offset of the first character of the line containing
// off. It scans backward while the preceding character is not a newline, so
// offset 0 (or anything before the first newline) maps to 0.
func LineStart(s string, off int) int {
	off = clampOffset(s, off)
	for off > 0 && s[off-1] != '\n' {
		off--
	}
	return off
}

// LineEnd returns the offset just past the last content character of the line
// containing off. A position sitting immediately after a newline is treated as
// ending the *previous* line at that newline: a selection end at a line start
// does not pull the next line into the range.
func LineEnd(s string, off int) int {
	off = clampOffset(s, off)
	if off > 0 && s[off-1] == '\n' {
		return off - 1
	}
	return lineEndFrom(s, off)
}

// lineEndFrom scans forward to the end of the line, without the
// after-newline policy of LineEnd.
func lineEndFrom(s string, off int) int {
	for off < len(s) && s[off] != '\n' && s[off] != '\r' {
		off++
	}
	return off
}

// IsMultiLine reports whether [start, end) crosses a line boundary.
func IsMultiLine(s string, start, end int) bool {
	start = clampOffset(s, start)
	end = clampOffset(s, end)
	if start >= end {
		return false
	}
	return strings.Contains(s[start:end], "\n")
}

// LeadingWidth measures the visual width of the whitespace run at the start
// of s. Each space counts 1 and each tab counts a full tabWidth; tabs are not
// rounded to the next stop because indentation is normalized before being
// reinserted. Scanning stops at the first non-space, non-tab character.
func LeadingWidth(s string, tabWidth int) int {
	w := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ':
			w++
		case '\t':
			w += tabWidth
		default:
			return w
		}
	}
	return w
}

func clampOffset(s string, off int) int {
	if off < 0 {
		return 0
	}
	if off > len(s) {
		return len(s)
	}
	return off
}
