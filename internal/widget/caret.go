// internal/widget/caret.go
package widget

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/mvetter/codearea/internal/textops"
)

// rowCol converts a flat byte offset into a 0-based (row, rune column) pair.
// An offset inside a multibyte rune snaps back to the rune's start.
func rowCol(text string, off int) (int, int) {
	if off < 0 {
		off = 0
	}
	if off > len(text) {
		off = len(text)
	}
	for off > 0 && off < len(text) && !utf8.RuneStart(text[off]) {
		off--
	}
	row := strings.Count(text[:off], "\n")
	ls := textops.LineStart(text, off)
	return row, utf8.RuneCountInString(text[ls:off])
}

// offsetAt converts a (row, rune column) pair back into a byte offset,
// clamping both coordinates into the document.
func offsetAt(text string, row, col int) int {
	if row < 0 {
		return 0
	}
	off := 0
	for row > 0 {
		nl := strings.IndexByte(text[off:], '\n')
		if nl < 0 {
			break
		}
		off += nl + 1
		row--
	}
	if row > 0 {
		// Past the last line: clamp to end of document.
		return len(text)
	}
	for col > 0 && off < len(text) && text[off] != '\n' {
		_, size := utf8.DecodeRuneInString(text[off:])
		off += size
		col--
	}
	return off
}

// lineAt returns the content of the line containing off, without terminator.
func lineAt(text string, off int) string {
	line := text[textops.LineStart(text, off):]
	if nl := strings.IndexByte(line, '\n'); nl >= 0 {
		line = line[:nl]
	}
	return strings.TrimSuffix(line, "\r")
}

// visualCol maps a rune column within line to a visual column, expanding
// tabs to the next stop and measuring everything else by grapheme width.
func visualCol(line string, runeCol, tabWidth int) int {
	vcol := 0
	runeIdx := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		if runeIdx >= runeCol {
			break
		}
		runes := gr.Runes()
		if len(runes) == 1 && runes[0] == '\t' {
			vcol += tabWidth - vcol%tabWidth
		} else {
			vcol += gr.Width()
		}
		runeIdx += len(runes)
	}
	return vcol
}

// lineCount reports the number of lines in text; an empty document still
// has one line.
func lineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// prevRuneStart steps one rune backward, clamped at 0.
func prevRuneStart(text string, off int) int {
	if off <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(text[:off])
	return off - size
}

// nextRuneStart steps one rune forward, clamped at the end.
func nextRuneStart(text string, off int) int {
	if off >= len(text) {
		return len(text)
	}
	_, size := utf8.DecodeRuneInString(text[off:])
	return off + size
}
