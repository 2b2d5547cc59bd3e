// internal/textops/indent.go

// Package textops implements the line-oriented text transforms behind the
// widget's Tab and Shift-Tab keys. All functions are pure: they take a flat
// buffer plus a selection and return a single Rewrite describing the edit,
// leaving the caller (the surface) to apply it and notify listeners. One
// rewrite per operation is a hard contract; even a many-line re-indent must
// reach the host as one atomic mutation.
package textops

import (
	"strings"

	"github.com/mvetter/codearea/internal/types"
)

// Indent increases indentation by one tab stop.
//
// With a full-line or multi-line selection it works in block mode: every line
// in the covered range is pushed to the next tab stop above its current
// width. Otherwise it works in caret mode: the selection (possibly empty) is
// replaced by enough padding to reach the next tab stop, and the caret lands
// after the inserted text.
//
// The returned selection is always within bounds of the rewritten buffer.
func Indent(text string, sel types.Selection, tabs Tabs) (types.Rewrite, types.Selection) {
	sel = sel.Clamp(len(text))

	if isBlockSelection(text, sel) {
		ls := LineStart(text, sel.Start)
		le := LineEnd(text, sel.End)
		rebuilt := rebuildLeading(text[ls:le], tabs, func(w int) int {
			// Always advance past the current width, even when already
			// tab-aligned, so indentation visibly grows by at least one stop.
			return 1 + w/tabs.Width
		})
		rw := types.Rewrite{Start: ls, End: le, Text: rebuilt}
		return rw, types.Selection{Start: ls, End: ls + len(rebuilt)}
	}

	// Caret mode: pad to the next tab stop relative to the line start.
	pad := tabs.Width - (sel.Start-LineStart(text, sel.Start))%tabs.Width
	ins := "\t"
	if tabs.UseSpaces {
		ins = strings.Repeat(" ", pad)
	}
	rw := types.Rewrite{Start: sel.Start, End: sel.End, Text: ins}
	return rw, types.Caret(sel.Start + len(ins))
}

// Outdent decreases indentation by one tab stop across the full line range of
// the selection; unlike Indent there is no caret-only mode. Each line loses
// at most one stop's worth of leading whitespace and never goes negative.
//
// When no line can be dedented further the transform is a true no-op: it
// returns changed == false and the caller must neither rewrite nor notify.
func Outdent(text string, sel types.Selection, tabs Tabs) (types.Rewrite, types.Selection, bool) {
	sel = sel.Clamp(len(text))

	ls := LineStart(text, sel.Start)
	le := LineEnd(text, sel.End)
	if le < ls {
		// A caret sitting right after a newline: LineEnd's after-newline
		// policy points at the previous line, but the caret's own line is
		// the one ahead. Take that line instead of an inverted range.
		le = lineEndFrom(text, ls)
	}
	region := text[ls:le]
	rebuilt := rebuildLeading(region, tabs, func(w int) int {
		return (w - tabs.Width) / tabs.Width
	})
	if rebuilt == region {
		return types.Rewrite{}, sel, false
	}
	rw := types.Rewrite{Start: ls, End: le, Text: rebuilt}
	return rw, types.Selection{Start: ls, End: ls + len(rebuilt)}, true
}

// isBlockSelection decides between block and caret mode. Block mode needs a
// non-empty selection that either spans multiple lines or covers whole lines
// exactly (start on a line start, end on a line end). Sub-line selections
// fall through to caret mode, where they are replaced by the padding; this
// asymmetry with Outdent's uniform whole-line handling matches common editor
// behavior and is deliberate.
func isBlockSelection(s string, sel types.Selection) bool {
	if sel.Empty() {
		return false
	}
	if IsMultiLine(s, sel.Start, sel.End) {
		return true
	}
	atLineStart := sel.Start == 0 || s[sel.Start-1] == '\n'
	atLineEnd := sel.End == len(s) || s[sel.End] == '\n' || s[sel.End] == '\r'
	return atLineStart && atLineEnd
}

// rebuildLeading walks region line by line and replaces each leading run of
// spaces and tabs with stops(width) freshly rendered tab stops. Lines that
// are empty (the run is empty and sits directly on a line terminator) are
// left untouched, so block indent never decorates blank lines. The rest of each line, terminator included, is
// copied through verbatim.
func rebuildLeading(region string, tabs Tabs, stops func(width int) int) string {
	var b strings.Builder
	b.Grow(len(region))

	i := 0
	for i < len(region) {
		j := i
		for j < len(region) && (region[j] == ' ' || region[j] == '\t') {
			j++
		}
		blank := j == i && (region[i] == '\n' || region[i] == '\r')
		if !blank {
			b.WriteString(tabs.lead(stops(LeadingWidth(region[i:], tabs.Width))))
		}

		// Copy the remainder of the line including its terminator.
		k := j
		for k < len(region) && region[k] != '\n' {
			k++
		}
		if k < len(region) {
			k++
		}
		b.WriteString(region[j:k])
		i = k
	}
	return b.String()
}
