// internal/editing/brackets.go
package editing

import "github.com/mvetter/codearea/internal/types"

// pairs maps opening characters to their closers. Quotes pair with
// themselves.
var pairs = map[rune]rune{
	'(':  ')',
	'[':  ']',
	'{':  '}',
	'"':  '"',
	'\'': '\'',
	'`':  '`',
}

// closers is the reverse lookup used for skip-over.
var closers = map[rune]bool{
	')': true,
	']': true,
	'}': true,
	'"': true,
	'\'': true,
	'`': true,
}

// insertPaired implements bracket auto-closing for a typed rune. It returns
// false when the rune needs no special handling and should be inserted
// plainly.
//
// Rules, in order: typing a closer that already sits at the caret skips over
// it instead of doubling it; typing an opener around a non-empty selection
// wraps the selection; typing an opener at a caret inserts the pair with the
// caret between.
func (c *Controller) insertPaired(r rune) bool {
	text := c.surf.Text()
	sel := c.surf.Selection()

	if closers[r] && sel.Empty() && sel.Start < len(text) && rune(text[sel.Start]) == r {
		c.moveCaret(types.Caret(sel.Start + 1))
		return true
	}

	close, isOpener := pairs[r]
	if !isOpener {
		return false
	}

	if !sel.Empty() {
		inner := text[sel.Start:sel.End]
		rw := types.Rewrite{Start: sel.Start, End: sel.End, Text: string(r) + inner + string(close)}
		// Keep the wrapped text selected.
		c.apply(rw, types.Selection{Start: sel.Start + 1, End: sel.Start + 1 + len(inner)})
		return true
	}

	rw := types.Rewrite{Start: sel.Start, End: sel.Start, Text: string(r) + string(close)}
	c.apply(rw, types.Caret(sel.Start+1))
	return true
}
