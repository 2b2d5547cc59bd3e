// internal/widget/drawing.go
package widget

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Draw renders the widget into the given screen rectangle and positions the
// terminal cursor on the caret. The rectangle's dimensions are remembered so
// subsequent key handling scrolls against the real viewport size.
func (w *Widget) Draw(screen tcell.Screen, x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	text := w.surf.Text()
	lines := strings.Split(text, "\n")

	gutterW := 0
	if w.opts.ShowGutter {
		gutterW = numDigits(len(lines)) + 1
		if gutterW >= width {
			gutterW = 0 // screen too narrow, drop the gutter
		}
	}
	w.viewW = width - gutterW
	w.viewH = height

	defStyle := w.theme.GetStyle("Default")
	selStyle := w.theme.GetStyle("Selection")
	gutterStyle := w.theme.GetStyle("Gutter")
	gutterActive := w.theme.GetStyle("GutterActive")

	sel := w.surf.Selection()
	selStartRow, selStartCol := rowCol(text, sel.Start)
	selEndRow, selEndCol := rowCol(text, sel.End)
	caretRow, caretCol := w.Caret()

	inSelection := func(row, col int) bool {
		if sel.Empty() {
			return false
		}
		if row < selStartRow || row > selEndRow {
			return false
		}
		if row == selStartRow && col < selStartCol {
			return false
		}
		if row == selEndRow && col >= selEndCol {
			return false
		}
		return true
	}

	for screenRow := 0; screenRow < height; screenRow++ {
		docRow := w.scrollRow + screenRow
		for cx := x; cx < x+width; cx++ {
			screen.SetContent(cx, y+screenRow, ' ', nil, defStyle)
		}
		if docRow >= len(lines) {
			continue
		}
		line := lines[docRow]

		if gutterW > 0 {
			style := gutterStyle
			if docRow == caretRow {
				style = gutterActive
			}
			num := strconv.Itoa(docRow + 1)
			startX := x + gutterW - 1 - len(num)
			for i, r := range num {
				screen.SetContent(startX+i, y+screenRow, r, nil, style)
			}
		}

		vcol := 0
		runeIdx := 0
		gr := uniseg.NewGraphemes(line)
		for gr.Next() {
			style := w.styleAt(docRow, runeIdx, defStyle)
			if inSelection(docRow, runeIdx) {
				style = selStyle
			}

			runes := gr.Runes()
			if len(runes) == 1 && runes[0] == '\t' {
				// Expand the tab to its stop with styled blanks.
				next := vcol + w.opts.Tabs.Width - vcol%w.opts.Tabs.Width
				for ; vcol < next; vcol++ {
					w.setCell(screen, x+gutterW, y, vcol, screenRow, ' ', nil, style)
				}
			} else {
				w.setCell(screen, x+gutterW, y, vcol, screenRow, runes[0], runes[1:], style)
				vcol += gr.Width()
			}
			runeIdx += len(runes)
		}

		// A line whose newline is inside the selection shows one selected
		// cell past its end so multi-line selections read as contiguous.
		if !sel.Empty() && docRow >= selStartRow && docRow < selEndRow {
			w.setCell(screen, x+gutterW, y, vcol, screenRow, ' ', nil, selStyle)
		}
	}

	// Caret
	caretV := visualCol(lines[caretRow], caretCol, w.opts.Tabs.Width)
	cx := x + gutterW + caretV - w.scrollCol
	cy := y + caretRow - w.scrollRow
	if cx >= x+gutterW && cx < x+width && cy >= y && cy < y+height {
		screen.ShowCursor(cx, cy)
	} else {
		screen.HideCursor()
	}
}

// setCell writes one cell, honoring horizontal scroll and clipping.
func (w *Widget) setCell(screen tcell.Screen, originX, originY, vcol, screenRow int, r rune, comb []rune, style tcell.Style) {
	sx := originX + vcol - w.scrollCol
	if vcol < w.scrollCol || sx >= originX+w.viewW {
		return
	}
	screen.SetContent(sx, originY+screenRow, r, comb, style)
}

// styleAt resolves the overlay style for a cell; the last matching range
// wins so specific captures override generic ones.
func (w *Widget) styleAt(row, runeIdx int, def tcell.Style) tcell.Style {
	name := ""
	for _, sr := range w.highlights[row] {
		if runeIdx >= sr.StartCol && runeIdx < sr.EndCol {
			name = sr.StyleName
		}
	}
	if name == "" {
		return def
	}
	return w.theme.GetStyle(name)
}

func numDigits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
