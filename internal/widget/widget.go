// internal/widget/widget.go

// Package widget is the editing-widget host: it owns the text surface and
// the editing controller, maps key events onto them, keeps the viewport in
// sync with the caret, and renders the text with its highlight overlay.
package widget

import (
	"github.com/gdamore/tcell/v2"

	"github.com/mvetter/codearea/internal/editing"
	"github.com/mvetter/codearea/internal/event"
	"github.com/mvetter/codearea/internal/highlight"
	"github.com/mvetter/codearea/internal/surface"
	"github.com/mvetter/codearea/internal/textops"
	"github.com/mvetter/codearea/internal/theme"
	"github.com/mvetter/codearea/internal/types"
)

// Options configures the widget.
type Options struct {
	Tabs       textops.Tabs
	ScrollOff  int // lines of context kept visible around the caret
	ShowGutter bool
	Editing    editing.Options
}

// Widget hosts a text surface with an overlay renderer.
type Widget struct {
	surf   *surface.Memory
	ctrl   *editing.Controller
	events *event.Manager
	theme  *theme.Theme

	highlights highlight.Result

	opts Options

	// anchor is the fixed end of a shift-extended selection, -1 when the
	// selection is not being extended.
	anchor int

	// Viewport state. viewW/viewH are remembered from the last Draw so key
	// handling can scroll before the next frame.
	scrollRow int
	scrollCol int
	viewW     int
	viewH     int
}

// New creates a widget over the given initial text.
func New(text string, events *event.Manager, th *theme.Theme, opts Options) *Widget {
	if !opts.Tabs.Valid() {
		opts.Tabs = textops.DefaultTabs()
	}
	surf := surface.NewMemory(text)
	w := &Widget{
		surf:   surf,
		ctrl:   editing.New(surf, events, opts.Tabs, opts.Editing),
		events: events,
		theme:  th,
		opts:   opts,
		anchor: -1,
		viewW:  80,
		viewH:  24,
	}
	return w
}

// Surface exposes the underlying text surface.
func (w *Widget) Surface() *surface.Memory {
	return w.surf
}

// Controller exposes the editing controller.
func (w *Widget) Controller() *editing.Controller {
	return w.ctrl
}

// SetTheme swaps the active theme.
func (w *Widget) SetTheme(th *theme.Theme) {
	w.theme = th
}

// SetHighlights installs a new overlay result (from the highlight manager).
func (w *Widget) SetHighlights(result highlight.Result) {
	w.highlights = result
}

// SetText replaces the document, resetting the viewport and selection.
func (w *Widget) SetText(text string) {
	w.surf.Reset(text)
	w.highlights = nil
	w.anchor = -1
	w.scrollRow, w.scrollCol = 0, 0
}

// Caret returns the 0-based (row, rune column) of the selection head.
func (w *Widget) Caret() (int, int) {
	return rowCol(w.surf.Text(), w.head())
}

// HandleKey processes one key event. It returns false for keys the widget
// does not handle so the host application can act on them.
func (w *Widget) HandleKey(ev *tcell.EventKey) bool {
	shift := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyTab:
		w.anchor = -1
		w.ctrl.Indent()
	case tcell.KeyBacktab:
		w.anchor = -1
		w.ctrl.Outdent()
	case tcell.KeyEnter:
		w.anchor = -1
		w.ctrl.InsertNewline()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		w.anchor = -1
		w.ctrl.Backspace()
	case tcell.KeyDelete:
		w.anchor = -1
		w.ctrl.DeleteForward()
	case tcell.KeyLeft:
		w.moveHorizontal(-1, shift)
	case tcell.KeyRight:
		w.moveHorizontal(1, shift)
	case tcell.KeyUp:
		w.moveVertical(-1, shift)
	case tcell.KeyDown:
		w.moveVertical(1, shift)
	case tcell.KeyPgUp:
		w.moveVertical(-w.viewH, shift)
	case tcell.KeyPgDn:
		w.moveVertical(w.viewH, shift)
	case tcell.KeyHome:
		w.moveTo(textops.LineStart(w.surf.Text(), w.head()), shift)
	case tcell.KeyEnd:
		w.moveTo(textops.LineEnd(w.surf.Text(), w.head()), shift)
	case tcell.KeyCtrlA:
		w.anchor = 0
		w.surf.SetSelection(types.Selection{Start: 0, End: len(w.surf.Text())})
	case tcell.KeyCtrlC:
		w.ctrl.Copy()
	case tcell.KeyCtrlX:
		w.anchor = -1
		w.ctrl.Cut()
	case tcell.KeyCtrlV:
		w.anchor = -1
		w.ctrl.Paste()
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return false
		}
		w.anchor = -1
		w.ctrl.InsertRune(ev.Rune())
	default:
		return false
	}

	w.ScrollToCaret()
	return true
}

// head returns the moving end of the selection: the end opposite the anchor,
// or the caret itself when nothing is extended.
func (w *Widget) head() int {
	sel := w.surf.Selection()
	if w.anchor < 0 || sel.Empty() {
		return sel.Start
	}
	if w.anchor == sel.Start {
		return sel.End
	}
	return sel.Start
}

// moveTo places the selection head, extending from the anchor when shift is
// held and collapsing otherwise.
func (w *Widget) moveTo(off int, extend bool) {
	if extend {
		if w.anchor < 0 {
			w.anchor = w.head()
		}
		w.surf.SetSelection(types.Selection{Start: w.anchor, End: off})
	} else {
		w.anchor = -1
		w.surf.SetSelection(types.Caret(off))
	}
	if w.events != nil {
		w.events.Dispatch(event.TypeSelectionMoved, event.SelectionMovedData{Selection: w.surf.Selection()})
	}
}

func (w *Widget) moveHorizontal(dir int, extend bool) {
	text := w.surf.Text()
	sel := w.surf.Selection()

	// A plain arrow on a selection collapses it to the matching edge.
	if !extend && !sel.Empty() {
		if dir < 0 {
			w.moveTo(sel.Start, false)
		} else {
			w.moveTo(sel.End, false)
		}
		return
	}

	off := w.head()
	if dir < 0 {
		off = prevRuneStart(text, off)
	} else {
		off = nextRuneStart(text, off)
	}
	w.moveTo(off, extend)
}

func (w *Widget) moveVertical(rows int, extend bool) {
	text := w.surf.Text()
	row, col := rowCol(text, w.head())
	w.moveTo(offsetAt(text, row+rows, col), extend)
}

// ScrollToCaret adjusts the viewport so the caret stays visible with the
// configured scroll-off margin. Called after every handled key; the app also
// calls it on buffer-changed notifications so external edits stay in view.
func (w *Widget) ScrollToCaret() {
	text := w.surf.Text()
	row, col := rowCol(text, w.head())
	vcol := visualCol(lineAt(text, w.head()), col, w.opts.Tabs.Width)

	off := w.opts.ScrollOff
	if off > w.viewH/2 {
		off = w.viewH / 2
	}

	if row < w.scrollRow+off {
		w.scrollRow = row - off
	}
	if row > w.scrollRow+w.viewH-1-off {
		w.scrollRow = row - w.viewH + 1 + off
	}
	maxRow := lineCount(text) - 1
	if w.scrollRow > maxRow {
		w.scrollRow = maxRow
	}
	if w.scrollRow < 0 {
		w.scrollRow = 0
	}

	if vcol < w.scrollCol {
		w.scrollCol = vcol
	}
	if vcol > w.scrollCol+w.viewW-1 {
		w.scrollCol = vcol - w.viewW + 1
	}
	if w.scrollCol < 0 {
		w.scrollCol = 0
	}
}
