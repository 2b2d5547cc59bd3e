// internal/editing/controller.go

// Package editing turns key-level intents (insert, delete, tab, newline,
// clipboard) into single range rewrites on a Surface, dispatching exactly one
// buffer-changed event per applied rewrite.
package editing

import (
	"unicode/utf8"

	"github.com/mvetter/codearea/internal/event"
	"github.com/mvetter/codearea/internal/surface"
	"github.com/mvetter/codearea/internal/textops"
	"github.com/mvetter/codearea/internal/types"
)

// Options toggles the editing conveniences.
type Options struct {
	AutoCloseBrackets bool
	AutoIndent        bool
	SystemClipboard   bool
}

// Controller binds a surface, an event manager, and the tab configuration.
type Controller struct {
	surf   surface.Surface
	events *event.Manager
	tabs   textops.Tabs
	opts   Options

	// register is the clipboard fallback when the system clipboard is
	// disabled or unavailable.
	register string
}

// New creates a controller. A nil event manager is allowed; dispatches are
// then skipped, which keeps headless tests small.
func New(surf surface.Surface, events *event.Manager, tabs textops.Tabs, opts Options) *Controller {
	if !tabs.Valid() {
		tabs = textops.DefaultTabs()
	}
	return &Controller{surf: surf, events: events, tabs: tabs, opts: opts}
}

// Tabs returns the active tab configuration.
func (c *Controller) Tabs() textops.Tabs {
	return c.tabs
}

// SetTabs swaps the tab configuration, e.g. after indent auto-detection.
func (c *Controller) SetTabs(tabs textops.Tabs) {
	if tabs.Valid() {
		c.tabs = tabs
	}
}

// Indent handles the Tab key: one tab stop at the caret, or a block
// re-indent for full-line and multi-line selections.
func (c *Controller) Indent() {
	rw, sel := textops.Indent(c.surf.Text(), c.surf.Selection(), c.tabs)
	c.apply(rw, sel)
}

// Outdent handles Shift-Tab. A fully dedented range is a true no-op: no
// rewrite is applied and no change event goes out.
func (c *Controller) Outdent() {
	rw, sel, changed := textops.Outdent(c.surf.Text(), c.surf.Selection(), c.tabs)
	if !changed {
		return
	}
	c.apply(rw, sel)
}

// InsertRune inserts a typed character, routing brackets and quotes through
// the auto-closing rules.
func (c *Controller) InsertRune(r rune) {
	if c.opts.AutoCloseBrackets && c.insertPaired(r) {
		return
	}
	c.Insert(string(r))
}

// Insert replaces the selection with text and places the caret after it.
func (c *Controller) Insert(text string) {
	sel := c.surf.Selection()
	rw := types.Rewrite{Start: sel.Start, End: sel.End, Text: text}
	c.apply(rw, types.Caret(sel.Start+len(text)))
}

// InsertNewline breaks the line at the caret. With auto-indent enabled the
// new line continues the leading whitespace of the current one (capped at
// the caret, so breaking inside the indentation does not over-indent).
func (c *Controller) InsertNewline() {
	if !c.opts.AutoIndent {
		c.Insert("\n")
		return
	}
	text := c.surf.Text()
	sel := c.surf.Selection()
	ls := textops.LineStart(text, sel.Start)
	j := ls
	for j < sel.Start && (text[j] == ' ' || text[j] == '\t') {
		j++
	}
	c.Insert("\n" + text[ls:j])
}

// Backspace deletes the selection, or the rune before the caret. Between an
// empty auto-closed pair it removes both characters.
func (c *Controller) Backspace() {
	text := c.surf.Text()
	sel := c.surf.Selection()
	if !sel.Empty() {
		c.apply(types.Rewrite{Start: sel.Start, End: sel.End}, types.Caret(sel.Start))
		return
	}
	if sel.Start == 0 {
		return
	}
	if c.opts.AutoCloseBrackets && sel.Start < len(text) {
		if close, ok := pairs[rune(text[sel.Start-1])]; ok && rune(text[sel.Start]) == close {
			c.apply(types.Rewrite{Start: sel.Start - 1, End: sel.Start + 1}, types.Caret(sel.Start-1))
			return
		}
	}
	_, size := utf8.DecodeLastRuneInString(text[:sel.Start])
	c.apply(types.Rewrite{Start: sel.Start - size, End: sel.Start}, types.Caret(sel.Start-size))
}

// DeleteForward deletes the selection, or the rune after the caret.
func (c *Controller) DeleteForward() {
	text := c.surf.Text()
	sel := c.surf.Selection()
	if !sel.Empty() {
		c.apply(types.Rewrite{Start: sel.Start, End: sel.End}, types.Caret(sel.Start))
		return
	}
	if sel.Start >= len(text) {
		return
	}
	_, size := utf8.DecodeRuneInString(text[sel.Start:])
	c.apply(types.Rewrite{Start: sel.Start, End: sel.Start + size}, types.Caret(sel.Start))
}

// SelectedText returns the text under the selection.
func (c *Controller) SelectedText() string {
	sel := c.surf.Selection()
	return c.surf.Text()[sel.Start:sel.End]
}

// apply performs the rewrite, stores the selection, and dispatches the one
// change notification for this operation.
func (c *Controller) apply(rw types.Rewrite, sel types.Selection) {
	edit := c.surf.Apply(rw)
	c.surf.SetSelection(sel)
	if c.events != nil {
		c.events.Dispatch(event.TypeBufferChanged, event.BufferChangedData{Edit: edit})
	}
}

// moveCaret repositions the selection without an edit.
func (c *Controller) moveCaret(sel types.Selection) {
	c.surf.SetSelection(sel)
	if c.events != nil {
		c.events.Dispatch(event.TypeSelectionMoved, event.SelectionMovedData{Selection: c.surf.Selection()})
	}
}
