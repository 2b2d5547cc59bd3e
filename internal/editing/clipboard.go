// internal/editing/clipboard.go
package editing

import (
	"github.com/atotto/clipboard"

	"github.com/mvetter/codearea/internal/logger"
	"github.com/mvetter/codearea/internal/types"
)

// Copy places the selected text on the clipboard. It returns false when the
// selection is empty. The internal register is always updated so paste keeps
// working when the system clipboard is disabled or unavailable.
func (c *Controller) Copy() bool {
	text := c.SelectedText()
	if text == "" {
		return false
	}
	c.register = text
	if c.opts.SystemClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			logger.Warnf("editing: system clipboard write failed, using register: %v", err)
		}
	}
	return true
}

// Cut copies the selection then deletes it.
func (c *Controller) Cut() bool {
	if !c.Copy() {
		return false
	}
	sel := c.surf.Selection()
	c.apply(types.Rewrite{Start: sel.Start, End: sel.End}, types.Caret(sel.Start))
	return true
}

// Paste inserts clipboard contents at the selection. System clipboard wins
// when enabled and readable; otherwise the internal register is used.
func (c *Controller) Paste() bool {
	text := c.register
	if c.opts.SystemClipboard {
		if sys, err := clipboard.ReadAll(); err == nil && sys != "" {
			text = sys
		} else if err != nil {
			logger.Debugf("editing: system clipboard read failed, using register: %v", err)
		}
	}
	if text == "" {
		return false
	}
	c.Insert(text)
	return true
}
