// internal/surface/surface.go

// Package surface abstracts the live text control the widget edits. The
// transforms in textops never touch a control directly; they produce range
// rewrites that a Surface applies atomically. Keeping the abstraction this
// small is what lets the editing logic run headless in tests against a plain
// in-memory buffer.
package surface

import "github.com/mvetter/codearea/internal/types"

// Surface is the minimal contract between the editing layer and whatever
// holds the text: buffer contents, a selection, and atomic range rewrites.
type Surface interface {
	// Text returns the full buffer contents.
	Text() string

	// Selection returns the current selection (normalized, in bounds).
	Selection() types.Selection

	// SetSelection stores a new selection, clamped to the buffer length.
	SetSelection(sel types.Selection)

	// Apply performs one atomic range rewrite and returns the resulting
	// edit record. The stored selection is re-clamped to the new length.
	Apply(rw types.Rewrite) types.Edit
}
