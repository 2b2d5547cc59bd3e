// internal/event/event.go
package event

import "github.com/mvetter/codearea/internal/types"

// Type identifies the kind of event.
type Type int

// Event types flowing through the widget.
const (
	TypeUnknown Type = iota

	// Editing events
	TypeBufferChanged  // fired once per applied range rewrite
	TypeSelectionMoved // fired when the caret or selection moves without an edit

	// File lifecycle
	TypeFileLoaded // fired after a file is read into the surface
	TypeFileSaved  // fired after the surface is written out

	// Application lifecycle
	TypeThemeChanged
	TypeAppQuit
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferChangedData carries the edit record of the rewrite that just landed.
// Subscribers use it to re-highlight and resynchronize scroll; exactly one
// of these is dispatched per editing operation.
type BufferChangedData struct {
	Edit types.Edit
}

// SelectionMovedData carries the new selection.
type SelectionMovedData struct {
	Selection types.Selection
}

// FileLoadedData names the file that was loaded.
type FileLoadedData struct {
	Path string
}

// FileSavedData names the file that was written.
type FileSavedData struct {
	Path string
}

// ThemeChangedData names the newly active theme.
type ThemeChangedData struct {
	Name string
}
