// internal/surface/memory.go
package surface

import "github.com/mvetter/codearea/internal/types"

// Memory is the in-memory Surface implementation backing the widget. It is
// also what the tests edit against.
type Memory struct {
	text     string
	sel      types.Selection
	modified bool
}

// NewMemory creates a surface holding the given text with the caret at 0.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

func (m *Memory) Text() string {
	return m.text
}

func (m *Memory) Selection() types.Selection {
	return m.sel
}

func (m *Memory) SetSelection(sel types.Selection) {
	m.sel = sel.Clamp(len(m.text))
}

// Apply replaces the rewrite's range with its text in one step. Out-of-range
// rewrites are clamped rather than rejected; the transforms guarantee valid
// ranges but the surface stays safe regardless.
func (m *Memory) Apply(rw types.Rewrite) types.Edit {
	span := types.Selection{Start: rw.Start, End: rw.End}.Clamp(len(m.text))
	rw.Start, rw.End = span.Start, span.End

	m.text = rw.Apply(m.text)
	m.sel = m.sel.Clamp(len(m.text))
	m.modified = true
	return types.EditFor(rw)
}

// Reset replaces the whole contents, collapses the selection to 0, and
// clears the modified flag. Used when a file is (re)loaded.
func (m *Memory) Reset(text string) {
	m.text = text
	m.sel = types.Selection{}
	m.modified = false
}

// Modified reports whether the surface changed since the last Reset or
// ClearModified.
func (m *Memory) Modified() bool {
	return m.modified
}

// ClearModified marks the current contents as saved.
func (m *Memory) ClearModified() {
	m.modified = false
}
