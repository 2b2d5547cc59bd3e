package editing

import (
	"testing"

	"github.com/mvetter/codearea/internal/event"
	"github.com/mvetter/codearea/internal/surface"
	"github.com/mvetter/codearea/internal/textops"
	"github.com/mvetter/codearea/internal/types"
)

type fixture struct {
	surf    *surface.Memory
	ctrl    *Controller
	changes int
	moves   int
}

func newFixture(t *testing.T, text string, opts Options) *fixture {
	t.Helper()
	f := &fixture{surf: surface.NewMemory(text)}
	events := event.NewManager()
	events.Subscribe(event.TypeBufferChanged, func(event.Event) bool {
		f.changes++
		return false
	})
	events.Subscribe(event.TypeSelectionMoved, func(event.Event) bool {
		f.moves++
		return false
	})
	f.ctrl = New(f.surf, events, textops.Tabs{Width: 4, UseSpaces: true}, opts)
	return f
}

func TestIndentDispatchesOneChange(t *testing.T) {
	f := newFixture(t, "a\nb\nc", Options{})
	f.surf.SetSelection(types.Selection{Start: 0, End: 5})
	f.ctrl.Indent()

	if f.surf.Text() != "    a\n    b\n    c" {
		t.Fatalf("text = %q", f.surf.Text())
	}
	// Three lines changed but the host must see a single mutation.
	if f.changes != 1 {
		t.Fatalf("change events = %d, want 1", f.changes)
	}
}

func TestOutdentNoopDispatchesNothing(t *testing.T) {
	f := newFixture(t, "a\nb", Options{})
	f.surf.SetSelection(types.Selection{Start: 0, End: 3})
	f.ctrl.Outdent()

	if f.surf.Text() != "a\nb" {
		t.Fatalf("text = %q, want unchanged", f.surf.Text())
	}
	if f.changes != 0 {
		t.Fatalf("change events = %d, want 0", f.changes)
	}
}

func TestOutdentAppliesAndNotifies(t *testing.T) {
	f := newFixture(t, "    a", Options{})
	f.surf.SetSelection(types.Caret(5))
	f.ctrl.Outdent()

	if f.surf.Text() != "a" {
		t.Fatalf("text = %q, want %q", f.surf.Text(), "a")
	}
	if f.changes != 1 {
		t.Fatalf("change events = %d, want 1", f.changes)
	}
}

func TestInsertRunePlain(t *testing.T) {
	f := newFixture(t, "ac", Options{})
	f.surf.SetSelection(types.Caret(1))
	f.ctrl.InsertRune('b')

	if f.surf.Text() != "abc" {
		t.Fatalf("text = %q", f.surf.Text())
	}
	if got := f.surf.Selection(); got != types.Caret(2) {
		t.Fatalf("caret = %+v, want 2", got)
	}
}

func TestInsertReplacesSelection(t *testing.T) {
	f := newFixture(t, "hello world", Options{})
	f.surf.SetSelection(types.Selection{Start: 6, End: 11})
	f.ctrl.Insert("there")

	if f.surf.Text() != "hello there" {
		t.Fatalf("text = %q", f.surf.Text())
	}
	if f.changes != 1 {
		t.Fatalf("change events = %d, want 1", f.changes)
	}
}

func TestInsertNewlineContinuesIndent(t *testing.T) {
	f := newFixture(t, "    ab", Options{AutoIndent: true})
	f.surf.SetSelection(types.Caret(6))
	f.ctrl.InsertNewline()

	if f.surf.Text() != "    ab\n    " {
		t.Fatalf("text = %q", f.surf.Text())
	}
	if got := f.surf.Selection(); got != types.Caret(11) {
		t.Fatalf("caret = %+v, want 11", got)
	}
}

// Breaking inside the leading whitespace only carries the part before the
// caret onto the new line.
func TestInsertNewlineInsideIndent(t *testing.T) {
	f := newFixture(t, "    x", Options{AutoIndent: true})
	f.surf.SetSelection(types.Caret(2))
	f.ctrl.InsertNewline()

	if f.surf.Text() != "  \n    x" {
		t.Fatalf("text = %q", f.surf.Text())
	}
}

func TestInsertNewlinePlain(t *testing.T) {
	f := newFixture(t, "    ab", Options{})
	f.surf.SetSelection(types.Caret(6))
	f.ctrl.InsertNewline()

	if f.surf.Text() != "    ab\n" {
		t.Fatalf("text = %q", f.surf.Text())
	}
}

func TestBackspace(t *testing.T) {
	f := newFixture(t, "abc", Options{})
	f.surf.SetSelection(types.Caret(2))
	f.ctrl.Backspace()

	if f.surf.Text() != "ac" {
		t.Fatalf("text = %q", f.surf.Text())
	}
	if got := f.surf.Selection(); got != types.Caret(1) {
		t.Fatalf("caret = %+v, want 1", got)
	}

	// At offset zero there is nothing to delete and nothing to announce.
	f.surf.SetSelection(types.Caret(0))
	before := f.changes
	f.ctrl.Backspace()
	if f.changes != before {
		t.Fatal("backspace at 0 must not dispatch")
	}
}

func TestBackspaceMultibyte(t *testing.T) {
	f := newFixture(t, "aé", Options{})
	f.surf.SetSelection(types.Caret(3)) // after the two-byte rune
	f.ctrl.Backspace()

	if f.surf.Text() != "a" {
		t.Fatalf("text = %q", f.surf.Text())
	}
}

func TestBackspaceSelection(t *testing.T) {
	f := newFixture(t, "abcdef", Options{})
	f.surf.SetSelection(types.Selection{Start: 1, End: 4})
	f.ctrl.Backspace()

	if f.surf.Text() != "aef" {
		t.Fatalf("text = %q", f.surf.Text())
	}
}

func TestDeleteForward(t *testing.T) {
	f := newFixture(t, "abc", Options{})
	f.surf.SetSelection(types.Caret(1))
	f.ctrl.DeleteForward()

	if f.surf.Text() != "ac" {
		t.Fatalf("text = %q", f.surf.Text())
	}

	f.surf.SetSelection(types.Caret(2))
	before := f.changes
	f.ctrl.DeleteForward()
	if f.changes != before {
		t.Fatal("delete at end must not dispatch")
	}
}

func TestClipboardRegisterFallback(t *testing.T) {
	f := newFixture(t, "hello world", Options{})
	f.surf.SetSelection(types.Selection{Start: 0, End: 5})

	if !f.ctrl.Copy() {
		t.Fatal("copy of non-empty selection must succeed")
	}
	f.surf.SetSelection(types.Caret(11))
	if !f.ctrl.Paste() {
		t.Fatal("paste from register must succeed")
	}
	if f.surf.Text() != "hello worldhello" {
		t.Fatalf("text = %q", f.surf.Text())
	}
}

func TestCut(t *testing.T) {
	f := newFixture(t, "hello world", Options{})
	f.surf.SetSelection(types.Selection{Start: 5, End: 11})
	if !f.ctrl.Cut() {
		t.Fatal("cut of non-empty selection must succeed")
	}
	if f.surf.Text() != "hello" {
		t.Fatalf("text = %q", f.surf.Text())
	}
	f.ctrl.Paste()
	if f.surf.Text() != "hello world" {
		t.Fatalf("text after paste = %q", f.surf.Text())
	}
}

func TestCopyEmptySelection(t *testing.T) {
	f := newFixture(t, "abc", Options{})
	f.surf.SetSelection(types.Caret(1))
	if f.ctrl.Copy() {
		t.Fatal("copy of empty selection must report false")
	}
}
