package textops

import (
	"testing"

	"github.com/mvetter/codearea/internal/types"
)

var softTabs = Tabs{Width: 4, UseSpaces: true}
var hardTabs = Tabs{Width: 4, UseSpaces: false}

func applyIndent(t *testing.T, text string, sel types.Selection, tabs Tabs) (string, types.Selection) {
	t.Helper()
	rw, newSel := Indent(text, sel, tabs)
	return rw.Apply(text), newSel
}

func TestIndentCaretPadsToNextStop(t *testing.T) {
	tests := []struct {
		text     string
		caret    int
		wantText string
		wantPos  int
	}{
		{"abc", 3, "abc ", 4},    // column 3, one space reaches the stop
		{"ab", 2, "ab  ", 4},     // column 2, two spaces
		{"abc", 0, "    abc", 4}, // column 0, full stop
		{"", 0, "    ", 4},
	}
	for _, tt := range tests {
		got, sel := applyIndent(t, tt.text, types.Caret(tt.caret), softTabs)
		if got != tt.wantText {
			t.Errorf("Indent(%q@%d) = %q, want %q", tt.text, tt.caret, got, tt.wantText)
		}
		if !sel.Empty() || sel.Start != tt.wantPos {
			t.Errorf("Indent(%q@%d) caret = %+v, want caret at %d", tt.text, tt.caret, sel, tt.wantPos)
		}
	}
}

func TestIndentCaretHardTab(t *testing.T) {
	got, sel := applyIndent(t, "abc", types.Caret(3), hardTabs)
	if got != "abc\t" {
		t.Fatalf("text = %q, want %q", got, "abc\t")
	}
	if sel != types.Caret(4) {
		t.Fatalf("caret = %+v, want caret at 4", sel)
	}
}

// A sub-line selection is not block mode: the selected text is replaced by
// the padding and the caret lands right after it.
func TestIndentReplacesSubLineSelection(t *testing.T) {
	got, sel := applyIndent(t, "abcdef", types.Selection{Start: 1, End: 3}, softTabs)
	if got != "a   def" {
		t.Fatalf("text = %q, want %q", got, "a   def")
	}
	if sel != types.Caret(4) {
		t.Fatalf("caret = %+v, want caret at 4", sel)
	}
}

func TestIndentBlockMultiLine(t *testing.T) {
	got, sel := applyIndent(t, "a\nb", types.Selection{Start: 0, End: 3}, softTabs)
	if got != "    a\n    b" {
		t.Fatalf("text = %q, want %q", got, "    a\n    b")
	}
	if sel.Start != 0 || sel.End != len(got) {
		t.Fatalf("selection = %+v, want [0,%d]", sel, len(got))
	}
}

func TestIndentBlockFullSingleLine(t *testing.T) {
	got, sel := applyIndent(t, "ab", types.Selection{Start: 0, End: 2}, softTabs)
	if got != "    ab" {
		t.Fatalf("text = %q, want %q", got, "    ab")
	}
	if (sel != types.Selection{Start: 0, End: 6}) {
		t.Fatalf("selection = %+v, want [0,6]", sel)
	}
}

// Already-aligned lines still advance a full stop: indent must always grow.
func TestIndentBlockAdvancesAlignedLine(t *testing.T) {
	got, _ := applyIndent(t, "    x", types.Selection{Start: 0, End: 5}, softTabs)
	if got != "        x" {
		t.Fatalf("text = %q, want %q", got, "        x")
	}
}

func TestIndentBlockSkipsBlankLines(t *testing.T) {
	got, _ := applyIndent(t, "a\n\nb", types.Selection{Start: 0, End: 4}, softTabs)
	if got != "    a\n\n    b" {
		t.Fatalf("text = %q, want %q", got, "    a\n\n    b")
	}
}

// A whitespace-only line is not blank: its run is re-rendered like any other.
func TestIndentBlockNormalizesWhitespaceOnlyLine(t *testing.T) {
	got, _ := applyIndent(t, "a\n  \nb", types.Selection{Start: 0, End: 6}, softTabs)
	if got != "    a\n    \n    b" {
		t.Fatalf("text = %q, want %q", got, "    a\n    \n    b")
	}
}

func TestIndentBlockHardTabs(t *testing.T) {
	got, _ := applyIndent(t, "\tx\ny", types.Selection{Start: 0, End: 4}, hardTabs)
	if got != "\t\tx\n\ty" {
		t.Fatalf("text = %q, want %q", got, "\t\tx\n\ty")
	}
}

// Block indent grows every non-blank line's width by at least 1 and at most
// one tab width.
func TestIndentBlockGrowthBounds(t *testing.T) {
	lines := []string{"x", " x", "  x", "   x", "    x", "\tx", " \tx"}
	for _, line := range lines {
		before := LeadingWidth(line, softTabs.Width)
		got, _ := applyIndent(t, line, types.Selection{Start: 0, End: len(line)}, softTabs)
		after := LeadingWidth(got, softTabs.Width)
		grow := after - before
		if grow < 1 || grow > softTabs.Width {
			t.Errorf("line %q: width %d -> %d, growth %d outside [1,%d]", line, before, after, grow, softTabs.Width)
		}
	}
}

func TestOutdentScenario(t *testing.T) {
	rw, sel, changed := Outdent("    x", types.Caret(5), softTabs)
	if !changed {
		t.Fatal("expected a change")
	}
	got := rw.Apply("    x")
	if got != "x" {
		t.Fatalf("text = %q, want %q", got, "x")
	}
	if (sel != types.Selection{Start: 0, End: 1}) {
		t.Fatalf("selection = %+v, want [0,1]", sel)
	}

	// A second outdent has nothing left to remove and must be a no-op.
	_, sel2, changed := Outdent(got, types.Caret(1), softTabs)
	if changed {
		t.Fatal("outdent of zero-indented line must be a no-op")
	}
	if sel2 != types.Caret(1) {
		t.Fatalf("no-op must keep the selection, got %+v", sel2)
	}
}

func TestOutdentHardTab(t *testing.T) {
	rw, _, changed := Outdent("\tx", types.Caret(2), hardTabs)
	if !changed {
		t.Fatal("expected a change")
	}
	if got := rw.Apply("\tx"); got != "x" {
		t.Fatalf("text = %q, want %q", got, "x")
	}
}

func TestOutdentMultiLine(t *testing.T) {
	text := "    a\n        b"
	rw, sel, changed := Outdent(text, types.Selection{Start: 0, End: len(text)}, softTabs)
	if !changed {
		t.Fatal("expected a change")
	}
	got := rw.Apply(text)
	if got != "a\n    b" {
		t.Fatalf("text = %q, want %q", got, "a\n    b")
	}
	if sel.Start != 0 || sel.End != len(got) {
		t.Fatalf("selection = %+v, want [0,%d]", sel, len(got))
	}
}

// Outdent has no caret-only mode: a caret in the middle of a line still
// dedents the whole line.
func TestOutdentWholeLineFromMidCaret(t *testing.T) {
	rw, _, changed := Outdent("    abc", types.Caret(7), softTabs)
	if !changed {
		t.Fatal("expected a change")
	}
	if got := rw.Apply("    abc"); got != "abc" {
		t.Fatalf("text = %q, want %q", got, "abc")
	}
}

// Partial-stop leading runs are cleared entirely; full-stop multiples lose
// exactly one stop.
func TestOutdentClamping(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"   x", "x"},        // below one stop
		{"       x", "x"},    // between one and two stops
		{"        x", "    x"}, // exactly two stops
	}
	for _, tt := range tests {
		rw, _, changed := Outdent(tt.text, types.Caret(len(tt.text)), softTabs)
		if !changed {
			t.Errorf("Outdent(%q): expected a change", tt.text)
			continue
		}
		if got := rw.Apply(tt.text); got != tt.want {
			t.Errorf("Outdent(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

// A caret at the start of a line dedents that line, not the one before it.
func TestOutdentCaretAtLineStart(t *testing.T) {
	text := "a\n    b"
	rw, sel, changed := Outdent(text, types.Caret(2), softTabs)
	if !changed {
		t.Fatal("expected a change")
	}
	if got := rw.Apply(text); got != "a\nb" {
		t.Fatalf("text = %q, want %q", got, "a\nb")
	}
	if (sel != types.Selection{Start: 2, End: 3}) {
		t.Fatalf("selection = %+v, want [2,3]", sel)
	}
}

// Carets sitting right after a newline with nothing to dedent clamp to a
// no-op; they must never fail.
func TestOutdentCaretAfterNewlineBoundaries(t *testing.T) {
	tests := []struct {
		text  string
		caret int
	}{
		{"a\nb", 2},   // unindented line
		{"a\n", 2},    // caret at buffer end after a trailing newline
		{"a\n\nb", 2}, // empty line
	}
	for _, tt := range tests {
		if _, _, changed := Outdent(tt.text, types.Caret(tt.caret), softTabs); changed {
			t.Errorf("Outdent(%q@%d): expected no-op", tt.text, tt.caret)
		}
	}
}

// A selection end sitting exactly on a line start does not pull that line
// into the outdent range.
func TestOutdentSelectionEndAtLineStart(t *testing.T) {
	text := "    a\n    b"
	rw, _, changed := Outdent(text, types.Selection{Start: 0, End: 6}, softTabs)
	if !changed {
		t.Fatal("expected a change")
	}
	if got := rw.Apply(text); got != "a\n    b" {
		t.Fatalf("text = %q, want %q", got, "a\n    b")
	}
}

func TestOutdentNoopCases(t *testing.T) {
	for _, text := range []string{"", "x", "x\ny", "a\n\nb"} {
		if _, _, changed := Outdent(text, types.Selection{Start: 0, End: len(text)}, softTabs); changed {
			t.Errorf("Outdent(%q): expected no-op", text)
		}
	}
}

// Indent then outdent restores the original width for lines whose width is a
// multiple of the tab width.
func TestIndentOutdentRoundTrip(t *testing.T) {
	for _, line := range []string{"x", "    x", "        x"} {
		before := LeadingWidth(line, softTabs.Width)
		indented, sel := applyIndent(t, line, types.Selection{Start: 0, End: len(line)}, softTabs)
		rw, _, changed := Outdent(indented, sel, softTabs)
		if !changed {
			t.Fatalf("outdent after indent of %q must change", line)
		}
		restored := rw.Apply(indented)
		if after := LeadingWidth(restored, softTabs.Width); after != before {
			t.Errorf("round trip of %q: width %d -> %d", line, before, after)
		}
	}
}
