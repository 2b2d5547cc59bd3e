package highlight

import (
	"context"
	"testing"
)

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", "Go"},
		{"dir/app.js", "JavaScript"},
		{"config.json", "JSON"},
		{"notes.txt", ""},
		{"Makefile", ""},
	}
	for _, tt := range tests {
		lang := ForPath(tt.path)
		got := ""
		if lang != nil {
			got = lang.Name
		}
		if got != tt.want {
			t.Errorf("ForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestRunHighlightsGoSource(t *testing.T) {
	src := "package main\n\n// greet says hi\nfunc greet() string {\n\treturn \"hi\"\n}\n"
	h := New()
	result, err := h.Run(context.Background(), src, ForPath("main.go"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !hasStyle(result, 2, "comment") {
		t.Error("line 2 should carry a comment range")
	}
	if !hasStyle(result, 3, "keyword") {
		t.Error("line 3 should carry a keyword range (func)")
	}
	if !hasStyle(result, 3, "function") {
		t.Error("line 3 should carry a function range (greet)")
	}
	if !hasStyle(result, 4, "string") {
		t.Error("line 4 should carry a string range")
	}
}

func TestRunMultiLineComment(t *testing.T) {
	src := "/* one\ntwo */\npackage main\n"
	h := New()
	result, err := h.Run(context.Background(), src, ForPath("x.go"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !hasStyle(result, 0, "comment") || !hasStyle(result, 1, "comment") {
		t.Error("multi-line comment must produce a range on each spanned line")
	}
}

func TestRunNilLanguage(t *testing.T) {
	h := New()
	if _, err := h.Run(context.Background(), "text", nil); err == nil {
		t.Fatal("nil language must error")
	}
}

func hasStyle(r Result, line int, style string) bool {
	for _, sr := range r[line] {
		if sr.StyleName == style {
			return true
		}
	}
	return false
}
