// internal/highlight/highlighter.go

// Package highlight runs tree-sitter over the buffer and turns query
// captures into per-line styled ranges for the overlay renderer. It is the
// external collaborator that gives the widget its semantic value; the widget
// itself only manages raw text and selection offsets.
package highlight

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mvetter/codearea/internal/types"
)

// Result maps line numbers to the styled ranges on that line. Ranges appear
// in capture order; when they overlap, the later (more specific) capture
// wins during drawing.
type Result map[int][]types.StyledRange

// Highlighter owns a tree-sitter parser. Not safe for concurrent use; the
// app runs at most one highlight pass at a time.
type Highlighter struct {
	parser *sitter.Parser
}

// New creates a highlighter.
func New() *Highlighter {
	return &Highlighter{parser: sitter.NewParser()}
}

// Run parses text with the given language and collects highlight captures.
// The whole buffer is reparsed; documents this widget targets are small
// enough that incremental parsing is not worth its bookkeeping.
func (h *Highlighter) Run(ctx context.Context, text string, lang *Language) (Result, error) {
	if lang == nil {
		return nil, fmt.Errorf("no language provided for highlighting")
	}
	query, err := lang.Query()
	if err != nil {
		return nil, err
	}

	h.parser.SetLanguage(lang.Lang)
	tree, err := h.parser.ParseCtx(ctx, nil, []byte(text))
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	defer tree.Close()

	qc := sitter.NewQueryCursor()
	qc.Exec(query, tree.RootNode())

	lines := strings.Split(text, "\n")
	result := make(Result)

	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, capture := range match.Captures {
			name := query.CaptureNameForId(capture.Index)
			addCapture(result, lines, capture.Node, name)
		}
	}
	return result, nil
}

// addCapture records one capture, splitting nodes that span several lines
// into one full-width range per intermediate line.
func addCapture(result Result, lines []string, node *sitter.Node, styleName string) {
	start := node.StartPoint()
	end := node.EndPoint()

	for row := int(start.Row); row <= int(end.Row) && row < len(lines); row++ {
		line := lines[row]

		startByte := 0
		if row == int(start.Row) {
			startByte = int(start.Column)
		}
		endByte := len(line)
		if row == int(end.Row) {
			endByte = int(end.Column)
		}
		if startByte > len(line) {
			startByte = len(line)
		}
		if endByte > len(line) {
			endByte = len(line)
		}

		startCol := utf8.RuneCountInString(line[:startByte])
		endCol := utf8.RuneCountInString(line[:endByte])
		if endCol <= startCol {
			continue // zero-width capture
		}
		result[row] = append(result[row], types.StyledRange{
			StartCol:  startCol,
			EndCol:    endCol,
			StyleName: styleName,
		})
	}
}
