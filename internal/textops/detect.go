// internal/textops/detect.go
package textops

import "strings"

// Detect guesses the tab configuration a document already uses by looking at
// the leading whitespace of its lines, so an opened file keeps its own
// indentation convention instead of the configured one. The vote is simple:
// tab-led lines against space-led lines, and for space indentation the most
// common positive difference between consecutive indent widths. When the
// document offers no evidence the fallback wins unchanged.
func Detect(text string, fallback Tabs) Tabs {
	tabLines := 0
	spaceLines := 0
	deltas := make(map[int]int)

	prev := 0
	for _, line := range strings.Split(text, "\n") {
		if line == "" || line == "\r" {
			continue
		}
		switch line[0] {
		case '\t':
			tabLines++
		case ' ':
			spaceLines++
			n := 0
			for n < len(line) && line[n] == ' ' {
				n++
			}
			if d := n - prev; d > 0 {
				deltas[d]++
			}
			prev = n
		default:
			prev = 0
		}
	}

	if tabLines == 0 && spaceLines == 0 {
		return fallback
	}
	if tabLines >= spaceLines {
		return Tabs{Width: fallback.Width, UseSpaces: false}
	}

	width := fallback.Width
	best := 0
	for d, count := range deltas {
		if count > best || (count == best && d < width) {
			width = d
			best = count
		}
	}
	if width <= 0 {
		width = fallback.Width
	}
	return Tabs{Width: width, UseSpaces: true}
}
