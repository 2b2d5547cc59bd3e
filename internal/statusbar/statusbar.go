// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleModified  tcell.Style
	StyleMessage   tcell.Style
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults; the app normally replaces the
// styles with themed ones.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleModified:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar is the one-line bar under the widget: file info on the left,
// caret position and indent mode on the right, transient messages in between.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	filePath string
	modified bool
	line     int // 1-based for display
	col      int
	indent   string // e.g. "spaces:4" or "tabs"

	tempMessage string
	tempUntil   time.Time
}

// New creates a StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config}
}

// SetStyles swaps the bar's styles, e.g. after a theme change.
func (sb *StatusBar) SetStyles(def, modified, message tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config.StyleDefault = def
	sb.config.StyleModified = modified
	sb.config.StyleMessage = message
}

// SetFileInfo updates the file path and modified flag.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.modified = modified
}

// SetCaret updates the displayed caret position (0-based input).
func (sb *StatusBar) SetCaret(line, col int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.line = line + 1
	sb.col = col + 1
}

// SetIndent updates the displayed indent mode.
func (sb *StatusBar) SetIndent(desc string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.indent = desc
}

// SetTemporaryMessage shows a message until the configured timeout passes.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempUntil = time.Now().Add(sb.config.MessageTimeout)
}

// Draw renders the bar on the given row of the screen.
func (sb *StatusBar) Draw(screen tcell.Screen, y, width int) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, sb.config.StyleDefault)
	}

	name := sb.filePath
	if name == "" {
		name = "[No Name]"
	}
	x := drawText(screen, 0, y, width, name, sb.config.StyleDefault)
	if sb.modified {
		x = drawText(screen, x, y, width, " [+]", sb.config.StyleModified)
	}

	if sb.tempMessage != "" && time.Now().Before(sb.tempUntil) {
		drawText(screen, x+2, y, width, sb.tempMessage, sb.config.StyleMessage)
	}

	right := fmt.Sprintf("%s | %d:%d", sb.indent, sb.line, sb.col)
	rightWidth := uniseg.StringWidth(right)
	if start := width - rightWidth - 1; start > x {
		drawText(screen, start, y, width, right, sb.config.StyleDefault)
	}
}

// drawText writes a string cell by cell, grapheme-aware, and returns the x
// position after the written text.
func drawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if x >= maxX {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += gr.Width()
	}
	return x
}
