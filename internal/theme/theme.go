// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/mvetter/codearea/internal/logger"
)

// Theme maps style names (UI elements and highlight capture names) to tcell
// styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves a style name. Dotted capture names ("keyword.operator")
// fall back to their base name, then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}
	if dot := strings.Index(name, "."); dot != -1 {
		if style, ok := t.Styles[name[:dot]]; ok {
			return style
		}
	}
	if def, ok := t.Styles["Default"]; ok {
		return def
	}
	logger.Warnf("theme %q: style %q and Default both missing", t.Name, name)
	return tcell.StyleDefault
}

// Blend mixes two colors in RGB space; t=0 yields a, t=1 yields b. Derived
// shades (gutter numbers, selection background) come from here so custom
// themes only need to declare their base palette.
func Blend(a, b tcell.Color, t float64) tcell.Color {
	mixed := toColorful(a).BlendRgb(toColorful(b), t)
	r, g, bl := mixed.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// SlateDark is the built-in theme.
var SlateDark Theme

func init() {
	bg := tcell.NewHexColor(0x20242c)
	fg := tcell.NewHexColor(0xc8d0dc)
	comment := tcell.NewHexColor(0x5f6b7c)
	orange := tcell.NewHexColor(0xd1935e)
	yellow := tcell.NewHexColor(0xe0c080)
	green := tcell.NewHexColor(0x94c275)
	cyan := tcell.NewHexColor(0x5cb8c0)
	blue := tcell.NewHexColor(0x6aa5ee)
	magenta := tcell.NewHexColor(0xc07ad8)

	base := tcell.StyleDefault.Background(bg).Foreground(fg)
	gutterFg := Blend(fg, bg, 0.55)
	selectionBg := Blend(bg, fg, 0.22)

	SlateDark = Theme{
		Name:   "Slate Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			// UI elements
			"Default":           base,
			"Selection":         base.Background(selectionBg),
			"Gutter":            base.Foreground(gutterFg),
			"GutterActive":      base.Foreground(fg),
			"StatusBar":         tcell.StyleDefault.Background(Blend(bg, fg, 0.08)).Foreground(fg),
			"StatusBarModified": tcell.StyleDefault.Background(Blend(bg, fg, 0.08)).Foreground(yellow).Bold(true),
			"StatusBarMessage":  tcell.StyleDefault.Background(Blend(bg, fg, 0.08)).Foreground(green).Bold(true),

			// Syntax highlighting (tree-sitter capture names)
			"keyword":     base.Foreground(blue).Bold(true),
			"string":      base.Foreground(green),
			"comment":     base.Foreground(comment).Italic(true),
			"number":      base.Foreground(orange),
			"constant":    base.Foreground(orange),
			"type":        base.Foreground(cyan),
			"function":    base.Foreground(yellow),
			"variable":    base.Foreground(fg),
			"operator":    base.Foreground(fg),
			"property":    base.Foreground(fg),
			"punctuation": base.Foreground(comment),
			"escape":      base.Foreground(magenta),
			"label":       base.Foreground(fg),
		},
	}
}
