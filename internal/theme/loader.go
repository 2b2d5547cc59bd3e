// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/mvetter/codearea/internal/logger"
)

// tomlStyleDef is a single style entry in a theme file. Pointers detect
// missing values so styles can inherit from Default.
type tomlStyleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// tomlTheme is the on-disk structure of a theme file.
type tomlTheme struct {
	Name   string                  `toml:"name"`
	IsDark bool                    `toml:"is_dark"`
	Styles map[string]tomlStyleDef `toml:"styles"`
}

// LoadFile parses a TOML theme file into a Theme. Styles inherit attributes
// from the file's Default style.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file %q: %w", path, err)
	}

	var tt tomlTheme
	meta, err := toml.Decode(string(data), &tt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file %q: %w", path, err)
	}
	if len(meta.Undecoded()) > 0 {
		logger.Warnf("theme file %q: unrecognized keys: %v", path, meta.Undecoded())
	}

	if tt.Name == "" {
		tt.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	th := &Theme{
		Name:   tt.Name,
		IsDark: tt.IsDark,
		Styles: make(map[string]tcell.Style, len(tt.Styles)),
	}

	base := tcell.StyleDefault
	if def, ok := tt.Styles["Default"]; ok {
		base, err = convertStyle(def, tcell.StyleDefault)
		if err != nil {
			return nil, fmt.Errorf("theme %q: bad Default style: %w", tt.Name, err)
		}
	}
	th.Styles["Default"] = base

	for name, def := range tt.Styles {
		if name == "Default" {
			continue
		}
		style, err := convertStyle(def, base)
		if err != nil {
			logger.Warnf("theme %q: skipping style %q: %v", tt.Name, name, err)
			continue
		}
		th.Styles[name] = style
	}
	return th, nil
}

// convertStyle applies a TOML style definition on top of a base style.
func convertStyle(def tomlStyleDef, base tcell.Style) (tcell.Style, error) {
	style := base
	if def.Fg != nil {
		color, err := parseColor(*def.Fg)
		if err != nil {
			return style, err
		}
		style = style.Foreground(color)
	}
	if def.Bg != nil {
		color, err := parseColor(*def.Bg)
		if err != nil {
			return style, err
		}
		style = style.Background(color)
	}
	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}
	return style, nil
}

// parseColor accepts "#rrggbb" hex values, W3C color names known to tcell,
// and "default"/"reset" for the terminal's own color.
func parseColor(s string) (tcell.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "default", "reset":
		return tcell.ColorReset, nil
	}
	if strings.HasPrefix(s, "#") {
		hex, err := colorful.Hex(s)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b := hex.RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
	}
	if c, ok := tcell.ColorNames[s]; ok {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
}
