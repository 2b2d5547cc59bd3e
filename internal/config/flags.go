// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
)

// Flags holds values parsed from command-line flags. Pointers distinguish
// unset flags from zero-value flags.
type Flags struct {
	ConfigFilePath *string
	LogLevel       *string
	LogFilePath    *string
	TabWidth       *int
	UseTabs        *bool
	ScrollOff      *int
	Theme          *string
	NoSystemClip   *bool
}

// DefineFlags sets up the command-line flags.
func (f *Flags) DefineFlags() {
	f.ConfigFilePath = flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.LogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error) - overrides config file")
	f.LogFilePath = flag.String("logfile", "", "Path to write log file - overrides config file")
	f.TabWidth = flag.Int("tabwidth", 0, "Columns per tab stop - overrides config file")
	f.UseTabs = flag.Bool("tabs", false, "Indent with tab characters instead of spaces")
	f.ScrollOff = flag.Int("scrolloff", -1, "Lines of context kept around the caret - overrides config file")
	f.Theme = flag.String("theme", "", "Theme name - overrides config file")
	f.NoSystemClip = flag.Bool("no-system-clipboard", false, "Use the internal register instead of the system clipboard")
}

// ParseFlags parses the command line and returns the non-flag arguments
// (the file to open).
func (f *Flags) ParseFlags() []string {
	f.DefineFlags()
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides updates cfg with values from flags that were actually set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			cfg.Logger.LogLevel = *f.LogLevel
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "tabwidth":
			if *f.TabWidth > 0 {
				cfg.Editor.TabWidth = *f.TabWidth
			}
		case "tabs":
			cfg.Editor.UseSpaces = !*f.UseTabs
		case "scrolloff":
			if *f.ScrollOff >= 0 {
				cfg.Editor.ScrollOff = *f.ScrollOff
			}
		case "theme":
			cfg.Editor.Theme = *f.Theme
		case "no-system-clipboard":
			cfg.Editor.SystemClipboard = !*f.NoSystemClip
		}
	})
}
