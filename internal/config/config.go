// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mvetter/codearea/internal/textops"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger LoggerConfig `toml:"logger"`
	Editor EditorConfig `toml:"editor"`

	// undecoded keys are kept so the app can warn once the logger is up.
	undecoded []toml.Key
}

// LoggerConfig selects the log level and destination.
type LoggerConfig struct {
	LogLevel    string `toml:"log_level"`
	LogFilePath string `toml:"log_file"`
}

// EditorConfig holds the widget's settings.
type EditorConfig struct {
	TabWidth          int    `toml:"tab_width"`
	UseSpaces         bool   `toml:"use_spaces"`
	ScrollOff         int    `toml:"scroll_off"`
	AutoCloseBrackets bool   `toml:"auto_close_brackets"`
	AutoIndent        bool   `toml:"auto_indent"`
	DetectIndent      bool   `toml:"detect_indent"`
	SystemClipboard   bool   `toml:"system_clipboard"`
	Theme             string `toml:"theme"`
}

// Tabs converts the editor settings into the transform configuration.
func (ec EditorConfig) Tabs() textops.Tabs {
	return textops.Tabs{Width: ec.TabWidth, UseSpaces: ec.UseSpaces}
}

// NewDefaultConfig creates a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: LoggerConfig{
			LogLevel: "info",
		},
		Editor: EditorConfig{
			TabWidth:          DefaultTabWidth,
			UseSpaces:         true,
			ScrollOff:         DefaultScrollOff,
			AutoCloseBrackets: true,
			AutoIndent:        true,
			DetectIndent:      true,
			SystemClipboard:   true,
		},
	}
}

// Load reads the TOML config file (if present) over the defaults, applies
// flag overrides, and validates the result. A missing file is not an error.
func Load(path string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effective := path
	if effective == "" {
		if configDir, err := os.UserConfigDir(); err == nil {
			effective = filepath.Join(configDir, AppName, DefaultConfigFileName)
		}
	}

	if effective != "" {
		if _, err := os.Stat(effective); err == nil {
			// Decoding over the defaults merges file values naturally.
			meta, err := toml.DecodeFile(effective, cfg)
			if err != nil {
				return nil, fmt.Errorf("failed to parse config file %q: %w", effective, err)
			}
			cfg.undecoded = meta.Undecoded()
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error checking config file %q: %w", effective, err)
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, nil
}

// UndecodedKeys returns any config file keys that matched nothing.
func (c *Config) UndecodedKeys() []toml.Key {
	return c.undecoded
}

// validate resets out-of-range values back to defaults instead of failing.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}
