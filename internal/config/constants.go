// internal/config/constants.go
package config

// AppName is used for the config directory and log file naming.
const AppName = "codearea"

// DefaultConfigFileName is looked up under the user config dir when no
// -config flag is given.
const DefaultConfigFileName = "config.toml"

// Editor defaults.
const (
	DefaultTabWidth  = 4
	DefaultScrollOff = 3
)
