package app

import (
	"rgbhsl/internal/config"
)

// Mode selects what Run starts.
type Mode string

const (
	// ModeTUI runs the interactive tester.
	ModeTUI Mode = "tui"
	// ModeREPL runs the line-oriented tester.
	ModeREPL Mode = "repl"
	// ModeServe runs the MCP server.
	ModeServe Mode = "serve"
)

// Config holds the application configuration
type Config struct {
	Mode Mode

	// Debug settings
	Debug bool

	// ConfigPath replaces the layered lookup with a single file when set.
	ConfigPath string

	// Version is reported by the MCP server.
	Version string

	// Server values set on the command line. Zero values keep the loaded ones.
	ServerOverrides config.ServerConfig

	// Loaded rgbhsl configuration
	RgbhslConfig *config.RgbhslConfig
}

// NewConfig creates a new application configuration
func NewConfig(mode Mode, debug bool) *Config {
	return &Config{
		Mode:  mode,
		Debug: debug,
	}
}
