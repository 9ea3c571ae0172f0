package app

import (
	"context"
	"fmt"
	"os"

	"rgbhsl/internal/cli"
	"rgbhsl/internal/config"
	"rgbhsl/internal/session"
	"rgbhsl/pkg/logging"
)

// Application is the main application structure that bootstraps and runs
// one of the long-running modes.
type Application struct {
	config    *Config
	logLevel  logging.LogLevel
	session   *session.Session
	formatter cli.Formatter
}

// LoadConfiguration loads path when it is set and the layered configuration
// otherwise.
func LoadConfiguration(path string) (config.RgbhslConfig, error) {
	if path != "" {
		cfg, err := config.LoadConfigFromPath(path)
		if err != nil {
			return config.RgbhslConfig{}, err
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", path)
		return cfg, nil
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.RgbhslConfig{}, err
	}
	logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	return cfg, nil
}

// LogLevel returns the level selected by the configuration, or debug when
// debug is set.
func LogLevel(cfg config.RgbhslConfig, debug bool) logging.LogLevel {
	if debug {
		return logging.LevelDebug
	}
	if level, ok := logging.ParseLevel(cfg.GlobalSettings.LogLevel); ok {
		return level
	}
	return logging.LevelInfo
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	// stdout belongs to the MCP stdio transport and the TUI
	logging.InitForCLI(logging.LevelInfo, os.Stderr)

	rgbhslCfg, err := LoadConfiguration(cfg.ConfigPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load rgbhsl configuration")
		return nil, fmt.Errorf("failed to load rgbhsl configuration: %w", err)
	}

	applyServerOverrides(&rgbhslCfg.Server, cfg.ServerOverrides)
	if err := rgbhslCfg.Validate(); err != nil {
		return nil, err
	}
	cfg.RgbhslConfig = &rgbhslCfg

	level := LogLevel(rgbhslCfg, cfg.Debug)
	logging.InitForCLI(level, os.Stderr)

	return &Application{
		config:    cfg,
		logLevel:  level,
		session:   session.New(rgbhslCfg.Tester.DefaultBrightness),
		formatter: cli.NewFormatter(rgbhslCfg.Tester),
	}, nil
}

// Session returns the session every mode shares.
func (a *Application) Session() *session.Session {
	return a.session
}

// Run executes the application in the configured mode
func (a *Application) Run(ctx context.Context) error {
	switch a.config.Mode {
	case ModeTUI, "":
		return a.runTUIMode(ctx)
	case ModeREPL:
		return a.runREPLMode(ctx)
	case ModeServe:
		return a.runServeMode(ctx)
	default:
		return fmt.Errorf("unknown mode %q", a.config.Mode)
	}
}

func applyServerOverrides(dst *config.ServerConfig, o config.ServerConfig) {
	if o.Transport != "" {
		dst.Transport = o.Transport
	}
	if o.Host != "" {
		dst.Host = o.Host
	}
	if o.Port != 0 {
		dst.Port = o.Port
	}
}
