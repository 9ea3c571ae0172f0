package app

import (
	"context"
	"os/signal"
	"syscall"

	"rgbhsl/internal/color"
	"rgbhsl/internal/mcpserver"
	"rgbhsl/internal/repl"
	"rgbhsl/internal/tui"
	"rgbhsl/pkg/logging"
)

// runTUIMode executes the interactive terminal UI mode
func (a *Application) runTUIMode(ctx context.Context) error {
	logging.Info("CLI", "Starting TUI mode...")

	// dark mode by default, ctrl+t toggles
	color.Initialize(true)

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(a.logLevel)
	defer logging.CloseTUIChannel()

	p := tui.NewProgram(a.session, a.formatter, logChan)

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")
	return nil
}

// runREPLMode executes the line-oriented tester
func (a *Application) runREPLMode(ctx context.Context) error {
	return repl.New(a.session, a.formatter).Run(ctx)
}

// runServeMode serves MCP until SIGINT or SIGTERM
func (a *Application) runServeMode(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := mcpserver.New(a.session, a.config.RgbhslConfig.Server, a.config.Version)
	return srv.Serve(ctx)
}
