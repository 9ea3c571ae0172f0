package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rgbhsl/internal/app"
)

func newTesterCmd() *cobra.Command {
	var useREPL bool

	cmd := &cobra.Command{
		Use:   "tester",
		Short: "Start the interactive colour tester",
		Long: `Starts the interactive tester. It can run in two modes:

1. Interactive TUI Mode (default):
   - Input fields for red, green, blue, hue, saturation, luminosity and brightness.
   - A live colour swatch and the saved settings stack.
   - Control keys convert, apply brightness, push and pop.

2. REPL Mode (using --repl flag):
   - A line-oriented prompt with the same operations, useful over plain pipes
     and in terminals without full-screen support.

Both modes share a stack of 10 saved settings that lives until the tester exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := app.ModeTUI
			if useREPL {
				mode = app.ModeREPL
			}
			cfg := app.NewConfig(mode, debug)
			cfg.ConfigPath = configPath

			application, err := app.NewApplication(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return application.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&useREPL, "repl", false, "Use the line-oriented REPL instead of the TUI")
	return cmd
}
