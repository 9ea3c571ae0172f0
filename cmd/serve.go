package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rgbhsl/internal/app"
	"rgbhsl/internal/config"
)

func newServeCmd() *cobra.Command {
	var overrides config.ServerConfig

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the converter and settings stack over MCP",
		Long: `Starts an MCP server that exposes the colour converter to AI assistants.

Tools:
  rgb_to_hsl        convert an RGB colour to HSL (hue in sextants)
  hsl_to_rgb        convert HSL back to RGB
  scale_luminosity  multiply a luminosity by a brightness factor
  stack_push        save a colour on the settings stack
  stack_pop         restore the most recently saved colour
  stack_list        list the saved colours

The server speaks stdio by default. Use --transport sse to listen on
--host and --port instead. The stack is shared by every client of the
process and lives until the server exits.

Configuration:
  rgbhsl loads configuration from .rgbhsl/config.yaml in the current directory
  layered over ~/.config/rgbhsl/config.yaml. Flags override both.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.NewConfig(app.ModeServe, debug)
			cfg.ConfigPath = configPath
			cfg.Version = rootCmd.Version
			cfg.ServerOverrides = overrides

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

	cmd.Flags().StringVar(&overrides.Transport, "transport", "", "MCP transport: stdio or sse (default from config)")
	cmd.Flags().StringVar(&overrides.Host, "host", "", "Host to listen on with --transport sse")
	cmd.Flags().IntVar(&overrides.Port, "port", 0, "Port to listen on with --transport sse")

	return cmd
}
