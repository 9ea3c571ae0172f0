package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"rgbhsl/internal/app"
	"rgbhsl/internal/cli"
	"rgbhsl/internal/config"
	"rgbhsl/pkg/logging"
)

// loadTesterConfig loads the configuration for the one-shot commands and
// sets the log level from it.
func loadTesterConfig() (config.TesterConfig, error) {
	cfg, err := app.LoadConfiguration(configPath)
	if err != nil {
		return config.TesterConfig{}, err
	}
	logging.InitForCLI(app.LogLevel(cfg, debug), os.Stderr)
	return cfg.Tester, nil
}

// newPrinter builds a printer for the --output and --hue-unit flags.
// An empty hueUnit keeps the configured unit.
func newPrinter(cmd *cobra.Command, output, hueUnit string) (cli.Printer, error) {
	format, err := cli.ParseOutputFormat(output)
	if err != nil {
		return cli.Printer{}, err
	}
	tester, err := loadTesterConfig()
	if err != nil {
		return cli.Printer{}, err
	}
	if hueUnit != "" {
		tester.HueUnit = config.HueUnit(hueUnit)
		cfg := config.GetDefaultConfig()
		cfg.Tester.HueUnit = tester.HueUnit
		if err := cfg.Validate(); err != nil {
			return cli.Printer{}, err
		}
	}
	return cli.Printer{
		Out:       cmd.OutOrStdout(),
		Format:    format,
		Formatter: cli.NewFormatter(tester),
	}, nil
}

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", string(cli.OutputFormatTable), "Output format: table, json, yaml")
}
