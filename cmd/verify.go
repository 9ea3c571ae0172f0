package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"rgbhsl/internal/cli"
	"rgbhsl/internal/roundtrip"
	"rgbhsl/pkg/logging"
)

func newVerifyCmd() *cobra.Command {
	var (
		step   int
		output string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that RGB → HSL → RGB round-trips",
		Long: `Converts a grid of RGB colours to HSL and back and reports how far the
result drifts from the input. Every grey level is checked as well.

A channel may differ by at most 1; the command fails when any sample
exceeds that. A smaller --step checks more colours.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd, output, "")
			if err != nil {
				return err
			}
			report, err := roundtrip.Sweep(cmd.Context(), step)
			if err != nil {
				return err
			}
			logging.Debug("Verify", "checked %d samples, max error %d", report.Samples, report.MaxError)
			if err := p.Print(cli.VerifyResult{Report: report, OK: report.OK()}); err != nil {
				return err
			}
			if !report.OK() {
				return errors.New("round trip exceeded tolerance")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&step, "step", 17, "Distance between sampled channel values (1-255)")
	addOutputFlag(cmd, &output)

	return cmd
}
