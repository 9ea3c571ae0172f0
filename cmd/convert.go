package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rgbhsl/internal/cli"
	"rgbhsl/internal/colormodel"
)

func newRGB2HSLCmd() *cobra.Command {
	var (
		c       colormodel.RGB
		hex     string
		output  string
		hueUnit string
	)

	cmd := &cobra.Command{
		Use:   "rgb2hsl",
		Short: "Convert an RGB colour to HSL",
		Long: `Converts an 8-bit RGB colour to hue, saturation and luminosity.

The colour is given either per channel or as a hex string:

  rgbhsl rgb2hsl --red 255 --green 128 --blue 0
  rgbhsl rgb2hsl --hex "#ff8000"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd, output, hueUnit)
			if err != nil {
				return err
			}
			if hex != "" {
				if c, err = colormodel.ParseHex(hex); err != nil {
					return err
				}
			}
			return p.Print(cli.NewHSLResult(c, colormodel.RGBToHSL(c)))
		},
	}

	cmd.Flags().Uint8Var(&c.Red, "red", 0, "Red channel (0-255)")
	cmd.Flags().Uint8Var(&c.Green, "green", 0, "Green channel (0-255)")
	cmd.Flags().Uint8Var(&c.Blue, "blue", 0, "Blue channel (0-255)")
	cmd.Flags().StringVar(&hex, "hex", "", "Colour as #rrggbb")
	cmd.Flags().StringVar(&hueUnit, "hue-unit", "", "Hue unit: sextant or degrees (default from config)")
	addOutputFlag(cmd, &output)
	cmd.MarkFlagsMutuallyExclusive("hex", "red")
	cmd.MarkFlagsMutuallyExclusive("hex", "green")
	cmd.MarkFlagsMutuallyExclusive("hex", "blue")

	return cmd
}

func newHSL2RGBCmd() *cobra.Command {
	var (
		hue, saturation, luminosity float32
		output                      string
		hueUnit                     string
	)

	cmd := &cobra.Command{
		Use:   "hsl2rgb",
		Short: "Convert an HSL colour to RGB",
		Long: `Converts hue, saturation and luminosity to an 8-bit RGB colour.

Hue is read in the configured unit. In sextants, pure blue is:

  rgbhsl hsl2rgb --hue 4 --saturation 1 --luminosity 0.5

Values outside the valid range are not rejected; the resulting channels
are clamped to 0-255.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd, output, hueUnit)
			if err != nil {
				return err
			}
			in := colormodel.HSL{
				Hue:        p.Formatter.HueToSextant(hue),
				Saturation: saturation,
				Luminosity: luminosity,
			}
			return p.Print(cli.NewRGBResult(in, colormodel.HSLToRGB(in)))
		},
	}

	cmd.Flags().Float32Var(&hue, "hue", 0, "Hue in the configured unit")
	cmd.Flags().Float32Var(&saturation, "saturation", 0, "Saturation (0-1)")
	cmd.Flags().Float32Var(&luminosity, "luminosity", 0, "Luminosity (0-1)")
	cmd.Flags().StringVar(&hueUnit, "hue-unit", "", "Hue unit: sextant or degrees (default from config)")
	addOutputFlag(cmd, &output)

	return cmd
}

func newBrightnessCmd() *cobra.Command {
	var (
		luminosity float32
		brightness uint8
		factor     float32
		output     string
	)

	cmd := &cobra.Command{
		Use:   "brightness",
		Short: "Scale a luminosity by a brightness",
		Long: `Multiplies a luminosity by a brightness factor.

The factor is brightness/255 unless --factor is given:

  rgbhsl brightness --luminosity 0.5 --brightness 128
  rgbhsl brightness --luminosity 0.5 --factor 0.25`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd, output, "")
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("factor") {
				factor = colormodel.BrightnessFactor(brightness)
			}
			if factor < 0 {
				return fmt.Errorf("factor must not be negative, got %g", factor)
			}
			out := colormodel.ScaleLuminosity(colormodel.HSL{Luminosity: luminosity}, factor)
			return p.Print(cli.BrightnessResult{
				Luminosity: luminosity,
				Factor:     factor,
				Result:     out.Luminosity,
			})
		},
	}

	cmd.Flags().Float32Var(&luminosity, "luminosity", 0, "Luminosity (0-1)")
	cmd.Flags().Uint8Var(&brightness, "brightness", 255, "Brightness (0-255)")
	cmd.Flags().Float32Var(&factor, "factor", 1, "Brightness factor, overrides --brightness")
	addOutputFlag(cmd, &output)
	cmd.MarkFlagsMutuallyExclusive("brightness", "factor")

	return cmd
}
