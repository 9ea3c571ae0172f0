package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// debug enables verbose logging for every command.
	debug bool
	// configPath replaces the layered configuration lookup with one file.
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rgbhsl",
	Short: "Convert colours between RGB and HSL",
	Long: `rgbhsl converts 8-bit RGB colours to HSL and back, applies brightness,
and keeps a small stack of saved colour settings.

Hue is expressed in sextants: one unit per 60 degrees, so pure red is 0,
green is 2 and blue is 4. Set tester.hueUnit to "degrees" to work in degrees.

Use 'rgbhsl tester' for the interactive tester and 'rgbhsl serve' to expose
the converter to AI assistants over MCP.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid arguments)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "rgbhsl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newRGB2HSLCmd())
	rootCmd.AddCommand(newHSL2RGBCmd())
	rootCmd.AddCommand(newBrightnessCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newTesterCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.config/rgbhsl/config.yaml layered with .rgbhsl/config.yaml)")
}
