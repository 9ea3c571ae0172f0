// Package color holds the terminal theme of the interactive tester.
//
// Styles are package-level vars built from adaptive colours, so they follow
// whatever background Initialize was last told about. Swatches are the one
// place where a concrete colour is rendered and they pick a readable text
// colour from the luminosity of the colour being shown.
package color

import (
	"github.com/charmbracelet/lipgloss"

	"rgbhsl/internal/colormodel"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			Background(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#303030"}).
			Padding(0, 2)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	FocusedPanelStyle = PanelStyle.
				Border(lipgloss.ThickBorder()).
				BorderForeground(lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#58A6FF"})

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#404040", Dark: "#C0C0C0"})

	FocusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#58A6FF"})

	StatusMsgInfoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#87D7FF"})

	StatusMsgSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#006400", Dark: "#87FF87"})

	StatusMsgErrorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#B22222", Dark: "#FF5F5F"})

	LogLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#303030", Dark: "#D0D0D0"})

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#6C6C6C"})
)

// Initialize sets the background lipgloss resolves adaptive colours against.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// TextOn returns black or white, whichever reads better on c.
func TextOn(c colormodel.RGB) lipgloss.Color {
	if colormodel.RGBToHSL(c).Luminosity > 0.55 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}

// Swatch renders label on a block filled with c.
func Swatch(c colormodel.RGB, label string, width, height int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(TextOn(c)).
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(label)
}
