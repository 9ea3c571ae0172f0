package color

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"rgbhsl/internal/colormodel"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		isDarkMode bool
		expected   bool
	}{
		{"set dark mode", true, true},
		{"set light mode", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Initialize(tt.isDarkMode)
			if lipgloss.HasDarkBackground() != tt.expected {
				t.Errorf("lipgloss.HasDarkBackground() got %v, want %v after Initialize(%v)", lipgloss.HasDarkBackground(), tt.expected, tt.isDarkMode)
			}
		})
	}
} 
func TestTextOn(t *testing.T) {
	tests := []struct {
		name string
		c    colormodel.RGB
		want lipgloss.Color
	}{
		{"white", colormodel.RGB{Red: 255, Green: 255, Blue: 255}, "#000000"},
		{"black", colormodel.RGB{}, "#FFFFFF"},
		{"pure blue", colormodel.RGB{Blue: 255}, "#FFFFFF"},
		{"pale yellow", colormodel.RGB{Red: 255, Green: 255, Blue: 180}, "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextOn(tt.c); got != tt.want {
				t.Errorf("TextOn(%v) = %q, want %q", tt.c, got, tt.want)
			}
		})
	}
}

func TestSwatch(t *testing.T) {
	out := Swatch(colormodel.RGB{Red: 255}, "#ff0000", 10, 3)
	if !strings.Contains(out, "#ff0000") {
		t.Errorf("swatch does not contain its label: %q", out)
	}
	if got := lipgloss.Height(out); got != 3 {
		t.Errorf("swatch height = %d, want 3", got)
	}
	if got := lipgloss.Width(out); got != 10 {
		t.Errorf("swatch width = %d, want 10", got)
	}
}
