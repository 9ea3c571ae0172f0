package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"rgbhsl/internal/cli"
	"rgbhsl/internal/color"
	"rgbhsl/internal/config"
)

const (
	labelWidth   = 16
	swatchWidth  = 18
	swatchHeight = 5
	stackSwatch  = 4
)

func fieldLabel(f field, fm cli.Formatter) string {
	switch f {
	case fieldRed:
		return "Red"
	case fieldGreen:
		return "Green"
	case fieldBlue:
		return "Blue"
	case fieldHue:
		if fm.HueUnit == config.HueUnitDegrees {
			return "Hue (°)"
		}
		return "Hue (×60°)"
	case fieldSaturation:
		return "Saturation"
	case fieldLuminosity:
		return "Luminosity"
	case fieldBrightness:
		return "Brightness"
	}
	return ""
}

// View renders the tester.
func (m *Model) View() string {
	header := color.HeaderStyle.Render("rgbhsl tester")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		color.FocusedPanelStyle.Render(m.renderFields()),
		" ",
		color.PanelStyle.Render(color.Swatch(m.current, m.current.Hex(), swatchWidth, swatchHeight)),
	)

	sections := []string{
		header,
		body,
		m.renderStack(),
		m.renderStatus(),
		m.renderActivity(),
		m.help.View(m.keys),
	}
	return strings.Join(sections, "\n")
}

func (m *Model) renderFields() string {
	lines := make([]string, 0, fieldCount+2)
	for f := field(0); f < fieldCount; f++ {
		if f == fieldHue || f == fieldBrightness {
			lines = append(lines, "")
		}
		label := runewidth.FillRight(fieldLabel(f, m.formatter), labelWidth)
		style := color.LabelStyle
		if f == m.focus {
			style = color.FocusedLabelStyle
		}
		lines = append(lines, style.Render(label)+m.inputs[f].View())
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderStack() string {
	saved := m.session.Saved()
	title := fmt.Sprintf("Stack %d/%d ", len(saved), m.session.Capacity())
	if len(saved) == 0 {
		return title + color.MutedStyle.Render("empty")
	}
	cells := []string{title}
	for _, e := range saved {
		cells = append(cells, color.Swatch(e.Color, "", stackSwatch, 1), " ")
	}
	cells = append(cells, color.MutedStyle.Render("← top"))
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *Model) renderStatus() string {
	if m.StatusBarMessage == "" {
		return ""
	}
	switch m.StatusBarMessageType {
	case StatusBarError:
		return color.StatusMsgErrorStyle.Render(m.StatusBarMessage)
	case StatusBarSuccess:
		return color.StatusMsgSuccessStyle.Render(m.StatusBarMessage)
	default:
		return color.StatusMsgInfoStyle.Render(m.StatusBarMessage)
	}
}

func (m *Model) renderActivity() string {
	if len(m.activity) == 0 {
		return ""
	}
	maxWidth := m.width
	lines := make([]string, len(m.activity))
	for i, line := range m.activity {
		if maxWidth > 1 && runewidth.StringWidth(line) > maxWidth {
			line = runewidth.Truncate(line, maxWidth-1, "…")
		}
		lines[i] = color.LogLineStyle.Render(line)
	}
	return strings.Join(lines, "\n")
}
