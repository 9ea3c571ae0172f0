package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rgbhsl/internal/color"
)

// Update handles input, log entries and status timeouts.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case newLogEntryMsg:
		m.appendActivity(msg.Entry.String())
		return m, listenForLogs(m.logChannel)

	case clearStatusBarMsg:
		m.StatusBarMessage = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var action func() (string, error)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.setFocus(m.focus - 1)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.ToggleDark):
		m.dark = !m.dark
		color.Initialize(m.dark)
		mode := "light"
		if m.dark {
			mode = "dark"
		}
		return m, m.SetStatusMessage(mode+" mode", StatusBarInfo, statusTimeout)
	case key.Matches(msg, m.keys.Display):
		action = m.display
	case key.Matches(msg, m.keys.CalcHSL):
		action = m.calcHSL
	case key.Matches(msg, m.keys.CalcRGB):
		action = m.calcRGB
	case key.Matches(msg, m.keys.Brightness):
		action = m.applyBrightness
	case key.Matches(msg, m.keys.Push):
		action = m.push
	case key.Matches(msg, m.keys.Pop):
		action = m.pop
	case key.Matches(msg, m.keys.Copy):
		action = m.copyHex
	default:
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	status, err := action()
	if err != nil {
		return m, m.SetStatusMessage(err.Error(), StatusBarError, statusTimeout)
	}
	return m, m.SetStatusMessage(status, StatusBarSuccess, statusTimeout)
}
