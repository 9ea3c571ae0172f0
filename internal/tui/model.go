package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rgbhsl/internal/cli"
	"rgbhsl/internal/colormodel"
	"rgbhsl/internal/session"
	"rgbhsl/pkg/logging"
)

// field indexes the input fields in focus order.
type field int

const (
	fieldRed field = iota
	fieldGreen
	fieldBlue
	fieldHue
	fieldSaturation
	fieldLuminosity
	fieldBrightness
	fieldCount
)

const (
	// maxActivityLines is how many log lines the activity pane keeps.
	maxActivityLines = 5
	statusTimeout    = 3 * time.Second
)

// MessageType selects the style of the status line.
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
)

// Model is the Bubble Tea model of the interactive tester.
type Model struct {
	session   *session.Session
	formatter cli.Formatter
	keys      KeyMap
	help      help.Model

	inputs []textinput.Model
	focus  field

	// current is the colour shown in the swatch.
	current colormodel.RGB
	dark    bool

	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	activity   []string
	logChannel <-chan logging.LogEntry

	width  int
	height int
}

// New creates a tester model. logChannel may be nil.
func New(s *session.Session, f cli.Formatter, logChannel <-chan logging.LogEntry) *Model {
	m := &Model{
		session:    s,
		formatter:  f,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputs:     make([]textinput.Model, fieldCount),
		dark:       lipgloss.HasDarkBackground(),
		logChannel: logChannel,
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = 10
		ti.CharLimit = 12
		switch field(i) {
		case fieldRed, fieldGreen, fieldBlue:
			ti.Placeholder = "0-255"
			ti.CharLimit = 3
		case fieldHue:
			ti.Placeholder = "hue"
		case fieldBrightness:
			ti.Placeholder = "0-255"
			ti.CharLimit = 3
		default:
			ti.Placeholder = "0-1"
		}
		m.inputs[i] = ti
	}

	m.setRGB(colormodel.RGB{})
	m.setHSL(colormodel.HSL{})
	m.inputs[fieldBrightness].SetValue(formatChannel(s.DefaultBrightness()))
	m.inputs[fieldRed].Focus()
	return m
}

// Init starts the cursor blink and, when a log channel is attached, the
// log listener.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.logChannel != nil {
		cmds = append(cmds, listenForLogs(m.logChannel))
	}
	return tea.Batch(cmds...)
}

// Current returns the colour shown in the swatch.
func (m *Model) Current() colormodel.RGB {
	return m.current
}

// SetStatusMessage updates the status line and clears it after clearAfter.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return clearStatusBarMsg{}
		}
	})
}

func (m *Model) setFocus(f field) {
	f = (f + fieldCount) % fieldCount
	m.inputs[m.focus].Blur()
	m.focus = f
	m.inputs[m.focus].Focus()
}

func (m *Model) appendActivity(line string) {
	m.activity = append(m.activity, line)
	if len(m.activity) > maxActivityLines {
		m.activity = m.activity[len(m.activity)-maxActivityLines:]
	}
}
