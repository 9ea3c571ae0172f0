package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"rgbhsl/internal/cli"
	"rgbhsl/internal/session"
	"rgbhsl/pkg/logging"
)

// NewProgram creates the Bubble Tea program for the tester.
func NewProgram(s *session.Session, f cli.Formatter, logChannel <-chan logging.LogEntry) *tea.Program {
	return tea.NewProgram(New(s, f, logChannel), tea.WithAltScreen())
}
