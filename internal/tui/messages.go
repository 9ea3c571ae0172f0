package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"rgbhsl/pkg/logging"
)

// newLogEntryMsg carries one entry from the logging channel.
type newLogEntryMsg struct {
	Entry logging.LogEntry
}

type clearStatusBarMsg struct{}

// listenForLogs waits for the next log entry. The update loop re-arms it
// after every entry; a closed channel ends the listener.
func listenForLogs(ch <-chan logging.LogEntry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return newLogEntryMsg{Entry: entry}
	}
}
