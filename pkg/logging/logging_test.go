package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   LogLevel
		wantOK bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{"", LevelInfo, true},
		{"warning", LevelWarn, true},
		{" error ", LevelError, true},
		{"loud", LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestInitForCLI_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)
	defer InitForCLI(LevelInfo, &bytes.Buffer{})

	Info("Test", "hidden %d", 1)
	Warn("Test", "shown %d", 2)
	Error("Test", errors.New("boom"), "failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "subsystem=Test")
	assert.Contains(t, out, "error=boom")
}

func TestInitForTUI_SendsEntries(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer CloseTUIChannel()

	Debug("Session", "dropped below filter")
	Info("Session", "pushed %s", "#ff0000")

	require.Len(t, ch, 1)
	entry := <-ch
	assert.Equal(t, LevelInfo, entry.Level)
	assert.Equal(t, "Session", entry.Subsystem)
	assert.Equal(t, "pushed #ff0000", entry.Message)
	assert.Contains(t, entry.String(), "[INFO] Session: pushed #ff0000")
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}
