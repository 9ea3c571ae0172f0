package repl

import (
	"testing"

	"rgbhsl/internal/cli"
	"rgbhsl/internal/config"
	"rgbhsl/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestREPL(unit config.HueUnit) *REPL {
	return New(session.New(255), cli.Formatter{HueUnit: unit, Precision: 2})
}

func TestExecute_Conversions(t *testing.T) {
	r := newTestREPL(config.HueUnitSextant)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"rgb to hsl", "hsl 0 255 0", "#00ff00 -> 2.00 1.00 0.50"},
		{"hsl to rgb", "rgb 4 1 0.5", "0 0 255 #0000ff"},
		{"grey", "rgb 0 0 0.5", "128 128 128 #808080"},
		{"brightness", "bright 0.8 0.5", "0.40"},
		{"hex", "hex #ff0000", "255 0 0 -> 0.00 1.00 0.50"},
		{"blank", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Execute(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecute_DegreesUnit(t *testing.T) {
	r := newTestREPL(config.HueUnitDegrees)

	got, err := r.Execute("hsl 0 0 255")
	require.NoError(t, err)
	assert.Equal(t, "#0000ff -> 240.00° 1.00 0.50", got)

	got, err = r.Execute("rgb 120 1 0.5")
	require.NoError(t, err)
	assert.Equal(t, "0 255 0 #00ff00", got)
}

func TestExecute_Stack(t *testing.T) {
	r := newTestREPL(config.HueUnitSextant)

	got, err := r.Execute("stack")
	require.NoError(t, err)
	assert.Equal(t, "stack empty", got)

	got, err = r.Execute("push 255 0 0")
	require.NoError(t, err)
	assert.Equal(t, "pushed #ff0000 (1/10)", got)

	_, err = r.Execute("push 0 0 255 7")
	require.NoError(t, err)

	got, err = r.Execute("stack")
	require.NoError(t, err)
	assert.Equal(t, " 1  #0000ff  brightness 7\n 0  #ff0000  brightness 255", got)

	got, err = r.Execute("pop")
	require.NoError(t, err)
	assert.Equal(t, "0 0 255 #0000ff brightness 7", got)

	got, err = r.Execute("pop")
	require.NoError(t, err)
	assert.Equal(t, "255 0 0 #ff0000 brightness 255", got)

	got, err = r.Execute("pop")
	require.NoError(t, err)
	assert.Equal(t, "255 0 0 #ff0000 brightness 255", got, "empty pop repeats the bottom slot")
}

func TestExecute_PushFull(t *testing.T) {
	r := newTestREPL(config.HueUnitSextant)
	for i := 0; i < 10; i++ {
		_, err := r.Execute("push 1 2 3")
		require.NoError(t, err)
	}
	_, err := r.Execute("push 1 2 3")
	assert.ErrorContains(t, err, "stack full")
}

func TestExecute_Errors(t *testing.T) {
	r := newTestREPL(config.HueUnitSextant)

	tests := []struct {
		input   string
		wantErr string
	}{
		{"hsl 1 2", "usage: hsl"},
		{"hsl 1 2 256", "between 0 and 255"},
		{"rgb a 1 1", "is not a number"},
		{"bright 1", "usage: bright"},
		{"hex zz", "invalid hex"},
		{"push 1 2 3 4 5", "usage: push"},
		{"paint", "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := r.Execute(tt.input)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestExecute_ExitAndHelp(t *testing.T) {
	r := newTestREPL(config.HueUnitSextant)

	_, err := r.Execute("quit")
	assert.ErrorIs(t, err, ErrExit)

	got, err := r.Execute("help")
	require.NoError(t, err)
	assert.Contains(t, got, "push <r> <g> <b> [bright]")
}

func TestFilterInput(t *testing.T) {
	_, ok := filterInput('a')
	assert.True(t, ok)
	_, ok = filterInput(26) // ctrl+z
	assert.False(t, ok)
}
