// Package repl provides a line-oriented tester: every command maps to one of
// the buttons of the interactive tester and runs against a shared session.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/chzyer/readline"

	"rgbhsl/internal/cli"
	"rgbhsl/internal/session"
	"rgbhsl/pkg/logging"
)

// REPL represents the Read-Eval-Print Loop for the tester
type REPL struct {
	session   *session.Session
	formatter cli.Formatter
	out       io.Writer
}

// New creates a REPL bound to s.
func New(s *session.Session, f cli.Formatter) *REPL {
	return &REPL{session: s, formatter: f, out: os.Stdout}
}

// Run reads commands until exit, EOF or ctx is done.
func (r *REPL) Run(ctx context.Context) error {
	config := &readline.Config{
		Prompt:          "rgbhsl> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".rgbhsl_history"),
		AutoComplete:    newCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()
	r.out = rl.Stdout()

	logging.Info("REPL", "tester REPL started, stack capacity %d", r.session.Capacity())
	fmt.Fprintln(r.out, "Type 'help' for available commands. Use TAB for completion.")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		out, err := r.Execute(input)
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			continue
		}
		if out != "" {
			fmt.Fprintln(r.out, out)
		}
	}
}

func newCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("hsl"),
		readline.PcItem("rgb"),
		readline.PcItem("bright"),
		readline.PcItem("hex"),
		readline.PcItem("push"),
		readline.PcItem("pop"),
		readline.PcItem("stack"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}

// filterInput blocks ctrl+z, which would suspend the terminal mid-line.
func filterInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, unicode.IsPrint(r) || unicode.IsControl(r)
}
