package repl

import (
	"errors"
	"fmt"
	"strings"

	"rgbhsl/internal/cli"
	"rgbhsl/internal/colormodel"
)

// ErrExit is returned by Execute for the exit command.
var ErrExit = errors.New("exit")

// Execute parses and runs one REPL line and returns the text to print.
func (r *REPL) Execute(input string) (string, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return "", nil
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch command {
	case "help", "?":
		return helpText, nil

	case "exit", "quit":
		return "", ErrExit

	case "hsl":
		c, err := parseRGB(args, 3, "hsl <red> <green> <blue>")
		if err != nil {
			return "", err
		}
		hsl := r.session.ToHSL(c)
		return fmt.Sprintf("%s -> %s", c.Hex(), r.formatter.HSL(hsl)), nil

	case "rgb":
		hsl, err := r.parseHSL(args)
		if err != nil {
			return "", err
		}
		c := r.session.ToRGB(hsl)
		return fmt.Sprintf("%d %d %d %s", c.Red, c.Green, c.Blue, c.Hex()), nil

	case "bright", "brightness":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: bright <luminosity> <factor>")
		}
		vals, err := parseFloats(args)
		if err != nil {
			return "", err
		}
		out := r.session.ScaleLuminosity(colormodel.HSL{Luminosity: vals[0]}, vals[1])
		return r.formatter.Float(out.Luminosity), nil

	case "hex":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: hex <#rrggbb>")
		}
		c, err := colormodel.ParseHex(args[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d %d %d -> %s", c.Red, c.Green, c.Blue, r.formatter.HSL(r.session.ToHSL(c))), nil

	case "push":
		if len(args) != 3 && len(args) != 4 {
			return "", fmt.Errorf("usage: push <red> <green> <blue> [brightness]")
		}
		c, err := parseRGB(args[:3], 3, "push <red> <green> <blue> [brightness]")
		if err != nil {
			return "", err
		}
		brightness := r.session.DefaultBrightness()
		if len(args) == 4 {
			b, err := cli.ParseChannel(args[3])
			if err != nil {
				return "", err
			}
			brightness = b
		}
		if !r.session.Push(c, brightness) {
			return "", fmt.Errorf("stack full (%d entries)", r.session.Capacity())
		}
		return fmt.Sprintf("pushed %s (%d/%d)", c.Hex(), len(r.session.Saved()), r.session.Capacity()), nil

	case "pop":
		e := r.session.Pop()
		return fmt.Sprintf("%d %d %d %s brightness %d", e.Color.Red, e.Color.Green, e.Color.Blue, e.Color.Hex(), e.Brightness), nil

	case "stack":
		saved := r.session.Saved()
		if len(saved) == 0 {
			return "stack empty", nil
		}
		var b strings.Builder
		for i := len(saved) - 1; i >= 0; i-- {
			fmt.Fprintf(&b, "%2d  %s  brightness %d\n", i, saved[i].Color.Hex(), saved[i].Brightness)
		}
		return strings.TrimRight(b.String(), "\n"), nil

	default:
		return "", fmt.Errorf("unknown command: %s. Type 'help' for available commands", command)
	}
}

const helpText = `Available commands:
  hsl <r> <g> <b>              - Convert RGB to HSL
  rgb <h> <s> <l>              - Convert HSL to RGB (hue in the configured unit)
  bright <l> <factor>          - Scale a luminosity by a brightness factor
  hex <#rrggbb>                - Convert a hex colour to HSL
  push <r> <g> <b> [bright]    - Save a colour on the stack
  pop                          - Restore the most recently saved colour
  stack                        - Show saved colours, top first
  help, ?                      - Show this help message
  exit, quit                   - Exit the REPL`

func (r *REPL) parseHSL(args []string) (colormodel.HSL, error) {
	if len(args) != 3 {
		return colormodel.HSL{}, fmt.Errorf("usage: rgb <hue> <saturation> <luminosity>")
	}
	vals, err := parseFloats(args)
	if err != nil {
		return colormodel.HSL{}, err
	}
	return colormodel.HSL{
		Hue:        r.formatter.HueToSextant(vals[0]),
		Saturation: vals[1],
		Luminosity: vals[2],
	}, nil
}

func parseRGB(args []string, n int, usage string) (colormodel.RGB, error) {
	if len(args) != n {
		return colormodel.RGB{}, fmt.Errorf("usage: %s", usage)
	}
	var ch [3]uint8
	for i, a := range args {
		v, err := cli.ParseChannel(a)
		if err != nil {
			return colormodel.RGB{}, err
		}
		ch[i] = v
	}
	return colormodel.RGB{Red: ch[0], Green: ch[1], Blue: ch[2]}, nil
}

func parseFloats(args []string) ([]float32, error) {
	out := make([]float32, len(args))
	for i, a := range args {
		v, err := cli.ParseFloat(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
