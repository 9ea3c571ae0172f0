package tui

import (
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"

	"rgbhsl/internal/cli"
	"rgbhsl/internal/colormodel"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Each action mirrors one button of the tester. It returns the status text
// on success.

func (m *Model) display() (string, error) {
	c, err := m.readRGB()
	if err != nil {
		return "", err
	}
	m.current = c
	return "showing " + c.Hex(), nil
}

func (m *Model) calcHSL() (string, error) {
	c, err := m.readRGB()
	if err != nil {
		return "", err
	}
	m.current = c
	m.setHSL(m.session.ToHSL(c))
	return "RGB → HSL", nil
}

func (m *Model) calcRGB() (string, error) {
	hsl, err := m.readHSL()
	if err != nil {
		return "", err
	}
	m.setRGB(m.session.ToRGB(hsl))
	return "HSL → RGB", nil
}

// applyBrightness scales the luminosity field by brightness/255 and updates
// the RGB fields to match.
func (m *Model) applyBrightness() (string, error) {
	hsl, err := m.readHSL()
	if err != nil {
		return "", err
	}
	b, err := m.readChannel(fieldBrightness)
	if err != nil {
		return "", err
	}
	hsl = m.session.ScaleLuminosity(hsl, colormodel.BrightnessFactor(b))
	m.setHSL(hsl)
	m.setRGB(m.session.ToRGB(hsl))
	return fmt.Sprintf("brightness %d applied", b), nil
}

func (m *Model) push() (string, error) {
	c, err := m.readRGB()
	if err != nil {
		return "", err
	}
	b, err := m.readChannel(fieldBrightness)
	if err != nil {
		return "", err
	}
	if !m.session.Push(c, b) {
		return "", fmt.Errorf("stack full (%d entries)", m.session.Capacity())
	}
	return fmt.Sprintf("pushed %s (%d/%d)", c.Hex(), len(m.session.Saved()), m.session.Capacity()), nil
}

// pop restores the fields from the top of the stack. An empty stack still
// restores the bottom slot.
func (m *Model) pop() (string, error) {
	e, ok := m.session.PopChecked()
	m.setRGB(e.Color)
	m.setHSL(m.session.ToHSL(e.Color))
	m.inputs[fieldBrightness].SetValue(formatChannel(e.Brightness))
	if !ok {
		return "stack empty, restored bottom slot " + e.Color.Hex(), nil
	}
	return "restored " + e.Color.Hex(), nil
}

func (m *Model) copyHex() (string, error) {
	hex := m.current.Hex()
	if err := writeClipboard(hex); err != nil {
		return "", fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return hex + " copied to clipboard", nil
}

func (m *Model) readChannel(f field) (uint8, error) {
	v, err := cli.ParseChannel(m.inputs[f].Value())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", fieldLabel(f, m.formatter), err)
	}
	return v, nil
}

func (m *Model) readFloat(f field) (float32, error) {
	v, err := cli.ParseFloat(m.inputs[f].Value())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", fieldLabel(f, m.formatter), err)
	}
	return v, nil
}

func (m *Model) readRGB() (colormodel.RGB, error) {
	var ch [3]uint8
	for i, f := range []field{fieldRed, fieldGreen, fieldBlue} {
		v, err := m.readChannel(f)
		if err != nil {
			return colormodel.RGB{}, err
		}
		ch[i] = v
	}
	return colormodel.RGB{Red: ch[0], Green: ch[1], Blue: ch[2]}, nil
}

func (m *Model) readHSL() (colormodel.HSL, error) {
	var vals [3]float32
	for i, f := range []field{fieldHue, fieldSaturation, fieldLuminosity} {
		v, err := m.readFloat(f)
		if err != nil {
			return colormodel.HSL{}, err
		}
		vals[i] = v
	}
	return colormodel.HSL{
		Hue:        m.formatter.HueToSextant(vals[0]),
		Saturation: vals[1],
		Luminosity: vals[2],
	}, nil
}

// setRGB writes c into the RGB fields and shows it in the swatch.
func (m *Model) setRGB(c colormodel.RGB) {
	m.inputs[fieldRed].SetValue(formatChannel(c.Red))
	m.inputs[fieldGreen].SetValue(formatChannel(c.Green))
	m.inputs[fieldBlue].SetValue(formatChannel(c.Blue))
	m.current = c
}

func (m *Model) setHSL(c colormodel.HSL) {
	m.inputs[fieldHue].SetValue(m.formatter.Float(m.formatter.HueValue(c)))
	m.inputs[fieldSaturation].SetValue(m.formatter.Float(c.Saturation))
	m.inputs[fieldLuminosity].SetValue(m.formatter.Float(c.Luminosity))
}

func formatChannel(v uint8) string {
	return strconv.Itoa(int(v))
}
