package colormodel

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned by ParseHex for strings that are not #RGB or #RRGGBB.
var ErrInvalidHex = errors.New("invalid hex colour")

// RGB is an 8-bit per channel colour without alpha.
type RGB struct {
	Red   uint8 `json:"red" yaml:"red"`
	Green uint8 `json:"green" yaml:"green"`
	Blue  uint8 `json:"blue" yaml:"blue"`
}

// HSL holds hue in sextants (see package doc), saturation and luminosity in [0,1].
type HSL struct {
	Hue        float32 `json:"hue" yaml:"hue"`
	Saturation float32 `json:"saturation" yaml:"saturation"`
	Luminosity float32 `json:"luminosity" yaml:"luminosity"`
}

// RGBA implements color.Color. The colour is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.Red, G: c.Green, B: c.Blue, A: 0xff}.RGBA()
}

// Hex returns the colour as #rrggbb.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.Red, c.Green, c.Blue)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.Red) / 255,
		G: float64(c.Green) / 255,
		B: float64(c.Blue) / 255,
	}
}

// ParseHex parses #rrggbb or the short #rgb form. The leading # is optional.
func ParseHex(s string) (RGB, error) {
	if len(s) > 0 && s[0] != '#' {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%w %q", ErrInvalidHex, s)
	}
	r, g, b := c.RGB255()
	return RGB{Red: r, Green: g, Blue: b}, nil
}

// FromColor converts any color.Color to RGB, dropping alpha.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{Red: n.R, Green: n.G, Blue: n.B}
}

// HueDegrees returns the hue in degrees, normalised into [0,360).
func (c HSL) HueDegrees() float32 {
	d := math.Mod(float64(c.Hue)*60, 360)
	if d < 0 {
		d += 360
	}
	return float32(d)
}

// String implements fmt.Stringer.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g)", c.Hue, c.Saturation, c.Luminosity)
}
