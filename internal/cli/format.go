package cli

import (
	"strconv"

	"rgbhsl/internal/colormodel"
	"rgbhsl/internal/config"
)

// Formatter renders HSL numbers for humans. Hue is shown either as the raw
// sextant value or in degrees.
type Formatter struct {
	HueUnit   config.HueUnit
	Precision int
}

// NewFormatter builds a Formatter from the tester settings.
func NewFormatter(cfg config.TesterConfig) Formatter {
	return Formatter{HueUnit: cfg.HueUnit, Precision: cfg.Precision}
}

// Float formats v with the configured number of decimals.
func (f Formatter) Float(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', f.Precision, 32)
}

// HueValue returns the hue of c in the configured unit.
func (f Formatter) HueValue(c colormodel.HSL) float32 {
	if f.HueUnit == config.HueUnitDegrees {
		return c.HueDegrees()
	}
	return c.Hue
}

// Hue formats the hue of c in the configured unit.
func (f Formatter) Hue(c colormodel.HSL) string {
	if f.HueUnit == config.HueUnitDegrees {
		return f.Float(f.HueValue(c)) + "°"
	}
	return f.Float(f.HueValue(c))
}

// HueToSextant converts a hue typed by the user in the configured unit back
// to the sextant value HSLToRGB expects.
func (f Formatter) HueToSextant(v float32) float32 {
	if f.HueUnit == config.HueUnitDegrees {
		return v / 60
	}
	return v
}

// HSL formats all three components separated by spaces.
func (f Formatter) HSL(c colormodel.HSL) string {
	return f.Hue(c) + " " + f.Float(c.Saturation) + " " + f.Float(c.Luminosity)
}
