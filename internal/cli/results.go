package cli

import (
	"fmt"
	"strconv"

	"rgbhsl/internal/colormodel"
	"rgbhsl/internal/roundtrip"
)

// HSLResult is printed by `rgbhsl rgb2hsl`.
type HSLResult struct {
	Input      colormodel.RGB `json:"input" yaml:"input"`
	Hex        string         `json:"hex" yaml:"hex"`
	HSL        colormodel.HSL `json:"hsl" yaml:"hsl"`
	HueDegrees float32        `json:"hueDegrees" yaml:"hueDegrees"`
}

// NewHSLResult bundles an input colour with its conversion.
func NewHSLResult(in colormodel.RGB, out colormodel.HSL) HSLResult {
	return HSLResult{Input: in, Hex: in.Hex(), HSL: out, HueDegrees: out.HueDegrees()}
}

// Properties implements Tabular.
func (r HSLResult) Properties(f Formatter) []Property {
	return []Property{
		{"rgb", fmt.Sprintf("%d %d %d", r.Input.Red, r.Input.Green, r.Input.Blue)},
		{"hex", r.Hex},
		{"hue", f.Hue(r.HSL)},
		{"saturation", f.Float(r.HSL.Saturation)},
		{"luminosity", f.Float(r.HSL.Luminosity)},
	}
}

// RGBResult is printed by `rgbhsl hsl2rgb`.
type RGBResult struct {
	Input colormodel.HSL `json:"input" yaml:"input"`
	RGB   colormodel.RGB `json:"rgb" yaml:"rgb"`
	Hex   string         `json:"hex" yaml:"hex"`
}

// NewRGBResult bundles an input colour with its conversion.
func NewRGBResult(in colormodel.HSL, out colormodel.RGB) RGBResult {
	return RGBResult{Input: in, RGB: out, Hex: out.Hex()}
}

// Properties implements Tabular.
func (r RGBResult) Properties(f Formatter) []Property {
	return []Property{
		{"hsl", f.HSL(r.Input)},
		{"red", strconv.Itoa(int(r.RGB.Red))},
		{"green", strconv.Itoa(int(r.RGB.Green))},
		{"blue", strconv.Itoa(int(r.RGB.Blue))},
		{"hex", r.Hex},
	}
}

// BrightnessResult is printed by `rgbhsl brightness`.
type BrightnessResult struct {
	Luminosity float32 `json:"luminosity" yaml:"luminosity"`
	Factor     float32 `json:"factor" yaml:"factor"`
	Result     float32 `json:"result" yaml:"result"`
}

// Properties implements Tabular.
func (r BrightnessResult) Properties(f Formatter) []Property {
	return []Property{
		{"luminosity", f.Float(r.Luminosity)},
		{"factor", f.Float(r.Factor)},
		{"result", f.Float(r.Result)},
	}
}

// VerifyResult wraps a round-trip report for printing.
type VerifyResult struct {
	roundtrip.Report `yaml:",inline"`
	OK               bool `json:"ok" yaml:"ok"`
}

// Properties implements Tabular.
func (r VerifyResult) Properties(_ Formatter) []Property {
	props := []Property{
		{"step", strconv.Itoa(r.Step)},
		{"samples", strconv.Itoa(r.Samples)},
		{"exact", strconv.Itoa(r.Exact)},
		{"max error", strconv.Itoa(r.MaxError)},
		{"mean error", strconv.FormatFloat(r.MeanError, 'f', 6, 64)},
		{"std dev", strconv.FormatFloat(r.StdDev, 'f', 6, 64)},
		{"ok", strconv.FormatBool(r.OK)},
	}
	for _, m := range r.Mismatches {
		props = append(props, Property{
			Name:  "mismatch " + m.Input.Hex(),
			Value: fmt.Sprintf("%s (error %d)", m.Output.Hex(), m.Error),
		})
	}
	return props
}
