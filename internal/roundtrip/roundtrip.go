// Package roundtrip measures how well RGB -> HSL -> RGB reproduces its input.
package roundtrip

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"rgbhsl/internal/colormodel"
	"rgbhsl/pkg/logging"
)

// Mismatch records a sample whose channels did not survive the round trip exactly.
type Mismatch struct {
	Input  colormodel.RGB `json:"input" yaml:"input"`
	Output colormodel.RGB `json:"output" yaml:"output"`
	Error  int            `json:"error" yaml:"error"`
}

// Report summarises a sweep.
type Report struct {
	Step       int        `json:"step" yaml:"step"`
	Samples    int        `json:"samples" yaml:"samples"`
	Exact      int        `json:"exact" yaml:"exact"`
	MaxError   int        `json:"maxError" yaml:"maxError"`
	MeanError  float64    `json:"meanError" yaml:"meanError"`
	StdDev     float64    `json:"stdDev" yaml:"stdDev"`
	Mismatches []Mismatch `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
}

// OK reports whether every sample came back within one step per channel.
func (r Report) OK() bool {
	return r.MaxError <= 1
}

// MaxMismatches caps how many mismatches a Report keeps.
const MaxMismatches = 20

// Sweep converts a grid of the RGB cube with the given step (1 visits all
// 16.7M colours) plus the full grey ramp. It stops early when ctx is done.
func Sweep(ctx context.Context, step int) (Report, error) {
	if step < 1 || step > 255 {
		return Report{}, fmt.Errorf("step must be between 1 and 255, got %d", step)
	}

	axis := levels(step)
	errs := make([]float64, 0, len(axis)*len(axis)*len(axis)+256)
	report := Report{Step: step}

	check := func(in colormodel.RGB) {
		out := colormodel.HSLToRGB(colormodel.RGBToHSL(in))
		e := max(diff(in.Red, out.Red), diff(in.Green, out.Green), diff(in.Blue, out.Blue))
		errs = append(errs, float64(e))
		if e == 0 {
			report.Exact++
			return
		}
		if len(report.Mismatches) < MaxMismatches {
			report.Mismatches = append(report.Mismatches, Mismatch{Input: in, Output: out, Error: e})
		}
	}

	for _, r := range axis {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		for _, g := range axis {
			for _, b := range axis {
				check(colormodel.RGB{Red: r, Green: g, Blue: b})
			}
		}
	}
	for v := 0; v <= 255; v++ {
		check(colormodel.RGB{Red: uint8(v), Green: uint8(v), Blue: uint8(v)})
	}

	report.Samples = len(errs)
	report.MaxError = int(floats.Max(errs))
	report.MeanError, report.StdDev = stat.MeanStdDev(errs, nil)

	logging.Debug("Roundtrip", "step %d: %d samples, %d exact, max error %d", step, report.Samples, report.Exact, report.MaxError)
	return report, nil
}

// levels returns 0, step, 2*step, ... and always ends with 255.
func levels(step int) []uint8 {
	var out []uint8
	for v := 0; v < 255; v += step {
		out = append(out, uint8(v))
	}
	return append(out, 255)
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
