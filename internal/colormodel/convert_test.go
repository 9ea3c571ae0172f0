package colormodel

import (
	"image/color"
	"math"
	"testing"

	"github.com/crazy3lf/colorconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBToHSL_Primaries(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want HSL
	}{
		{"red", RGB{255, 0, 0}, HSL{Hue: 0, Saturation: 1, Luminosity: 0.5}},
		{"green", RGB{0, 255, 0}, HSL{Hue: 2, Saturation: 1, Luminosity: 0.5}},
		{"blue", RGB{0, 0, 255}, HSL{Hue: 4, Saturation: 1, Luminosity: 0.5}},
		{"yellow", RGB{255, 255, 0}, HSL{Hue: 1, Saturation: 1, Luminosity: 0.5}},
		{"cyan", RGB{0, 255, 255}, HSL{Hue: 3, Saturation: 1, Luminosity: 0.5}},
		{"black", RGB{0, 0, 0}, HSL{}},
		{"white", RGB{255, 255, 255}, HSL{Hue: 0, Saturation: 0, Luminosity: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.in)
			assert.InDelta(t, tt.want.Hue, got.Hue, 1e-6, "hue")
			assert.InDelta(t, tt.want.Saturation, got.Saturation, 1e-6, "saturation")
			assert.InDelta(t, tt.want.Luminosity, got.Luminosity, 1e-6, "luminosity")
		})
	}
}

func TestRGBToHSL_Achromatic(t *testing.T) {
	got := RGBToHSL(RGB{128, 128, 128})
	assert.Equal(t, float32(0), got.Hue)
	assert.Equal(t, float32(0), got.Saturation)
	assert.InDelta(t, 0.502, got.Luminosity, 1e-3)
}

func TestRGBToHSL_TiesPreferRed(t *testing.T) {
	// Red and blue share the maximum; the red branch must win.
	got := RGBToHSL(RGB{255, 0, 255})
	assert.InDelta(t, -1, got.Hue, 1e-6)
}

func TestRGBToHSL_NegativeHueIsKept(t *testing.T) {
	got := RGBToHSL(RGB{255, 0, 128})
	assert.Less(t, got.Hue, float32(0))
	assert.InDelta(t, 329.88, got.HueDegrees(), 0.01)
	assert.Equal(t, RGB{255, 0, 128}, HSLToRGB(got))
}

func TestHSLToRGB_GreyRoundTripIsExact(t *testing.T) {
	for v := 0; v <= 255; v++ {
		c := RGB{uint8(v), uint8(v), uint8(v)}
		hsl := RGBToHSL(c)
		require.Equal(t, float32(0), hsl.Saturation, "grey %d must collapse saturation", v)
		require.Equal(t, c, HSLToRGB(hsl), "grey %d", v)
	}
}

func TestHSLToRGB_RoundTripWithinOne(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 5 {
				in := RGB{uint8(r), uint8(g), uint8(b)}
				out := HSLToRGB(RGBToHSL(in))
				if absDiff(in.Red, out.Red) > 1 || absDiff(in.Green, out.Green) > 1 || absDiff(in.Blue, out.Blue) > 1 {
					t.Fatalf("round trip %v -> %v exceeds one step", in, out)
				}
			}
		}
	}
}

func TestHSLToRGB_HueMustNotBeRescaled(t *testing.T) {
	green := RGB{0, 255, 0}
	hsl := RGBToHSL(green)
	require.Equal(t, green, HSLToRGB(hsl))

	degrees := hsl
	degrees.Hue *= 60
	assert.Equal(t, RGB{0, 0, 0}, HSLToRGB(degrees), "degrees fall outside the wrapped range")

	turns := hsl
	turns.Hue /= 6
	assert.NotEqual(t, green, HSLToRGB(turns), "an extra /6 shifts the hue")
}

func TestHSLToRGB_OutOfDomainIsClamped(t *testing.T) {
	assert.Equal(t, RGB{255, 255, 255}, HSLToRGB(HSL{Luminosity: 2}))
	assert.Equal(t, RGB{0, 0, 0}, HSLToRGB(HSL{Luminosity: -1}))
	assert.Equal(t, RGB{255, 153, 153}, HSLToRGB(HSL{Saturation: 3, Luminosity: 0.9}))
}

func TestChannel(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"rising edge", 0.1, 0.6},
		{"plateau", 0.4, 1},
		{"falling edge", 0.6, 0.4},
		{"floor", 0.9, 0},
		{"wraps negative", -0.25, 0},
		{"wraps above one", 1.1, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, channel(tt.x, 1, 0), 1e-9)
		})
	}
}

func TestScaleLuminosity(t *testing.T) {
	in := HSL{Hue: 2, Saturation: 0.5, Luminosity: 0.8}
	got := ScaleLuminosity(in, 0.5)
	assert.Equal(t, HSL{Hue: 2, Saturation: 0.5, Luminosity: 0.4}, got)
	assert.Equal(t, float32(0.8), in.Luminosity, "input is a copy")
	assert.Equal(t, float32(1), BrightnessFactor(255))
	assert.Equal(t, float32(0), BrightnessFactor(0))
}

func TestMatchesColorconv(t *testing.T) {
	samples := []RGB{
		{255, 127, 0},
		{12, 200, 99},
		{40, 40, 200},
		{255, 0, 255},
		{0, 255, 255},
		{201, 33, 77},
		{90, 90, 91},
	}

	for _, c := range samples {
		t.Run(c.Hex(), func(t *testing.T) {
			h, s, l := colorconv.ColorToHSL(c)
			got := RGBToHSL(c)
			assert.InDelta(t, 0, hueDistance(float64(got.HueDegrees()), h), 0.01, "hue")
			assert.InDelta(t, s, got.Saturation, 1e-4, "saturation")
			assert.InDelta(t, l, got.Luminosity, 1e-4, "luminosity")
		})
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff8000", RGB{255, 128, 0}.Hex())

	c, err := ParseHex("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, RGB{255, 128, 0}, c)

	c, err = ParseHex("0f0")
	require.NoError(t, err)
	assert.Equal(t, RGB{0, 255, 0}, c)

	_, err = ParseHex("nothex")
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func TestFromColorAndRGBA(t *testing.T) {
	var _ color.Color = RGB{}

	c := FromColor(color.RGBA{R: 1, G: 2, B: 3, A: 255})
	assert.Equal(t, RGB{1, 2, 3}, c)

	r, g, b, a := RGB{255, 0, 0}.RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 360-d)
}
