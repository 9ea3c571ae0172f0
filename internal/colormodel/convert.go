package colormodel

import "math"

// Reference:
// http://www.niwa.nu/2013/05/math-behind-colorspace-conversions-rgb-hsl/

// RGBToHSL converts an RGB colour to HSL. The returned hue is in sextants
// and lies in (-1, 5]: a red maximum with blue above green gives a negative
// hue, which is kept as is.
func RGBToHSL(c RGB) HSL {
	r := float32(c.Red) / 255
	g := float32(c.Green) / 255
	b := float32(c.Blue) / 255

	lo := min(r, g, b)
	hi := max(r, g, b)
	delta := hi - lo

	var h, s float32
	l := (hi + lo) / 2

	if delta != 0 {
		if l < 0.5 {
			s = delta / (hi + lo)
		} else {
			s = delta / (2 - hi - lo)
		}

		switch hi {
		case r:
			h = (g - b) / delta
		case g:
			h = 2 + (b-r)/delta
		default:
			h = 4 + (r-g)/delta
		}
	}

	return HSL{Hue: h, Saturation: s, Luminosity: l}
}

// HSLToRGB converts an HSL colour back to RGB. Hue must be in sextants,
// exactly as RGBToHSL returned it.
func HSLToRGB(c HSL) RGB {
	if c.Saturation == 0 {
		v := toChannel(float64(c.Luminosity * 255))
		return RGB{Red: v, Green: v, Blue: v}
	}

	var t1 float64
	if c.Luminosity < 0.5 {
		t1 = float64(c.Luminosity * (1 + c.Saturation))
	} else {
		t1 = float64(c.Luminosity + c.Saturation - c.Luminosity*c.Saturation)
	}
	t2 := float64(2*c.Luminosity) - t1

	h := float64(c.Hue / 6)
	third := float64(float32(1.0 / 3.0))

	return RGB{
		Red:   toChannel(channel(h+third, t1, t2) * 255),
		Green: toChannel(channel(h, t1, t2) * 255),
		Blue:  toChannel(channel(h-third, t1, t2) * 255),
	}
}

// channel evaluates one colour channel at position x on the hue circle
// (in turns), given the two intermediate luminosity bounds t1 and t2.
func channel(x, t1, t2 float64) float64 {
	if x < 0 {
		x++
	}
	if x > 1 {
		x--
	}

	switch {
	case 6*x < 1:
		return t2 + (t1-t2)*6*x
	case 2*x < 1:
		return t1
	case 3*x < 2:
		return t2 + (t1-t2)*(2.0/3.0-x)*6
	default:
		return t2
	}
}

// toChannel rounds half away from zero and clamps into [0,255].
func toChannel(v float64) uint8 {
	v = math.Round(v)
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}

// ScaleLuminosity multiplies the luminosity by factor and leaves hue and
// saturation unchanged. The result is not clamped.
func ScaleLuminosity(c HSL, factor float32) HSL {
	c.Luminosity *= factor
	return c
}

// BrightnessFactor maps an 8-bit brightness value onto [0,1].
func BrightnessFactor(brightness uint8) float32 {
	return float32(brightness) / 255
}
