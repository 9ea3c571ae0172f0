// Package colormodel converts colours between the RGB and HSL models.
//
// # Hue units
//
// HSL.Hue is expressed in sextants: one unit is 60 degrees, so pure red is
// 0, pure green 2 and pure blue 4. RGBToHSL produces this value and
// HSLToRGB expects it back unmodified; it divides by 6 internally. Callers
// that want degrees use HSL.HueDegrees, which is for display only.
//
// # Grey detection
//
// Both directions use exact floating point comparisons to detect the
// achromatic case (delta == 0 and Saturation == 0). No tolerance is
// applied, so a colour only takes the grey branch when its channels are
// exactly equal.
//
// # Domain
//
// RGBToHSL is total over 8-bit input. HSLToRGB does not validate its
// input: Saturation and Luminosity outside [0,1] produce meaningless
// channel values, which are clamped into [0,255].
package colormodel
