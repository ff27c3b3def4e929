// Package colorspace converts between packed RGB and HSV.
//
// All functions are total over float64 input and never fail. Converting back and
// forth is lossy: expect up to one unit of error per byte channel and noticeable
// hue drift for nearly grey colours.
package colorspace

import (
	"image/color"
	"math"

	"huewheel/models"
)

// ToHSV converts unit-fraction channels (0..1) to hue in degrees, saturation and value.
// Inputs are not clamped; callers pass bytes divided by 255.
func ToHSV(r, g, b float64) models.HSV {
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	c := hi - lo

	h := 0.0
	if !(r == g && g == b) {
		switch hi {
		case r:
			h = (g - b) / c
		case g:
			h = 2 + (b-r)/c
		default:
			h = 4 + (r-g)/c
		}
		h *= 60
		if h < 0 {
			h += 360
		}
	}

	s := 0.0
	if hi > 0 {
		s = c / hi
	}

	return models.HSV{H: h, S: s, V: hi}
}

// FromNRGBA converts a packed colour to HSV. Alpha is ignored.
func FromNRGBA(c color.NRGBA) models.HSV {
	return ToHSV(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

// ToRGB converts HSV to unit-fraction channels. Any hue is accepted and wrapped;
// saturation and value are used as given, so out-of-range inputs produce
// out-of-range channels.
func ToRGB(h, s, v float64) (r, g, b float64) {
	h = math.Mod(h, 360) / 60
	if h < 0 {
		h += 6
	}

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))

	switch {
	case h < 1:
		r, g, b = c, x, 0
	case h < 2:
		r, g, b = x, c, 0
	case h < 3:
		r, g, b = 0, c, x
	case h < 4:
		r, g, b = 0, x, c
	case h < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := v - c
	return r + m, g + m, b + m
}

// ToRGBA converts HSV to bytes with the given alpha.
func ToRGBA(hsv models.HSV, alpha uint8) color.NRGBA {
	r, g, b := ToRGB(hsv.H, hsv.S, hsv.V)
	return color.NRGBA{R: toByte(r), G: toByte(g), B: toByte(b), A: alpha}
}

// ToOpaque is ToRGBA with a fully opaque alpha.
func ToOpaque(hsv models.HSV) color.NRGBA {
	return ToRGBA(hsv, 0xff)
}

// NormalizeHue wraps any angle into [0, 360).
func NormalizeHue(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -1e-20 + 360 rounds to 360
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// toByte rounds a unit fraction to a channel byte. Values outside [0, 1]
// saturate instead of wrapping.
func toByte(f float64) uint8 {
	f = math.Round(f * 255)
	if f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(f)
}
