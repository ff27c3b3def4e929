package models

import (
	"fmt"
	"image/color"
)

// HSV is a colour expressed as hue, saturation and value.
// Equality is exact field comparison; conversions to and from RGB are lossy,
// so two HSV values describing the same bytes may still compare unequal.
type HSV struct {
	H float64 // Hue in degrees, normalized to [0, 360)
	S float64 // Saturation in [0, 1]
	V float64 // Value in [0, 1]
}

// String formats the triple with three decimals, e.g. "(120.000,1.000,0.500)".
func (c HSV) String() string {
	return fmt.Sprintf("(%.3f,%.3f,%.3f)", c.H, c.S, c.V)
}

// Equal reports whether all three fields are bit-for-bit equal.
func (c HSV) Equal(o HSV) bool {
	return c.H == o.H && c.S == o.S && c.V == o.V
}

// DefaultColor is opaque red, the colour every picker starts with unless configured otherwise.
var DefaultColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}

// Swatch is a named colour shown next to the picker (nearest CSS name, hex code).
type Swatch struct {
	Name  string      // Closest colour name, e.g. "crimson"
	Hex   string      // "#RRGGBB", or "#RRGGBBAA" when not opaque
	Color color.NRGBA // The colour itself
}
