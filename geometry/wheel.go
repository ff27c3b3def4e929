// Package geometry maps between pointer coordinates and colour coordinates for
// the spectrum wheel and the saturation/value triangle.
//
// Everything here is a pure function of its arguments. Layout dimensions are
// passed in explicitly; callers must supply positive, finite sizes.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"huewheel/colorspace"
)

// SpectrumOffset is the fixed cosmetic rotation that makes hue 0 point up.
const SpectrumOffset = 45.0

const radToDeg = 180 / math.Pi

// WheelAngle is the rotation of the wheel for a hue, before SpectrumOffset.
// The wheel turns opposite to increasing hue.
func WheelAngle(hue float64) float64 {
	return colorspace.NormalizeHue(360 - hue)
}

// WheelRotation is the angle the spectrum image is actually drawn at.
func WheelRotation(hue float64) float64 {
	return colorspace.NormalizeHue(WheelAngle(hue) + SpectrumOffset)
}

// PointerAngle returns atan2(y, x) in degrees of a point relative to the wheel centre.
func PointerAngle(p, center r2.Vec) float64 {
	d := r2.Sub(p, center)
	return math.Atan2(d.Y, d.X) * radToDeg
}

// HueFromPointerAngle is the hue that keeps the wheel under the pointer while it
// drags from startPointerAngle (wheel at startWheelAngle) to pointerAngle.
func HueFromPointerAngle(pointerAngle, startWheelAngle, startPointerAngle float64) float64 {
	return colorspace.NormalizeHue(360 - startWheelAngle - pointerAngle + startPointerAngle)
}
