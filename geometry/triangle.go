package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"huewheel/colorspace"
)

const (
	// MinSpectrumThickness is the narrowest ring the wheel will draw.
	MinSpectrumThickness = 5.0

	// degenerateEpsilon replaces a zero denominator in SVFromPointer.
	degenerateEpsilon = 0.00001

	sqrt3 = 1.7320508075688772
)

// Layout is the on-screen arrangement of the wheel and its triangle, in pixels,
// relative to the top-left corner of the square wheel box.
type Layout struct {
	Size            float64 // Wheel diameter (the box is Size x Size)
	Thickness       float64 // Width of the spectrum ring
	Overlap         float64 // How far the triangle reaches into the ring
	IndicatorRadius float64 // Radius of the S/V pick marker
}

// NewLayout builds a layout, limiting the ring thickness to [5, size/2] and the
// overlap so that the triangle's bounding circle stays between 1px and the wheel.
func NewLayout(size, thickness, overlap, indicatorRadius float64) Layout {
	half := size / 2
	thickness = math.Max(MinSpectrumThickness, math.Min(half, thickness))

	inner := size - 2*thickness
	d := inner + 2*overlap
	if d < 1 {
		overlap = -(inner - 1) / 2
	}
	if d > size {
		overlap = (size - inner) / 2
	}

	return Layout{
		Size:            size,
		Thickness:       thickness,
		Overlap:         overlap,
		IndicatorRadius: indicatorRadius,
	}
}

// Center is the wheel centre.
func (l Layout) Center() r2.Vec {
	return r2.Vec{X: l.Size / 2, Y: l.Size / 2}
}

// InnerRadius is the radius of the hole inside the spectrum ring.
func (l Layout) InnerRadius() float64 {
	return l.Size/2 - l.Thickness
}

// Triangle derives the S/V triangle from the layout.
func (l Layout) Triangle() Triangle {
	d := math.Max(1, math.Min(l.Size, l.Size-2*l.Thickness+2*l.Overlap))
	height := d * 0.75
	half := d * sqrt3 / 4
	return Triangle{
		Side:    2 * half,
		Half:    half,
		Height:  height,
		YBottom: l.Thickness - l.Overlap + height,
		XCenter: l.Size / 2,
	}
}

// Triangle holds the precomputed measures of an equilateral S/V triangle with
// its apex up. Apex is full saturation, bottom right is white, bottom left is black.
type Triangle struct {
	Side    float64 // L
	Half    float64 // L/2
	Height  float64 // apex to base
	YBottom float64 // y of the base
	XCenter float64 // x of the apex
}

// Vertices returns apex (pure hue), bottom right (white) and bottom left (black).
func (t Triangle) Vertices() [3]r2.Vec {
	return [3]r2.Vec{
		{X: t.XCenter, Y: t.YBottom - t.Height},
		{X: t.XCenter + t.Half, Y: t.YBottom},
		{X: t.XCenter - t.Half, Y: t.YBottom},
	}
}

// Point is the centre of the marker for a saturation/value pair.
func (t Triangle) Point(s, v float64) r2.Vec {
	return r2.Vec{
		X: t.XCenter + ((2-s)*v-1)*t.Half,
		Y: t.YBottom - s*v*t.Height,
	}
}

// IndicatorPosition is the top-left corner of a marker of the given radius
// centred on Point(s, v).
func (t Triangle) IndicatorPosition(s, v, radius float64) r2.Vec {
	return r2.Sub(t.Point(s, v), r2.Vec{X: radius, Y: radius})
}

// SVFromPointer maps a pointer position back to saturation and value, both
// clamped to [0, 1]. Points outside the triangle snap to its nearest edge in
// colour space; the one singular point (d == 0) is nudged off by an epsilon.
func (t Triangle) SVFromPointer(p r2.Vec) (s, v float64) {
	a := (t.YBottom - p.Y) / sqrt3
	b := t.XCenter + t.Half - p.X - a
	d := t.Side - b
	if d == 0 {
		d = degenerateEpsilon
	}
	return colorspace.Clamp01(2 * a / d), colorspace.Clamp01(d / t.Side)
}

// Contains reports whether p lies inside or on the triangle.
func (t Triangle) Contains(p r2.Vec) bool {
	v := t.Vertices()
	d1 := edgeSign(p, v[0], v[1])
	d2 := edgeSign(p, v[1], v[2])
	d3 := edgeSign(p, v[2], v[0])
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edgeSign(p, a, b r2.Vec) float64 {
	return r2.Cross(r2.Sub(p, b), r2.Sub(a, b))
}

// InRing reports whether p lies on the spectrum ring.
func (l Layout) InRing(p r2.Vec) bool {
	r := r2.Norm(r2.Sub(p, l.Center()))
	return r >= l.InnerRadius() && r <= l.Size/2
}
