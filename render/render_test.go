package render

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"huewheel/colorspace"
	"huewheel/geometry"
)

func hueAt(img *image.NRGBA, x, y int) float64 {
	return colorspace.FromNRGBA(img.NRGBAAt(x, y)).H
}

func hueDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	return math.Min(d, 360-d)
}

func TestRingHue(t *testing.T) {
	center := r2.Vec{X: 50, Y: 50}
	assert.InDelta(t, 45.0, RingHue(r2.Vec{X: 50, Y: 0}, center), 1e-9)
	assert.InDelta(t, 135.0, RingHue(r2.Vec{X: 100, Y: 50}, center), 1e-9)
	assert.InDelta(t, 225.0, RingHue(r2.Vec{X: 50, Y: 100}, center), 1e-9)
	assert.InDelta(t, 315.0, RingHue(r2.Vec{X: 0, Y: 50}, center), 1e-9)
}

func TestSpectrum(t *testing.T) {
	l := geometry.NewLayout(100, 20, 0, 4)
	img := Spectrum(l, 100)
	require.Equal(t, image.Rect(0, 0, 100, 100), img.Bounds())

	// centre and corners are outside the ring
	assert.Equal(t, uint8(0), img.NRGBAAt(50, 50).A)
	assert.Equal(t, uint8(0), img.NRGBAAt(0, 0).A)

	// middle of the ring is fully covered
	top := img.NRGBAAt(50, 10)
	assert.Equal(t, uint8(255), top.A)
	assert.Less(t, hueDistance(hueAt(img, 50, 10), 45), 2.0)
	assert.Less(t, hueDistance(hueAt(img, 10, 50), 315), 2.0)
}

func TestSpectrumScalesToPixels(t *testing.T) {
	l := geometry.NewLayout(100, 20, 0, 4)
	img := Spectrum(l, 200)
	require.Equal(t, image.Rect(0, 0, 200, 200), img.Bounds())
	assert.Equal(t, uint8(0), img.NRGBAAt(100, 100).A)
	assert.Equal(t, uint8(255), img.NRGBAAt(100, 20).A)
}

func TestSpectrumEmpty(t *testing.T) {
	img := Spectrum(geometry.NewLayout(100, 20, 0, 4), 0)
	assert.True(t, img.Bounds().Empty())
}

func TestRotatePutsHueOnTop(t *testing.T) {
	l := geometry.NewLayout(100, 20, 0, 4)
	base := Spectrum(l, 100)

	for _, hue := range []float64{0, 120, 315} {
		rotated := Rotate(base, geometry.WheelRotation(hue))
		require.Equal(t, base.Bounds(), rotated.Bounds())

		got := hueAt(rotated, 50, 8)
		assert.Less(t, hueDistance(got, hue), 4.0, "hue %v drawn as %v", hue, got)
	}
}

func TestRotateQuarterTurnIsExact(t *testing.T) {
	l := geometry.NewLayout(100, 20, 0, 4)
	base := Spectrum(l, 100)

	// hue 315 rotates by exactly 90 degrees, so no resampling happens
	rotated := Rotate(base, geometry.WheelRotation(315))
	assert.Equal(t, base.NRGBAAt(2, 49), rotated.NRGBAAt(50, 2))
}

func TestTriangle(t *testing.T) {
	l := geometry.NewLayout(300, 48, 0, 8)
	img := Triangle(l, 0, 300)

	assert.Equal(t, uint8(0), img.NRGBAAt(0, 0).A)

	apex := img.NRGBAAt(150, 52)
	assert.Equal(t, uint8(255), apex.A)
	assert.Greater(t, apex.R, uint8(240))
	assert.Less(t, apex.G, uint8(20))
	assert.Less(t, apex.B, uint8(20))

	black := img.NRGBAAt(64, 199)
	assert.Less(t, black.R, uint8(30))
	assert.Less(t, black.G, uint8(30))
	assert.Less(t, black.B, uint8(30))

	white := img.NRGBAAt(235, 199)
	assert.Greater(t, white.R, uint8(240))
	assert.Greater(t, white.G, uint8(240))
	assert.Greater(t, white.B, uint8(240))
}

func TestTriangleFollowsHue(t *testing.T) {
	l := geometry.NewLayout(300, 48, 0, 8)
	img := Triangle(l, 240, 300)

	apex := img.NRGBAAt(150, 52)
	assert.Greater(t, apex.B, uint8(240))
	assert.Less(t, apex.R, uint8(20))
}

func TestWheelCache(t *testing.T) {
	var c WheelCache
	l := geometry.NewLayout(100, 20, 0, 4)

	a := c.Ring(l, 100, 45)
	assert.Same(t, a, c.Ring(l, 100, 45))

	b := c.Ring(l, 100, 90)
	assert.NotSame(t, a, b)

	tri := c.Triangle(l, 10, 100)
	assert.Same(t, tri, c.Triangle(l, 10, 100))
	assert.NotSame(t, tri, c.Triangle(l, 20, 100))
}
