package picker

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"huewheel/colorspace"
	"huewheel/geometry"
	"huewheel/models"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

func newTestModel(c color.NRGBA) *Model {
	return NewModel(c, geometry.NewLayout(300, 48, 0, 8))
}

// requireSettled checks the invariants that must hold between writes.
func requireSettled(t *testing.T, m *Model) {
	t.Helper()
	require.False(t, m.Updating())
	require.Equal(t, m.Hue(), m.HSV().H)
	require.True(t, m.Hue() >= 0 && m.Hue() < 360)
	require.True(t, m.HSV().S >= 0 && m.HSV().S <= 1)
	require.True(t, m.HSV().V >= 0 && m.HSV().V <= 1)
}

func TestNewModelDerivesRepresentations(t *testing.T) {
	m := newTestModel(blue)
	assert.Equal(t, blue, m.RGB())
	assert.InDelta(t, 240, m.Hue(), 1e-9)
	assert.Equal(t, models.HSV{H: 240, S: 1, V: 1}, m.HSV())
	requireSettled(t, m)
}

func TestEndToEndConversions(t *testing.T) {
	t.Run("rgb to hsv", func(t *testing.T) {
		m := newTestModel(blue)
		m.SetRGB(color.NRGBA{R: 255, G: 0, B: 0, A: 255})
		assert.Equal(t, models.HSV{H: 0, S: 1, V: 1}, m.HSV())
		requireSettled(t, m)
	})

	t.Run("hsv to rgb", func(t *testing.T) {
		m := newTestModel(red)
		m.SetHSV(models.HSV{H: 120, S: 1, V: 1})
		assert.Equal(t, color.NRGBA{R: 0, G: 255, B: 0, A: 255}, m.RGB())
		assert.Equal(t, 120.0, m.Hue())
		requireSettled(t, m)
	})

	t.Run("hue keeps saturation and value", func(t *testing.T) {
		m := newTestModel(red)
		m.SetHue(240)
		assert.Equal(t, color.NRGBA{R: 0, G: 0, B: 255, A: 255}, m.RGB())
		assert.Equal(t, models.HSV{H: 240, S: 1, V: 1}, m.HSV())
		requireSettled(t, m)
	})
}

func TestSetHueWraps(t *testing.T) {
	m := newTestModel(red)

	m.SetHue(370)
	assert.Equal(t, 10.0, m.Hue())
	requireSettled(t, m)

	m.SetHue(-10)
	assert.Equal(t, 350.0, m.Hue())
	requireSettled(t, m)
}

func TestSetHueIdempotent(t *testing.T) {
	m := newTestModel(red)
	m.SetHue(90)

	var colorCalls, hueCalls int
	m.RegisterColorChangedCallback(func(color.NRGBA) { colorCalls++ })
	m.RegisterHueChangedCallback(func(float64) { hueCalls++ })

	m.SetHue(90)
	m.SetHue(450)
	assert.Equal(t, 0, colorCalls)
	assert.Equal(t, 0, hueCalls)
}

func TestSetHueNotificationOrder(t *testing.T) {
	m := newTestModel(red)

	var events []string
	m.RegisterHueChangedCallback(func(h float64) {
		events = append(events, "hue")
		assert.Equal(t, 60.0, h)
	})
	m.RegisterColorChangedCallback(func(c color.NRGBA) {
		events = append(events, "color")
		assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 0, A: 255}, c)
	})

	m.SetHue(60)
	assert.Equal(t, []string{"hue", "color"}, events)
}

func TestSetRGBFiresOnce(t *testing.T) {
	m := newTestModel(red)

	var calls int
	var hueCalls int
	m.RegisterColorChangedCallback(func(color.NRGBA) { calls++ })
	m.RegisterHueChangedCallback(func(float64) { hueCalls++ })

	m.SetRGB(green)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, hueCalls)

	// unchanged colour still notifies
	m.SetRGB(green)
	assert.Equal(t, 2, calls)
}

func TestEchoWritesAreDropped(t *testing.T) {
	m := newTestModel(blue)

	var calls int
	m.RegisterColorChangedCallback(func(c color.NRGBA) {
		calls++
		// a UI layer reflecting the change straight back, with stale or wrong values
		m.SetRGB(green)
		m.SetHSV(models.HSV{H: 300, S: 0.5, V: 0.5})
		m.SetHue(33)
	})

	var hueCalls int
	m.RegisterHueChangedCallback(func(float64) { hueCalls++ })

	m.SetRGB(red)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, hueCalls)
	assert.Equal(t, red, m.RGB())
	assert.Equal(t, models.HSV{H: 0, S: 1, V: 1}, m.HSV())
	requireSettled(t, m)

	// the model accepts writes again once the pass is over
	m.SetHSV(models.HSV{H: 120, S: 1, V: 1})
	assert.Equal(t, 2, calls)
	assert.Equal(t, green, m.RGB())
}

func TestCallbacksSeeSettledState(t *testing.T) {
	m := newTestModel(red)

	m.RegisterColorChangedCallback(func(c color.NRGBA) {
		assert.Equal(t, c, m.RGB())
		assert.Equal(t, m.Hue(), m.HSV().H)
		assert.True(t, m.Updating())
	})

	m.SetHSV(models.HSV{H: 200, S: 0.4, V: 0.7})
	assert.Equal(t, colorspace.ToRGBA(m.HSV(), 255), m.RGB())

	m.SetHue(20)
	assert.Equal(t, colorspace.ToRGBA(m.HSV(), 255), m.RGB())

	m.SetRGB(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	assert.Equal(t, colorspace.FromNRGBA(m.RGB()), m.HSV())
}

func TestSetHSVNormalizes(t *testing.T) {
	m := newTestModel(red)

	m.SetHSV(models.HSV{H: -90, S: 1.5, V: -0.25})
	assert.Equal(t, models.HSV{H: 270, S: 1, V: 0}, m.HSV())
	assert.Equal(t, 270.0, m.Hue())
	assert.Equal(t, color.NRGBA{A: 255}, m.RGB())
	requireSettled(t, m)
}

func TestAlphaCarriedThrough(t *testing.T) {
	m := newTestModel(color.NRGBA{R: 255, A: 0x80})

	m.SetHSV(models.HSV{H: 120, S: 1, V: 1})
	assert.Equal(t, uint8(0x80), m.RGB().A)

	m.SetHue(240)
	assert.Equal(t, color.NRGBA{B: 255, A: 0x80}, m.RGB())

	m.SetRGB(color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	assert.Equal(t, uint8(4), m.RGB().A)
}

func TestGreyResetsHue(t *testing.T) {
	m := newTestModel(blue)
	m.SetRGB(color.NRGBA{R: 128, G: 128, B: 128, A: 255})

	assert.Equal(t, 0.0, m.Hue())
	assert.Equal(t, 0.0, m.HSV().S)
	requireSettled(t, m)
}

func TestWheelState(t *testing.T) {
	m := newTestModel(red)
	assert.Equal(t, 0.0, m.WheelAngle())
	assert.Equal(t, 45.0, m.WheelRotation())

	m.SetHue(90)
	assert.Equal(t, 270.0, m.WheelAngle())
	assert.Equal(t, 315.0, m.WheelRotation())
}

func TestIndicatorFollowsColor(t *testing.T) {
	m := newTestModel(red)
	tri := m.Triangle()
	r := m.Layout().IndicatorRadius

	// full saturation and value sits on the apex
	apex := tri.Vertices()[0]
	assert.InDelta(t, apex.X-r, m.IndicatorPosition().X, 1e-9)
	assert.InDelta(t, apex.Y-r, m.IndicatorPosition().Y, 1e-9)

	// white sits on the bottom right corner
	m.SetRGB(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	white := tri.Vertices()[1]
	assert.InDelta(t, white.X-r, m.IndicatorPosition().X, 1e-9)
	assert.InDelta(t, white.Y-r, m.IndicatorPosition().Y, 1e-9)
}

func TestSetLayoutMovesIndicatorWithoutNotifying(t *testing.T) {
	m := newTestModel(red)
	before := m.IndicatorPosition()

	var calls int
	m.RegisterColorChangedCallback(func(color.NRGBA) { calls++ })

	m.SetLayout(geometry.NewLayout(600, 48, 0, 8))
	assert.Equal(t, 0, calls)
	assert.NotEqual(t, before, m.IndicatorPosition())
	assert.Equal(t, r2.Vec{X: 300, Y: 300}, m.Layout().Center())
}

func TestGradients(t *testing.T) {
	m := newTestModel(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	g := m.Gradients()

	assert.Equal(t, color.NRGBA{R: 0, G: 20, B: 30, A: 255}, g.R.Start)
	assert.Equal(t, color.NRGBA{R: 255, G: 20, B: 30, A: 255}, g.R.End)
	assert.Equal(t, color.NRGBA{R: 10, G: 255, B: 30, A: 255}, g.G.End)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 0, A: 255}, g.B.Start)

	m.SetHSV(models.HSV{H: 0, S: 0.5, V: 1})
	g = m.Gradients()
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, g.S.End)
	assert.Equal(t, color.NRGBA{R: 255, G: 128, B: 128, A: 255}, g.V.End)

	require.Len(t, HueTrack, 7)
	assert.Equal(t, HueTrack[0], HueTrack[6])
}
