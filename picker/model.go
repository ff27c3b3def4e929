// Package picker holds the colour a picker widget edits and keeps its three
// views of that colour (packed RGB, HSV, standalone hue) in step.
//
// A Model is single-threaded. Every setter runs one synchronous settle pass:
// it updates all representations, then fires its notifications. Writes that
// arrive while a pass is in flight (typically a UI echoing the notification
// straight back) are dropped.
package picker

import (
	"image/color"
	"log"

	"gonum.org/v1/gonum/spatial/r2"

	"huewheel/colorspace"
	"huewheel/geometry"
	"huewheel/models"
)

type state int

const (
	idle state = iota
	updating
)

// Model is the authoritative colour of one picker.
type Model struct {
	rgb color.NRGBA
	hsv models.HSV
	hue float64

	state state

	layout   geometry.Layout
	triangle geometry.Triangle

	drag    *dragSession
	sampler Sampler

	onColorChanged []func(color.NRGBA)
	onHueChanged   []func(float64)
}

// NewModel creates a model holding c laid out with layout.
func NewModel(c color.NRGBA, layout geometry.Layout) *Model {
	m := &Model{
		layout:   layout,
		triangle: layout.Triangle(),
		sampler:  NewSampler(1),
	}
	m.storeRGB(c)
	return m
}

// RGB returns the current colour.
func (m *Model) RGB() color.NRGBA { return m.rgb }

// HSV returns the current colour as hue, saturation and value.
func (m *Model) HSV() models.HSV { return m.hsv }

// Hue returns the current hue in [0, 360).
func (m *Model) Hue() float64 { return m.hue }

// WheelAngle is the wheel rotation for the current hue, without the cosmetic offset.
func (m *Model) WheelAngle() float64 { return geometry.WheelAngle(m.hue) }

// WheelRotation is the angle the spectrum ring is drawn at.
func (m *Model) WheelRotation() float64 { return geometry.WheelRotation(m.hue) }

// IndicatorPosition is the top-left corner of the S/V marker.
func (m *Model) IndicatorPosition() r2.Vec {
	return m.triangle.IndicatorPosition(m.hsv.S, m.hsv.V, m.layout.IndicatorRadius)
}

// Layout returns the layout the model maps pointer positions with.
func (m *Model) Layout() geometry.Layout { return m.layout }

// Triangle returns the S/V triangle derived from the layout.
func (m *Model) Triangle() geometry.Triangle { return m.triangle }

// Updating reports whether a settle pass is in flight.
func (m *Model) Updating() bool { return m.state == updating }

// SetLayout replaces the layout after a resize. No notifications fire; readers
// pick the new indicator position up on their next refresh.
func (m *Model) SetLayout(l geometry.Layout) {
	m.layout = l
	m.triangle = l.Triangle()
	log.Printf("[Picker] layout changed: size=%.0f thickness=%.0f overlap=%.0f", l.Size, l.Thickness, l.Overlap)
}

// RegisterColorChangedCallback registers a callback fired once per accepted write,
// after every representation has been updated.
func (m *Model) RegisterColorChangedCallback(callback func(color.NRGBA)) {
	m.onColorChanged = append(m.onColorChanged, callback)
}

// RegisterHueChangedCallback registers a callback fired when SetHue (directly or
// through a wheel drag) changes the hue. It runs before the colour callbacks.
func (m *Model) RegisterHueChangedCallback(callback func(float64)) {
	m.onHueChanged = append(m.onHueChanged, callback)
}

// SetRGB makes c the current colour. HSV and hue are derived from it.
func (m *Model) SetRGB(c color.NRGBA) {
	if !m.begin() {
		return
	}
	defer m.end()

	m.storeRGB(c)
	m.fireColorChanged()
}

// SetHSV makes hsv the current colour, keeping the current alpha. Hue is wrapped
// into [0, 360) and saturation and value are clamped to [0, 1].
func (m *Model) SetHSV(hsv models.HSV) {
	if !m.begin() {
		return
	}
	defer m.end()

	hsv = models.HSV{
		H: colorspace.NormalizeHue(hsv.H),
		S: colorspace.Clamp01(hsv.S),
		V: colorspace.Clamp01(hsv.V),
	}
	m.hsv = hsv
	m.hue = hsv.H
	m.rgb = colorspace.ToRGBA(hsv, m.rgb.A)
	m.fireColorChanged()
}

// SetHue turns the wheel to deg, keeping saturation, value and alpha.
// Setting the hue it already has does nothing.
func (m *Model) SetHue(deg float64) {
	deg = colorspace.NormalizeHue(deg)
	if deg == m.hue {
		return
	}
	if !m.begin() {
		return
	}
	defer m.end()

	m.hue = deg
	m.hsv.H = deg
	m.rgb = colorspace.ToRGBA(m.hsv, m.rgb.A)
	for _, callback := range m.onHueChanged {
		callback(deg)
	}
	m.fireColorChanged()
}

func (m *Model) storeRGB(c color.NRGBA) {
	m.rgb = c
	m.hsv = colorspace.FromNRGBA(c)
	m.hue = m.hsv.H
}

// begin enters the updating state, or reports false if a pass is already running.
func (m *Model) begin() bool {
	if m.state != idle {
		return false
	}
	m.state = updating
	return true
}

func (m *Model) end() {
	m.state = idle
}

func (m *Model) fireColorChanged() {
	for _, callback := range m.onColorChanged {
		callback(m.rgb)
	}
}
