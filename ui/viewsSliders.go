package ui

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"huewheel/models"
	"huewheel/picker"
)

// SliderPanel represents the sliders card: one slider per channel of the RGB
// and HSV representations, each over a gradient strip that previews where the
// slider would take the colour.
//
// Sliders write straight into the model. The model's notification then moves
// every slider (including the one being dragged) to the settled values; the
// writes those updates echo back are dropped by the model.
type SliderPanel struct {
	// Card is the complete UI component ready to be added to the layout
	Card fyne.CanvasObject

	// One slider per channel
	R, G, B *widget.Slider
	H, S, V *widget.Slider

	values map[*widget.Slider]*widget.Label

	rTrack, gTrack, bTrack *canvas.LinearGradient
	sTrack, vTrack         *canvas.LinearGradient
	hTrack                 *canvas.Raster

	model *picker.Model
}

// NewSliderPanel creates the slider card bound to m.
//
// Parameters:
//   - m: The model the sliders edit
//
// Returns:
//   - *SliderPanel: A panel showing m's current colour
func NewSliderPanel(m *picker.Model) *SliderPanel {
	p := &SliderPanel{
		model:  m,
		values: make(map[*widget.Slider]*widget.Label),
	}

	p.R = newChannelSlider(0, 255, 1)
	p.G = newChannelSlider(0, 255, 1)
	p.B = newChannelSlider(0, 255, 1)
	p.H = newChannelSlider(0, 360, 1)
	p.S = newChannelSlider(0, 1, 0.01)
	p.V = newChannelSlider(0, 1, 0.01)

	p.rTrack = newTrack()
	p.gTrack = newTrack()
	p.bTrack = newTrack()
	p.sTrack = newTrack()
	p.vTrack = newTrack()
	p.hTrack = canvas.NewRasterWithPixels(func(x, y, w, h int) color.Color {
		if w <= 1 {
			return picker.HueTrack[0]
		}
		return trackColor(picker.HueTrack, float64(x)/float64(w-1))
	})
	p.hTrack.SetMinSize(fyne.NewSize(0, SliderTrackHeight))

	content := container.NewVBox(
		p.row("R", p.R, p.rTrack),
		p.row("G", p.G, p.gTrack),
		p.row("B", p.B, p.bTrack),
		NewSeparator(),
		p.row("H", p.H, p.hTrack),
		p.row("S", p.S, p.sTrack),
		p.row("V", p.V, p.vTrack),
	)

	// Set initial values before wiring handlers so construction writes nothing
	p.update(m.RGB())

	p.R.OnChanged = func(v float64) {
		c := p.model.RGB()
		c.R = channelByte(v)
		p.model.SetRGB(c)
	}
	p.G.OnChanged = func(v float64) {
		c := p.model.RGB()
		c.G = channelByte(v)
		p.model.SetRGB(c)
	}
	p.B.OnChanged = func(v float64) {
		c := p.model.RGB()
		c.B = channelByte(v)
		p.model.SetRGB(c)
	}
	p.H.OnChanged = func(v float64) {
		p.model.SetHue(v)
	}
	p.S.OnChanged = func(v float64) {
		hsv := p.model.HSV()
		p.model.SetHSV(models.HSV{H: p.model.Hue(), S: v, V: hsv.V})
	}
	p.V.OnChanged = func(v float64) {
		hsv := p.model.HSV()
		p.model.SetHSV(models.HSV{H: p.model.Hue(), S: hsv.S, V: v})
	}

	m.RegisterColorChangedCallback(p.update)

	p.Card = NewCardWithHeader("Channels", content)
	return p
}

// update moves every slider and track to c.
func (p *SliderPanel) update(c color.NRGBA) {
	hsv := p.model.HSV()

	p.setSlider(p.R, float64(c.R), "%.0f")
	p.setSlider(p.G, float64(c.G), "%.0f")
	p.setSlider(p.B, float64(c.B), "%.0f")
	p.setSlider(p.H, p.model.Hue(), "%.1f°")
	p.setSlider(p.S, hsv.S, "%.2f")
	p.setSlider(p.V, hsv.V, "%.2f")

	g := p.model.Gradients()
	setTrack(p.rTrack, g.R)
	setTrack(p.gTrack, g.G)
	setTrack(p.bTrack, g.B)
	setTrack(p.sTrack, g.S)
	setTrack(p.vTrack, g.V)
}

func (p *SliderPanel) setSlider(s *widget.Slider, v float64, format string) {
	s.SetValue(v)
	if label, ok := p.values[s]; ok {
		label.SetText(fmt.Sprintf(format, v))
	}
}

func (p *SliderPanel) row(name string, s *widget.Slider, track fyne.CanvasObject) fyne.CanvasObject {
	value := widget.NewLabel("")
	p.values[s] = value

	return container.NewBorder(nil, nil,
		NewBoldLabel(name),
		value,
		container.NewVBox(s, track),
	)
}

func newChannelSlider(lo, hi, step float64) *widget.Slider {
	s := widget.NewSlider(lo, hi)
	s.Step = step
	return s
}

func newTrack() *canvas.LinearGradient {
	g := canvas.NewHorizontalGradient(color.Black, color.White)
	g.SetMinSize(fyne.NewSize(0, SliderTrackHeight))
	return g
}

func setTrack(track *canvas.LinearGradient, g picker.Gradient) {
	track.StartColor = g.Start
	track.EndColor = g.End
	track.Refresh()
}

// channelByte rounds a slider value onto a 0..255 channel.
func channelByte(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

// trackColor samples a multi-stop gradient at t in [0, 1].
func trackColor(stops []color.NRGBA, t float64) color.NRGBA {
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	if t <= 0 || len(stops) == 1 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}

	pos := t * float64(len(stops)-1)
	i := int(pos)
	f := pos - float64(i)
	a, b := stops[i], stops[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f))
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}
