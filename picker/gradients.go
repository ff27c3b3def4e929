package picker

import (
	"image/color"

	"huewheel/colorspace"
	"huewheel/models"
)

// Gradient is the start and end colour of a slider track.
type Gradient struct {
	Start color.NRGBA
	End   color.NRGBA
}

// SliderGradients are the tracks of the six channel sliders for the current colour.
type SliderGradients struct {
	R, G, B Gradient
	S, V    Gradient
}

// saturation and value tracks stop just short of zero so the hue still shows.
const trackFloor = 0.01

// HueTrack is the fixed spectrum drawn behind the hue slider, red to red.
var HueTrack = []color.NRGBA{
	colorspace.HueColor(0),
	colorspace.HueColor(60),
	colorspace.HueColor(120),
	colorspace.HueColor(180),
	colorspace.HueColor(240),
	colorspace.HueColor(300),
	colorspace.HueColor(360),
}

// Gradients derives the slider tracks from the model's current colour.
func (m *Model) Gradients() SliderGradients {
	c := m.rgb
	hsv := m.hsv
	return SliderGradients{
		R: Gradient{
			color.NRGBA{R: 0, G: c.G, B: c.B, A: 255},
			color.NRGBA{R: 255, G: c.G, B: c.B, A: 255},
		},
		G: Gradient{
			color.NRGBA{R: c.R, G: 0, B: c.B, A: 255},
			color.NRGBA{R: c.R, G: 255, B: c.B, A: 255},
		},
		B: Gradient{
			color.NRGBA{R: c.R, G: c.G, B: 0, A: 255},
			color.NRGBA{R: c.R, G: c.G, B: 255, A: 255},
		},
		S: Gradient{
			colorspace.ToOpaque(models.HSV{H: m.hue, S: trackFloor, V: hsv.V}),
			colorspace.ToOpaque(models.HSV{H: m.hue, S: 1, V: hsv.V}),
		},
		V: Gradient{
			colorspace.ToOpaque(models.HSV{H: m.hue, S: hsv.S, V: trackFloor}),
			colorspace.ToOpaque(models.HSV{H: m.hue, S: hsv.S, V: 1}),
		},
	}
}
