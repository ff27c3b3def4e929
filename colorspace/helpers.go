package colorspace

import (
	"image/color"

	"huewheel/models"
)

// HSVModel converts any color.Color to an HSVColor.
var HSVModel = color.ModelFunc(hsvModel)

// HSVColor adapts models.HSV to the color.Color interface so it can be
// handed straight to fyne canvas objects.
type HSVColor struct {
	models.HSV
	A uint8
}

// RGBA implements color.Color.
func (c HSVColor) RGBA() (r, g, b, a uint32) {
	return ToRGBA(c.HSV, c.A).RGBA()
}

func hsvModel(c color.Color) color.Color {
	if _, ok := c.(HSVColor); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return HSVColor{HSV: FromNRGBA(n), A: n.A}
}

// HueColor returns the fully saturated, fully bright colour at the given hue.
func HueColor(deg float64) color.NRGBA {
	return ToOpaque(models.HSV{H: deg, S: 1, V: 1})
}

// Complementary inverts R, G and B and keeps alpha.
func Complementary(c color.NRGBA) color.NRGBA {
	return color.NRGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// ContrastColor picks black or white for an outline drawn on top of c.
// Blue is ignored on purpose so the outline stays white on saturated blues.
func ContrastColor(c color.NRGBA) color.NRGBA {
	if c.R > 150 || c.G > 150 {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
}
