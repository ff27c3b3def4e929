package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// NewBoldLabel creates a left-aligned label with bold text.
func NewBoldLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(
		text,
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)
}

// NewSeparator creates a horizontal separator line.
func NewSeparator() *widget.Separator {
	return widget.NewSeparator()
}

// NewSwatch creates a colour preview rectangle of at least width x height.
//
// Parameters:
//   - c: The initial fill colour
//   - width, height: Minimum size of the swatch
//
// Returns:
//   - *canvas.Rectangle: The swatch; set FillColor and call Refresh to recolour it
func NewSwatch(c color.Color, width, height float32) *canvas.Rectangle {
	swatch := canvas.NewRectangle(c)
	swatch.SetMinSize(fyne.NewSize(width, height))
	swatch.StrokeColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	swatch.StrokeWidth = 1
	return swatch
}
