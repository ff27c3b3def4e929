package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"huewheel/picker"
)

// NewFooter creates the application footer.
// The footer shows the current colour as RGB and HSV and follows the model.
//
// Parameters:
//   - m: The model to describe
//
// Returns:
//   - fyne.CanvasObject: A centered text label for the footer
func NewFooter(m *picker.Model) fyne.CanvasObject {
	footerText := canvas.NewText(footerLine(m), TextColorLight)
	footerText.TextSize = FooterTextSize
	footerText.Alignment = fyne.TextAlignCenter

	m.RegisterColorChangedCallback(func(color.NRGBA) {
		footerText.Text = footerLine(m)
		footerText.Refresh()
	})

	return footerText
}

func footerLine(m *picker.Model) string {
	c := m.RGB()
	hsv := m.HSV()
	return fmt.Sprintf("rgb(%d, %d, %d)   hsv(%.1f°, %.0f%%, %.0f%%)   wheel %.1f°",
		c.R, c.G, c.B, m.Hue(), hsv.S*100, hsv.V*100, m.WheelRotation())
}
