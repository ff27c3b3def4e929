package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

// NewHeader creates the application header with title and subtitle.
//
// The header includes:
// - Large, bold application name
// - Smaller subtitle with application description
// - Spacer at the bottom for layout purposes
//
// Returns:
//   - fyne.CanvasObject: A container with the formatted header content
func NewHeader() fyne.CanvasObject {
	titleText := canvas.NewText("huewheel", TextColorLight)
	titleText.TextSize = TitleTextSize               // Large font (40pt)
	titleText.TextStyle = fyne.TextStyle{Bold: true} // Bold for emphasis
	titleText.Alignment = fyne.TextAlignCenter       // Centered

	// Create the subtitle describing the application
	subtitleText := canvas.NewText(
		"Drag the ring for hue, the triangle for saturation and value",
		TextColorLight,
	)
	subtitleText.TextSize = SubtitleTextSize      // Smaller font (16pt)
	subtitleText.Alignment = fyne.TextAlignCenter // Centered to match title

	// Combine title and subtitle in a vertical box with spacing
	// layout.NewSpacer() adds flexible space that pushes content apart
	header := container.NewVBox(
		titleText,
		subtitleText,
		layout.NewSpacer(), // Add space below header to separate from content
	)

	return header
}
