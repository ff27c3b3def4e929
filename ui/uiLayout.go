package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// BuildMainLayout constructs the complete application UI layout.
// This is the main entry point for creating the user interface.
//
// The layout structure is:
// - Background: Slate gradient (45° angle)
// - Header: Application title and subtitle (top)
// - Content Area: Two-column layout
//   - Left Column: Colour wheel (fills) with the entry card below it
//   - Right Column: Channel sliders (top) and recent colours (bottom)
//
// - Footer: Current colour as RGB and HSV (bottom)
//
// Parameters:
//   - state: The application state holding the model every view edits
//
// Returns:
//   - fyne.CanvasObject: The complete UI layout ready to be set as window content
func BuildMainLayout(state *PickerAppState) fyne.CanvasObject {
	gradient := canvas.NewLinearGradient(
		GradientStartColor,
		GradientEndColor,
		GradientAngle,
	)

	header := NewHeader()

	chooser := NewColorChooser(state.Model, state.Settings)
	chooser.OnDragEnd = func(c color.NRGBA) {
		state.CommitColor(c)
	}

	entryView := NewColorEntryView(state.Model, state.Window)
	sliderPanel := NewSliderPanel(state.Model)
	recentView := NewRecentView(state)

	leftColumn := container.NewBorder(
		nil,
		entryView.Card,
		nil,
		nil,
		NewCard(chooser),
	)

	rightColumn := container.NewGridWithRows(2,
		container.NewStack(sliderPanel.Card),
		container.NewStack(recentView.Card),
	)

	contentArea := container.NewGridWithColumns(2,
		container.NewPadded(leftColumn),
		container.NewPadded(rightColumn),
	)

	footer := NewFooter(state.Model)

	mainLayout := container.NewBorder(
		container.NewPadded(header), // Top: Header with padding
		container.NewPadded(footer), // Bottom: Footer with padding
		nil,                         // Left: None
		nil,                         // Right: None
		contentArea,                 // Center: Main content fills remaining space
	)

	// Stack the gradient behind all content
	return container.NewStack(gradient, mainLayout)
}
