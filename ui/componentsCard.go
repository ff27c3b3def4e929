package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// NewCard wraps content in a white card that stands out from the gradient
// background. The background rectangle keeps the card at least
// CardMinWidth x CardMinHeight even when content is smaller.
//
// Parameters:
//   - content: The fyne.CanvasObject to be displayed inside the card
//
// Returns:
//   - fyne.CanvasObject: A card container with white background and padded content
func NewCard(content fyne.CanvasObject) fyne.CanvasObject {
	bg := canvas.NewRectangle(CardBackgroundColor)
	bg.SetMinSize(fyne.NewSize(CardMinWidth, CardMinHeight))
	bg.CornerRadius = 6

	return container.NewStack(bg, container.NewPadded(content))
}

// NewCardWithHeader creates a card with a bold title and a separator above content.
//
// Parameters:
//   - title: The text to display in the card header
//   - content: The main content to display below the header
//
// Returns:
//   - fyne.CanvasObject: A card with header, separator, and content
func NewCardWithHeader(title string, content fyne.CanvasObject) fyne.CanvasObject {
	header := container.NewVBox(
		NewBoldLabel(title),
		NewSeparator(),
	)

	return NewCard(container.NewBorder(header, nil, nil, nil, content))
}
