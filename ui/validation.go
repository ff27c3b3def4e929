package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"huewheel/parser"
	"huewheel/picker"
	"huewheel/validation"
)

// ApplyColorText parses text and, if it names a colour, makes it the model's
// colour. Invalid text is reported in a dialog on window (when there is one)
// and leaves the model untouched.
//
// Parameters:
//   - m: The model to update
//   - text: A hex code or colour name as typed by the user
//   - window: Parent window for the error dialog, may be nil
//
// Returns:
//   - bool: true if the model was updated
func ApplyColorText(m *picker.Model, text string, window fyne.Window) bool {
	if err := validation.ValidateColorText(text); err != nil {
		log.Printf("[UI] rejected colour input %q: %v", text, err)
		if window != nil {
			dialog.ShowError(err, window)
		}
		return false
	}

	c, err := parser.ParseColor(text)
	if err != nil {
		return false
	}
	m.SetRGB(c)
	return true
}
