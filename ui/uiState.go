package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"

	"huewheel/config"
	"huewheel/models"
	"huewheel/parser"
	"huewheel/picker"
)

// PickerAppState holds the shared state for the entire application.
// Every view edits the same picker.Model; the model's own callbacks keep the
// chooser, the sliders and the text entry in step.
//
// The list of recent colours lives only as long as the window. It uses
// callbacks to notify views when it changes, following an observer pattern.
type PickerAppState struct {
	// Window is the main application window, needed for showing dialogs
	Window fyne.Window

	// Settings the picker was started with
	Settings config.Settings

	// Model is the colour being edited
	Model *picker.Model

	// Recent holds colours the user has committed, newest first
	Recent []models.Swatch

	// OnRecentChanged is called when a colour is added to Recent
	OnRecentChanged []func()
}

// NewPickerAppState creates and initializes a new application state.
// This should be called once at application startup.
//
// Parameters:
//   - window: The main application window
//   - settings: Loaded (or default) settings
//
// Returns:
//   - *PickerAppState: A new state instance holding the settings' initial colour
func NewPickerAppState(window fyne.Window, settings config.Settings) *PickerAppState {
	m := picker.NewModel(settings.Color(), settings.Layout())
	m.SetSampleEvery(settings.DragSampleEvery)

	return &PickerAppState{
		Window:          window,
		Settings:        settings,
		Model:           m,
		Recent:          make([]models.Swatch, 0),
		OnRecentChanged: make([]func(), 0),
	}
}

// CommitColor records c at the top of the recent list and notifies callbacks.
// Committing the colour already at the top does nothing.
//
// Parameters:
//   - c: The colour to remember
func (s *PickerAppState) CommitColor(c color.NRGBA) {
	if len(s.Recent) > 0 && s.Recent[0].Color == c {
		return
	}

	swatch := parser.Describe(c)
	log.Printf("[UI] committed %s (%s)", swatch.Hex, swatch.Name)

	s.Recent = append([]models.Swatch{swatch}, s.Recent...)
	if len(s.Recent) > MaxRecentColors {
		s.Recent = s.Recent[:MaxRecentColors]
	}

	for _, callback := range s.OnRecentChanged {
		callback()
	}
}

// SelectRecent loads the recent colour at index id back into the model.
//
// Parameters:
//   - id: The index into Recent
func (s *PickerAppState) SelectRecent(id int) {
	if id < 0 || id >= len(s.Recent) {
		return
	}
	s.Model.SetRGB(s.Recent[id].Color)
}

// RegisterRecentChangedCallback registers a callback to be called when the
// recent list changes. Multiple callbacks can be registered and will all be
// called in order.
//
// Parameters:
//   - callback: Function to call after a colour is committed
func (s *PickerAppState) RegisterRecentChangedCallback(callback func()) {
	s.OnRecentChanged = append(s.OnRecentChanged, callback)
}
