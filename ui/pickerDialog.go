package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"huewheel/config"
	"huewheel/parser"
	"huewheel/picker"
)

// ColorPopup is a modal colour chooser. It edits its own model, seeded from
// the caller's colour, so cancelling leaves the caller untouched.
type ColorPopup struct {
	Model   *picker.Model
	Chooser *ColorChooser
	Entry   *ColorEntryView

	dialog *dialog.ConfirmDialog
}

// NewColorPopup builds a "Choose colour" dialog over window.
//
// Parameters:
//   - window: The parent window
//   - settings: Wheel size and drag sampling for the popup's chooser
//   - initial: The colour the popup opens on
//   - onChosen: Called with the picked colour when the user presses Choose
//
// Returns:
//   - *ColorPopup: The popup, not yet shown
func NewColorPopup(window fyne.Window, settings config.Settings, initial color.NRGBA, onChosen func(color.NRGBA)) *ColorPopup {
	m := picker.NewModel(initial, settings.Layout())
	m.SetSampleEvery(settings.DragSampleEvery)

	p := &ColorPopup{
		Model: m,
	}
	p.Chooser = NewColorChooser(m, settings)
	p.Entry = NewColorEntryView(m, window)

	content := container.NewBorder(nil, p.Entry.Card, nil, nil, p.Chooser)

	p.dialog = dialog.NewCustomConfirm(
		"Choose colour",
		"Choose",
		"Cancel",
		content,
		func(ok bool) {
			p.finish(ok, onChosen)
		},
		window,
	)

	// Make dialog large enough for the wheel plus the entry row
	side := float32(settings.WheelSize)
	p.dialog.Resize(fyne.NewSize(side+120, side+220))
	return p
}

// Show displays the popup.
func (p *ColorPopup) Show() {
	log.Printf("[UI] colour popup opened on %s", parser.FormatHex(p.Model.RGB()))
	p.dialog.Show()
}

func (p *ColorPopup) finish(ok bool, onChosen func(color.NRGBA)) {
	if !ok {
		log.Println("[UI] colour popup cancelled")
		return
	}

	c := p.Model.RGB()
	log.Printf("[UI] colour popup chose %s", parser.FormatHex(c))
	if onChosen != nil {
		onChosen(c)
	}
}

// ShowColorPopup opens a popup on the state's current colour and, if the user
// chooses, loads the result into the state's model and recent list.
func ShowColorPopup(state *PickerAppState) {
	NewColorPopup(state.Window, state.Settings, state.Model.RGB(), func(c color.NRGBA) {
		state.Model.SetRGB(c)
		state.CommitColor(c)
	}).Show()
}
