package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"huewheel/colorspace"
	"huewheel/parser"
	"huewheel/picker"
)

// ColorEntryView is the card below the wheel: a preview of the current and
// complementary colours, the colour's nearest name, and a text entry that
// accepts hex codes or colour names.
type ColorEntryView struct {
	// Card is the complete UI component ready to be added to the layout
	Card fyne.CanvasObject

	// UI components that need to be accessed after creation
	Entry         *widget.Entry     // Hex or name input, applied on Enter
	NameLabel     *widget.Label     // Nearest colour name and hex code
	Swatch        *canvas.Rectangle // Current colour
	Complementary *canvas.Rectangle // Complementary colour
	CopyButton    *widget.Button
	PasteButton   *widget.Button

	model  *picker.Model
	window fyne.Window
}

// NewColorEntryView creates the entry card bound to m.
//
// Parameters:
//   - m: The model to display and edit
//   - window: Parent for error dialogs, may be nil
//
// Returns:
//   - *ColorEntryView: A view showing m's current colour
func NewColorEntryView(m *picker.Model, window fyne.Window) *ColorEntryView {
	view := &ColorEntryView{
		model:  m,
		window: window,
	}

	view.Swatch = NewSwatch(color.Transparent, SwatchSize*2, SwatchSize)
	view.Complementary = NewSwatch(color.Transparent, SwatchSize, SwatchSize)

	view.NameLabel = widget.NewLabel("")

	view.Entry = widget.NewEntry()
	view.Entry.SetPlaceHolder("#RRGGBB or colour name")
	view.Entry.OnSubmitted = func(text string) {
		if !ApplyColorText(view.model, text, view.window) {
			view.update(view.model.RGB())
		}
	}

	view.CopyButton = widget.NewButton("Copy", func() {
		text, err := CopyColor(view.model.RGB())
		if err != nil {
			view.showError(err)
			return
		}
		view.NameLabel.SetText(fmt.Sprintf("Copied %s", text))
	})

	view.PasteButton = widget.NewButton("Paste", func() {
		c, err := PasteColor()
		if err != nil {
			view.showError(err)
			return
		}
		view.model.SetRGB(c)
	})

	view.update(m.RGB())
	m.RegisterColorChangedCallback(view.update)

	swatches := container.NewHBox(view.Swatch, view.Complementary)
	entryRow := container.NewBorder(nil, nil, nil,
		container.NewHBox(view.CopyButton, view.PasteButton),
		view.Entry)

	view.Card = NewCard(container.NewVBox(
		container.NewBorder(nil, nil, swatches, nil, view.NameLabel),
		entryRow,
	))

	return view
}

// update shows c in the swatches, label and entry.
func (v *ColorEntryView) update(c color.NRGBA) {
	swatch := parser.Describe(c)

	v.Swatch.FillColor = c
	v.Swatch.Refresh()
	v.Complementary.FillColor = colorspace.Complementary(c)
	v.Complementary.Refresh()

	v.NameLabel.SetText(fmt.Sprintf("%s  %s", swatch.Hex, swatch.Name))
	v.Entry.SetText(swatch.Hex)
}

func (v *ColorEntryView) showError(err error) {
	if v.window != nil {
		dialog.ShowError(err, v.window)
	}
}
