package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RecentView represents the recent colours card component.
// This view displays the colours committed during this session, newest first.
// Clicking an entry loads it back into the picker.
//
// The view automatically:
// - Refreshes when a colour is committed
// - Clears its selection so the same entry can be picked twice in a row
type RecentView struct {
	// Card is the complete UI component ready to be added to the layout
	Card fyne.CanvasObject

	// List is the scrollable list widget showing the swatches
	List *widget.List

	// AddButton commits the model's current colour
	AddButton *widget.Button

	// state is a reference to the shared application state
	state *PickerAppState
}

// NewRecentView creates a new recent colours view component.
//
// Parameters:
//   - state: Pointer to the shared application state
//
// Returns:
//   - *RecentView: A new view with all components initialized
func NewRecentView(state *PickerAppState) *RecentView {
	view := &RecentView{
		state: state,
	}

	// widget.NewList uses three callbacks:
	// 1. Length function - tells the list how many items exist
	// 2. CreateItem function - creates a template for list items (called once)
	// 3. UpdateItem function - populates each item with actual data
	view.List = widget.NewList(
		func() int {
			return len(view.state.Recent)
		},
		func() fyne.CanvasObject {
			swatch := NewSwatch(color.Transparent, SwatchSize, SwatchSize)
			return container.NewBorder(nil, nil, swatch, nil, widget.NewLabel("template"))
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			entry := view.state.Recent[id]

			row := item.(*fyne.Container)
			label := row.Objects[0].(*widget.Label)
			swatch := row.Objects[1].(*canvas.Rectangle)

			label.SetText(fmt.Sprintf("%s  %s", entry.Hex, entry.Name))
			swatch.FillColor = entry.Color
			swatch.Refresh()
		},
	)

	view.List.OnSelected = func(id widget.ListItemID) {
		view.state.SelectRecent(int(id))
		view.List.UnselectAll()
	}

	view.AddButton = widget.NewButton("Add current colour", func() {
		view.state.CommitColor(view.state.Model.RGB())
	})

	cardContent := container.NewBorder(
		container.NewVBox(
			NewBoldLabel("Recent Colours"),
			NewSeparator(),
		),
		view.AddButton,
		nil,
		nil,
		view.List,
	)

	view.Card = NewCard(cardContent)

	view.state.RegisterRecentChangedCallback(func() {
		view.List.Refresh()
	})

	return view
}
