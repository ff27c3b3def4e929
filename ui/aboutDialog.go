package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"huewheel/config"
)

func ShowAboutDialog(pickerApp fyne.App) {
	title := widget.NewLabel("huewheel")
	title.TextStyle = fyne.TextStyle{Bold: true}

	version := widget.NewLabel(
		"Version: " + config.Version +
			"\nCommit: " + config.GitCommit +
			"\nBuilt: " + config.BuildTime,
	)

	version.Alignment = fyne.TextAlignCenter

	description := widget.NewLabel(
		"Hue wheel and saturation/value triangle colour picker.",
	)
	description.Wrapping = fyne.TextWrapWord

	features := widget.NewLabel(
		"Features:\n" +
			"• Drag the ring to turn the hue, drag the triangle for saturation and value\n" +
			"• RGB and HSV sliders kept in step with the wheel\n" +
			"• Hex codes and colour names, with copy and paste\n" +
			"• Recent colours for the session\n" +
			"• Cross-platform support",
	)
	features.Wrapping = fyne.TextWrapWord

	// Centered bold title
	centeredTitle := container.NewCenter(title)

	// centered version
	centeredVersion := container.NewCenter(version)

	// Declare window first so the close button can reference it
	var aboutWin fyne.Window
	closeBtn := widget.NewButton("Close", func() {
		aboutWin.Close()
	})

	// Main content (scrollable)
	mainContent := container.NewVBox(
		centeredTitle,
		centeredVersion,
		widget.NewSeparator(),
		description,
		widget.NewSeparator(),
		features,
	)

	scroll := container.NewScroll(mainContent)

	// Bottom area: separator + centered Close button
	bottom := container.NewVBox(
		widget.NewSeparator(),
		container.NewCenter(closeBtn),
	)

	// Border layout: scroll in center, close button at bottom
	content := container.NewBorder(nil, bottom, nil, nil, scroll)

	aboutWin = pickerApp.NewWindow("About huewheel")
	aboutWin.SetContent(content)
	aboutWin.Resize(fyne.NewSize(420, 400))
	aboutWin.SetFixedSize(true)
	aboutWin.Show()
}
