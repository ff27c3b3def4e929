package main

// main.go focuses on application initialization.
// Package structure:
// - models/      : Shared data types (HSV, Swatch)
// - colorspace/  : RGB <-> HSV conversion
// - geometry/    : Wheel angles and the saturation/value triangle
// - picker/      : The colour model that keeps RGB, HSV and hue in step, drag handling
// - render/      : Spectrum ring and triangle images
// - parser/      : Hex codes and colour names
// - validation/  : Checks for settings and user input
// - config/      : Settings file, logging, build version
// - ui/          : fyne widgets, windows and dialogs

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"huewheel/config"
	"huewheel/ui"
)

func main() {
	if dir, err := config.ConfigDir(); err != nil {
		log.Printf("[Config] logging to stderr only: %v", err)
	} else if err := config.InitLogger(dir); err != nil {
		log.Printf("[Config] logging to stderr only: %v", err)
	}
	defer config.CloseLogger()

	log.Printf("[UI] starting %s", config.VersionString())
	settings := config.LoadSettings()

	// Create a new Fyne application instance
	pickerApp := app.NewWithID("com.backyard.huewheel")

	app.SetMetadata(fyne.AppMetadata{
		ID:      "com.backyard.huewheel",
		Name:    "huewheel",
		Version: config.Version,
	})

	// Create the main application window
	myWindow := pickerApp.NewWindow("huewheel")

	state := ui.NewPickerAppState(myWindow, settings)

	// -------------------------------------------------------------------------
	// MENUS
	// -------------------------------------------------------------------------
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Settings", func() {
			log.Println("[UI] Settings opened (GUI)")
			ui.ShowConfigWindow(pickerApp, settings)
		}),
		fyne.NewMenuItem("Logs", func() {
			log.Println("[UI] Logs opened (GUI)")
			ui.ShowLogWindow(pickerApp)
		}),
	)

	colourMenu := fyne.NewMenu("Colour",
		fyne.NewMenuItem("Choose Colour...", func() {
			ui.ShowColorPopup(state)
		}),
		fyne.NewMenuItem("Copy Hex", func() {
			if _, err := ui.CopyColor(state.Model.RGB()); err != nil {
				log.Printf("[UI] copy failed: %v", err)
			}
		}),
		fyne.NewMenuItem("Paste", func() {
			c, err := ui.PasteColor()
			if err != nil {
				log.Printf("[UI] paste failed: %v", err)
				return
			}
			state.Model.SetRGB(c)
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			log.Println("[UI] About dialog opened")
			ui.ShowAboutDialog(pickerApp)
		}),
	)

	myWindow.SetMainMenu(fyne.NewMainMenu(fileMenu, colourMenu, helpMenu))

	// -------------------------------------------------------------------------
	// KEYBOARD SHORTCUTS
	// -------------------------------------------------------------------------
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] User closed application (ctrl + q)")
		pickerApp.Quit()
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyL,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] Logs opened (ctrl + l)")
		ui.ShowLogWindow(pickerApp)
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyP,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] Colour popup opened (ctrl + p)")
		ui.ShowColorPopup(state)
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyC,
		Modifier: fyne.KeyModifierControl | fyne.KeyModifierShift,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] Settings opened (ctrl + shift + c)")
		ui.ShowConfigWindow(pickerApp, settings)
	})

	myWindow.SetCloseIntercept(func() {
		log.Println("[UI] User closed application (window)")
		pickerApp.Quit()
	})

	// Set initial window size
	myWindow.Resize(fyne.NewSize(ui.DefaultWindowWidth, ui.DefaultWindowHeight))

	// Build the complete UI layout
	myWindow.SetContent(ui.BuildMainLayout(state))

	// Show the window and run the event loop
	myWindow.ShowAndRun()
}
