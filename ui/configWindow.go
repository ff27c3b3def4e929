package ui

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"huewheel/config"
)

// ShowConfigWindow shows the settings the picker is running with and lets the
// user edit and save settings.json. Saved settings apply on the next start.
func ShowConfigWindow(pickerApp fyne.App, current config.Settings) {
	configWindow := pickerApp.NewWindow("huewheel Settings")
	configWindow.Resize(fyne.NewSize(600, 500))

	dir, err := config.ConfigDir()
	if err != nil {
		log.Printf("[UI] cannot verify local configuration directory: %v", err)
		dialog.ShowError(err, configWindow)
	}
	settingsPath := filepath.Join(dir, "settings.json")

	pathLabel := widget.NewLabel(fmt.Sprintf("File: %s", settingsPath))
	pathLabel.Wrapping = fyne.TextWrapWord

	editor := widget.NewMultiLineEntry()
	editor.TextStyle = fyne.TextStyle{Monospace: true}
	editor.SetText(settingsJSON(current))

	statusLabel := widget.NewLabel("Changes take effect the next time huewheel starts.")

	saveButton := widget.NewButton("Save", func() {
		s, err := parseSettings(editor.Text)
		if err != nil {
			dialog.ShowError(err, configWindow)
			return
		}
		if err := config.SaveSettingsTo(settingsPath, s); err != nil {
			dialog.ShowError(fmt.Errorf("error saving settings: %w", err), configWindow)
			return
		}
		log.Printf("[UI] settings saved to %s", settingsPath)
		statusLabel.SetText("Saved. Changes take effect the next time huewheel starts.")
	})
	saveButton.Importance = widget.HighImportance

	defaultsButton := widget.NewButton("Defaults", func() {
		editor.SetText(settingsJSON(config.DefaultSettings()))
	})

	closeButton := widget.NewButton("Close", func() {
		configWindow.Close()
	})

	buttons := container.NewHBox(defaultsButton, saveButton, closeButton)

	content := container.NewBorder(
		pathLabel,
		container.NewVBox(statusLabel, container.NewCenter(buttons)),
		nil, nil,
		editor,
	)
	configWindow.SetContent(content)
	configWindow.Show()
}

func settingsJSON(s config.Settings) string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}

// parseSettings reads edited settings text. Missing fields take their defaults.
func parseSettings(text string) (config.Settings, error) {
	s := config.DefaultSettings()
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &s); err != nil {
		return config.Settings{}, fmt.Errorf("settings are not valid JSON: %w", err)
	}
	if err := s.Validate(); err != nil {
		return config.Settings{}, err
	}
	return s, nil
}
