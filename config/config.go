package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"

	"huewheel/geometry"
	"huewheel/models"
	"huewheel/parser"
	"huewheel/validation"
)

const (
	configDirectory  = "~/.config/huewheel"
	settingsFileName = "settings.json"
)

// Settings holds the picker's user-tunable configuration.
type Settings struct {
	WheelSize         float64 `json:"wheel_size"`
	SpectrumThickness float64 `json:"spectrum_thickness"`
	TriangleOverlap   float64 `json:"triangle_overlap"`
	IndicatorRadius   float64 `json:"indicator_radius"`
	DragSampleEvery   int     `json:"drag_sample_every"`
	InitialColor      string  `json:"initial_color"`
}

// DefaultSettings returns the settings written to a fresh config directory.
func DefaultSettings() Settings {
	return Settings{
		WheelSize:         300,
		SpectrumThickness: 48,
		TriangleOverlap:   0,
		IndicatorRadius:   8,
		DragSampleEvery:   3,
		InitialColor:      "#FF0000",
	}
}

// Validate reports the first setting that cannot be used.
func (s Settings) Validate() error {
	if err := validation.ValidateLayout(s.WheelSize, s.SpectrumThickness, s.TriangleOverlap, s.IndicatorRadius); err != nil {
		return err
	}
	if err := validation.ValidateSampleEvery(s.DragSampleEvery); err != nil {
		return err
	}
	return validation.ValidateColorText(s.InitialColor)
}

// Layout derives the picker geometry from the settings.
func (s Settings) Layout() geometry.Layout {
	return geometry.NewLayout(s.WheelSize, s.SpectrumThickness, s.TriangleOverlap, s.IndicatorRadius)
}

// Color returns the colour the picker starts on, or the default colour if
// InitialColor does not parse.
func (s Settings) Color() color.NRGBA {
	c, err := parser.ParseColor(s.InitialColor)
	if err != nil {
		log.Printf("[Config] initial colour: %v, using default", err)
		return models.DefaultColor
	}
	return c
}

// LoadSettings reads ~/.config/huewheel/settings.json, creating it first if
// needed. Any problem is logged and the defaults are returned instead.
func LoadSettings() Settings {
	settingsFile, err := verifyConfigFiles()
	if err != nil {
		log.Printf("[Config] error verifying config files: %v", err)
		return DefaultSettings()
	}

	s, err := LoadSettingsFrom(settingsFile)
	if err != nil {
		log.Printf("[Config] %v, using defaults", err)
		return DefaultSettings()
	}
	return s
}

// LoadSettingsFrom reads and validates the settings file at path. Fields
// missing from the file keep their default values.
func LoadSettingsFrom(path string) (Settings, error) {
	file, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error loading settings file: %w", err)
	}
	defer file.Close()

	byteValues, err := io.ReadAll(file)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings file: %w", err)
	}

	s := DefaultSettings()
	if err := json.Unmarshal(byteValues, &s); err != nil {
		return Settings{}, fmt.Errorf("error unmarshalling settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}

// SaveSettingsTo writes s to path as indented JSON.
func SaveSettingsTo(path string, s Settings) error {
	jsonData, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, jsonData, 0644)
}

// ConfigDir returns the config directory, creating it if it does not exist.
func ConfigDir() (string, error) {
	return verifyConfigDirectory()
}

// check config directory exists or create it
func verifyConfigDirectory() (string, error) {
	dir, expandError := parser.ExpandPath(configDirectory)
	if expandError != nil {
		return "", fmt.Errorf("cannot verify local configuration directory: %w", expandError)
	}

	_, err := os.Stat(dir)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("error creating directory %s: %w", dir, err)
		}
		log.Printf("[Config] directory %s created", dir)
	} else if err != nil {
		return "", fmt.Errorf("error checking directory %s: %w", dir, err)
	}

	return dir, nil
}

// check settings file exists or write the default template
func verifyConfigFiles() (string, error) {
	dir, err := verifyConfigDirectory()
	if err != nil {
		return "", err
	}
	return ensureSettingsFile(filepath.Join(dir, settingsFileName))
}

func ensureSettingsFile(settingsFile string) (string, error) {
	_, err := os.Stat(settingsFile)
	if os.IsNotExist(err) {
		log.Printf("[Config] settings file not found, creating template at '%s'", settingsFile)
		if saveErr := SaveSettingsTo(settingsFile, DefaultSettings()); saveErr != nil {
			return "", fmt.Errorf("error creating settings file: %w", saveErr)
		}
	} else if err != nil {
		return "", fmt.Errorf("error checking file existence: %w", err)
	}

	return settingsFile, nil
}
