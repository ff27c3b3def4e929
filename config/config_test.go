package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, s.Color())

	l := s.Layout()
	assert.Equal(t, 300.0, l.Size)
	assert.Equal(t, 48.0, l.Thickness)
}

func TestSaveAndLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)

	want := DefaultSettings()
	want.WheelSize = 400
	want.DragSampleEvery = 1
	want.InitialColor = "teal"
	require.NoError(t, SaveSettingsTo(path, want))

	got, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, color.NRGBA{G: 128, B: 128, A: 255}, got.Color())
}

func TestLoadSettingsFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"wheel_size": 500}`), 0644))

	got, err := LoadSettingsFrom(path)
	require.NoError(t, err)

	want := DefaultSettings()
	want.WheelSize = 500
	assert.Equal(t, want, got)
}

func TestLoadSettingsErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"bad json", `{"wheel_size": `},
		{"negative size", `{"wheel_size": -1}`},
		{"sample interval zero", `{"drag_sample_every": 0}`},
		{"unknown colour", `{"initial_color": "notacolour"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadSettingsFrom(path)
			assert.Error(t, err)
		})
	}

	_, err := LoadSettingsFrom(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnsureSettingsFileWritesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)

	got, err := ensureSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	s, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)

	// an existing file is left alone
	custom := DefaultSettings()
	custom.IndicatorRadius = 4
	require.NoError(t, SaveSettingsTo(path, custom))
	_, err = ensureSettingsFile(path)
	require.NoError(t, err)
	s, err = LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 4.0, s.IndicatorRadius)
}

func TestColorFallsBackToDefault(t *testing.T) {
	s := DefaultSettings()
	s.InitialColor = "#nothex"
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, s.Color())
}
