package parser

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"six digit hex", "#FF8000", color.NRGBA{R: 255, G: 128, B: 0, A: 255}, false},
		{"lower case without hash", "00ff7f", color.NRGBA{R: 0, G: 255, B: 127, A: 255}, false},
		{"short hex", "#0af", color.NRGBA{R: 0, G: 170, B: 255, A: 255}, false},
		{"hex with alpha", "#11223380", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}, false},
		{"name", "cornflowerblue", color.NRGBA{R: 100, G: 149, B: 237, A: 255}, false},
		{"name with spaces and case", "  Red ", color.NRGBA{R: 255, A: 255}, false},
		{"three letter name wins over hex", "tan", color.NRGBA{R: 210, G: 180, B: 140, A: 255}, false},
		{"empty", "   ", color.NRGBA{}, true},
		{"wrong length", "#12345", color.NRGBA{}, true},
		{"bad digits", "#GGHHII", color.NRGBA{}, true},
		{"unknown name", "notacolour", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				parseErr, ok := IsParseError(err)
				require.True(t, ok)
				assert.Equal(t, tt.input, parseErr.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatHex(t *testing.T) {
	assert.Equal(t, "#FF8000", FormatHex(color.NRGBA{R: 255, G: 128, A: 255}))
	assert.Equal(t, "#01020304", FormatHex(color.NRGBA{R: 1, G: 2, B: 3, A: 4}))
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, c := range []color.NRGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 12, G: 200, B: 99, A: 255},
		{R: 255, G: 255, B: 255, A: 0},
	} {
		got, err := ParseColor(FormatHex(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestNearestName(t *testing.T) {
	assert.Equal(t, "black", NearestName(color.NRGBA{A: 255}))
	assert.Equal(t, "white", NearestName(color.NRGBA{R: 254, G: 254, B: 254, A: 255}))
	assert.Equal(t, "cornflowerblue", NearestName(color.NRGBA{R: 101, G: 150, B: 236, A: 255}))

	// aqua and cyan share a value; the alphabetically first one is reported
	assert.Equal(t, "aqua", NearestName(color.NRGBA{G: 255, B: 255, A: 255}))
}

func TestDescribe(t *testing.T) {
	s := Describe(color.NRGBA{R: 255, A: 255})
	assert.Equal(t, "red", s.Name)
	assert.Equal(t, "#FF0000", s.Hex)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, s.Color)
}

func TestIsParseError(t *testing.T) {
	_, ok := IsParseError(nil)
	assert.False(t, ok)

	_, ok = IsParseError(os.ErrNotExist)
	assert.False(t, ok)

	_, err := ParseColor("#zz")
	_, ok = IsParseError(err)
	assert.True(t, ok)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/.config/huewheel")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config/huewheel"), got)

	got, err = ExpandPath("/tmp/x")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x", got)
}
