package ui

import (
	"image/color"
)

// Theme constants define the visual appearance of the application.
// By centralizing these values, we ensure consistency across all UI components
// and make it easy to update the look and feel of the entire application.

// Color palette for the application
var (
	// GradientStartColor is the lighter slate used at the start of the background gradient
	GradientStartColor = color.RGBA{R: 72, G: 85, B: 99, A: 255}

	// GradientEndColor is the darker slate used at the end of the background gradient
	GradientEndColor = color.RGBA{R: 41, G: 50, B: 60, A: 255}

	// CardBackgroundColor is the white color used for card backgrounds
	CardBackgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// TextColorLight is used for text on dark backgrounds (like the gradient)
	TextColorLight = color.White

	// HueMarkerColor is the colour of the tick that marks the current hue on the ring
	HueMarkerColor = color.NRGBA{R: 255, G: 255, B: 255, A: 220}
)

// Text size constants for consistent typography
const (
	// TitleTextSize is used for the main application title
	TitleTextSize = 40

	// SubtitleTextSize is used for descriptive text below titles
	SubtitleTextSize = 16

	// FooterTextSize is used for footer text
	FooterTextSize = 14
)

// Layout constants
const (
	// GradientAngle defines the angle of the background gradient in degrees
	GradientAngle = 45

	// CardMinWidth is the minimum width for card components
	CardMinWidth = 100

	// CardMinHeight is the minimum height for card components
	CardMinHeight = 100

	// DefaultWindowWidth is the initial width of the application window
	DefaultWindowWidth = 900

	// DefaultWindowHeight is the initial height of the application window
	DefaultWindowHeight = 700

	// SwatchSize is the edge of the square colour previews
	SwatchSize = 24

	// IndicatorStrokeWidth is the outline width of the S/V marker
	IndicatorStrokeWidth = 2

	// SliderTrackHeight is the height of the gradient strip under each slider
	SliderTrackHeight = 6

	// MaxRecentColors caps the recent colours list
	MaxRecentColors = 20
)
