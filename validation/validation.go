package validation

import (
	"errors"
	"fmt"
	"math"

	"huewheel/parser"
)

// ValidateLayout checks the dimensions a picker is laid out with. The geometry
// code assumes positive, finite sizes and does not check them itself.
// It only works with raw values, no config or fyne types, so there's no import cycle.
func ValidateLayout(size, thickness, overlap, indicatorRadius float64) error {
	if !finite(size) || size <= 0 {
		return errors.New("wheel size must be a positive number")
	}
	if !finite(thickness) || thickness <= 0 {
		return errors.New("spectrum thickness must be a positive number")
	}
	if !finite(overlap) {
		return errors.New("triangle overlap must be a finite number")
	}
	if !finite(indicatorRadius) || indicatorRadius < 0 {
		return errors.New("indicator radius must not be negative")
	}
	if indicatorRadius*2 > size {
		return fmt.Errorf("indicator radius %.0f does not fit a %.0fpx wheel", indicatorRadius, size)
	}
	return nil
}

// ValidateSampleEvery checks the drag sampling interval.
func ValidateSampleEvery(n int) error {
	if n < 1 {
		return errors.New("drag sample interval must be at least 1")
	}
	if n > 10 {
		return fmt.Errorf("drag sample interval %d is too coarse (max 10)", n)
	}
	return nil
}

// ValidateColorText checks that text names a colour the parser understands.
func ValidateColorText(text string) error {
	if text == "" {
		return errors.New("colour is required")
	}
	if _, err := parser.ParseColor(text); err != nil {
		return err
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
