package parser

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"huewheel/models"
)

// ParseColor reads a colour typed or pasted by the user.
// Accepted forms: "#RGB", "#RRGGBB", "#RRGGBBAA" (the # is optional) and the
// SVG 1.1 colour keywords such as "cornflowerblue". Case and surrounding
// whitespace are ignored.
func ParseColor(text string) (color.NRGBA, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return color.NRGBA{}, &ParseError{Input: text, Reason: "empty input"}
	}

	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		// #abc is shorthand for #aabbcc
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6, 8:
	default:
		return color.NRGBA{}, &ParseError{Input: text, Reason: "not a colour name or hex code"}
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, &ParseError{Input: text, Reason: "invalid hex digits", Err: err}
	}

	if len(hex) == 6 {
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// FormatHex renders c as "#RRGGBB", or "#RRGGBBAA" when it is not fully opaque.
func FormatHex(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// NearestName returns the SVG colour keyword closest to c in RGB space.
// Alpha is ignored. Ties go to the alphabetically first name.
func NearestName(c color.NRGBA) string {
	best := ""
	bestDist := -1
	for _, name := range colornames.Names {
		n := colornames.Map[name]
		dr := int(c.R) - int(n.R)
		dg := int(c.G) - int(n.G)
		db := int(c.B) - int(n.B)
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			best, bestDist = name, dist
		}
	}
	return best
}

// Describe bundles c with its hex code and nearest name for display.
func Describe(c color.NRGBA) models.Swatch {
	return models.Swatch{
		Name:  NearestName(c),
		Hex:   FormatHex(c),
		Color: c,
	}
}
