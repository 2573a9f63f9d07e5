// Package colour provides the colorimetry used to judge palette entries:
// hex parsing, WCAG relative luminance, and HSL display strings.
package colour

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
)

var (
	shorthandHex = regexp.MustCompile(`(?i)^#?([0-9a-f])([0-9a-f])([0-9a-f])$`)
	fullHex      = regexp.MustCompile(`(?i)^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`)
)

// RGB represents a colour in 8-bit sRGB channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lower-case hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBA implements color.Color so an RGB can be drawn directly.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}.RGBA()
}

// ParseHex parses "#rgb" or "#rrggbb" (the leading '#' is optional, digits are
// case-insensitive). The shorthand form doubles each digit.
// Returns false for any other shape.
func ParseHex(s string) (RGB, bool) {
	if m := shorthandHex.FindStringSubmatch(s); m != nil {
		s = m[1] + m[1] + m[2] + m[2] + m[3] + m[3]
	}

	m := fullHex.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}

	return RGB{
		R: parseHexByte(m[1]),
		G: parseHexByte(m[2]),
		B: parseHexByte(m[3]),
	}, true
}

// parseHexByte converts a two-character hex string already matched by fullHex.
func parseHexByte(s string) uint8 {
	v, _ := strconv.ParseUint(s, 16, 8)
	return uint8(v)
}
