package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NotAvailable is the legible text used for colours that cannot be parsed.
const NotAvailable = "N/A"

// LegibleThreshold is the luminance at or below which light label text is used.
const LegibleThreshold = 0.175

// Luminance is the relative luminance of a hex colour.
// Raw is -1 when the colour could not be parsed.
type Luminance struct {
	Raw     float64 `json:"raw"`
	Legible string  `json:"legible"`
}

// Valid reports whether the luminance was computed from a parsable colour.
func (l Luminance) Valid() bool {
	return l.Raw >= 0
}

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// LuminanceOf parses hex and returns its luminance, or {-1, "N/A"} if it
// cannot be parsed.
func LuminanceOf(hex string) Luminance {
	rgb, ok := ParseHex(hex)
	if !ok {
		return Luminance{Raw: -1, Legible: NotAvailable}
	}

	raw := RelativeLuminance(rgb)
	return Luminance{
		Raw:     raw,
		Legible: strconv.FormatFloat(RoundLuminance(raw), 'f', 3, 64),
	}
}

// RoundLuminance rounds v to three decimal places, half away from zero.
// Rounding works on the shortest decimal form of v, so 0.1745 becomes 0.175
// even though its binary value sits just below the midpoint.
func RoundLuminance(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot-1 <= 3 {
		return v
	}

	kept, err := strconv.ParseFloat(s[:dot+4], 64)
	if err != nil {
		return v
	}
	if s[dot+4] >= '5' {
		kept += 0.001
	}

	// Re-parse to drop the binary noise introduced by the addition.
	kept, _ = strconv.ParseFloat(strconv.FormatFloat(kept, 'f', 3, 64), 64)
	return math.Copysign(kept, v)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := RelativeLuminance(c1)
	l2 := RelativeLuminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// LegibleText returns the label colour to draw on a background of the given
// luminance: white on dark backgrounds, black otherwise.
func LegibleText(lum float64) RGB {
	if lum <= LegibleThreshold {
		return RGB{R: 255, G: 255, B: 255}
	}
	return RGB{}
}

// rgbToHSL converts RGB to HSL colour space.
// Returns hue (0-360), saturation (0-1), lightness (0-1).
func rgbToHSL(rgb RGB) (h, s, l float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l = (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	// Hue.
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return h, s, l
}

// HSLString formats hex as "hsl(H°, S%, L%)" with each component rounded to
// the nearest integer. Returns NotAvailable if hex cannot be parsed.
func HSLString(hex string) string {
	rgb, ok := ParseHex(hex)
	if !ok {
		return NotAvailable
	}

	h, s, l := rgbToHSL(rgb)
	hue := int(math.Round(h)) % 360
	return fmt.Sprintf("hsl(%d°, %d%%, %d%%)", hue, int(math.Round(s*100)), int(math.Round(l*100)))
}
