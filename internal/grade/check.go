package grade

import (
	"fmt"

	"github.com/jmylchreest/tonal/internal/colour"
)

// Verdict classifies a luminance against a grade's bucket.
type Verdict int

const (
	// Pass means the luminance is within the bucket.
	Pass Verdict = iota
	// TooBright means the luminance is above the bucket maximum.
	TooBright
	// TooDark means the luminance is below the bucket.
	TooDark
	// UnknownGrade means the grade has no bucket.
	UnknownGrade
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case Pass:
		return "pass"
	case TooBright:
		return "too-bright"
	case TooDark:
		return "too-dark"
	case UnknownGrade:
		return "unknown-grade"
	default:
		return "unknown"
	}
}

// MarshalText encodes the verdict as its name.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Result is the outcome of checking a colour against a grade.
type Result struct {
	Passes  bool    `json:"passes"`
	Message string  `json:"message"`
	Verdict Verdict `json:"verdict"`
	// Actual is the rounded luminance that was compared.
	Actual float64 `json:"actual"`
}

// Check reports whether hex meets the luminance bucket for g.
// Unparsable colours carry luminance -1 and therefore fail as too dark.
func Check(hex string, g Grade) Result {
	if _, ok := buckets[g]; !ok {
		return unknown(g)
	}
	return Classify(colour.LuminanceOf(hex).Raw, g)
}

// Classify checks a raw luminance against the bucket for g. The value is
// rounded to three decimals before it is compared.
//
// When a value is outside the bucket it is compared against the maximum only:
// above max is too bright, anything else is too dark. Grades 0 and 100 have
// min == max so this matters at their edges.
func Classify(raw float64, g Grade) Result {
	b, ok := buckets[g]
	if !ok {
		return unknown(g)
	}

	actual := colour.RoundLuminance(raw)
	shown := formatBound(actual)

	switch {
	case actual >= b.Min && actual <= b.Max:
		return Result{
			Passes:  true,
			Verdict: Pass,
			Actual:  actual,
			Message: fmt.Sprintf("Luminance between %s (actual: %s)", b, shown),
		}
	case actual > b.Max:
		return Result{
			Verdict: TooBright,
			Actual:  actual,
			Message: fmt.Sprintf("Luminance above [%s] (actual: %s)", formatBound(b.Max), shown),
		}
	case actual < b.Max:
		return Result{
			Verdict: TooDark,
			Actual:  actual,
			Message: fmt.Sprintf("Luminance below [%s] (actual: %s)", formatBound(b.Min), shown),
		}
	}

	// NaN compares false everywhere.
	return unknown(g)
}

func unknown(g Grade) Result {
	return Result{
		Verdict: UnknownGrade,
		Actual:  -1,
		Message: fmt.Sprintf("No bucket for grade %d", g),
	}
}
