// Package grade maps palette grades to accepted luminance ranges and
// classifies colours against them.
package grade

import (
	"fmt"
	"strconv"
)

// Grade is a fixed brightness checkpoint within a scale, from 0 (white) to
// 100 (black).
type Grade int

// Bucket is the inclusive luminance range accepted for a grade.
type Bucket struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// String renders the bucket as "[min, max]".
func (b Bucket) String() string {
	return fmt.Sprintf("[%s, %s]", formatBound(b.Min), formatBound(b.Max))
}

var buckets = map[Grade]Bucket{
	0:   {Min: 1, Max: 1},
	5:   {Min: 0.85, Max: 0.93},
	10:  {Min: 0.75, Max: 0.82},
	20:  {Min: 0.5, Max: 0.65},
	30:  {Min: 0.35, Max: 0.45},
	40:  {Min: 0.25, Max: 0.3},
	50:  {Min: 0.175, Max: 0.183},
	60:  {Min: 0.1, Max: 0.125},
	70:  {Min: 0.05, Max: 0.07},
	80:  {Min: 0.02, Max: 0.04},
	90:  {Min: 0.005, Max: 0.015},
	100: {Min: 0, Max: 0},
}

// grades lists every known grade in ascending order.
var grades = []Grade{0, 5, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

// Grades returns all known grades in ascending order.
func Grades() []Grade {
	out := make([]Grade, len(grades))
	copy(out, grades)
	return out
}

// Bounds returns the accepted luminance range for g.
func Bounds(g Grade) (Bucket, bool) {
	b, ok := buckets[g]
	return b, ok
}

// Parse converts a decimal string to a Grade. It does not check that the grade
// has a bucket; Check reports unknown grades itself.
func Parse(s string) (Grade, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid grade %q: %w", s, err)
	}
	return Grade(v), nil
}

// formatBound prints a bound in its shortest decimal form (1, 0.5, 0.175).
func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
