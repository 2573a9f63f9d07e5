// Package palette holds the table of colour scales being edited.
//
// A Palette is treated as an immutable value: every edit returns a new
// Palette and leaves its argument untouched.
package palette

import (
	"github.com/jmylchreest/tonal/internal/grade"
)

// Entry is the colour assigned to one grade of a scale.
type Entry struct {
	Color string      `json:"color"`
	Grade grade.Grade `json:"grade"`
}

// Scale is a named hue family with one entry per grade, ordered by grade.
type Scale struct {
	Name   string  `json:"scale"`
	Grades []Entry `json:"grades"`
}

// Palette is an ordered collection of scales with unique names.
type Palette []Scale

// Clone returns a deep copy of the palette.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}

	out := make(Palette, len(p))
	for i, s := range p {
		out[i] = s.Clone()
	}
	return out
}

// Clone returns a deep copy of the scale. Nil grades stay nil.
func (s Scale) Clone() Scale {
	if s.Grades == nil {
		return Scale{Name: s.Name}
	}
	entries := make([]Entry, len(s.Grades))
	copy(entries, s.Grades)
	return Scale{Name: s.Name, Grades: entries}
}

// Scale returns the first scale named name.
func (p Palette) Scale(name string) (Scale, bool) {
	for _, s := range p {
		if s.Name == name {
			return s, true
		}
	}
	return Scale{}, false
}

// Names returns the scale names in palette order.
func (p Palette) Names() []string {
	names := make([]string, len(p))
	for i, s := range p {
		names[i] = s.Name
	}
	return names
}

// Color returns the colour of grade g in the scale.
func (s Scale) Color(g grade.Grade) (string, bool) {
	for _, e := range s.Grades {
		if e.Grade == g {
			return e.Color, true
		}
	}
	return "", false
}

// SetColor returns a copy of p with grade g of the named scale set to c.
// Scales are searched in order and then their grades in order; only the first
// match is changed. The bool reports whether a match was found; when it is
// false the returned copy equals p.
func SetColor(p Palette, scale string, g grade.Grade, c string) (Palette, bool) {
	out := p.Clone()
	for i := range out {
		if out[i].Name != scale {
			continue
		}
		for j := range out[i].Grades {
			if out[i].Grades[j].Grade == g {
				out[i].Grades[j].Color = c
				return out, true
			}
		}
	}
	return out, false
}
