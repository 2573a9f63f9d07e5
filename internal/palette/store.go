package palette

import (
	"github.com/jmylchreest/tonal/internal/grade"
)

// Store owns the current palette. Updates replace the whole value; callers
// never see a partially applied edit.
//
// Store is not safe for concurrent use. Each editing session owns one.
type Store struct {
	current Palette
}

// NewStore creates a store holding p.
func NewStore(p Palette) *Store {
	return &Store{current: p}
}

// Current returns the current palette. Callers must treat it as read-only and
// go through Apply or Replace to change it.
func (s *Store) Current() Palette {
	return s.current
}

// Replace swaps in p as the current palette.
func (s *Store) Replace(p Palette) {
	s.current = p
}

// Apply sets grade g of the named scale to c. The current palette is only
// replaced when a matching entry exists; the result reports whether it did.
func (s *Store) Apply(scale string, g grade.Grade, c string) bool {
	next, ok := SetColor(s.current, scale, g, c)
	if ok {
		s.current = next
	}
	return ok
}
