package history

import (
	"github.com/jmylchreest/tonal/internal/palette"
)

// MemoryNavigator is an in-process history stack with a cursor, behaving like
// a browser tab: pushing discards forward entries, and moving the cursor
// notifies handlers synchronously. Pushing does not notify.
//
// MemoryNavigator is not safe for concurrent use.
type MemoryNavigator struct {
	entries  []Entry
	pos      int
	handlers []func(Entry)
}

// NewMemoryNavigator creates a history whose first entry has no state and the
// given location (for example "?config=..." or "").
func NewMemoryNavigator(location string) *MemoryNavigator {
	return &MemoryNavigator{
		entries: []Entry{{Location: location}},
	}
}

// Push implements Navigator.
func (m *MemoryNavigator) Push(state palette.Palette, location string) {
	m.entries = append(m.entries[:m.pos+1], Entry{State: &state, Location: location})
	m.pos = len(m.entries) - 1
}

// OnNavigate implements Navigator.
func (m *MemoryNavigator) OnNavigate(handler func(Entry)) {
	m.handlers = append(m.handlers, handler)
}

// Current implements Navigator.
func (m *MemoryNavigator) Current() Entry {
	return m.entries[m.pos]
}

// Go moves the cursor by delta entries and notifies handlers. It reports false
// and does nothing when delta is zero or would leave the history.
func (m *MemoryNavigator) Go(delta int) bool {
	target := m.pos + delta
	if delta == 0 || target < 0 || target >= len(m.entries) {
		return false
	}

	m.pos = target
	e := m.entries[m.pos]
	for _, h := range m.handlers {
		h(e)
	}
	return true
}

// Back moves one entry back.
func (m *MemoryNavigator) Back() bool {
	return m.Go(-1)
}

// Forward moves one entry forward.
func (m *MemoryNavigator) Forward() bool {
	return m.Go(1)
}

// Len returns the number of entries.
func (m *MemoryNavigator) Len() int {
	return len(m.entries)
}

// Position returns the index of the current entry.
func (m *MemoryNavigator) Position() int {
	return m.pos
}

// Entries returns a copy of all entries, oldest first.
func (m *MemoryNavigator) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}
