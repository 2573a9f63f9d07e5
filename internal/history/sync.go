package history

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/tonal/internal/palette"
)

// Entry is one position in the navigation history. State is nil for entries
// that were not created by a commit, such as the page the session started on.
type Entry struct {
	State    *palette.Palette
	Location string
}

// Navigator is the history stack the editor pushes to and listens on.
type Navigator interface {
	// Push adds an entry after the current one and makes it current.
	Push(state palette.Palette, location string)
	// OnNavigate registers a handler called when the user moves through history.
	OnNavigate(handler func(Entry))
	// Current returns the current entry.
	Current() Entry
}

// Sync keeps a palette.Store and a Navigator in step: commits become history
// entries, navigation restores the palette of the entry moved to.
type Sync struct {
	nav    Navigator
	store  *palette.Store
	logger hclog.Logger
}

// NewSync wires store to nav. The navigation handler is registered immediately.
func NewSync(nav Navigator, store *palette.Store, logger hclog.Logger) *Sync {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	s := &Sync{
		nav:    nav,
		store:  store,
		logger: logger,
	}
	nav.OnNavigate(s.navigate)
	return s
}

// Restore loads the palette for the navigator's current entry into the store.
// A malformed location token falls back to the seed palette; the decode error
// is returned for reporting.
func (s *Sync) Restore() error {
	return s.adopt(s.nav.Current())
}

// Commit encodes p and pushes it as a new history entry. It returns the token.
func (s *Sync) Commit(p palette.Palette) (string, error) {
	token, err := Encode(p)
	if err != nil {
		return "", fmt.Errorf("failed to commit palette: %w", err)
	}

	s.nav.Push(p.Clone(), Location(token))
	s.logger.Debug("pushed history entry", "scales", len(p), "token_bytes", len(token))
	return token, nil
}

func (s *Sync) navigate(e Entry) {
	if err := s.adopt(e); err != nil {
		s.logger.Warn("discarding malformed history token", "location", e.Location, "error", err)
	}
}

func (s *Sync) adopt(e Entry) error {
	if e.State != nil {
		s.store.Replace(e.State.Clone())
		s.logger.Debug("restored palette from history state", "location", e.Location)
		return nil
	}

	p, err := InitialPalette(TokenFromQuery(e.Location))
	s.store.Replace(p)
	s.logger.Debug("restored palette from location", "location", e.Location)
	return err
}
