// Package editor routes colour edits to a palette store and its history.
//
// Edits arrive as messages on one channel. Preview messages change the working
// palette only; commit messages also push a history entry, which makes them
// individually undoable.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/tonal/internal/grade"
	"github.com/jmylchreest/tonal/internal/history"
	"github.com/jmylchreest/tonal/internal/palette"
)

// ErrNoStepping is returned for Back/Forward when the navigator cannot move.
var ErrNoStepping = errors.New("navigator does not support stepping through history")

// Kind identifies what a message asks the editor to do.
type Kind int

const (
	// Preview applies a live edit without recording history.
	Preview Kind = iota
	// Commit applies a finished edit and records it in history.
	Commit
	// Back moves one entry back in history.
	Back
	// Forward moves one entry forward in history.
	Forward
)

var kindNames = map[Kind]string{
	Preview: "preview",
	Commit:  "commit",
	Back:    "back",
	Forward: "forward",
}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind converts a kind name back to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown message kind %q", s)
}

// Message is a single request to the editor. Scale, Grade and Color are only
// used by Preview and Commit.
type Message struct {
	Kind  Kind
	Scale string
	Grade grade.Grade
	Color string
}

// Result describes the palette after a message was handled.
type Result struct {
	Palette palette.Palette
	// DidUpdate reports whether the edit matched a scale and grade.
	DidUpdate bool
	// Pushed reports whether a history entry was added.
	Pushed bool
	// Moved reports whether a Back/Forward message changed position.
	Moved    bool
	Location string
}

// Stepper is implemented by navigators that can move through their history.
type Stepper interface {
	Back() bool
	Forward() bool
}

// Editor owns one editing session: the current palette, and the history it
// is synchronised with. It is not safe for concurrent use; use Run to drive
// it from a single goroutine.
type Editor struct {
	store  *palette.Store
	sync   *history.Sync
	nav    history.Navigator
	logger hclog.Logger
}

// New creates an editor on nav and loads the palette for nav's current entry.
// A malformed token in that entry is logged and replaced by the seed palette.
func New(nav history.Navigator, logger hclog.Logger) *Editor {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	store := palette.NewStore(nil)
	e := &Editor{
		store:  store,
		sync:   history.NewSync(nav, store, logger),
		nav:    nav,
		logger: logger,
	}

	if err := e.sync.Restore(); err != nil {
		logger.Warn("ignoring malformed palette token", "error", err)
	}
	return e
}

// Palette returns the current palette.
func (e *Editor) Palette() palette.Palette {
	return e.store.Current()
}

// Location returns the location of the current history entry.
func (e *Editor) Location() string {
	return e.nav.Current().Location
}

// Dispatch handles one message.
func (e *Editor) Dispatch(msg Message) (Result, error) {
	var res Result

	switch msg.Kind {
	case Preview:
		res.DidUpdate = e.store.Apply(msg.Scale, msg.Grade, msg.Color)
	case Commit:
		res.DidUpdate = e.store.Apply(msg.Scale, msg.Grade, msg.Color)
		if res.DidUpdate {
			if _, err := e.sync.Commit(e.store.Current()); err != nil {
				return Result{}, err
			}
			res.Pushed = true
		}
	case Back, Forward:
		stepper, ok := e.nav.(Stepper)
		if !ok {
			return Result{}, ErrNoStepping
		}
		if msg.Kind == Back {
			res.Moved = stepper.Back()
		} else {
			res.Moved = stepper.Forward()
		}
	default:
		return Result{}, fmt.Errorf("unknown message kind %v", msg.Kind)
	}

	e.logger.Trace("handled message", "kind", msg.Kind, "scale", msg.Scale, "grade", msg.Grade,
		"color", msg.Color, "updated", res.DidUpdate, "pushed", res.Pushed)

	res.Palette = e.store.Current()
	res.Location = e.Location()
	return res, nil
}

// Run dispatches messages until ctx is done or msgs is closed, handing each
// outcome to emit. It returns ctx.Err() on cancellation and nil on close.
func (e *Editor) Run(ctx context.Context, msgs <-chan Message, emit func(Result, error)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			emit(e.Dispatch(msg))
		}
	}
}
