// Package nav resolves the previous and next navigation targets of an agenda
// item. Resolution is a pure function of the item, the traversal mode, the
// meeting-day flag and the agenda index.
package nav

import (
	"errors"
	"fmt"
	"strings"

	"github.com/colonyops/agendanav/internal/core/agenda"
)

// Sentinel errors for navigation.
var (
	ErrCyclicChain      = errors.New("agenda chain does not terminate")
	ErrUnknownMode      = errors.New("unknown traversal mode")
	ErrUnknownDirection = errors.New("unknown direction")
)

// Direction is the side of the footer a target is resolved for.
type Direction string

const (
	Prev Direction = "prev"
	Next Direction = "next"
)

// ParseDirection parses "prev" or "next".
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Prev, Next:
		return d, nil
	default:
		return "", fmt.Errorf("%w %q (want prev or next)", ErrUnknownDirection, s)
	}
}

func (d Direction) ref(it *agenda.Item) agenda.Ref {
	if d == Prev {
		return it.Prev
	}
	return it.Next
}

// Mode selects the traversal a footer link follows.
type Mode string

const (
	ModeDefault  Mode = "default"
	ModeQueue    Mode = "queue"
	ModeShepherd Mode = "shepherd"
	ModeFlagged  Mode = "flagged"
)

// Modes returns every traversal mode in display order.
func Modes() []Mode {
	return []Mode{ModeDefault, ModeQueue, ModeShepherd, ModeFlagged}
}

// ParseMode parses a mode name. The empty string is ModeDefault.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeDefault, nil
	}
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownMode, s)
}

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	_, err := ParseMode(string(m))
	return err == nil
}

// Cycle returns the mode after m, wrapping around.
func (m Mode) Cycle() Mode {
	modes := Modes()
	for i, mode := range modes {
		if mode == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return ModeDefault
}

// Kind classifies a Target.
type Kind string

const (
	// KindInternal is a router link to Path.
	KindInternal Kind = "internal"
	// KindExternal is a plain anchor to Path, outside the agenda.
	KindExternal Kind = "external"
	// KindEmpty is a blank placeholder that preserves footer layout.
	KindEmpty Kind = "empty"
	// KindNone renders nothing.
	KindNone Kind = "none"
)

// Target describes one footer link.
type Target struct {
	Kind       Kind      `json:"kind"`
	Path       string    `json:"path,omitempty"`
	Label      string    `json:"label,omitempty"`
	ColorClass string    `json:"color_class,omitempty"`
	Rel        Direction `json:"rel,omitempty"`
	// Key is the href of the agenda item the link lands on. Empty for
	// section fallbacks.
	Key string `json:"key,omitempty"`
}

// IsLink reports whether the target navigates somewhere.
func (t Target) IsLink() bool {
	return t.Kind == KindInternal || t.Kind == KindExternal
}
