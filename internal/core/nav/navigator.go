package nav

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/colonyops/agendanav/internal/core/agenda"
	"github.com/colonyops/agendanav/internal/core/logging"
)

// Navigator resolves footers against a loaded index and reports chain faults
// through its logger.
type Navigator struct {
	index          *agenda.Index
	externalPrefix string
	logger         zerolog.Logger
}

// NewNavigator creates a Navigator over idx. An empty externalPrefix selects
// DefaultExternalPrefix.
func NewNavigator(idx *agenda.Index, externalPrefix string, logger zerolog.Logger) *Navigator {
	return &Navigator{index: idx, externalPrefix: externalPrefix, logger: logger}
}

// Index returns the underlying agenda index.
func (n *Navigator) Index() *agenda.Index {
	return n.index
}

func (n *Navigator) options(mode Mode, meetingDay bool) Options {
	return Options{Mode: mode, MeetingDay: meetingDay, ExternalPrefix: n.externalPrefix}
}

// Footer resolves both links for the item stored under key. A cyclic chain
// is logged and the affected side comes back as KindNone; the error is still
// returned so callers can surface it.
func (n *Navigator) Footer(ctx context.Context, key string, mode Mode, meetingDay bool) (Footer, error) {
	ctx = logging.WithMode(logging.WithItem(ctx, key), string(mode))

	item, err := n.index.Lookup(key)
	if err != nil {
		return Footer{}, err
	}

	f, err := BuildFooter(item, "", n.options(mode, meetingDay), n.index)
	if err != nil {
		n.logger.Warn().Ctx(ctx).Err(err).Msg("footer resolution hit a malformed chain")
		return f, err
	}

	n.logger.Debug().Ctx(ctx).
		Str("prev", f.Prev.Path).
		Str("next", f.Next.Path).
		Bool("meeting_day", meetingDay).
		Msg("resolved footer")

	return f, nil
}

// Resolve resolves one side for the item stored under key.
func (n *Navigator) Resolve(ctx context.Context, key string, dir Direction, mode Mode, meetingDay bool) (Target, error) {
	ctx = logging.WithMode(logging.WithItem(ctx, key), string(mode))

	item, err := n.index.Lookup(key)
	if err != nil {
		return Target{}, err
	}

	t, err := ResolveWith(item, dir, n.options(mode, meetingDay), n.index)
	if err != nil {
		n.logger.Warn().Ctx(ctx).Err(err).Str("dir", string(dir)).Msg("resolution hit a malformed chain")
		return t, err
	}
	return t, nil
}

// Step returns the key of the agenda item reached by following the link in
// dir. ok is false when the link is a section fallback, leaves the agenda, or
// does not exist.
func (n *Navigator) Step(ctx context.Context, key string, dir Direction, mode Mode, meetingDay bool) (next string, ok bool, err error) {
	t, err := n.Resolve(ctx, key, dir, mode, meetingDay)
	if err != nil {
		return "", false, err
	}
	if t.Kind != KindInternal || t.Key == "" {
		return "", false, nil
	}
	if _, exists := n.index.Get(t.Key); !exists {
		return "", false, nil
	}
	return t.Key, true, nil
}
