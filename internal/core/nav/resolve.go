package nav

import (
	"fmt"
	"strings"

	"github.com/colonyops/agendanav/internal/core/agenda"
	"github.com/colonyops/agendanav/internal/core/classify"
)

// DefaultExternalPrefix marks hrefs that leave the current agenda.
const DefaultExternalPrefix = "../"

const colorBlank = "blank"

// Options carries the view state a resolution depends on.
type Options struct {
	Mode       Mode
	MeetingDay bool
	// ExternalPrefix overrides DefaultExternalPrefix when set.
	ExternalPrefix string
}

func (o Options) externalPrefix() string {
	if o.ExternalPrefix == "" {
		return DefaultExternalPrefix
	}
	return o.ExternalPrefix
}

// Resolve computes the footer target for item in the given direction.
//
// The only error is ErrCyclicChain, returned with a KindNone target when a
// walk visits more items than the index holds.
func Resolve(item *agenda.Item, dir Direction, mode Mode, meetingDay bool, idx *agenda.Index) (Target, error) {
	return ResolveWith(item, dir, Options{Mode: mode, MeetingDay: meetingDay}, idx)
}

// ResolveWith is Resolve with the full option set.
func ResolveWith(item *agenda.Item, dir Direction, opts Options, idx *agenda.Index) (Target, error) {
	if item == nil {
		return Target{Kind: KindNone}, nil
	}

	w := walker{idx: idx, dir: dir, limit: idx.Len()}

	link, _ := idx.Follow(dir.ref(item))
	prefix := "/"

	var (
		fallback *agenda.Item
		err      error
	)

	switch opts.Mode {
	case ModeQueue:
		link, err = w.skip(link, func(c *agenda.Item) bool { return !c.Status.ReadyForReview })
		if link != nil {
			prefix = "/queue/"
		} else {
			fallback = &agenda.Item{Href: "queue", Title: "Queue"}
		}

	case ModeShepherd:
		link, err = w.skip(link, func(c *agenda.Item) bool { return c.Shepherd != item.Shepherd })
		if link != nil {
			prefix = "/shepherd/queue/"
		} else {
			fallback = &agenda.Item{Href: "shepherd/" + item.Shepherd, Title: "Shepherd"}
		}

	case ModeFlagged:
		prefix = "/flagged/"

		// Leaving the flagged detour: backwards it ends at the first special
		// order, forwards on meeting day at the first sub-item.
		leaves := func(c *agenda.Item) bool { return classify.IsDigitFamily(c.Attach) }
		if dir == Next {
			leaves = func(c *agenda.Item) bool { return opts.MeetingDay && !classify.IsBackbone(c.Attach) }
		}

		for link != nil && link.Status.Skippable && err == nil {
			if leaves(link) {
				prefix = "/"
				break
			}
			link, err = w.next(link)
		}

		if link == nil {
			// Only the backwards exhaustion returns to the root prefix.
			if dir == Prev {
				prefix = "/"
			}
			fallback = &agenda.Item{Href: "flagged", Title: "Flagged"}
		}

	default:
		// On meeting day the flagged items sit between the last special order
		// and the first executive report.
		if opts.MeetingDay && link != nil && classify.StartsWithDigit(item.Attach) && classify.StartsWithLetter(link.Attach) {
			link, err = w.skip(link, func(c *agenda.Item) bool {
				return c.Status.Skippable && classify.IsBackbone(c.Attach)
			})
			prefix = "/flagged/"
		}
	}

	if err != nil {
		return Target{Kind: KindNone}, fmt.Errorf("%s of %q: %w", dir, item.Href, err)
	}

	switch {
	case fallback != nil:
		return build(prefix, fallback, dir, opts, false), nil
	case link != nil:
		// Sub-items are always addressed directly.
		if !classify.IsBackbone(link.Attach) {
			prefix = "/"
		}
		return build(prefix, link, dir, opts, true), nil
	case item.HasLinks():
		return Target{Kind: KindEmpty}, nil
	default:
		return Target{Kind: KindNone}, nil
	}
}

func build(prefix string, link *agenda.Item, dir Direction, opts Options, isItem bool) Target {
	color := link.Status.Color
	if color == "" {
		color = colorBlank
	}

	t := Target{
		Kind:       KindInternal,
		Path:       prefix + link.Href,
		Label:      link.Title,
		ColorClass: color,
		Rel:        dir,
	}
	if isItem {
		t.Key = link.Href
	}

	if prefix == "/" && strings.HasPrefix(link.Href, opts.externalPrefix()) {
		t.Kind = KindExternal
		t.Path = link.Href
	}

	return t
}

// walker follows references in one direction and enforces the walk bound.
type walker struct {
	idx   *agenda.Index
	dir   Direction
	limit int
	steps int
}

// next returns the neighbor of it. Landing on more index items than the
// index holds means the chain loops.
func (w *walker) next(it *agenda.Item) (*agenda.Item, error) {
	ref := w.dir.ref(it)
	n, ok := w.idx.Follow(ref)
	if !ok {
		return nil, nil
	}
	if ref.Kind() == agenda.RefKey {
		w.steps++
		if w.steps > w.limit {
			return nil, fmt.Errorf("%w after %d steps", ErrCyclicChain, w.limit)
		}
	}
	return n, nil
}

// skip advances from c while pass holds for the candidate.
func (w *walker) skip(c *agenda.Item, pass func(*agenda.Item) bool) (*agenda.Item, error) {
	for c != nil && pass(c) {
		var err error
		if c, err = w.next(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
