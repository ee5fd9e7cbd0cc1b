package agenda

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/colonyops/agendanav/internal/core/classify"
)

// Index is an immutable mapping from item key to item, built once per load.
// All methods are safe for concurrent use because nothing mutates after
// construction.
type Index struct {
	items map[string]*Item
	order []string
}

// NewIndex builds an Index from items in document order. Every item needs a
// unique, non-empty href.
func NewIndex(items []Item) (*Index, error) {
	idx := &Index{
		items: make(map[string]*Item, len(items)),
		order: make([]string, 0, len(items)),
	}

	for i := range items {
		it := items[i]
		if it.Href == "" {
			return nil, fmt.Errorf("item %d: href is required", i)
		}
		if _, dup := idx.items[it.Href]; dup {
			return nil, fmt.Errorf("item %d: duplicate href %q", i, it.Href)
		}
		idx.items[it.Href] = &it
		idx.order = append(idx.order, it.Href)
	}

	return idx, nil
}

// Len returns the number of items in the index.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.order)
}

// Get returns the item stored under key.
func (x *Index) Get(key string) (*Item, bool) {
	if x == nil {
		return nil, false
	}
	it, ok := x.items[key]
	return it, ok
}

// Lookup is Get returning ErrItemNotFound for a missing key.
func (x *Index) Lookup(key string) (*Item, error) {
	it, ok := x.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrItemNotFound, key)
	}
	return it, nil
}

// Follow resolves a reference. Key references that are not in the index and
// absent references both report false.
func (x *Index) Follow(ref Ref) (*Item, bool) {
	switch ref.Kind() {
	case RefKey:
		return x.Get(ref.Key())
	case RefStub:
		return ref.Stub()
	default:
		return nil, false
	}
}

// Keys returns item keys in document order.
func (x *Index) Keys() []string {
	if x == nil {
		return nil
	}
	out := make([]string, len(x.order))
	copy(out, x.order)
	return out
}

// First returns the first item in document order.
func (x *Index) First() (*Item, bool) {
	if x.Len() == 0 {
		return nil, false
	}
	return x.Get(x.order[0])
}

// Filter controls which items List returns. Zero-value fields mean "no
// filter" for that dimension; all non-zero fields must match.
type Filter struct {
	// Match is a doublestar glob matched against the item href.
	Match string

	// Class matches items whose attach code has this classification.
	Class classify.Class

	// Shepherd matches items owned by this shepherd.
	Shepherd string

	// Ready keeps only items ready for review.
	Ready bool

	// Skippable keeps only skippable items.
	Skippable bool
}

// Validate checks that the glob pattern is well formed.
func (f Filter) Validate() error {
	if f.Match != "" && !doublestar.ValidatePattern(f.Match) {
		return fmt.Errorf("invalid match pattern %q", f.Match)
	}
	return nil
}

func (f Filter) matches(it *Item) (bool, error) {
	if f.Match != "" {
		ok, err := doublestar.Match(f.Match, it.Href)
		if err != nil {
			return false, fmt.Errorf("match %q: %w", f.Match, err)
		}
		if !ok {
			return false, nil
		}
	}
	if f.Class != "" && it.Class() != f.Class {
		return false, nil
	}
	if f.Shepherd != "" && it.Shepherd != f.Shepherd {
		return false, nil
	}
	if f.Ready && !it.Status.ReadyForReview {
		return false, nil
	}
	if f.Skippable && !it.Status.Skippable {
		return false, nil
	}
	return true, nil
}

// List returns items matching f in document order.
func (x *Index) List(f Filter) ([]*Item, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	var out []*Item
	for _, key := range x.Keys() {
		it := x.items[key]
		ok, err := f.matches(it)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, it)
		}
	}
	return out, nil
}
