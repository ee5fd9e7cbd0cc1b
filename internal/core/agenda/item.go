// Package agenda models a meeting agenda as a read-only index of items linked
// into a doubly-linked sequence.
package agenda

import (
	"errors"

	"github.com/colonyops/agendanav/internal/core/classify"
)

// Sentinel errors for agenda operations.
var (
	ErrItemNotFound = errors.New("agenda item not found")
)

// Status is the review state of an agenda item as computed by the loader.
type Status struct {
	Color          string `json:"color,omitempty" yaml:"color,omitempty"`
	ReadyForReview bool   `json:"ready_for_review,omitempty" yaml:"ready_for_review,omitempty"`
	Skippable      bool   `json:"skippable,omitempty" yaml:"skippable,omitempty"`
}

// Item is a single agenda entry. Href is its unique key within an Index.
type Item struct {
	Href     string `json:"href" yaml:"href"`
	Title    string `json:"title" yaml:"title"`
	Attach   string `json:"attach,omitempty" yaml:"attach,omitempty"`
	Shepherd string `json:"shepherd,omitempty" yaml:"shepherd,omitempty"`
	Status   Status `json:"status" yaml:"status"`
	Prev     Ref    `json:"prev" yaml:"prev,omitempty"`
	Next     Ref    `json:"next" yaml:"next,omitempty"`
}

// Class returns the classification of the item's attach code.
func (it Item) Class() classify.Class {
	return classify.Of(it.Attach)
}

// HasLinks reports whether either neighbor reference is present, whether or
// not it resolves.
func (it Item) HasLinks() bool {
	return it.Prev.Defined() || it.Next.Defined()
}
