package nav

import (
	"errors"

	"github.com/colonyops/agendanav/internal/core/agenda"
)

// Footer is the pair of links rendered under an agenda item, plus the color
// class of the footer bar itself.
type Footer struct {
	Color string `json:"color"`
	Prev  Target `json:"prev"`
	Next  Target `json:"next"`
}

// BuildFooter resolves both directions for item. color overrides the item's
// status color when non-empty. Errors from either side are joined; the
// failing side is left as KindNone.
func BuildFooter(item *agenda.Item, color string, opts Options, idx *agenda.Index) (Footer, error) {
	f := Footer{Color: color}
	if f.Color == "" && item != nil {
		f.Color = item.Status.Color
	}
	if f.Color == "" {
		f.Color = colorBlank
	}

	prev, perr := ResolveWith(item, Prev, opts, idx)
	next, nerr := ResolveWith(item, Next, opts, idx)
	f.Prev, f.Next = prev, next

	return f, errors.Join(perr, nerr)
}
