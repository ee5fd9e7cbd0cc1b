package agenda

import (
	"fmt"

	"github.com/hay-kot/criterio"
)

// Check verifies the structural integrity of the index: key references must
// resolve and neither the prev nor the next chain of any item may loop.
// Problems are reported as criterio.FieldErrors keyed by item and field.
func Check(x *Index) error {
	var errs criterio.FieldErrorsBuilder

	for _, key := range x.Keys() {
		it, _ := x.Get(key)

		for _, link := range []struct {
			name string
			ref  Ref
			step func(*Item) Ref
		}{
			{name: "prev", ref: it.Prev, step: func(i *Item) Ref { return i.Prev }},
			{name: "next", ref: it.Next, step: func(i *Item) Ref { return i.Next }},
		} {
			field := fmt.Sprintf("items[%q].%s", key, link.name)

			if link.ref.Kind() == RefKey {
				if _, ok := x.Get(link.ref.Key()); !ok {
					errs = errs.Append(field, fmt.Errorf("unknown item %q", link.ref.Key()))
					continue
				}
			}

			if loops(x, it, link.step) {
				errs = errs.Append(field, fmt.Errorf("chain does not terminate within %d items", x.Len()))
			}
		}
	}

	return errs.ToError()
}

// loops follows step from start and reports whether the chain is still going
// after visiting every item in the index.
func loops(x *Index, start *Item, step func(*Item) Ref) bool {
	cur := start
	for range x.Len() {
		next, ok := x.Follow(step(cur))
		if !ok {
			return false
		}
		cur = next
	}
	_, ok := x.Follow(step(cur))
	return ok
}
