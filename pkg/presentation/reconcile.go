package presentation

import (
	"slices"

	"github.com/go-drift/present/pkg/errors"
)

// Reconcile matches the previous presentations against the requested items
// and returns the new ordered list.
//
// Items are matched to presentations by Content identity. Matched
// presentations take the item's new style; unmatched items get a fresh
// presentation from create. Presentations whose content is no longer
// requested are moved to PendingExit, unless they are already on their way
// out, and stay in the list directly after the presentation that preceded
// them, or first if nothing did, so that an exiting presentation keeps its
// place in the stack while it animates away.
//
// Two items with the same content, or an item missing its content or style,
// is a programmer error and panics.
func Reconcile(previous []*Presentation, items []Item, create func(Item) *Presentation) []*Presentation {
	requested := make(map[Content]struct{}, len(items))
	for _, item := range items {
		if item.Content == nil || item.Style == nil {
			errors.Invariant("presentation.Reconcile", "item needs both content and style")
		}
		if _, dup := requested[item.Content]; dup {
			errors.Invariant("presentation.Reconcile", "content %T presented by more than one item", item.Content)
		}
		requested[item.Content] = struct{}{}
	}

	existing := make(map[Content]*Presentation, len(previous))
	for _, p := range previous {
		existing[p.Content()] = p
	}

	result := make([]*Presentation, 0, len(items)+len(previous))
	for _, item := range items {
		if p, ok := existing[item.Content]; ok {
			p.item = item
			result = append(result, p)
			continue
		}
		result = append(result, create(item))
	}

	for i, p := range previous {
		if _, ok := requested[p.Content()]; ok {
			continue
		}
		switch p.state.Kind() {
		case StateExiting, StatePendingExit, StatePendingRemoval:
		default:
			p.SetTransitionState(PendingExit())
		}
		if i == 0 {
			result = slices.Insert(result, 0, p)
			continue
		}
		at := slices.Index(result, previous[i-1])
		if at < 0 {
			errors.Invariant("presentation.Reconcile", "predecessor of removed presentation %s is missing", p.id)
		}
		result = slices.Insert(result, at+1, p)
	}
	return result
}
