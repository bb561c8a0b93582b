package presentation

import (
	"reflect"
)

// Item is one entry in the list of things the engine should present.
// Items are values; the engine matches them to presentations by Content.
type Item struct {
	Content Content
	Style   Style

	info map[reflect.Type]any
}

// NewItem creates an item presenting content with style.
func NewItem(content Content, style Style) Item {
	return Item{Content: content, Style: style}
}

// WithInfo returns a copy of item carrying v, keyed by its type. An item
// holds at most one value per type.
func WithInfo[T any](item Item, v T) Item {
	info := make(map[reflect.Type]any, len(item.info)+1)
	for k, existing := range item.info {
		info[k] = existing
	}
	info[reflect.TypeFor[T]()] = v
	item.info = info
	return item
}

// InfoOf returns the value of type T attached to item.
func InfoOf[T any](item Item) (T, bool) {
	v, ok := item.info[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// FilterItems returns the items for which keep returns true, in order.
func FilterItems(items []Item, keep func(Item) bool) []Item {
	var out []Item
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Without returns items minus the one presenting content.
func Without(items []Item, content Content) []Item {
	return FilterItems(items, func(item Item) bool { return item.Content != content })
}
