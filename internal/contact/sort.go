package contact

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Order is the display ordering applied to the fetched contact list.
// It cycles natural -> ascending -> descending -> natural and affects
// display only; it is never sent to the store.
type Order int

const (
	// OrderNatural shows contacts exactly as the store returned them.
	OrderNatural Order = iota
	// OrderAscending sorts by full name, A to Z.
	OrderAscending
	// OrderDescending sorts by full name, Z to A.
	OrderDescending
)

// Next returns the order that follows o in the sort cycle.
func (o Order) Next() Order {
	return (o + 1) % 3
}

// String returns a short label for display in the UI.
func (o Order) String() string {
	switch o {
	case OrderAscending:
		return "name ↑"
	case OrderDescending:
		return "name ↓"
	default:
		return "natural"
	}
}

// SortByName returns a copy of contacts in the given order. The input slice
// is never mutated, so switching back to OrderNatural restores the exact
// fetched sequence without a re-fetch.
//
// Name comparison is collation-based and case-insensitive, matching how a
// browser's default locale compare behaves. Missing names compare as the
// empty string.
func SortByName(contacts []Contact, order Order) []Contact {
	out := make([]Contact, len(contacts))
	copy(out, contacts)

	if order == OrderNatural {
		return out
	}

	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := c.CompareString(out[i].FullName, out[j].FullName)
		if order == OrderDescending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}
