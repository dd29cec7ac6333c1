// Package state holds the in-memory mirror of the contact collection: the
// most recent fetch result, verbatim, plus the current display sort mode.
// The mirror is never edited locally — every mutation goes to the store and
// is followed by a full re-fetch that replaces the mirror wholesale.
package state

import "github.com/Iron-Ham/sheetbook/internal/contact"

// List is the contact list state. The zero value is an empty list in
// natural order.
type List struct {
	fetched []contact.Contact
	order   contact.Order
}

// NewList returns an empty List in natural order.
func NewList() *List {
	return &List{}
}

// Replace swaps in the result of a fresh fetch. The slice is stored as-is;
// its order is the collection's natural order. The sort mode is kept, so a
// re-fetch while sorted stays sorted.
func (l *List) Replace(contacts []contact.Contact) {
	l.fetched = contacts
}

// Contacts returns the list in the current display order. When sorted, the
// result is a copy; the stored natural order is never disturbed.
func (l *List) Contacts() []contact.Contact {
	return contact.SortByName(l.fetched, l.order)
}

// Natural returns the mirror in fetched order. Used for id assignment,
// which must see the collection as the store returned it.
func (l *List) Natural() []contact.Contact {
	return l.fetched
}

// Order returns the current sort mode.
func (l *List) Order() contact.Order {
	return l.order
}

// CycleSort advances the sort mode one step and returns the new mode.
// Display-only: nothing is sent to the store.
func (l *List) CycleSort() contact.Order {
	l.order = l.order.Next()
	return l.order
}

// Len returns the number of contacts in the mirror.
func (l *List) Len() int {
	return len(l.fetched)
}
