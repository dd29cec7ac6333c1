// Package stats tracks the session statistics shown in the UI: how many
// contacts existed when the session started, and how many have been created,
// modified, and removed since. The counters live only for the process
// lifetime; nothing is persisted.
package stats

// Tracker accumulates session counters. Counters are derived from operation
// outcomes, never from diffing record sets, and are only bumped after the
// store has confirmed the operation.
type Tracker struct {
	total    int
	original int
	created  int
	modified int
	removed  int
}

// Snapshot is a read-only view of the counters for display.
type Snapshot struct {
	// Total is the size of the most recent successful fetch.
	Total int
	// Original is the size of the first fetch that claimed it (set once,
	// while still zero) and never changes afterward.
	Original int
	// New, Modified, and Removed count confirmed creates, updates, and
	// deletes. They only ever grow.
	New      int
	Modified int
	Removed  int
}

// New returns a Tracker with all counters at zero.
func New() *Tracker {
	return &Tracker{}
}

// RecordFetch notes a successful list fetch of n contacts. Total is always
// recomputed; Original is claimed only while it is still zero, so a first
// fetch of an empty sheet leaves it unset until a non-empty fetch arrives.
func (t *Tracker) RecordFetch(n int) {
	t.total = n
	if t.original == 0 {
		t.original = n
	}
}

// RecordCreate bumps the created counter. Call only after a confirmed create.
func (t *Tracker) RecordCreate() {
	t.created++
}

// RecordUpdate bumps the modified counter. Call only after a confirmed update.
func (t *Tracker) RecordUpdate() {
	t.modified++
}

// RecordDelete bumps the removed counter. Call only after a confirmed delete.
func (t *Tracker) RecordDelete() {
	t.removed++
}

// Snapshot returns the current counter values.
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{
		Total:    t.total,
		Original: t.original,
		New:      t.created,
		Modified: t.modified,
		Removed:  t.removed,
	}
}
