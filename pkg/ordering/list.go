// Package ordering maintains user-orderable collections of opaque items
// (evidence files, additional request clauses) with stable identity across
// reorders. It is independent of any drag-and-drop UI binding.
package ordering

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// DefaultMaxItems is the insertion cap applied when NewList is given a
// non-positive maximum.
const DefaultMaxItems = 10

var (
	// ErrListFull is returned when an insertion would exceed the item cap.
	// The batch is rejected whole; the list is left unchanged.
	ErrListFull = errors.New("list is full")

	// ErrNotFound is returned when no item with the given id exists.
	ErrNotFound = errors.New("item not found")

	// ErrDuplicateName is returned when a rename collides with another
	// item's current name.
	ErrDuplicateName = errors.New("duplicate item name")

	// ErrBadIndex is returned when a move index is out of range.
	ErrBadIndex = errors.New("index out of range")
)

// Item is one element of a List. The ID is assigned at insertion time and
// never derived from content, so reordering needs no content equality.
type Item struct {
	ID      string
	Name    string
	Payload []byte
}

// List is an ordered collection with a maximum size. It is not safe for
// concurrent use; callers own the instance for its lifetime.
type List struct {
	items []Item
	max   int
}

// NewList creates an empty list capped at max items.
func NewList(max int) *List {
	if max <= 0 {
		max = DefaultMaxItems
	}
	return &List{max: max}
}

// Insert appends the given items in order, assigning each a fresh opaque id.
// If the batch would push the list past its cap, nothing is inserted and
// ErrListFull is returned.
func (l *List) Insert(items ...Item) ([]Item, error) {
	if len(l.items)+len(items) > l.max {
		return nil, fmt.Errorf("%w: %d existing + %d new exceeds cap of %d",
			ErrListFull, len(l.items), len(items), l.max)
	}

	inserted := make([]Item, 0, len(items))
	for _, it := range items {
		it.ID = uuid.New().String()
		l.items = append(l.items, it)
		inserted = append(inserted, it)
	}
	return inserted, nil
}

// Move relocates the item at index from to index to as a single atomic
// operation; all other items shift accordingly.
func (l *List) Move(from, to int) error {
	n := len(l.items)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: move %d -> %d with %d items", ErrBadIndex, from, to, n)
	}
	if from == to {
		return nil
	}

	it := l.items[from]
	rest := append(l.items[:from:from], l.items[from+1:]...)
	l.items = append(rest[:to:to], append([]Item{it}, rest[to:]...)...)
	return nil
}

// Remove deletes the item with the given id.
func (l *List) Remove(id string) error {
	for i, it := range l.items {
		if it.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Rename changes an item's display name. A rename that collides with
// another item's current name is rejected and the original name is kept.
func (l *List) Rename(id, name string) error {
	idx := -1
	for i, it := range l.items {
		if it.ID == id {
			idx = i
			continue
		}
		if it.Name == name {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	l.items[idx].Name = name
	return nil
}

// Get returns the item with the given id.
func (l *List) Get(id string) (Item, bool) {
	for _, it := range l.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Items returns a copy of the list in its current order.
func (l *List) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Labels returns the sequence of submission labels implied by the current
// order, e.g. "Pagaré 1", "Pagaré 2" for prefix "Pagaré".
func (l *List) Labels(prefix string) []string {
	labels := make([]string, len(l.items))
	for i := range l.items {
		labels[i] = fmt.Sprintf("%s %d", prefix, i+1)
	}
	return labels
}
