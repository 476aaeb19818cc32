package ordering

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFilled(t *testing.T, names ...string) *List {
	t.Helper()
	l := NewList(10)
	items := make([]Item, len(names))
	for i, n := range names {
		items[i] = Item{Name: n, Payload: []byte(n)}
	}
	_, err := l.Insert(items...)
	require.NoError(t, err)
	return l
}

func names(l *List) []string {
	out := make([]string, 0, l.Len())
	for _, it := range l.Items() {
		out = append(out, it.Name)
	}
	return out
}

func TestList_InsertAssignsStableIDs(t *testing.T) {
	l := newFilled(t, "a", "b", "c")

	ids := make(map[string]bool)
	for _, it := range l.Items() {
		assert.NotEmpty(t, it.ID)
		ids[it.ID] = true
	}
	assert.Len(t, ids, 3, "ids must be unique")

	// IDs survive reordering.
	before := l.Items()
	require.NoError(t, l.Move(0, 2))
	after := l.Items()
	assert.Equal(t, before[0].ID, after[2].ID)
	assert.Equal(t, before[1].ID, after[0].ID)
}

func TestList_InsertRejectsBatchOverCap(t *testing.T) {
	l := NewList(10)
	existing := make([]Item, 8)
	for i := range existing {
		existing[i] = Item{Name: fmt.Sprintf("doc-%d", i)}
	}
	_, err := l.Insert(existing...)
	require.NoError(t, err)

	// 8 existing + 5 offered at once: rejected whole, list unchanged.
	batch := make([]Item, 5)
	for i := range batch {
		batch[i] = Item{Name: fmt.Sprintf("new-%d", i)}
	}
	_, err = l.Insert(batch...)
	assert.ErrorIs(t, err, ErrListFull)
	assert.Equal(t, 8, l.Len())

	// A batch that fits still works.
	_, err = l.Insert(batch[:2]...)
	require.NoError(t, err)
	assert.Equal(t, 10, l.Len())
}

func TestList_MoveRoundTripRestoresOrder(t *testing.T) {
	l := newFilled(t, "a", "b", "c", "d", "e")
	original := names(l)

	require.NoError(t, l.Move(1, 3))
	assert.Equal(t, []string{"a", "c", "d", "b", "e"}, names(l))

	require.NoError(t, l.Move(3, 1))
	assert.Equal(t, original, names(l))
}

func TestList_MoveBounds(t *testing.T) {
	l := newFilled(t, "a", "b")
	assert.ErrorIs(t, l.Move(-1, 0), ErrBadIndex)
	assert.ErrorIs(t, l.Move(0, 2), ErrBadIndex)
	assert.NoError(t, l.Move(1, 1))
}

func TestList_OperationsPreserveIDMultiset(t *testing.T) {
	l := newFilled(t, "a", "b", "c", "d")
	items := l.Items()

	expected := map[string]bool{}
	for _, it := range items {
		expected[it.ID] = true
	}

	require.NoError(t, l.Move(0, 3))
	require.NoError(t, l.Move(2, 0))
	require.NoError(t, l.Remove(items[1].ID))
	delete(expected, items[1].ID)
	added, err := l.Insert(Item{Name: "e"})
	require.NoError(t, err)
	expected[added[0].ID] = true

	got := map[string]bool{}
	for _, it := range l.Items() {
		assert.False(t, got[it.ID], "no id may appear twice")
		got[it.ID] = true
	}
	assert.Equal(t, expected, got)
}

func TestList_RemoveUnknownID(t *testing.T) {
	l := newFilled(t, "a")
	assert.ErrorIs(t, l.Remove("nope"), ErrNotFound)
	assert.Equal(t, 1, l.Len())
}

func TestList_RenameRejectsCollision(t *testing.T) {
	l := newFilled(t, "pagaré", "factura")
	items := l.Items()

	err := l.Rename(items[0].ID, "factura")
	assert.ErrorIs(t, err, ErrDuplicateName)

	// Original name intact after the rejected rename.
	it, ok := l.Get(items[0].ID)
	require.True(t, ok)
	assert.Equal(t, "pagaré", it.Name)

	require.NoError(t, l.Rename(items[0].ID, "cheque"))
	it, _ = l.Get(items[0].ID)
	assert.Equal(t, "cheque", it.Name)

	// Renaming an item to its own current name is allowed.
	require.NoError(t, l.Rename(items[0].ID, "cheque"))
}

func TestList_Labels(t *testing.T) {
	l := newFilled(t, "x", "y", "z")
	assert.Equal(t, []string{"Pagaré 1", "Pagaré 2", "Pagaré 3"}, l.Labels("Pagaré"))

	require.NoError(t, l.Move(2, 0))
	// Labels follow positions, not items.
	assert.Equal(t, []string{"Pagaré 1", "Pagaré 2", "Pagaré 3"}, l.Labels("Pagaré"))
}
