package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem() *Item {
	price := 99.9
	return &Item{
		ID:       7,
		Name:     "Laptop",
		Brand:    "Dell",
		Status:   StatusInUse,
		ImageURL: "a.jpg,b.jpg,c.jpg",
		Price:    &price,
		Quantity: 1,
		Version:  3,
	}
}

func TestDraftStoreStartAndGet(t *testing.T) {
	store := NewDraftStore()

	_, ok := store.Get("s1")
	assert.False(t, ok)

	draft := store.Start("s1", testItem())
	assert.Equal(t, uint(7), draft.ItemID)
	assert.Equal(t, ImageList{"a.jpg", "b.jpg", "c.jpg"}, draft.Images)
	assert.Equal(t, 3, draft.Version)

	got, ok := store.Get("s1")
	require.True(t, ok)
	assert.Equal(t, draft.ItemID, got.ItemID)
}

func TestDraftStoreSingleDraftPerSession(t *testing.T) {
	store := NewDraftStore()
	store.Start("s1", testItem())

	other := testItem()
	other.ID = 8
	other.Name = "Monitor"
	store.Start("s1", other)

	// Starting a second edit replaces the first draft.
	draft, ok := store.Get("s1")
	require.True(t, ok)
	assert.Equal(t, uint(8), draft.ItemID)
}

func TestDraftStoreSessionsAreIndependent(t *testing.T) {
	store := NewDraftStore()
	store.Start("s1", testItem())

	other := testItem()
	other.ID = 8
	store.Start("s2", other)

	d1, ok := store.Get("s1")
	require.True(t, ok)
	d2, ok := store.Get("s2")
	require.True(t, ok)
	assert.Equal(t, uint(7), d1.ItemID)
	assert.Equal(t, uint(8), d2.ItemID)
}

func TestDraftStoreCancel(t *testing.T) {
	store := NewDraftStore()
	store.Start("s1", testItem())
	store.Cancel("s1")

	_, ok := store.Get("s1")
	assert.False(t, ok)

	// Cancelling with nothing in progress is harmless.
	store.Cancel("s1")
}

func TestDraftStoreImageOperations(t *testing.T) {
	store := NewDraftStore()
	store.Start("s1", testItem())

	draft, err := store.MoveImage("s1", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, ImageList{"c.jpg", "a.jpg", "b.jpg"}, draft.Images)

	draft, err = store.RemoveImage("s1", 1)
	require.NoError(t, err)
	assert.Equal(t, ImageList{"c.jpg", "b.jpg"}, draft.Images)

	draft, err = store.AddImages("s1", "d.jpg")
	require.NoError(t, err)
	assert.Equal(t, ImageList{"c.jpg", "b.jpg", "d.jpg"}, draft.Images)

	_, err = store.AddImages("missing", "d.jpg")
	assert.ErrorIs(t, err, ErrNoDraft)
	_, err = store.RemoveImage("missing", 0)
	assert.ErrorIs(t, err, ErrNoDraft)
	_, err = store.MoveImage("missing", 0, 1)
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestDraftSnapshotsAreIsolated(t *testing.T) {
	store := NewDraftStore()
	snapshot := store.Start("s1", testItem())

	// Mutating a returned snapshot must not leak into the stored draft.
	snapshot.Images.Remove(0)
	snapshot.Name = "changed"

	draft, ok := store.Get("s1")
	require.True(t, ok)
	assert.Equal(t, "Laptop", draft.Name)
	assert.Equal(t, ImageList{"a.jpg", "b.jpg", "c.jpg"}, draft.Images)
}

func TestDraftApplyTo(t *testing.T) {
	item := testItem()
	draft := NewItemDraft(item)

	draft.Name = "Laptop (renamed)"
	draft.Images.Move(2, 0)
	draft.Images.Remove(1)

	draft.ApplyTo(item)
	assert.Equal(t, "Laptop (renamed)", item.Name)
	assert.Equal(t, "c.jpg,b.jpg", item.ImageURL)
	// Identity and version are not the draft's to change.
	assert.Equal(t, uint(7), item.ID)
	assert.Equal(t, 3, item.Version)
}
