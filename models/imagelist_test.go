package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImageList(t *testing.T) {
	assert.Empty(t, ParseImageList(""))
	assert.Empty(t, ParseImageList("   "))
	assert.Equal(t, ImageList{"a.jpg"}, ParseImageList("a.jpg"))
	assert.Equal(t, ImageList{"a.jpg", "b.jpg", "c.jpg"}, ParseImageList("a.jpg,b.jpg,c.jpg"))

	// Blank entries are discarded, order preserved.
	assert.Equal(t, ImageList{"a.jpg", "b.jpg"}, ParseImageList("a.jpg,,b.jpg,"))
	assert.Equal(t, ImageList{"a.jpg", "b.jpg"}, ParseImageList(" a.jpg , b.jpg "))
}

func TestImageListRoundTrip(t *testing.T) {
	encodings := []string{
		"a.jpg",
		"a.jpg,b.jpg,c.jpg",
		"http://example.com/uploads/items/one.png,http://example.com/uploads/items/two.webp",
	}
	for _, encoded := range encodings {
		assert.Equal(t, encoded, ParseImageList(encoded).Encode())
	}

	list := ImageList{"x.png", "y.gif", "z.webp"}
	assert.Equal(t, list, ParseImageList(list.Encode()))
}

func TestImageListAppend(t *testing.T) {
	list := ImageList{}
	require.NoError(t, list.Append("a.jpg", "b.jpg"))
	assert.Equal(t, ImageList{"a.jpg", "b.jpg"}, list)

	// References must not carry the delimiter.
	err := list.Append("bad,ref.jpg")
	require.Error(t, err)
	assert.Equal(t, ImageList{"a.jpg", "b.jpg"}, list)

	require.Error(t, list.Append(""))

	for i := len(list); i < MaxImagesPerItem; i++ {
		require.NoError(t, list.Append("more.jpg"))
	}
	assert.Len(t, list, MaxImagesPerItem)
	assert.Error(t, list.Append("over.jpg"))
	assert.Len(t, list, MaxImagesPerItem)
}

func TestImageListRemove(t *testing.T) {
	list := ImageList{"a.jpg", "b.jpg", "c.jpg"}
	list.Remove(1)
	assert.Equal(t, ImageList{"a.jpg", "c.jpg"}, list)

	// Out-of-range removals are a no-op.
	list.Remove(-1)
	list.Remove(5)
	assert.Equal(t, ImageList{"a.jpg", "c.jpg"}, list)
}

func TestImageListMove(t *testing.T) {
	list := ImageList{"a.jpg", "b.jpg", "c.jpg"}
	list.Move(2, 0)
	assert.Equal(t, ImageList{"c.jpg", "a.jpg", "b.jpg"}, list)

	list.Move(0, 2)
	assert.Equal(t, ImageList{"a.jpg", "b.jpg", "c.jpg"}, list)

	// Invalid indices leave the list unchanged.
	list.Move(-1, 0)
	list.Move(0, 3)
	list.Move(1, 1)
	assert.Equal(t, ImageList{"a.jpg", "b.jpg", "c.jpg"}, list)
}

// Mirrors the edit workflow: decode, reorder, remove, re-encode.
func TestImageListEditSequence(t *testing.T) {
	list := ParseImageList("a.jpg,b.jpg,c.jpg")
	require.Equal(t, ImageList{"a.jpg", "b.jpg", "c.jpg"}, list)

	list.Move(2, 0)
	assert.Equal(t, ImageList{"c.jpg", "a.jpg", "b.jpg"}, list)

	list.Remove(1)
	assert.Equal(t, ImageList{"c.jpg", "b.jpg"}, list)

	assert.Equal(t, "c.jpg,b.jpg", list.Encode())
}
