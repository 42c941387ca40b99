package bitmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Funny002/meilisearch/bitmap"
)

func TestUnionIntersectDifference(t *testing.T) {
	a := bitmap.FromSlice([]uint32{1, 2, 3})
	b := bitmap.FromSlice([]uint32{2, 3, 4})

	require.Equal(t, []uint32{1, 2, 3, 4}, a.Union(b).ToSlice())
	require.Equal(t, []uint32{2, 3}, a.Intersect(b).ToSlice())
	require.Equal(t, []uint32{1}, a.Difference(b).ToSlice())
}

func TestNotAsUniverseDifference(t *testing.T) {
	universe := bitmap.FromSlice([]uint32{0, 1, 2, 3, 4})
	faceted := bitmap.FromSlice([]uint32{1, 3})

	// NOT(faceted) over the universe, not a bitwise complement of faceted
	// alone: an id outside the universe must not silently appear.
	not := universe.Difference(faceted)
	require.Equal(t, []uint32{0, 2, 4}, not.ToSlice())
}

func TestCloneIsIndependent(t *testing.T) {
	a := bitmap.FromSlice([]uint32{1})
	clone := a.Clone()
	clone.Add(2)

	require.False(t, a.Contains(2))
	require.True(t, clone.Contains(2))
}

func TestEmptyBitmap(t *testing.T) {
	b := bitmap.New()
	require.True(t, b.IsEmpty())
	require.Zero(t, b.Len())
}
