package trimlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name  string
		index int
		rem   int
		k1    int
		k2    int
		k3    int
	}{
		{"zero", 0, 0, 0, 0, 0},
		{"slot only", 127, 0, 0, 0, 127},
		{"first leaf rollover", 128, 0, 0, 1, 0},
		{"first branch rollover", 128 * 128, 0, 1, 0, 0},
		{"mixed", (3*128+2)*128 + 1, 0, 3, 2, 1},
		{"last index", Capacity - 1, 0, 127, 127, 127},
		{"beyond capacity", Capacity, 1, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rem, k1, k2, k3 := decompose(tt.index)
			assert.Equal(t, tt.rem, rem)
			assert.Equal(t, tt.k1, k1)
			assert.Equal(t, tt.k2, k2)
			assert.Equal(t, tt.k3, k3)
			assert.Equal(t, tt.index, compose(rem, k1, k2, k3))
		})
	}
}

func TestChunkedArray_AppendGet(t *testing.T) {
	c := NewChunkedArray[int]()

	for i := range 1000 {
		idx, err := c.Append(i * 10)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}

	assert.Equal(t, IndexRange{Start: 0, Stop: 1000}, c.KeyRange())
	assert.Equal(t, 1000, c.Len())

	for i := range 1000 {
		v, ok := c.Get(i)
		require.True(t, ok, "index %d", i)
		assert.Equal(t, i*10, v)
	}

	_, ok := c.Get(1000)
	assert.False(t, ok)
	_, ok = c.Get(-1)
	assert.False(t, ok)
}

func TestChunkedArray_ZeroValueIsPresent(t *testing.T) {
	c := NewChunkedArray[int]()

	idx, err := c.Append(0)
	require.NoError(t, err)

	// A stored zero value must be distinguishable from absence.
	v, ok := c.Get(idx)
	assert.True(t, ok)
	assert.Zero(t, v)
}

func TestChunkedArray_PutSparse(t *testing.T) {
	c := NewChunkedArray[string]()

	// A sparse write allocates only the chunks on its path.
	require.NoError(t, c.Put(5*128*128+3, "x"))
	stats := c.PoolStats()
	assert.Equal(t, uint64(1), stats.Allocated)

	// The slot is written but outside the window, so reads stay absent.
	_, ok := c.Get(5*128*128 + 3)
	assert.False(t, ok)
}

func TestChunkedArray_CapacityBoundary(t *testing.T) {
	c := NewChunkedArray[int]()

	// The last addressable index accepts a write.
	require.NoError(t, c.Put(Capacity-1, 42))

	// At and beyond the capacity the write must fail loudly.
	err := c.Put(Capacity, 1)
	require.Error(t, err)
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, Capacity, capErr.Index)
	assert.Equal(t, Capacity, capErr.Capacity)

	require.Error(t, c.Put(-1, 1))
}

func TestChunkedArray_AppendAtCapacity(t *testing.T) {
	if testing.Short() {
		t.Skip("fills the whole 128³ index space")
	}
	c := NewChunkedArray[uint8]()

	for range Capacity {
		_, err := c.Append(1)
		require.NoError(t, err)
	}

	_, err := c.Append(1)
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, Capacity, capErr.Index)
	assert.Equal(t, IndexRange{Start: 0, Stop: Capacity}, c.KeyRange())
}

func TestChunkedArray_TrimBefore(t *testing.T) {
	c := NewChunkedArray[int]()
	for i := range 1000 {
		_, err := c.Append(i)
		require.NoError(t, err)
	}

	removed := c.TrimBefore(300)
	require.Len(t, removed, 300)
	for i, v := range removed {
		assert.Equal(t, i, v)
	}

	assert.Equal(t, IndexRange{Start: 300, Stop: 1000}, c.KeyRange())
	assert.Equal(t, 700, c.Len())

	_, ok := c.Get(299)
	assert.False(t, ok)
	v, ok := c.Get(300)
	require.True(t, ok)
	assert.Equal(t, 300, v)

	// Trimming at or below the current start is a no-op.
	assert.Empty(t, c.TrimBefore(300))
	assert.Empty(t, c.TrimBefore(0))
	assert.Equal(t, IndexRange{Start: 300, Stop: 1000}, c.KeyRange())
}

func TestChunkedArray_TrimReclaimsChunks(t *testing.T) {
	c := NewChunkedArray[int]()
	for i := range 1000 {
		_, err := c.Append(i)
		require.NoError(t, err)
	}

	// 300 indices span leaves 0 and 1 plus part of leaf 2; only the two
	// wholly-retired leaves go back to the pool.
	c.TrimBefore(300)
	assert.Equal(t, 2, c.PoolSize())

	// Appends that open new leaves drain the free list before allocating.
	before := c.PoolStats().Reused
	for range 2 * ChunkSize {
		_, err := c.Append(7)
		require.NoError(t, err)
	}
	assert.Equal(t, before+2, c.PoolStats().Reused)
	assert.Equal(t, 0, c.PoolSize())
}

func TestChunkedArray_TrimReclaimsBranches(t *testing.T) {
	c := NewChunkedArray[int]()

	// Fill the whole first branch (128 leaves) plus one extra element.
	n := ChunkSize*ChunkSize + 1
	for i := range n {
		_, err := c.Append(i)
		require.NoError(t, err)
	}

	c.TrimBefore(ChunkSize * ChunkSize)
	assert.Equal(t, ChunkSize, c.leaves.Size())
	assert.Equal(t, 1, c.branches.Size())

	v, ok := c.Get(ChunkSize * ChunkSize)
	require.True(t, ok)
	assert.Equal(t, ChunkSize*ChunkSize, v)
}

func TestChunkedArray_PoolHygieneAcrossRegions(t *testing.T) {
	c := NewChunkedArray[int]()
	for i := range ChunkSize {
		_, err := c.Append(i + 1)
		require.NoError(t, err)
	}

	// Retire the first leaf, then write into a fresh region that reuses
	// the recycled buffer. No stale value may shine through.
	c.TrimBefore(ChunkSize)
	require.Equal(t, 1, c.PoolSize())

	idx, err := c.Append(999)
	require.NoError(t, err)
	assert.Equal(t, ChunkSize, idx)
	assert.Equal(t, uint64(1), c.PoolStats().Reused)

	v, ok := c.Get(idx)
	require.True(t, ok)
	assert.Equal(t, 999, v)

	// Neighboring slots in the recycled leaf read as absent, not as the
	// values stored before recycling.
	for i := idx + 1; i < idx+ChunkSize; i++ {
		_, ok := c.Get(i)
		assert.False(t, ok, "index %d", i)
	}
}

func TestChunkedArray_Enumerate(t *testing.T) {
	c := NewChunkedArray[int]()
	for i := range 10 {
		_, err := c.Append(i * 2)
		require.NoError(t, err)
	}
	c.TrimBefore(4)

	collect := func(sel Selector) (idxs, vals []int) {
		seq, err := c.Enumerate(sel)
		require.NoError(t, err)
		for i, v := range seq {
			idxs = append(idxs, i)
			vals = append(vals, v)
		}
		return idxs, vals
	}

	t.Run("full window", func(t *testing.T) {
		idxs, vals := collect(nil)
		assert.Equal(t, []int{4, 5, 6, 7, 8, 9}, idxs)
		assert.Equal(t, []int{8, 10, 12, 14, 16, 18}, vals)
	})

	t.Run("range clipped to window", func(t *testing.T) {
		idxs, _ := collect(Range{Start: 0, Stop: 6})
		assert.Equal(t, []int{4, 5}, idxs)
	})

	t.Run("empty after clipping", func(t *testing.T) {
		idxs, _ := collect(Range{Start: 0, Stop: 3})
		assert.Empty(t, idxs)
	})

	t.Run("explicit indices keep order", func(t *testing.T) {
		idxs, vals := collect(Indices{9, 4, 2, 6, 9})
		assert.Equal(t, []int{9, 4, 6, 9}, idxs)
		assert.Equal(t, []int{18, 8, 12, 18}, vals)
	})

	t.Run("strided range rejected", func(t *testing.T) {
		_, err := c.Enumerate(Range{Start: 4, Stop: 8, Step: 2})
		var selErr *SelectorError
		require.ErrorAs(t, err, &selErr)
	})

	t.Run("early break", func(t *testing.T) {
		seq, err := c.Enumerate(nil)
		require.NoError(t, err)
		var got []int
		for i := range seq {
			got = append(got, i)
			if len(got) == 2 {
				break
			}
		}
		assert.Equal(t, []int{4, 5}, got)
	})
}
