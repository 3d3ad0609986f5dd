package trimlist

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
)

const (
	// ChunkSize is the number of slots per chunk (one radix level).
	ChunkSize = 1 << levelBits

	// Capacity is the total number of addressable indices, fixed by the
	// three-level chunk tree.
	Capacity = ChunkSize * ChunkSize * ChunkSize

	levelBits = 7
	levelMask = ChunkSize - 1
)

// ChunkedArray is a dense-keyed container mapping global indices to values
// through a three-level radix tree of 128-slot chunks. An index decomposes
// into three 7-bit fields selecting the branch, the leaf, and the slot;
// branches and leaves are allocated lazily on first write and recycled
// through per-level free-list pools when trimming retires them.
//
// Capacity is fixed at 128³ indices. Writes at or beyond that bound fail
// with a *CapacityError.
type ChunkedArray[T any] struct {
	// root[k1] is a branch of ChunkSize leaf references, root[k1][k2] a
	// leaf of ChunkSize value slots.
	root [][][]T

	leaves   *Pool[T]
	branches *Pool[[]T]

	// occupied marks global indices holding a written value, separating
	// "never written" from "stored zero value".
	occupied *bitset.BitSet

	start int
	stop  int

	// reclaimed is the lowest index whose leaf has not been returned to
	// the pool yet; always a multiple of ChunkSize.
	reclaimed int
}

var _ TrimmableList[int] = (*ChunkedArray[int])(nil)

// NewChunkedArray creates an empty ChunkedArray with its own chunk pools.
func NewChunkedArray[T any]() *ChunkedArray[T] {
	return &ChunkedArray[T]{
		root:     make([][][]T, ChunkSize),
		leaves:   NewPool[T](ChunkSize),
		branches: NewPool[[]T](ChunkSize),
		occupied: bitset.New(ChunkSize),
	}
}

// decompose splits a global index into its three 7-bit radix fields and
// the higher-order remainder. The remainder is always zero for indices
// below Capacity; it is carried so a fourth level stays a mechanical
// extension.
func decompose(index int) (rem, k1, k2, k3 int) {
	k3 = index & levelMask
	index >>= levelBits
	k2 = index & levelMask
	index >>= levelBits
	k1 = index & levelMask
	index >>= levelBits
	return index, k1, k2, k3
}

// compose is the inverse of decompose.
func compose(rem, k1, k2, k3 int) int {
	return ((rem*ChunkSize+k1)*ChunkSize+k2)*ChunkSize + k3
}

// Append stores value at the next global index and returns that index.
// It fails with a *CapacityError once Capacity indices have been assigned.
func (c *ChunkedArray[T]) Append(value T) (int, error) {
	index := c.stop
	if err := c.Put(index, value); err != nil {
		return 0, err
	}
	c.stop++
	return index, nil
}

// Put writes value at an arbitrary index in [0, Capacity). It allocates
// the branch and leaf on the index's path as needed and marks the slot
// occupied. Put does not move the window; a slot written beyond the
// current stop stays unreadable until appends advance past it.
func (c *ChunkedArray[T]) Put(index int, value T) error {
	if index < 0 || index >= Capacity {
		return &CapacityError{Index: index, Capacity: Capacity}
	}
	_, k1, k2, k3 := decompose(index)
	branch := c.root[k1]
	if branch == nil {
		branch = c.branches.Acquire()
		c.root[k1] = branch
	}
	leaf := branch[k2]
	if leaf == nil {
		leaf = c.leaves.Acquire()
		branch[k2] = leaf
	}
	leaf[k3] = value
	c.occupied.Set(uint(index))
	return nil
}

// Get returns the value stored at index. The second return is false when
// index is outside the window [start, stop), when the chunk path has not
// been allocated, or when the slot was never written.
func (c *ChunkedArray[T]) Get(index int) (T, bool) {
	var zero T
	if index < c.start || index >= c.stop {
		return zero, false
	}
	if !c.occupied.Test(uint(index)) {
		return zero, false
	}
	_, k1, k2, k3 := decompose(index)
	branch := c.root[k1]
	if branch == nil {
		return zero, false
	}
	leaf := branch[k2]
	if leaf == nil {
		return zero, false
	}
	return leaf[k3], true
}

// At is Get under the TrimmableList contract.
func (c *ChunkedArray[T]) At(index int) (T, bool) {
	return c.Get(index)
}

// KeyRange returns the current window [start, stop).
func (c *ChunkedArray[T]) KeyRange() IndexRange {
	return IndexRange{Start: c.start, Stop: c.stop}
}

// IndexRange is KeyRange under the TrimmableList contract.
func (c *ChunkedArray[T]) IndexRange() IndexRange {
	return c.KeyRange()
}

// Len returns the number of addressable indices, stop minus start.
func (c *ChunkedArray[T]) Len() int {
	return c.stop - c.start
}

// TrimBefore removes every element with a global index below index,
// advancing the window start. The removed written values are returned in
// index order. Leaf chunks that fall wholly below the new start are
// scrubbed and returned to the pool, as are branches whose leaves have all
// been retired; trimming at or below the current start is a no-op.
func (c *ChunkedArray[T]) TrimBefore(index int) []T {
	clamped := index
	if clamped < c.start {
		clamped = c.start
	}
	if clamped > c.stop {
		clamped = c.stop
	}
	removed := make([]T, 0, clamped-c.start)
	for i := c.start; i < clamped; i++ {
		if !c.occupied.Test(uint(i)) {
			continue
		}
		_, k1, k2, k3 := decompose(i)
		removed = append(removed, c.root[k1][k2][k3])
		c.occupied.Clear(uint(i))
	}
	c.start = clamped
	c.reclaim()
	return removed
}

// reclaim releases every not-yet-released leaf lying wholly below the
// window start, and each branch once its last leaf is gone.
func (c *ChunkedArray[T]) reclaim() {
	for base := c.reclaimed; base+ChunkSize <= c.start; base += ChunkSize {
		_, k1, k2, _ := decompose(base)
		branch := c.root[k1]
		if branch == nil {
			continue
		}
		if leaf := branch[k2]; leaf != nil {
			_ = c.leaves.Release(leaf)
			branch[k2] = nil
		}
		if k2 == ChunkSize-1 {
			_ = c.branches.Release(branch)
			c.root[k1] = nil
		}
	}
	c.reclaimed = c.start &^ levelMask
}

// Enumerate returns a lazy sequence of (index, value) pairs selected by
// sel. A nil selector or a step-1 range yields the in-window part of the
// range in ascending order; an explicit index list yields exactly its
// in-window members in the list's order. Never-written slots yield the
// zero value. Other selectors fail with a *SelectorError.
func (c *ChunkedArray[T]) Enumerate(sel Selector) (iter.Seq2[int, T], error) {
	rng, idx, err := normalizeSelector(sel, c.KeyRange())
	if err != nil {
		return nil, err
	}
	if idx != nil {
		return func(yield func(int, T) bool) {
			for _, i := range idx {
				if i < c.start || i >= c.stop {
					continue
				}
				v, _ := c.Get(i)
				if !yield(i, v) {
					return
				}
			}
		}, nil
	}
	clipped := c.KeyRange().Clip(IndexRange{Start: rng.Start, Stop: rng.Stop})
	return func(yield func(int, T) bool) {
		for i := clipped.Start; i < clipped.Stop; i++ {
			v, _ := c.Get(i)
			if !yield(i, v) {
				return
			}
		}
	}, nil
}

// PoolSize returns the number of retired leaf chunks available for reuse.
// It exists for observability in tests and benchmarks.
func (c *ChunkedArray[T]) PoolSize() int {
	return c.leaves.Size()
}

// PoolStats returns the leaf pool's cumulative counters.
func (c *ChunkedArray[T]) PoolStats() PoolStats {
	return c.leaves.Stats()
}
