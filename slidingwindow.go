package trimlist

import "github.com/hupe1980/trimlist/internal/deque"

// SlidingWindowList is an append-only sequence backed by a ring-buffer
// deque plus a removed-count offset. The global index of an element is its
// position in the deque shifted by the number of elements removed so far,
// which keeps indices stable across trims without any per-element
// bookkeeping.
//
// Compared to ChunkedArray it pays per-element ring maintenance but has no
// capacity bound and no chunk indirection, which is exactly the tradeoff
// the benchmark harness measures.
type SlidingWindowList[T any] struct {
	data    deque.Deque[T]
	removed int
}

var _ TrimmableList[int] = (*SlidingWindowList[int])(nil)

// NewSlidingWindowList creates an empty SlidingWindowList.
func NewSlidingWindowList[T any]() *SlidingWindowList[T] {
	return &SlidingWindowList[T]{}
}

// Append pushes value at the tail and returns its global index. The error
// is always nil; it exists to satisfy the TrimmableList contract.
func (s *SlidingWindowList[T]) Append(value T) (int, error) {
	index := s.removed + s.data.Len()
	s.data.PushBack(value)
	return index, nil
}

// PopLeft removes and returns the frontmost element, advancing the window
// start by one. It returns the zero value and false when the window is
// empty, so polling-style draining needs no error handling.
func (s *SlidingWindowList[T]) PopLeft() (T, bool) {
	v, ok := s.data.PopFront()
	if ok {
		s.removed++
	}
	return v, ok
}

// TrimBefore removes every element with a global index below index and
// returns the removed values in removal order. Trimming at or below the
// current window start is a no-op returning an empty slice.
func (s *SlidingWindowList[T]) TrimBefore(index int) []T {
	n := index - s.removed
	if n < 0 {
		n = 0
	}
	if n > s.data.Len() {
		n = s.data.Len()
	}
	removed := make([]T, 0, n)
	for range n {
		v, _ := s.data.PopFront()
		removed = append(removed, v)
	}
	s.removed += n
	return removed
}

// IndexRange returns the current window [removed, removed+length).
func (s *SlidingWindowList[T]) IndexRange() IndexRange {
	return IndexRange{Start: s.removed, Stop: s.removed + s.data.Len()}
}

// At returns the value at global index. The second return is false when
// index is outside the window.
func (s *SlidingWindowList[T]) At(index int) (T, bool) {
	return s.data.At(index - s.removed)
}

// Len returns the number of elements currently in the window.
func (s *SlidingWindowList[T]) Len() int {
	return s.data.Len()
}

// Slice returns a non-owning View over s described by sel. Only step-1
// ranges and explicit index lists are supported.
func (s *SlidingWindowList[T]) Slice(sel Selector) (*View[T], error) {
	return NewView[T](s, sel)
}
