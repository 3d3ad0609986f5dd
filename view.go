package trimlist

// View is a non-owning, index-mapped window over a TrimmableList. Position
// p of the view resolves to a global index of the source through the
// selector the view was built with; reads go straight to the source and
// nothing is copied.
//
// A View borrows its source. It must not be used after the source has been
// released, and positions that resolve to trimmed-away indices read as
// absent.
type View[T any] struct {
	source TrimmableList[T]
	rng    IndexRange
	idx    Indices
}

// NewView creates a view over source described by sel. A nil selector
// covers the source's full window at construction time. Only step-1 ranges
// and explicit index lists are supported.
func NewView[T any](source TrimmableList[T], sel Selector) (*View[T], error) {
	rng, idx, err := normalizeSelector(sel, source.IndexRange())
	if err != nil {
		return nil, err
	}
	return &View[T]{
		source: source,
		rng:    IndexRange{Start: rng.Start, Stop: rng.Stop},
		idx:    idx,
	}, nil
}

// Len returns the number of positions in the view.
func (v *View[T]) Len() int {
	if v.idx != nil {
		return len(v.idx)
	}
	return v.rng.Len()
}

// Index resolves view position pos to a global index of the source.
// The second return is false when pos is out of bounds for the view.
func (v *View[T]) Index(pos int) (int, bool) {
	if pos < 0 || pos >= v.Len() {
		return 0, false
	}
	if v.idx != nil {
		return v.idx[pos], true
	}
	return v.rng.Start + pos, true
}

// At reads the source value at view position pos. It returns the zero
// value and false when pos is out of bounds or the resolved index is
// outside the source's current window.
func (v *View[T]) At(pos int) (T, bool) {
	index, ok := v.Index(pos)
	if !ok {
		var zero T
		return zero, false
	}
	return v.source.At(index)
}
