package trimlist

// A Selector describes a subset of global indices, either as a contiguous
// step-1 range or as an explicit list. Selectors are consumed by
// ChunkedArray.Enumerate and by views; any other shape of selection is
// rejected with a *SelectorError.
type Selector interface {
	selector()
}

// Range selects the contiguous indices [Start, Stop). Step may be 0 or 1;
// any other step is invalid. Reverse or strided selection is deliberately
// unsupported.
type Range struct {
	Start int
	Stop  int
	Step  int
}

func (Range) selector() {}

// Indices selects an explicit list of global indices in the given order.
// Order is preserved and duplicates are permitted.
type Indices []int

func (Indices) selector() {}

// normalizeSelector validates sel against the supported selector shapes.
// A nil selector defaults to the full window of the container. It returns
// either a step-1 range clipped later by the caller, or the explicit index
// list.
func normalizeSelector(sel Selector, window IndexRange) (Range, Indices, error) {
	switch s := sel.(type) {
	case nil:
		return Range{Start: window.Start, Stop: window.Stop, Step: 1}, nil, nil
	case Range:
		if s.Step != 0 && s.Step != 1 {
			return Range{}, nil, &SelectorError{Reason: "only step-1 ranges are supported"}
		}
		s.Step = 1
		return s, nil, nil
	case Indices:
		return Range{}, s, nil
	default:
		return Range{}, nil, &SelectorError{Reason: "unsupported selector type"}
	}
}
