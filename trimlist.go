package trimlist

import "fmt"

// TrimmableList is the capability contract shared by all containers in this
// package. Workload drivers and benchmarks are written only against this
// interface, never against a concrete container.
//
// Append assigns the next global index, starting at 0 and never reused.
// TrimBefore removes every element with a global index below the given one
// and returns the removed values in removal order; trimming at or below the
// current window start is a no-op. At returns the value stored at a global
// index, or the zero value and false when the index is outside the window.
// Len reports the number of addressable elements, IndexRange().Len().
type TrimmableList[T any] interface {
	Append(value T) (int, error)
	TrimBefore(index int) []T
	IndexRange() IndexRange
	At(index int) (T, bool)
	Len() int
}

// IndexRange is a half-open range [Start, Stop) of global indices.
type IndexRange struct {
	Start int
	Stop  int
}

// Len returns the number of indices in the range.
func (r IndexRange) Len() int {
	if r.Stop <= r.Start {
		return 0
	}
	return r.Stop - r.Start
}

// Contains reports whether index lies within the range.
func (r IndexRange) Contains(index int) bool {
	return index >= r.Start && index < r.Stop
}

// Clip returns the intersection of r and other.
func (r IndexRange) Clip(other IndexRange) IndexRange {
	out := r
	if other.Start > out.Start {
		out.Start = other.Start
	}
	if other.Stop < out.Stop {
		out.Stop = other.Stop
	}
	if out.Stop < out.Start {
		out.Stop = out.Start
	}
	return out
}

func (r IndexRange) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.Stop)
}
