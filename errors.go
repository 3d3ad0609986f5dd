package trimlist

import "fmt"

// CapacityError indicates a write at an index outside the fixed capacity of
// a ChunkedArray. The three-level chunk tree addresses exactly Capacity
// (128³) indices; writes at or beyond that bound are rejected rather than
// silently truncated.
type CapacityError struct {
	Index    int
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("index %d outside capacity %d", e.Index, e.Capacity)
}

// SelectorError indicates a selector that is neither a step-1 range nor an
// explicit list of indices.
type SelectorError struct {
	Reason string
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("invalid selector: %s", e.Reason)
}

// ChunkSizeError indicates a buffer released to a Pool whose length does
// not match the pool's chunk size.
type ChunkSizeError struct {
	Len  int
	Want int
}

func (e *ChunkSizeError) Error() string {
	return fmt.Sprintf("chunk size mismatch: got %d, want %d", e.Len, e.Want)
}
