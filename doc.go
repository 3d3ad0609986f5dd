// Package trimlist provides append-only, index-stable sequence containers
// with head trimming.
//
// Every element appended to a trimlist container receives a monotonically
// increasing global index, assigned at append time and stable for the
// element's lifetime. Trimming removes elements from the head of the
// sequence without disturbing the indices of the survivors, so an index
// observed once refers to the same element forever.
//
// # Containers
//
// Two interchangeable implementations are provided:
//
//	// SlidingWindowList: ring-buffer deque plus a removed-count offset.
//	// True O(1) append and pop at both ends, minimal bookkeeping.
//	s := trimlist.NewSlidingWindowList[string]()
//	idx, _ := s.Append("a") // idx == 0
//	s.TrimBefore(1)
//
//	// ChunkedArray: three-level radix tree of 128-slot chunks with lazy
//	// chunk allocation and free-list chunk recycling. O(1) amortized
//	// append and random access; fixed capacity of 128³ indices.
//	c := trimlist.NewChunkedArray[string]()
//	idx, _ = c.Append("a")
//	v, ok := c.Get(idx)
//
// Both satisfy the TrimmableList interface, so workloads and benchmarks can
// drive either through the same contract:
//
//	var list trimlist.TrimmableList[int] = trimlist.NewChunkedArray[int]()
//	list.Append(42)
//	list.TrimBefore(1)
//	r := list.IndexRange() // [1, 1)
//
// # Windows and Absence
//
// The addressable index range is the half-open window [start, stop): start
// advances only on trim, stop only on append. Reads outside the window
// return the zero value and false rather than an error, which keeps polling
// loops branch-free:
//
//	if v, ok := list.At(i); ok {
//	    // v is the value appended at index i
//	}
//
// ChunkedArray additionally distinguishes "never written" from "stored zero
// value" with a per-index occupancy bitset, so sparse writes via Put do not
// alias the zero value.
//
// # Views
//
// A View is a non-owning, index-mapped window over a container. It copies
// nothing and must not outlive its source:
//
//	v, _ := trimlist.NewView[int](list, trimlist.Indices{5, 9, 2})
//	first, ok := v.At(0) // reads list index 5
//
// # Concurrency
//
// Containers are not safe for concurrent use. Each container exclusively
// owns its backing storage; callers that share a container across
// goroutines must provide their own synchronization.
package trimlist
