// Package deque implements a growable ring-buffer double-ended queue.
package deque

// minCapacity is the smallest backing buffer allocated; always a power of
// two so wrap-around stays a single mask operation.
const minCapacity = 16

// Deque is a FIFO-oriented double-ended queue backed by a ring buffer.
// Both PushBack and PopFront run in O(1) amortized time, and At gives O(1)
// random access by position. The zero value is ready to use.
type Deque[T any] struct {
	buf   []T
	head  int
	count int
}

// Len returns the number of elements currently in the deque.
func (d *Deque[T]) Len() int {
	return d.count
}

// PushBack appends v at the tail.
func (d *Deque[T]) PushBack(v T) {
	d.growIfFull()
	d.buf[(d.head+d.count)&(len(d.buf)-1)] = v
	d.count++
}

// PopFront removes and returns the head element. The second return is
// false when the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) & (len(d.buf) - 1)
	d.count--
	d.shrinkIfSparse()
	return v, true
}

// Front returns the head element without removing it.
func (d *Deque[T]) Front() (T, bool) {
	if d.count == 0 {
		var zero T
		return zero, false
	}
	return d.buf[d.head], true
}

// At returns the element at position i, where position 0 is the head.
// The second return is false when i is out of bounds.
func (d *Deque[T]) At(i int) (T, bool) {
	if i < 0 || i >= d.count {
		var zero T
		return zero, false
	}
	return d.buf[(d.head+i)&(len(d.buf)-1)], true
}

func (d *Deque[T]) growIfFull() {
	if d.count < len(d.buf) {
		return
	}
	if len(d.buf) == 0 {
		d.buf = make([]T, minCapacity)
		return
	}
	d.resize(len(d.buf) << 1)
}

func (d *Deque[T]) shrinkIfSparse() {
	if len(d.buf) > minCapacity && d.count<<2 <= len(d.buf) {
		d.resize(len(d.buf) >> 1)
	}
}

func (d *Deque[T]) resize(capacity int) {
	next := make([]T, capacity)
	if d.count > 0 {
		if d.head+d.count <= len(d.buf) {
			copy(next, d.buf[d.head:d.head+d.count])
		} else {
			n := copy(next, d.buf[d.head:])
			copy(next[n:], d.buf[:d.count-n])
		}
	}
	d.buf = next
	d.head = 0
}
