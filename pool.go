package trimlist

// PoolStats tracks chunk pool activity. Counters are cumulative for the
// lifetime of the pool.
type PoolStats struct {
	Allocated uint64 // chunks created fresh
	Reused    uint64 // chunks served from the free list
	Released  uint64 // chunks returned to the free list
}

// Pool is a free-list allocator of fixed-size chunk buffers. Acquiring pops
// a recycled buffer when one is available and allocates fresh otherwise;
// releasing scrubs every slot back to the zero value before the buffer
// rejoins the free list, so stale contents can never leak into an unrelated
// region of the owning container.
//
// A Pool is owned by exactly one container and must not be shared.
type Pool[E any] struct {
	chunkSize int
	free      [][]E
	stats     PoolStats
}

// NewPool creates a pool of buffers with chunkSize slots each.
func NewPool[E any](chunkSize int) *Pool[E] {
	return &Pool[E]{chunkSize: chunkSize}
}

// Acquire returns a zeroed buffer of exactly the pool's chunk size.
func (p *Pool[E]) Acquire() []E {
	if n := len(p.free); n > 0 {
		buf := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		p.stats.Reused++
		return buf
	}
	p.stats.Allocated++
	return make([]E, p.chunkSize)
}

// Release scrubs buf and appends it to the free list. Buffers of the wrong
// length are rejected with a *ChunkSizeError.
func (p *Pool[E]) Release(buf []E) error {
	if len(buf) != p.chunkSize {
		return &ChunkSizeError{Len: len(buf), Want: p.chunkSize}
	}
	clear(buf)
	p.free = append(p.free, buf)
	p.stats.Released++
	return nil
}

// Size returns the number of buffers currently on the free list.
func (p *Pool[E]) Size() int {
	return len(p.free)
}

// Stats returns the pool's cumulative counters.
func (p *Pool[E]) Stats() PoolStats {
	return p.stats
}
