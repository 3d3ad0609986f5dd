// Package benchmark drives randomized append/trim/read workloads against
// any TrimmableList implementation and measures per-block read latency.
//
// The harness is written purely against the trimlist.TrimmableList
// contract; it never reaches into a container's internals. Workloads are
// deterministic for a given Config (seeded RNG plus a hash-derived test
// data function), so two containers can be compared on exactly the same
// operation sequence.
package benchmark

import (
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/trimlist"
	"github.com/hupe1980/trimlist/testutil"
)

var (
	// ErrNotEmpty is returned when a workload is started on a container
	// that already holds elements.
	ErrNotEmpty = errors.New("container is not empty")
)

// Config parameterizes a workload. Quantities are expressed in blocks of
// BlockSize items: the populate phase appends BlocksToAdd blocks worth of
// items and trims away BlocksToRemove blocks worth, interleaved at the
// given probabilities.
type Config struct {
	BlockSize      int
	BlocksToAdd    int
	BlocksToRemove int
	ProbAdd        float64
	ProbRemove     float64
	Seed           int64
}

// DefaultConfig returns the standard comparative workload: 50 blocks of
// 1000 items appended, 15 blocks trimmed.
func DefaultConfig() Config {
	return Config{
		BlockSize:      1000,
		BlocksToAdd:    50,
		BlocksToRemove: 15,
		ProbAdd:        0.50,
		ProbRemove:     0.15,
		Seed:           1,
	}
}

// Validate checks the config's internal consistency.
func (c Config) Validate() error {
	if c.BlockSize <= 0 {
		return fmt.Errorf("block size must be positive, got %d", c.BlockSize)
	}
	if c.BlocksToRemove <= 0 || c.BlocksToRemove >= c.BlocksToAdd {
		return fmt.Errorf("blocks to remove must be in (0, %d), got %d", c.BlocksToAdd, c.BlocksToRemove)
	}
	if c.ProbAdd < 0.01 || c.ProbAdd > 0.99 {
		return fmt.Errorf("add probability must be in [0.01, 0.99], got %g", c.ProbAdd)
	}
	if c.ProbRemove < 0.01 || c.ProbRemove > 0.99 {
		return fmt.Errorf("remove probability must be in [0.01, 0.99], got %g", c.ProbRemove)
	}
	return nil
}

// ItemsToAdd returns the total number of items the populate phase appends.
func (c Config) ItemsToAdd() int {
	return c.BlockSize * c.BlocksToAdd
}

// ItemsToRemove returns the total number of items the populate phase trims.
func (c Config) ItemsToRemove() int {
	return c.BlockSize * c.BlocksToRemove
}

// BlockStat aggregates the timed reads that landed on one block.
type BlockStat struct {
	Block   int
	Ops     int
	Total   time.Duration
	PerRead float64 // average nanoseconds per read
}

// Harness executes the three workload phases against a container.
type Harness struct {
	cfg    Config
	rng    *testutil.RNG
	logger *trimlist.Logger
}

// New creates a Harness for cfg. A nil logger disables progress output.
func New(cfg Config, logger *trimlist.Logger) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = trimlist.NoopLogger()
	}
	return &Harness{
		cfg:    cfg,
		rng:    testutil.NewRNG(cfg.Seed),
		logger: logger,
	}, nil
}

// Populate interleaves appends and single-step trims in randomized order
// until the configured quotas are met. The container must be freshly
// constructed. Trims never outrun appends, so the window start can never
// pass the window stop.
func (h *Harness) Populate(list trimlist.TrimmableList[int]) error {
	if list.Len() != 0 {
		return fmt.Errorf("populate: %w", ErrNotEmpty)
	}
	if r := list.IndexRange(); r.Start != 0 || r.Stop != 0 {
		return fmt.Errorf("populate: fresh container has window %s, want [0, 0)", r)
	}

	itemsToAdd := h.cfg.ItemsToAdd()
	itemsToRemove := h.cfg.ItemsToRemove()
	added, removed, changes := 0, 0, 0

	for added < itemsToAdd || removed < itemsToRemove {
		changed := false
		if added < itemsToAdd && h.rng.Float64() < h.cfg.ProbAdd {
			idx, err := list.Append(testutil.ValueAt(added))
			if err != nil {
				return fmt.Errorf("populate: append %d: %w", added, err)
			}
			if idx != added {
				return fmt.Errorf("populate: append assigned index %d, want %d", idx, added)
			}
			added++
			changed = true
		}
		if removed < itemsToRemove && removed < added && h.rng.Float64() < h.cfg.ProbRemove {
			removed++
			list.TrimBefore(removed)
			changed = true
		}
		if changed {
			changes++
			if changes%h.cfg.BlockSize == 0 {
				h.logger.Info("populate progress", "added", added, "removed", removed)
			}
		}
	}
	return nil
}

// Verify checks the populated container against the deterministic test
// data: the window must be exactly [itemsRemoved, itemsAdded), every
// in-window index must map back to its appended value, and reads below the
// window must be absent.
func (h *Harness) Verify(list trimlist.TrimmableList[int]) error {
	itemsToAdd := h.cfg.ItemsToAdd()
	itemsToRemove := h.cfg.ItemsToRemove()

	r := list.IndexRange()
	if r.Start != itemsToRemove || r.Stop != itemsToAdd {
		return fmt.Errorf("verify: window %s, want [%d, %d)", r, itemsToRemove, itemsToAdd)
	}
	if list.Len() != itemsToAdd-itemsToRemove {
		return fmt.Errorf("verify: length %d, want %d", list.Len(), itemsToAdd-itemsToRemove)
	}
	if _, ok := list.At(itemsToRemove - 1); ok {
		return fmt.Errorf("verify: index %d below window should be absent", itemsToRemove-1)
	}
	for idx := itemsToRemove; idx < itemsToAdd; idx++ {
		got, ok := list.At(idx)
		if !ok {
			return fmt.Errorf("verify: index %d unexpectedly absent", idx)
		}
		if want := testutil.ValueAt(idx); got != want {
			return fmt.Errorf("verify: index %d: got %d, want %d", idx, got, want)
		}
	}
	return nil
}

// BlockRead times randomized reads concentrated on one block per round and
// aggregates the timings per block. Each round picks a surviving block,
// reads BlockSize*4 random indices within it, and attributes the elapsed
// time to that block. Stats are returned for blocks BlocksToRemove through
// BlocksToAdd-1 in order.
func (h *Harness) BlockRead(list trimlist.TrimmableList[int]) ([]BlockStat, error) {
	if err := h.Verify(list); err != nil {
		return nil, err
	}

	bn := h.cfg.BlockSize
	ba := h.cfg.BlocksToAdd
	br := h.cfg.BlocksToRemove
	rounds := (ba - br) * 25
	readsPerRound := bn * 4

	totals := make([]time.Duration, ba)
	ops := make([]int, ba)
	indices := make([]int, readsPerRound)

	for round := range rounds {
		block := h.rng.IntnRange(br, ba)
		for i := range indices {
			indices[i] = h.rng.IntnRange(block*bn, (block+1)*bn)
		}
		var sum int
		start := time.Now()
		for _, idx := range indices {
			v, _ := list.At(idx)
			sum += v
		}
		elapsed := time.Since(start)
		_ = sum

		totals[block] += elapsed
		ops[block] += readsPerRound
		if round%100 == 0 {
			h.logger.Debug("block read round", "round", round, "block", block)
		}
	}

	stats := make([]BlockStat, 0, ba-br)
	for block := br; block < ba; block++ {
		s := BlockStat{Block: block, Ops: ops[block], Total: totals[block]}
		if s.Ops > 0 {
			s.PerRead = float64(s.Total.Nanoseconds()) / float64(s.Ops)
		}
		stats = append(stats, s)
	}
	return stats, nil
}

// Run executes all three phases against a freshly built container and
// returns the per-block read stats.
func (h *Harness) Run(name string, build func() trimlist.TrimmableList[int]) ([]BlockStat, error) {
	log := h.logger.WithSubject(name)
	list := build()

	// Replay the identical operation sequence for every subject.
	h.rng.Reset()

	start := time.Now()
	if err := h.Populate(list); err != nil {
		return nil, err
	}
	log.Info("populate finished", "elapsed", time.Since(start), "window", list.IndexRange().String())

	start = time.Now()
	if err := h.Verify(list); err != nil {
		return nil, err
	}
	log.Info("verify finished", "elapsed", time.Since(start))

	stats, err := h.BlockRead(list)
	if err != nil {
		return nil, err
	}
	log.Info("block read finished", "rounds", (h.cfg.BlocksToAdd-h.cfg.BlocksToRemove)*25)
	return stats, nil
}
