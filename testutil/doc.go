// Package testutil provides testing utilities for trimlist.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded, resettable random number generator so randomized
// append/trim workloads stay reproducible across runs, and a deterministic
// per-index value function for verifying read-after-write behavior.
//
//	rng := testutil.NewRNG(seed)
//	if rng.Float64() < probAdd { ... }
//	rng.Reset() // replay the exact same workload
//
//	want := testutil.ValueAt(idx) // the value expected at global index idx
package testutil
