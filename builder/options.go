// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// Option customizes a generator by mutating a builderConfig before sampling.
type Option func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (0 maps to the default seed).
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRange sets the half-open interval [lo, hi) utilities are drawn from.
// Panics unless both bounds are finite and lo < hi.
func WithRange(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		panic("builder: WithRange requires finite lo < hi")
	}
	return func(c *builderConfig) {
		c.lo, c.hi = lo, hi
	}
}

// WithCorrelation mixes a column-wide common value into every row:
// u[i][j] = w·common[j] + (1-w)·own[i][j]. w=0 gives independent rows,
// w=1 gives identical rows (every agent agrees on who is best).
// Panics unless 0 ≤ w ≤ 1.
func WithCorrelation(w float64) Option {
	if math.IsNaN(w) || w < 0 || w > 1 {
		panic("builder: WithCorrelation requires 0 <= w <= 1")
	}
	return func(c *builderConfig) {
		c.correlation = w
	}
}
