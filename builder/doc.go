// Package builder generates deterministic synthetic markets for tests,
// benchmarks and examples.
//
// What & Why:
//
//	Stable-matching properties are best exercised on many random instances.
//	builder draws utility matrices and preference orders from a seeded RNG so
//	every run of a test or benchmark sees exactly the same markets.
//
// Generators:
//
//   - RandomUtilities(rows, cols, opts...) — one utility matrix
//   - RandomMarket(m, n, opts...)          — proposer (M×N) and reviewer (N×M) utilities
//   - RandomPreferences(rows, cols, opts...) — uniform random preference orders
//
// Options:
//
//   - WithSeed / WithRand   — RNG control (seed 0 maps to a fixed default)
//   - WithRange(lo, hi)     — utility interval, default [0, 1)
//   - WithCorrelation(w)    — blend a per-column common value into every row
//
// Option constructors panic on nonsensical values; generators return
// sentinel errors (ErrTooFewAgents) and never panic.
package builder
