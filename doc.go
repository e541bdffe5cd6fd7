// Package lvmatch is an in-memory toolkit for two-sided matching markets:
// turning cardinal utilities into preferences, computing stable matchings
// with deferred acceptance, and auditing any matching for blocking pairs.
//
// 🚀 What is lvmatch?
//
//	A small, dependency-light library that brings together:
//		• Matrices: dense utilities and index tables with strict validation
//		• Ranking: utilities → preference orders → ordinal ranks
//		• Matching: Gale–Shapley deferred acceptance, one-to-one and many-to-one
//		• Auditing: blocking-pair detection with padding for unequal sides
//		• Builders: reproducible synthetic markets for tests and benchmarks
//
// ✨ Why choose lvmatch?
//
//   - Deterministic – same input, same output, including tie-breaking
//   - Explicit contracts – sentinel errors you can match with errors.Is
//   - Observable – per-proposal hooks and log/slog diagnostics
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under five subpackages:
//
//	matrix/      — Dense utilities, Index tables, shared validators
//	rank/        — SortDescending, InvertPermutation, UtilitiesFromOrder
//	galeshapley/ — Match and MatchManyToOne (proposer-optimal)
//	stability/   — Check and FindBlockingPair
//	builder/     — RandomMarket, RandomUtilities, RandomPreferences
//
// Quick ASCII example:
//
//	  proposers        reviewers
//	    w0 ──────────── f0
//	    w1 ──────────── f1
//	    w2   (unmatched: Proposals[2] == N)
//
// Indices are 0-based inside the library; stability.Check reads 1-based
// tables by default so results exported to other tools can be audited as-is.
//
//	go get github.com/katalvlaran/lvmatch
package lvmatch
