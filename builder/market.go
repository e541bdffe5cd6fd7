// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// market.go — synthetic two-sided markets.
//
// Canonical model:
//   • Each utility is drawn uniformly from [lo, hi), optionally blended with
//     a per-column common value (WithCorrelation).
//   • Fill order is fixed: rows ascending, columns ascending. Common values are
//     drawn first, one per column.
//
// Determinism:
//   • Same options and seed ⇒ identical matrices on every platform.

package builder

import (
	"github.com/katalvlaran/lvmatch/matrix"
)

const (
	methodRandomUtilities   = "RandomUtilities"
	methodRandomMarket      = "RandomMarket"
	methodRandomPreferences = "RandomPreferences"
	minAgents               = 1
)

// Market bundles both sides' cardinal utilities.
//   - ProposerUtils is M×N: row p scores every reviewer.
//   - ReviewerUtils is N×M: row r scores every proposer.
type Market struct {
	ProposerUtils *matrix.Dense
	ReviewerUtils *matrix.Dense
}

// Proposers returns M.
func (mk *Market) Proposers() int { return mk.ProposerUtils.Rows() }

// Reviewers returns N.
func (mk *Market) Reviewers() int { return mk.ReviewerUtils.Rows() }

// RandomUtilities samples a rows×cols utility matrix.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewAgents).
//
// Complexity: Time O(rows·cols), Space O(rows·cols).
func RandomUtilities(rows, cols int, opts ...Option) (*matrix.Dense, error) {
	if rows < minAgents || cols < minAgents {
		return nil, builderErrorf(methodRandomUtilities, ErrTooFewAgents)
	}

	return sample(rows, cols, newBuilderConfig(opts...))
}

// RandomMarket samples an M-proposer, N-reviewer market. Both matrices are
// drawn from the same RNG stream, proposer side first.
func RandomMarket(m, n int, opts ...Option) (*Market, error) {
	if m < minAgents || n < minAgents {
		return nil, builderErrorf(methodRandomMarket, ErrTooFewAgents)
	}
	cfg := newBuilderConfig(opts...)

	pu, err := sample(m, n, cfg)
	if err != nil {
		return nil, builderErrorf(methodRandomMarket, err)
	}
	ru, err := sample(n, m, cfg)
	if err != nil {
		return nil, builderErrorf(methodRandomMarket, err)
	}

	return &Market{ProposerUtils: pu, ReviewerUtils: ru}, nil
}

// RandomPreferences samples rows independent uniform permutations of [0, cols).
// Range and correlation options are ignored; only the RNG is used.
func RandomPreferences(rows, cols int, opts ...Option) (*matrix.Index, error) {
	if rows < minAgents || cols < minAgents {
		return nil, builderErrorf(methodRandomPreferences, ErrTooFewAgents)
	}
	cfg := newBuilderConfig(opts...)

	out, err := matrix.NewIndex(rows, cols)
	if err != nil {
		return nil, builderErrorf(methodRandomPreferences, err)
	}
	var i int
	for i = 0; i < rows; i++ {
		for j, v := range cfg.rng.Perm(cols) {
			_ = out.Set(i, j, v)
		}
	}

	return out, nil
}

// sample fills a rows×cols matrix following the canonical model.
func sample(rows, cols int, cfg builderConfig) (*matrix.Dense, error) {
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	var common []float64
	if cfg.correlation > 0 {
		common = make([]float64, cols)
		for j := range common {
			common[j] = cfg.draw()
		}
	}

	w := cfg.correlation
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = cfg.draw()
			if common != nil {
				v = w*common[j] + (1-w)*v
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
