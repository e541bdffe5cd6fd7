// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng         = seeded with defaultSeed
//   • lo, hi      = 0.0, 1.0
//   • correlation = 0.0 (purely idiosyncratic utilities)

package builder

import "math/rand"

const (
	defaultSeed        int64 = 1
	defaultLow               = 0.0
	defaultHigh              = 1.0
	defaultCorrelation       = 0.0
)

// builderConfig aggregates all knobs used by generators.
type builderConfig struct {
	rng         *rand.Rand
	lo, hi      float64 // utilities are drawn from [lo, hi)
	correlation float64 // weight of the column-wide common value, in [0,1]
}

// newBuilderConfig resolves defaults, then applies opts in order.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		lo:          defaultLow,
		hi:          defaultHigh,
		correlation: defaultCorrelation,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// draw samples one value from [lo, hi).
func (c builderConfig) draw() float64 {
	return c.lo + (c.hi-c.lo)*c.rng.Float64()
}
