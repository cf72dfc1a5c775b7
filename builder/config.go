// SPDX-License-Identifier: MIT
// Package: graphsynth/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • seed      = 0 (→ defaultRNGSeed)
//   • rng       = nil (a fresh stream is built from seed per Build call)
//   • workers   = runtime.GOMAXPROCS(0)
//   • initiator = DefaultInitiator
//   • triadP    = 0 (pure Barabási–Albert)
//   • weightFn  = UnitUniformWeightFn

package builder

import (
	"math/rand"
	"runtime"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Seed for the run's coordinator stream; ignored when rng is set.
	seed int64
	// Explicit coordinator stream; nil means "derive from seed".
	rng *rand.Rand
	// Upper bound on concurrently sampled Kronecker chunks.
	workers int
	// R-MAT quadrant probabilities.
	initiator Initiator
	// Holme–Kim triad formation probability for PowerLawCluster.
	triadP float64
	// Per-edge weight sampler for Kronecker edges.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		seed:      0,
		rng:       nil,
		workers:   runtime.GOMAXPROCS(0),
		initiator: DefaultInitiator,
		triadP:    0,
		weightFn:  UnitUniformWeightFn,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	return cfg
}

// stream returns the coordinator RNG for one Build call.
// Each call without WithRand gets a fresh stream, so repeated builds with
// the same seed are identical.
func (c builderConfig) stream() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}
	return rngFromSeed(c.seed)
}
