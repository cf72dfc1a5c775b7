// SPDX-License-Identifier: MIT
// Package: graphsynth/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a generation run by mutating a builderConfig
// before the constructor runs.
type BuilderOption func(*builderConfig)

// WithSeed fixes the coordinator stream seed (0 selects the default seed).
// Use this in tests and the CLI to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand provides an explicit coordinator stream. The stream is advanced
// by the build, so reusing it across builds yields different graphs.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithWorkers bounds the number of concurrently sampled Kronecker chunks.
// Output does not depend on the worker count. Panics if w < 1.
func WithWorkers(w int) BuilderOption {
	if w < 1 {
		panic(fmt.Sprintf("builder: WithWorkers(%d)", w))
	}
	return func(c *builderConfig) {
		c.workers = w
	}
}

// WithInitiator sets the R-MAT quadrant probabilities. The matrix is
// validated by the Kronecker constructors, which return ErrInvalidInitiator.
func WithInitiator(q Initiator) BuilderOption {
	return func(c *builderConfig) {
		c.initiator = q
	}
}

// WithTriadProbability enables Holme–Kim triad formation in PowerLawCluster.
// Panics if p is outside [0,1].
func WithTriadProbability(p float64) BuilderOption {
	if p < MinProbability || p > MaxProbability || p != p {
		panic(fmt.Sprintf("builder: WithTriadProbability(%g)", p))
	}
	return func(c *builderConfig) {
		c.triadP = p
	}
}

// WithWeightFn overrides the Kronecker per-edge weight sampler. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
