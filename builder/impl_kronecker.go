// SPDX-License-Identifier: MIT
// Package: graphsynth/builder
//
// impl_kronecker.go - implementation of Kronecker(scale, edgeFactor) and KroneckerN(n, m).
//
// Canonical model (Graph500 R-MAT):
//   - Each edge is sampled independently. For level = L−1 down to 0 one draw
//     decides the row bit against A+B, a second draw decides the column bit
//     against the renormalised A/(A+B) or C/(C+D). A set bit adds 2^level.
//   - A third draw per edge yields its weight via cfg.weightFn.
//   - Comparisons are half-open: bit = 1 iff u ≥ threshold, u ∈ [0,1).
//     A threshold of 0 always sets the bit, a threshold of 1 never does.
//
// Contract:
//   - Kronecker: MinKroneckerScale ≤ scale ≤ MaxKroneckerScale, edgeFactor ≥ 1,
//     valid initiator. Returns exactly 2^scale·edgeFactor edges in [0, 2^scale).
//   - KroneckerN: n ≥ 2, m ≥ 1, valid initiator. Returns exactly m edges in [0, n).
//   - Self-loops and parallel edges are kept.
//   - All validation happens before any sampling.
//
// Concurrency:
//   - Edges are split into chunks of kroneckerChunk; chunk k samples with its own
//     stream chunkRNG(parent, k). parent is drawn once from the coordinator stream.
//   - Chunks run on an errgroup bounded by cfg.workers; each writes a disjoint
//     range of the shared edge slice.
//   - After Wait the coordinator seals the set and applies the single shuffle.
//
// Determinism:
//   - Chunk boundaries do not depend on cfg.workers, so output is identical
//     for a fixed seed regardless of parallelism.

package builder

import (
	"fmt"
	"math/bits"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphsynth/core"
)

const (
	// kroneckerChunk is the number of edges sampled per derived stream.
	kroneckerChunk = 1 << 14
	// maxRedraws bounds KroneckerN rejection per edge.
	maxRedraws = 1 << 12
)

// Kronecker returns a Constructor sampling an R-MAT graph over 2^scale
// vertices with 2^scale·edgeFactor edges.
func Kronecker(scale, edgeFactor int) Constructor {
	return func(cfg builderConfig) (*core.EdgeSet, error) {
		// 1) Sizes first, then the initiator.
		if err := validateScale(MethodKronecker, scale); err != nil {
			return nil, err
		}
		if err := validateMin(MethodKronecker, "edgeFactor", edgeFactor, MinEdgeFactor, ErrBadEdgeFactor); err != nil {
			return nil, err
		}
		n := 1 << uint(scale)
		m, err := validateEdgeCount(MethodKronecker, n, edgeFactor)
		if err != nil {
			return nil, err
		}
		if err = cfg.initiator.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodKronecker, err)
		}

		// 2) Sample, seal, shuffle.
		return sampleRMAT(cfg, MethodKronecker, n, scale, m)
	}
}

// KroneckerN returns a Constructor sampling exactly m R-MAT edges over an
// arbitrary vertex count n.
func KroneckerN(n, m int) Constructor {
	return func(cfg builderConfig) (*core.EdgeSet, error) {
		if err := validateMin(MethodKroneckerN, "n", n, MinKroneckerNVertices, ErrTooFewVertices); err != nil {
			return nil, err
		}
		if err := validateMin(MethodKroneckerN, "m", m, MinEdgeFactor, ErrBadEdgeFactor); err != nil {
			return nil, err
		}
		if err := cfg.initiator.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodKroneckerN, err)
		}

		levels := bits.Len(uint(n - 1)) // smallest L with 2^L ≥ n
		return sampleRMAT(cfg, MethodKroneckerN, n, levels, m)
	}
}

// sampleRMAT draws m edges over n vertices using levels recursion levels,
// then seals and shuffles. Edges outside [0,n) are redrawn from the same
// stream; when n = 2^levels no redraw ever happens.
func sampleRMAT(cfg builderConfig, method string, n, levels, m int) (*core.EdgeSet, error) {
	th := cfg.initiator.thresholds()
	weightFn := cfg.weightFn
	coord := cfg.stream()
	parent := coord.Int63() // one draw; every chunk stream derives from it

	edges := make([]core.Edge, m)
	chunks := (m + kroneckerChunk - 1) / kroneckerChunk

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for k := 0; k < chunks; k++ {
		lo := k * kroneckerChunk
		hi := min(lo+kroneckerChunk, m)
		g.Go(func() error {
			rng := chunkRNG(parent, k)
			for i := lo; i < hi; i++ {
				e, ok := drawEdge(rng, th, levels, n)
				if !ok {
					return fmt.Errorf("%s: edge %d: no in-range sample after %d draws: %w",
						method, i, maxRedraws, ErrConstructFailed)
				}
				e.Weight = weightFn(rng)
				edges[i] = e
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	es, err := core.FromEdges(n, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if err = es.Shuffle(coord); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return es, nil
}

// drawEdge runs the recursive quadrant descent once, redrawing while the
// result falls outside [0,n). It reports false after maxRedraws attempts.
//
// Complexity: O(levels) per attempt.
func drawEdge(rng *rand.Rand, th thresholds, levels, n int) (core.Edge, bool) {
	var row, col, level, attempt int
	for attempt = 0; attempt < maxRedraws; attempt++ {
		row, col = 0, 0
		for level = levels - 1; level >= 0; level-- {
			if rng.Float64() >= th.top {
				// bottom half: C | D
				row |= 1 << uint(level)
				if rng.Float64() >= th.cNorm {
					col |= 1 << uint(level)
				}
			} else if rng.Float64() >= th.aNorm {
				// top half, right: B
				col |= 1 << uint(level)
			}
		}
		if row < n && col < n {
			return core.Edge{From: row, To: col}, true
		}
	}

	return core.Edge{}, false
}
