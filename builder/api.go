// SPDX-License-Identifier: MIT
// Package: graphsynth/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(con, opts...). Resolves cfg, runs con once.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same constructor/options/seed ⇒ identical edge sets, for any worker count.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsynth/core"
)

// Constructor produces one sealed edge set from the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before any sampling and return ConfigError on failure.
//   - Own every RNG stream they use (derived from cfg, never global).
//   - Return a sealed *core.EdgeSet.
type Constructor func(cfg builderConfig) (*core.EdgeSet, error)

// Build resolves the builder configuration from opts and runs con.
// Constructor errors are wrapped with "Build: %w"; callers branch with
// errors.Is against the builder sentinels (ErrConfiguration, ErrAttachmentRange, ...).
//
// Complexity: O(len(opts)) + cost of con.
func Build(con Constructor, opts ...BuilderOption) (*core.EdgeSet, error) {
	if con == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	es, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return es, nil
}

// =============================================================================
// Generator factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Kronecker samples an R-MAT graph with N = 2^scale vertices and
// M = N·edgeFactor edges, then shuffles edge order once.
// Complexity: O(M·scale) time, O(M) space; parallel over fixed-size chunks.
//func Kronecker(scale, edgeFactor int) Constructor
//
// KroneckerN samples exactly m R-MAT edges over an arbitrary n ≥ 2 vertices
// by redrawing edges that fall outside [0,n) at scale ⌈log2 n⌉.
// Complexity: expected O(m·log n) time, O(m) space.
//func KroneckerN(n, m int) Constructor
//
// PowerLawCluster grows a preferential-attachment graph on n vertices with m
// edges per new vertex and orients edge i forward iff i is even.
// Complexity: O(n·m) expected time (O(n·m·d) with triad formation), O(n·m) space.
//func PowerLawCluster(n, m int) Constructor
