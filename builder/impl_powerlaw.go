// SPDX-License-Identifier: MIT
// Package: graphsynth/builder
//
// impl_powerlaw.go - implementation of PowerLawCluster(n, m).
//
// Canonical model (Barabási–Albert growth, optional Holme–Kim triads):
//   - Vertices 0..m−1 start isolated. Vertex m attaches to all of them.
//   - Every later vertex v attaches to m distinct older vertices drawn
//     uniformly from the repeated-endpoint list, i.e. proportionally to degree.
//   - With cfg.triadP > 0, after the first preferential target each further
//     target is, with probability triadP, a random unchosen neighbour of the
//     previous target (falling back to preferential choice when none exists).
//
// Enumeration order (fixed, documented):
//   - Undirected edge i is (target, v): listed in the order v was attached,
//     targets ascending within one v. Target < v always, so no self-loops.
//
// Orientation:
//   - OrientAlternating keeps edge i as target→v for even i and flips it
//     to v→target for odd i, spreading hub degree across in and out.
//
// Contract:
//   - n ≥ MinPowerLawVertices, MinAttachment ≤ m < n, else ConfigError.
//   - Returns m·(n−m) edges with weight 0, all endpoints in [0,n).
//   - Sequential by nature; one stream from cfg.stream().

package builder

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/graphsynth/core"
)

// PowerLawCluster returns a Constructor growing a preferential-attachment
// graph on n vertices with m edges per new vertex.
func PowerLawCluster(n, m int) Constructor {
	return func(cfg builderConfig) (*core.EdgeSet, error) {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if err := validateMin(MethodPowerLawCluster, "n", n, MinPowerLawVertices, ErrTooFewVertices); err != nil {
			return nil, err
		}
		if err := validateAttachment(MethodPowerLawCluster, n, m); err != nil {
			return nil, err
		}
		if err := validateProbability(MethodPowerLawCluster, "triad probability", cfg.triadP); err != nil {
			return nil, err
		}

		// 2) Grow the undirected graph, then orient by parity.
		pairs := attachPreferential(cfg.stream(), n, m, cfg.triadP)
		es, err := core.FromEdges(n, OrientAlternating(pairs))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodPowerLawCluster, err)
		}

		return es, nil
	}
}

// attachPreferential returns the undirected edges (target, v) in
// enumeration order. Callers have validated 1 ≤ m < n.
//
// Complexity: O(n·m) expected draws; O(n·m) space for the endpoint list.
func attachPreferential(rng *rand.Rand, n, m int, triadP float64) []core.Edge {
	total := m * (n - m)
	pairs := make([]core.Edge, 0, total)
	repeated := make([]int, 0, 2*total) // every endpoint once per incident edge

	var adj [][]int // neighbour lists, only needed for triads
	if triadP > 0 {
		adj = make([][]int, n)
	}

	targets := make([]int, m)
	for i := range targets {
		targets[i] = i
	}

	var v, t, k int
	for v = m; v < n; v++ {
		for _, t = range targets {
			pairs = append(pairs, core.Edge{From: t, To: v})
			if adj != nil {
				adj[t] = append(adj[t], v)
				adj[v] = append(adj[v], t)
			}
		}
		repeated = append(repeated, targets...)
		for k = 0; k < m; k++ {
			repeated = append(repeated, v)
		}
		if v+1 < n {
			targets = pickTargets(rng, repeated, adj, m, triadP, targets[:0])
			sort.Ints(targets)
		}
	}

	return pairs
}

// pickTargets draws m distinct vertices from repeated (degree-proportional),
// optionally closing triads through adj. repeated always holds more than m
// distinct vertices, so the loop terminates.
func pickTargets(rng *rand.Rand, repeated []int, adj [][]int, m int, triadP float64, out []int) []int {
	seen := make(map[int]struct{}, m)
	last := -1
	var t int
	var ok bool
	for len(out) < m {
		ok = false
		if last >= 0 && triadP > 0 && rng.Float64() < triadP {
			t, ok = triadCandidate(rng, adj[last], seen)
		}
		if !ok {
			t = repeated[rng.Intn(len(repeated))]
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
		last = t
	}

	return out
}

// triadCandidate picks a uniformly random neighbour not yet in seen.
// Complexity: O(len(neigh)).
func triadCandidate(rng *rand.Rand, neigh []int, seen map[int]struct{}) (int, bool) {
	free := make([]int, 0, len(neigh))
	for _, u := range neigh {
		if _, dup := seen[u]; !dup {
			free = append(free, u)
		}
	}
	if len(free) == 0 {
		return 0, false
	}

	return free[rng.Intn(len(free))], true
}

// OrientAlternating orients an undirected enumeration: edge i keeps its
// From→To orientation when i is even and is reversed when i is odd.
// The input is not modified.
//
// Complexity: O(len(pairs)).
func OrientAlternating(pairs []core.Edge) []core.Edge {
	out := make([]core.Edge, len(pairs))
	for i, e := range pairs {
		if i%2 == 0 {
			out[i] = e
		} else {
			out[i] = e.Reversed()
		}
	}

	return out
}
