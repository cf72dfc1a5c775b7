// File: methods_edges.go
// Role: EdgeSet lifecycle: NewEdgeSet/Append/Seal/Shuffle and read accessors.
// Determinism:
//   - Edges() and Edge(i) follow generation order until Shuffle.
//   - Shuffle consumes exactly len-1 draws from the given stream (Fisher–Yates).
// Concurrency:
//   - No locks. One goroutine builds and seals; readers start after Seal.

package core

import (
	"fmt"
	"math/rand"
)

// NewEdgeSet returns an empty edge set over n vertices with room for
// capacity edges. Generators know M up front, so capacity is normally exact.
//
// Complexity: O(capacity) allocation.
func NewEdgeSet(n, capacity int) (*EdgeSet, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewEdgeSet: n=%d: %w", n, ErrBadVertexCount)
	}
	if capacity < 0 {
		capacity = 0
	}

	return &EdgeSet{n: n, edges: make([]Edge, 0, capacity)}, nil
}

// FromEdges validates every endpoint against [0,n) and returns a sealed set
// that takes ownership of edges. Callers must not modify edges afterwards.
//
// Complexity: O(M) validation, no copy.
func FromEdges(n int, edges []Edge) (*EdgeSet, error) {
	if n < 1 {
		return nil, fmt.Errorf("FromEdges: n=%d: %w", n, ErrBadVertexCount)
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("FromEdges: edge %d (%d→%d): n=%d: %w",
				i, e.From, e.To, n, ErrVertexOutOfRange)
		}
	}
	if edges == nil {
		edges = []Edge{}
	}

	return &EdgeSet{n: n, edges: edges, sealed: true}, nil
}

// Append adds a directed edge from→to with the given weight.
//
// Errors: ErrSealed after Seal, ErrVertexOutOfRange for endpoints outside [0,n).
// Complexity: O(1) amortized.
func (s *EdgeSet) Append(from, to int, weight float64) error {
	if s.sealed {
		return ErrSealed
	}
	if from < 0 || from >= s.n || to < 0 || to >= s.n {
		return fmt.Errorf("Append(%d→%d): n=%d: %w", from, to, s.n, ErrVertexOutOfRange)
	}
	s.edges = append(s.edges, Edge{From: from, To: to, Weight: weight})

	return nil
}

// Seal ends the generation pass. Sealing twice is a no-op.
func (s *EdgeSet) Seal() { s.sealed = true }

// Sealed reports whether the generation pass is over.
func (s *EdgeSet) Sealed() bool { return s.sealed }

// Shuffle applies the one-time uniform permutation of edge order.
// Set membership is unchanged; only positions move.
//
// Errors: ErrNilRand, ErrNotSealed, ErrAlreadyShuffled.
// Complexity: O(M) time, O(1) extra space.
func (s *EdgeSet) Shuffle(rng *rand.Rand) error {
	if rng == nil {
		return ErrNilRand
	}
	if !s.sealed {
		return ErrNotSealed
	}
	if s.shuffled {
		return ErrAlreadyShuffled
	}

	var i, j int
	for i = len(s.edges) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		s.edges[i], s.edges[j] = s.edges[j], s.edges[i]
	}
	s.shuffled = true

	return nil
}

// Shuffled reports whether Shuffle has been applied.
func (s *EdgeSet) Shuffled() bool { return s.shuffled }

// Len returns the number of edges M.
func (s *EdgeSet) Len() int { return len(s.edges) }

// VertexCount returns n; every endpoint lies in [0, n).
func (s *EdgeSet) VertexCount() int { return s.n }

// Edge returns the i-th edge. It panics if i is out of range, like a slice index.
func (s *EdgeSet) Edge(i int) Edge { return s.edges[i] }

// Edges returns a copy of all edges in current order.
// Complexity: O(M).
func (s *EdgeSet) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)

	return out
}

// Equal reports whether both sets have the same vertex count and the same
// edges in the same order.
func (s *EdgeSet) Equal(o *EdgeSet) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.n != o.n || len(s.edges) != len(o.edges) {
		return false
	}
	for i := range s.edges {
		if s.edges[i] != o.edges[i] {
			return false
		}
	}

	return true
}
