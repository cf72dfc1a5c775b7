// Package core defines the Edge and EdgeSet types shared by every generator
// and by the degree aggregator.
//
// An EdgeSet is created by exactly one generation pass, sealed, optionally
// shuffled once, and then only read. Vertices carry no payload: a vertex is
// the integer index itself, in [0, VertexCount()).
//
// Errors:
//
//	ErrBadVertexCount    - vertex count below one.
//	ErrVertexOutOfRange  - an endpoint is negative or ≥ VertexCount().
//	ErrSealed            - Append after Seal.
//	ErrNotSealed         - Shuffle before Seal.
//	ErrAlreadyShuffled   - a second Shuffle.
//	ErrNilRand           - Shuffle without a random stream.
package core

import "errors"

// Sentinel errors for edge set operations.
var (
	// ErrBadVertexCount indicates NewEdgeSet received n < 1.
	ErrBadVertexCount = errors.New("core: vertex count must be ≥ 1")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrSealed indicates a mutation of an edge set whose generation pass is over.
	ErrSealed = errors.New("core: edge set is sealed")

	// ErrNotSealed indicates Shuffle was called while edges may still be appended.
	ErrNotSealed = errors.New("core: edge set is not sealed")

	// ErrAlreadyShuffled indicates the one permitted shuffle already happened.
	ErrAlreadyShuffled = errors.New("core: edge set already shuffled")

	// ErrNilRand indicates Shuffle was given a nil *rand.Rand.
	ErrNilRand = errors.New("core: rng is required")
)

// Edge is a directed pair From→To with an optional scalar weight.
//
// Weight does not influence graph shape; generators that have no use for it
// leave it at zero.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is an independent per-edge sample in [0,1) (Kronecker) or 0.
	Weight float64
}

// SelfLoop reports whether the edge starts and ends at the same vertex.
func (e Edge) SelfLoop() bool { return e.From == e.To }

// Reversed returns the edge with its endpoints swapped.
func (e Edge) Reversed() Edge { return Edge{From: e.To, To: e.From, Weight: e.Weight} }

// EdgeSet is an ordered multiset of directed edges over n vertices.
//
// Self-loops and parallel edges are kept; nothing is deduplicated.
// Order reflects generation order until Shuffle, after which it carries no
// meaning. An EdgeSet is not safe for concurrent mutation; after Seal it is
// safe for concurrent reads.
type EdgeSet struct {
	n        int    // vertex count
	edges    []Edge // storage, generation order until shuffled
	sealed   bool   // generation pass finished
	shuffled bool   // the one-time permutation has been applied
}

// EdgeSetStats is a read-only snapshot of an EdgeSet.
type EdgeSetStats struct {
	VertexCount     int  // declared vertex count n
	EdgeCount       int  // number of edges, multiplicities included
	SelfLoops       int  // edges with From == To
	TouchedVertices int  // vertices appearing as an endpoint at least once
	Shuffled        bool // whether the one-time shuffle was applied
}
