// Package core provides the edge multiset produced by every graphsynth
// generator and consumed, read-only, by the degree aggregator.
//
// A generated graph G = (V,E) is represented as:
//
//   - V = [0, n): vertices are bare integer indices, no payload.
//   - E: an ordered sequence of directed Edge{From, To, Weight}.
//     Self-loops and parallel edges are legal and never removed, since
//     real-world degree distributions include them.
//
// Lifecycle:
//
//	NewEdgeSet(n, M)   // owned by exactly one generation call
//	Append(u, v, w)×M  // O(1) each, endpoints validated
//	Seal()             // generation pass over; Append → ErrSealed
//	Shuffle(rng)       // optional, at most once; order then carries no meaning
//
// Parallel generators fill a pre-sized []Edge instead and hand it over with
// FromEdges(n, edges), which validates every endpoint and returns the set sealed.
//
// Read access after Seal (safe for concurrent readers):
//
//	Len() int                  // M
//	VertexCount() int          // n
//	Edge(i int) Edge           // O(1)
//	Edges() []Edge             // O(M) copy
//	Stats() EdgeSetStats       // O(M+n) snapshot
//
// Memory: O(M) for the edge array; nothing proportional to n² is ever built.
package core
