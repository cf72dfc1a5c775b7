package core

// Stats produces a read-only snapshot of sizes and loop counts.
//
// Implementation:
//   - One pass over the edges; a bitmap of length n marks touched vertices.
//
// Complexity:
//   - Time O(M+n), Space O(n).
func (s *EdgeSet) Stats() EdgeSetStats {
	stats := EdgeSetStats{
		VertexCount: s.n,
		EdgeCount:   len(s.edges),
		Shuffled:    s.shuffled,
	}

	seen := make([]bool, s.n)
	var e Edge
	for _, e = range s.edges {
		if e.From == e.To {
			stats.SelfLoops++
		}
		if !seen[e.From] {
			seen[e.From] = true
			stats.TouchedVertices++
		}
		if !seen[e.To] {
			seen[e.To] = true
			stats.TouchedVertices++
		}
	}

	return stats
}
