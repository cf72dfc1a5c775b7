// File: aggregate.go
// Role: per-vertex counting and the union-then-sort tabulation.
// Policy:
//   - Multiplicities count: parallel edges add up, a self-loop adds one
//     to both the in- and out-degree of its vertex.
//   - An empty (or nil) edge set yields an empty Table, even with IncludeIsolated.
//   - Rows cover the union of observed in- and out-degree values; a value
//     seen on one side only has count 0 on the other.

package degree

import (
	"fmt"

	"github.com/katalvlaran/graphsynth/core"
)

// Aggregate computes the degree distribution of es sequentially.
//
// Complexity: O(M + n + maxDegree) time, O(n + maxDegree) space.
func Aggregate(es *core.EdgeSet, opts ...Option) (Table, error) {
	if es == nil || es.Len() == 0 {
		return Table{}, nil
	}
	if !es.Sealed() {
		return Table{}, fmt.Errorf("Aggregate: %w", core.ErrNotSealed)
	}
	o := resolve(opts)

	in := make([]int, es.VertexCount())
	out := make([]int, es.VertexCount())
	countRange(es, 0, es.Len(), in, out)

	return tabulate(in, out, o.includeIsolated), nil
}

// countRange adds the degrees contributed by edges [lo, hi) into in and out.
func countRange(es *core.EdgeSet, lo, hi int, in, out []int) {
	var e core.Edge
	for i := lo; i < hi; i++ {
		e = es.Edge(i)
		out[e.From]++
		in[e.To]++
	}
}

// tabulate groups per-vertex degrees into sorted rows.
func tabulate(in, out []int, includeIsolated bool) Table {
	maxDeg := 0
	for v := range in {
		maxDeg = max(maxDeg, in[v], out[v])
	}

	inHist := make([]int, maxDeg+1)
	outHist := make([]int, maxDeg+1)
	for v := range in {
		if !includeIsolated && in[v] == 0 && out[v] == 0 {
			continue
		}
		inHist[in[v]]++
		outHist[out[v]]++
	}

	rows := make([]Row, 0, 64)
	for k := 0; k <= maxDeg; k++ {
		if inHist[k] == 0 && outHist[k] == 0 {
			continue
		}
		rows = append(rows, Row{Degree: k, InCount: inHist[k], OutCount: outHist[k]})
	}

	return Table{rows: rows}
}
