// File: parallel.go
// Role: partition + merge variant of Aggregate.
// Each worker counts a contiguous edge range into private arrays; the
// merge sums them. Counts are additive, so the result equals Aggregate.

package degree

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphsynth/core"
)

// minPartition keeps tiny inputs from spawning idle workers.
const minPartition = 1 << 12

// AggregateParallel computes the same Table as Aggregate using up to
// workers goroutines.
//
// Errors: ErrBadWorkers, core.ErrNotSealed.
// Complexity: O(M/workers + n·workers) time, O(n·workers) space.
func AggregateParallel(es *core.EdgeSet, workers int, opts ...Option) (Table, error) {
	if workers < 1 {
		return Table{}, fmt.Errorf("AggregateParallel: workers=%d: %w", workers, ErrBadWorkers)
	}
	if es == nil || es.Len() == 0 {
		return Table{}, nil
	}
	if !es.Sealed() {
		return Table{}, fmt.Errorf("AggregateParallel: %w", core.ErrNotSealed)
	}
	o := resolve(opts)

	m, n := es.Len(), es.VertexCount()
	parts := min(workers, (m+minPartition-1)/minPartition)
	size := (m + parts - 1) / parts

	ins := make([][]int, parts)
	outs := make([][]int, parts)
	var g errgroup.Group
	for p := 0; p < parts; p++ {
		lo := p * size
		hi := min(lo+size, m)
		g.Go(func() error {
			in, out := make([]int, n), make([]int, n)
			countRange(es, lo, hi, in, out)
			ins[p], outs[p] = in, out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Table{}, err
	}

	in, out := ins[0], outs[0]
	for p := 1; p < parts; p++ {
		for v := 0; v < n; v++ {
			in[v] += ins[p][v]
			out[v] += outs[p][v]
		}
	}

	return tabulate(in, out, o.includeIsolated), nil
}
