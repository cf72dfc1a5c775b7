package export

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"github.com/katalvlaran/graphsynth/core"
)

// DefaultRowGroupRows bounds the rows buffered per Parquet row group.
const DefaultRowGroupRows = 1 << 20

// parquetBatch is the number of rows handed to the writer per call.
const parquetBatch = 1 << 14

// EdgeRow is the Parquet schema of one edge.
type EdgeRow struct {
	Source      int64   `parquet:"source"`
	Destination int64   `parquet:"destination"`
	Weight      float64 `parquet:"weight"`
}

// WriteEdgeParquet atomically writes the edge list of es to path as a
// Parquet file with columns source, destination and weight.
func WriteEdgeParquet(path string, es *core.EdgeSet) error {
	return writeAtomic(path, func(w io.Writer) error {
		pw := parquet.NewGenericWriter[EdgeRow](w, parquet.MaxRowsPerRowGroup(DefaultRowGroupRows))

		batch := make([]EdgeRow, 0, parquetBatch)
		var e core.Edge
		for i := 0; i < edgeCount(es); i++ {
			e = es.Edge(i)
			batch = append(batch, EdgeRow{Source: int64(e.From), Destination: int64(e.To), Weight: e.Weight})
			if len(batch) == cap(batch) {
				if _, err := pw.Write(batch); err != nil {
					return err
				}
				batch = batch[:0]
			}
		}
		if len(batch) > 0 {
			if _, err := pw.Write(batch); err != nil {
				return err
			}
		}

		return pw.Close()
	})
}

// ReadEdgeParquet loads an edge list written by WriteEdgeParquet, in file order.
func ReadEdgeParquet(path string) ([]core.Edge, error) {
	rows, err := parquet.ReadFile[EdgeRow](path)
	if err != nil {
		return nil, fmt.Errorf("ReadEdgeParquet: %s: %w", path, err)
	}

	edges := make([]core.Edge, len(rows))
	for i, r := range rows {
		edges[i] = core.Edge{From: int(r.Source), To: int(r.Destination), Weight: r.Weight}
	}
	return edges, nil
}
