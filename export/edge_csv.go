package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/katalvlaran/graphsynth/core"
)

// EdgeHeader is the fixed header of the edge list CSV.
var EdgeHeader = []string{"Source", "Destination", "Weight"}

// EncodeEdgeCSV writes every edge of es in its current order.
// Weights use the shortest representation that round-trips.
func EncodeEdgeCSV(w io.Writer, es *core.EdgeSet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(EdgeHeader); err != nil {
		return err
	}
	record := make([]string, 3)
	var e core.Edge
	for i := 0; i < edgeCount(es); i++ {
		e = es.Edge(i)
		record[0] = strconv.Itoa(e.From)
		record[1] = strconv.Itoa(e.To)
		record[2] = strconv.FormatFloat(e.Weight, 'g', -1, 64)
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteEdgeCSV atomically writes the edge list of es to path.
func WriteEdgeCSV(path string, es *core.EdgeSet) error {
	return writeAtomic(path, func(w io.Writer) error {
		return EncodeEdgeCSV(w, es)
	})
}

// edgeCount treats a nil edge set as empty.
func edgeCount(es *core.EdgeSet) int {
	if es == nil {
		return 0
	}
	return es.Len()
}
