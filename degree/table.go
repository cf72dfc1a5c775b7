package degree

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FromRows builds a Table from rows produced elsewhere, such as a decoded
// degree CSV. Rows must ascend strictly by Degree with non-negative fields;
// rows whose counts are both zero are dropped. rows is copied.
//
// Complexity: O(len(rows)).
func FromRows(rows []Row) (Table, error) {
	out := make([]Row, 0, len(rows))
	prev := -1
	for i, r := range rows {
		if r.Degree < 0 || r.InCount < 0 || r.OutCount < 0 {
			return Table{}, fmt.Errorf("FromRows: row %d %+v: %w", i, r, ErrBadRows)
		}
		if r.Degree <= prev {
			return Table{}, fmt.Errorf("FromRows: row %d degree %d after %d: %w", i, r.Degree, prev, ErrBadRows)
		}
		prev = r.Degree
		if r.InCount == 0 && r.OutCount == 0 {
			continue
		}
		out = append(out, r)
	}
	return Table{rows: out}, nil
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.rows) }

// Rows returns a copy of the rows, ascending by Degree.
func (t Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Lookup returns the row for degree k, if present.
// Complexity: O(log Len()).
func (t Table) Lookup(k int) (Row, bool) {
	i := sort.Search(len(t.rows), func(i int) bool { return t.rows[i].Degree >= k })
	if i < len(t.rows) && t.rows[i].Degree == k {
		return t.rows[i], true
	}
	return Row{}, false
}

// Vertices returns the number of vertices the table counts.
func (t Table) Vertices() int {
	total := 0
	for _, r := range t.rows {
		total += r.InCount
	}
	return total
}

// InTotal returns Σ Degree·InCount, the number of edges aggregated.
func (t Table) InTotal() int {
	total := 0
	for _, r := range t.rows {
		total += r.Degree * r.InCount
	}
	return total
}

// OutTotal returns Σ Degree·OutCount; it always equals InTotal.
func (t Table) OutTotal() int {
	total := 0
	for _, r := range t.rows {
		total += r.Degree * r.OutCount
	}
	return total
}

// Summary returns weighted moments of the in- and out-degree distributions.
// Standard deviations are 0 when fewer than two vertices are counted.
func (t Table) Summary() Summary {
	s := Summary{Vertices: t.Vertices()}
	if s.Vertices == 0 {
		return s
	}

	ks := make([]float64, len(t.rows))
	inW := make([]float64, len(t.rows))
	outW := make([]float64, len(t.rows))
	for i, r := range t.rows {
		ks[i] = float64(r.Degree)
		inW[i] = float64(r.InCount)
		outW[i] = float64(r.OutCount)
	}

	s.Edges = int(floats.Dot(ks, inW))
	s.MeanIn, s.StdDevIn = stat.MeanStdDev(ks, inW)
	s.MeanOut, s.StdDevOut = stat.MeanStdDev(ks, outW)
	if s.Vertices < 2 {
		s.StdDevIn, s.StdDevOut = 0, 0
	}
	s.MaxIn = maxSupported(ks, inW)
	s.MaxOut = maxSupported(ks, outW)

	return s
}

// maxSupported returns the largest k whose weight is non-zero.
func maxSupported(ks, w []float64) int {
	for i := len(ks) - 1; i >= 0; i-- {
		if w[i] > 0 {
			return int(ks[i])
		}
	}
	return 0
}
