// Package degree reduces a directed edge set to its degree distribution:
// for every degree value k, how many vertices have in-degree k and how many
// have out-degree k.
//
// Errors:
//
//	ErrBadWorkers - AggregateParallel called with workers < 1.
//	ErrBadRows    - FromRows given unsorted, duplicate or negative rows.
//
// Aggregation of an unsealed edge set fails with core.ErrNotSealed.
package degree

import "errors"

// ErrBadWorkers indicates a non-positive worker count.
var ErrBadWorkers = errors.New("degree: workers must be ≥ 1")

// ErrBadRows indicates rows that violate the Table ordering invariant.
var ErrBadRows = errors.New("degree: rows must be unique, ascending and non-negative")

// Row is one line of the distribution: InCount vertices have in-degree
// Degree and OutCount vertices have out-degree Degree.
type Row struct {
	Degree   int
	InCount  int
	OutCount int
}

// Table is an immutable degree distribution, rows ascending by Degree with
// no duplicates. The zero Table is empty and ready to use.
type Table struct {
	rows []Row
}

// Summary describes a Table with weighted moments of both distributions.
type Summary struct {
	Vertices  int     // vertices counted by the aggregation
	Edges     int     // Σ Degree·InCount, equal to Σ Degree·OutCount
	MeanIn    float64 // mean in-degree
	StdDevIn  float64 // sample standard deviation of in-degree
	MeanOut   float64 // mean out-degree
	StdDevOut float64 // sample standard deviation of out-degree
	MaxIn     int     // largest in-degree with a non-zero count
	MaxOut    int     // largest out-degree with a non-zero count
}

// Option customizes an aggregation.
type Option func(*options)

type options struct {
	includeIsolated bool
}

// IncludeIsolated also counts vertices that touch no edge, at degree 0.
// By default only vertices appearing in at least one edge are counted.
func IncludeIsolated() Option {
	return func(o *options) { o.includeIsolated = true }
}

func resolve(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
