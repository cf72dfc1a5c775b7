// Package graphsynth synthesizes large directed graphs with realistic,
// heavy-tailed degree distributions, for use as surrogate datasets such as
// simulated transaction networks.
//
// 🚀 What is in the box?
//
//		• Kronecker / R-MAT edge sampler: Graph500 initiator, parallel chunks,
//		  identical output for any worker count
//		• Power-law cluster generator: Barabási–Albert growth with optional
//		  Holme–Kim triads, alternating edge orientation
//		• Degree-distribution aggregator: in/out counts per degree value,
//		  sequential or partition+merge
//		• Flat exports: degree CSV, edge CSV, edge Parquet, Prometheus textfile
//
// Everything is organized under these packages:
//
//	core/     Edge and EdgeSet: one generation pass, seal, one shuffle
//	builder/  generators, functional options, initiator matrix, seeded streams
//	degree/   degree distribution tables and their summary statistics
//	export/   atomic CSV and Parquet writers
//	config/   YAML run files
//	metrics/  Prometheus recorder
//	cmd/     the generate command
//
// Quick example:
//
//	es, _ := builder.Build(builder.PowerLawCluster(10_000, 3), builder.WithSeed(1))
//	tbl, _ := degree.Aggregate(es)
//	_ = export.WriteDegreeCSV("degrees.csv", tbl)
//
//	go install github.com/katalvlaran/graphsynth/cmd/generate@latest
package graphsynth
