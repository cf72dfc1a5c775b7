// Package metrics records what a generation run produced as Prometheus
// metrics and writes them in the node-exporter textfile format, so batch
// runs can be scraped after they exit.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/graphsynth/core"
	"github.com/katalvlaran/graphsynth/degree"
)

// Recorder owns a private registry; nothing is registered globally.
type Recorder struct {
	reg *prometheus.Registry

	edges          *prometheus.CounterVec
	vertices       *prometheus.GaugeVec
	selfLoops      *prometheus.GaugeVec
	generation     *prometheus.HistogramVec
	degreeRows     prometheus.Gauge
	maxDegree      *prometheus.GaugeVec
	aggregationDur prometheus.Histogram
}

// NewRecorder creates a Recorder with every collector registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		edges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphsynth_edges_generated_total",
				Help: "Total number of edges generated.",
			},
			[]string{"model"},
		),
		vertices: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "graphsynth_vertices",
				Help: "Vertex count of the last generated graph.",
			},
			[]string{"model"},
		),
		selfLoops: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "graphsynth_self_loops",
				Help: "Self-loops in the last generated graph.",
			},
			[]string{"model"},
		),
		generation: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "graphsynth_generation_seconds",
				Help:    "Duration of generator runs.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"model"},
		),
		degreeRows: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "graphsynth_degree_rows",
				Help: "Rows in the last degree distribution.",
			},
		),
		maxDegree: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "graphsynth_max_degree",
				Help: "Largest in- or out-degree in the last degree distribution.",
			},
			[]string{"direction"},
		),
		aggregationDur: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "graphsynth_aggregation_seconds",
				Help:    "Duration of degree aggregation.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	r.reg.MustRegister(r.edges, r.vertices, r.selfLoops, r.generation,
		r.degreeRows, r.maxDegree, r.aggregationDur)

	return r
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveGeneration records one finished generator run.
func (r *Recorder) ObserveGeneration(model string, es *core.EdgeSet, took time.Duration) {
	st := es.Stats()
	r.edges.WithLabelValues(model).Add(float64(st.EdgeCount))
	r.vertices.WithLabelValues(model).Set(float64(st.VertexCount))
	r.selfLoops.WithLabelValues(model).Set(float64(st.SelfLoops))
	r.generation.WithLabelValues(model).Observe(took.Seconds())
}

// ObserveAggregation records one finished degree aggregation.
func (r *Recorder) ObserveAggregation(t degree.Table, took time.Duration) {
	s := t.Summary()
	r.degreeRows.Set(float64(t.Len()))
	r.maxDegree.WithLabelValues("in").Set(float64(s.MaxIn))
	r.maxDegree.WithLabelValues("out").Set(float64(s.MaxOut))
	r.aggregationDur.Observe(took.Seconds())
}

// WriteTextfile writes every metric to path. The write goes through a
// temporary file and a rename, as the textfile collector requires.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
