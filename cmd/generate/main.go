// Command generate synthesizes a directed graph and writes its degree
// distribution as CSV.
//
//	generate [flags] <N> <edgeFactor> <outputDegreeCSV>
//
// The default model is powerlaw: N vertices, edgeFactor edges per new vertex.
// With -model kronecker the first argument is the scale (N = 2^scale); with
// -model kronecker-n it is the vertex count and N·edgeFactor edges are drawn.
// A -config YAML file may replace the positional arguments; flags and
// arguments override values from the file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/graphsynth/builder"
	"github.com/katalvlaran/graphsynth/config"
	"github.com/katalvlaran/graphsynth/degree"
	"github.com/katalvlaran/graphsynth/export"
	"github.com/katalvlaran/graphsynth/metrics"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// flags holds the raw command line values; only the ones the user set are
// applied on top of the run file.
type flags struct {
	configPath      string
	model           string
	seed            int64
	workers         int
	triad           float64
	a, b, c, d      float64
	edges           string
	edgesParquet    string
	metrics         string
	includeIsolated bool
	logLevel        string
	logFormat       string
}

func newFlagSet(f *flags, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: generate [flags] <N> <edgeFactor> <outputDegreeCSV>")
		fs.PrintDefaults()
	}

	def := builder.DefaultInitiator
	fs.StringVar(&f.configPath, "config", "", "YAML run file")
	fs.StringVar(&f.model, "model", string(config.ModelPowerLaw), "generator: powerlaw, kronecker or kronecker-n")
	fs.Int64Var(&f.seed, "seed", 0, "random seed (0 selects the default seed)")
	fs.IntVar(&f.workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
	fs.Float64Var(&f.triad, "triad", 0, "triad formation probability (powerlaw)")
	fs.Float64Var(&f.a, "a", def.A, "initiator top-left probability")
	fs.Float64Var(&f.b, "b", def.B, "initiator top-right probability")
	fs.Float64Var(&f.c, "c", def.C, "initiator bottom-left probability")
	fs.Float64Var(&f.d, "d", def.D, "initiator bottom-right probability (derived as 1-a-b-c when unset)")
	fs.StringVar(&f.edges, "edges", "", "also write the edge list as CSV to this path")
	fs.StringVar(&f.edgesParquet, "edges-parquet", "", "also write the edge list as Parquet to this path")
	fs.StringVar(&f.metrics, "metrics", "", "write Prometheus metrics in textfile format to this path")
	fs.BoolVar(&f.includeIsolated, "include-isolated", false, "count vertices without edges at degree 0")
	fs.StringVar(&f.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", "text", "text or json")

	return fs
}

func run(args []string, stderr io.Writer) int {
	var f flags
	fs := newFlagSet(&f, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	logger, err := newLogger(stderr, f.logLevel, f.logFormat)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return 1
	}

	pos := fs.Args()
	if len(pos) != 3 && !(f.configPath != "" && len(pos) == 0) {
		fs.Usage()
		return 1
	}

	r, err := resolveRun(fs, &f, pos)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return 1
	}
	if err = generate(logger, r); err != nil {
		logger.Error("generation failed", "err", err)
		return 1
	}

	return 0
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("bad -log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("bad -log-format %q: want text or json", format)
}

// resolveRun layers the run file, the positional arguments and the flags
// the user set, then applies defaults and validates.
func resolveRun(fs *flag.FlagSet, f *flags, pos []string) (config.Run, error) {
	var r config.Run
	if f.configPath != "" {
		var err error
		if r, err = config.Load(f.configPath); err != nil {
			return config.Run{}, err
		}
	}

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if set["model"] || r.Model == "" {
		r.Model = config.Model(f.model)
	}
	if len(pos) == 3 {
		size, err := atoiArg("N", pos[0])
		if err != nil {
			return config.Run{}, err
		}
		if r.Model == config.ModelKronecker {
			r.Scale = size
		} else {
			r.Vertices = size
		}
		if r.EdgeFactor, err = atoiArg("edgeFactor", pos[1]); err != nil {
			return config.Run{}, err
		}
		r.Output.Degrees = pos[2]
	}

	if set["seed"] {
		r.Seed = f.seed
	}
	if set["workers"] {
		r.Workers = f.workers
	}
	if set["triad"] {
		r.Triad = f.triad
	}
	if set["a"] || set["b"] || set["c"] || set["d"] {
		q := builder.DefaultInitiator
		if r.Initiator != nil {
			q = *r.Initiator
		}
		if set["a"] {
			q.A = f.a
		}
		if set["b"] {
			q.B = f.b
		}
		if set["c"] {
			q.C = f.c
		}
		if set["d"] {
			q.D = f.d
		} else {
			q.D = 1 - q.A - q.B - q.C
		}
		r.Initiator = &q
	}
	if set["edges"] {
		r.Output.Edges = f.edges
	}
	if set["edges-parquet"] {
		r.Output.EdgesParquet = f.edgesParquet
	}
	if set["metrics"] {
		r.Output.Metrics = f.metrics
	}
	if set["include-isolated"] {
		r.IncludeIsolated = f.includeIsolated
	}

	r = r.WithDefaults()
	if err := r.Validate(); err != nil {
		return config.Run{}, err
	}
	return r, nil
}

func atoiArg(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &builder.ConfigError{Method: "generate", Msg: fmt.Sprintf("%s=%q is not an integer", name, s), Err: err}
	}
	return v, nil
}

// generate runs the generator, aggregates and writes every requested output.
func generate(logger *slog.Logger, r config.Run) error {
	model := string(r.Model)
	logger = logger.With("model", model, "seed", r.Seed)

	if r.Model != config.ModelPowerLaw {
		q := builder.DefaultInitiator
		if r.Initiator != nil {
			q = *r.Initiator
		}
		if deg := q.Degenerate(builder.DegenerateMass); len(deg) > 0 {
			logger.Warn("initiator has near-zero quadrants; bit outcomes become near-deterministic",
				"quadrants", fmt.Sprint(deg))
		}
	}

	con, err := r.Constructor()
	if err != nil {
		return err
	}

	rec := metrics.NewRecorder()

	start := time.Now()
	es, err := builder.Build(con, r.BuilderOptions()...)
	if err != nil {
		return err
	}
	took := time.Since(start)
	rec.ObserveGeneration(model, es, took)
	st := es.Stats()
	logger.Info("generated graph",
		"vertices", st.VertexCount, "edges", st.EdgeCount,
		"self_loops", st.SelfLoops, "workers", r.Workers, "took", took)

	start = time.Now()
	tbl, err := degree.AggregateParallel(es, r.Workers, r.DegreeOptions()...)
	if err != nil {
		return err
	}
	took = time.Since(start)
	rec.ObserveAggregation(tbl, took)
	sum := tbl.Summary()
	logger.Info("aggregated degrees",
		"rows", tbl.Len(), "vertices", sum.Vertices,
		"max_in", sum.MaxIn, "max_out", sum.MaxOut,
		"mean_degree", sum.MeanIn, "took", took)

	if err = export.WriteDegreeCSV(r.Output.Degrees, tbl); err != nil {
		return err
	}
	logger.Info("wrote degree distribution", "path", r.Output.Degrees)

	if r.Output.Edges != "" {
		if err = export.WriteEdgeCSV(r.Output.Edges, es); err != nil {
			return err
		}
		logger.Info("wrote edge list", "path", r.Output.Edges)
	}
	if r.Output.EdgesParquet != "" {
		if err = export.WriteEdgeParquet(r.Output.EdgesParquet, es); err != nil {
			return err
		}
		logger.Info("wrote edge list", "path", r.Output.EdgesParquet, "format", "parquet")
	}
	if r.Output.Metrics != "" {
		if err = rec.WriteTextfile(r.Output.Metrics); err != nil {
			return err
		}
		logger.Debug("wrote metrics", "path", r.Output.Metrics)
	}

	return nil
}
