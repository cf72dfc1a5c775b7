// Package config describes one generation run: which model, its sizes, the
// seed and worker budget, and where outputs go. A Run is loaded from YAML,
// completed with WithDefaults, checked with Validate and then turned into
// builder options and a constructor.
//
// Every validation failure is a *builder.ConfigError, so callers branch on
// errors.Is(err, builder.ErrConfiguration) exactly as for generator errors.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphsynth/builder"
	"github.com/katalvlaran/graphsynth/degree"
)

// Model selects the generator.
type Model string

const (
	// ModelPowerLaw is PowerLawCluster(Vertices, EdgeFactor).
	ModelPowerLaw Model = "powerlaw"
	// ModelKronecker is Kronecker(Scale, EdgeFactor).
	ModelKronecker Model = "kronecker"
	// ModelKroneckerN is KroneckerN(Vertices, Vertices·EdgeFactor).
	ModelKroneckerN Model = "kronecker-n"
)

// methodConfig tags ConfigErrors raised by this package.
const methodConfig = "config"

var (
	// ErrUnknownModel indicates a model name other than the Model constants.
	ErrUnknownModel = errors.New("config: unknown model")
	// ErrMissingOutput indicates a run without a degree CSV destination.
	ErrMissingOutput = errors.New("config: degree output path is required")
	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("config: workers must be ≥ 0")
)

// Output lists the files a run writes. Empty paths are skipped, except
// Degrees which is required.
type Output struct {
	Degrees      string `yaml:"degrees,omitempty"`
	Edges        string `yaml:"edges,omitempty"`
	EdgesParquet string `yaml:"edges_parquet,omitempty"`
	Metrics      string `yaml:"metrics,omitempty"`
}

// Run is the complete description of one generation run.
type Run struct {
	Model Model `yaml:"model,omitempty"`

	// Vertices is n for powerlaw and kronecker-n.
	Vertices int `yaml:"vertices,omitempty"`
	// Scale is log2 n for kronecker.
	Scale int `yaml:"scale,omitempty"`
	// EdgeFactor is the attachment parameter for powerlaw and the edges per
	// vertex for both Kronecker models.
	EdgeFactor int `yaml:"edge_factor,omitempty"`

	Seed    int64 `yaml:"seed,omitempty"`
	Workers int   `yaml:"workers,omitempty"`

	// Triad is the Holme–Kim triad probability (powerlaw only).
	Triad float64 `yaml:"triad,omitempty"`
	// Initiator overrides the R-MAT quadrant probabilities; nil keeps the default.
	Initiator *builder.Initiator `yaml:"initiator,omitempty"`

	IncludeIsolated bool `yaml:"include_isolated,omitempty"`

	Output Output `yaml:"output,omitempty"`
}

// Load reads a YAML run file. Unknown keys are rejected.
func Load(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("read run config: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML run document. An empty document yields the zero Run.
func Parse(data []byte) (Run, error) {
	var r Run
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return Run{}, &builder.ConfigError{Method: methodConfig, Msg: "parse run config", Err: err}
	}

	return r, nil
}

// WithDefaults returns r with unset fields filled in: model powerlaw and
// workers GOMAXPROCS. Seed 0 is left alone; the builder maps it to its
// default seed.
func (r Run) WithDefaults() Run {
	if r.Model == "" {
		r.Model = ModelPowerLaw
	}
	if r.Workers == 0 {
		r.Workers = runtime.GOMAXPROCS(0)
	}
	return r
}

// Validate checks everything that can be checked without generating.
// Generator-specific bounds (m < n, scale limits) are checked again by the
// builder constructors before they sample.
func (r Run) Validate() error {
	switch r.Model {
	case ModelPowerLaw:
		if err := positive("vertices", r.Vertices, builder.ErrTooFewVertices); err != nil {
			return err
		}
	case ModelKronecker:
		if err := positive("scale", r.Scale, builder.ErrTooFewVertices); err != nil {
			return err
		}
	case ModelKroneckerN:
		if err := positive("vertices", r.Vertices, builder.ErrTooFewVertices); err != nil {
			return err
		}
		if r.EdgeFactor > 0 && r.Vertices > math.MaxInt/r.EdgeFactor {
			return invalid(builder.ErrScaleTooLarge, "vertices·edge_factor overflows int")
		}
	default:
		return invalid(ErrUnknownModel, "model %q, want one of %q, %q, %q",
			r.Model, ModelPowerLaw, ModelKronecker, ModelKroneckerN)
	}
	if err := positive("edge_factor", r.EdgeFactor, builder.ErrBadEdgeFactor); err != nil {
		return err
	}
	if r.Workers < 0 {
		return invalid(ErrBadWorkers, "workers=%d", r.Workers)
	}
	if math.IsNaN(r.Triad) || r.Triad < builder.MinProbability || r.Triad > builder.MaxProbability {
		return invalid(builder.ErrInvalidProbability, "triad=%g", r.Triad)
	}
	if r.Initiator != nil {
		if err := r.Initiator.Validate(); err != nil {
			return fmt.Errorf("%s: %w", methodConfig, err)
		}
	}
	if r.Output.Degrees == "" {
		return invalid(ErrMissingOutput, "output.degrees is empty")
	}

	return nil
}

// VertexCount is the n the run generates over.
func (r Run) VertexCount() int {
	if r.Model == ModelKronecker && r.Scale > 0 && r.Scale < 63 {
		return 1 << uint(r.Scale)
	}
	return r.Vertices
}

// BuilderOptions converts r into builder options. Call Validate first: the
// option constructors panic on values Validate rejects.
func (r Run) BuilderOptions() []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithSeed(r.Seed)}
	if r.Workers > 0 {
		opts = append(opts, builder.WithWorkers(r.Workers))
	}
	if r.Model == ModelPowerLaw && r.Triad > 0 {
		opts = append(opts, builder.WithTriadProbability(r.Triad))
	}
	if r.Initiator != nil {
		opts = append(opts, builder.WithInitiator(*r.Initiator))
	}
	return opts
}

// Constructor returns the generator selected by r.Model.
func (r Run) Constructor() (builder.Constructor, error) {
	switch r.Model {
	case ModelPowerLaw:
		return builder.PowerLawCluster(r.Vertices, r.EdgeFactor), nil
	case ModelKronecker:
		return builder.Kronecker(r.Scale, r.EdgeFactor), nil
	case ModelKroneckerN:
		return builder.KroneckerN(r.Vertices, r.Vertices*r.EdgeFactor), nil
	}
	return nil, invalid(ErrUnknownModel, "model %q", r.Model)
}

// DegreeOptions converts r into aggregation options.
func (r Run) DegreeOptions() []degree.Option {
	if r.IncludeIsolated {
		return []degree.Option{degree.IncludeIsolated()}
	}
	return nil
}

func positive(param string, got int, sentinel error) error {
	if got < 1 {
		return invalid(sentinel, "%s must be ≥ 1, got %d", param, got)
	}
	return nil
}

func invalid(sentinel error, format string, args ...any) error {
	return &builder.ConfigError{Method: methodConfig, Msg: fmt.Sprintf(format, args...), Err: sentinel}
}
