// Package builder provides the seeded graph generators of graphsynth and the
// "functional-options" machinery that configures them.
//
// Every generator is a Constructor factory; Build resolves options into an
// immutable builderConfig and runs the constructor once:
//
//	es, err := builder.Build(builder.Kronecker(16, 16), builder.WithSeed(42))
//
// The package offers the following key components:
//
//   - Generators (Constructor factories):
//     – Kronecker(scale, edgeFactor): Graph500 R-MAT over 2^scale vertices.
//     – KroneckerN(n, m):             R-MAT over arbitrary n by redrawing out-of-range edges.
//     – PowerLawCluster(n, m):        Barabási–Albert growth, optional Holme–Kim triads,
//     oriented with OrientAlternating.
//   - Configuration primitives:
//     – BuilderOption:        WithSeed, WithRand, WithWorkers, WithInitiator,
//     WithTriadProbability, WithWeightFn.
//     – Initiator:            the 2×2 quadrant matrix, DefaultInitiator, Validate, Degenerate.
//   - Edge-weight samplers (WeightFn implementations):
//     – UnitUniformWeightFn:  U[0,1), the default.
//     – UniformWeightFn:      U[min,max).
//     – ZeroWeightFn:         constant 0, no draw.
//   - Validation helpers:
//     – validateMin, validateScale, validateEdgeCount, validateAttachment,
//     validateProbability.
//
// Guarantees:
//
//   - Determinism: the same constructor, options and seed yield identical edge
//     sets, independent of WithWorkers.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Structured runtime errors: every parameter failure is a *ConfigError that
//     matches both its specific sentinel and ErrConfiguration, raised before any
//     sampling work.
//   - Documented complexity per constructor.
//
// See individual function documentation for detailed contracts.
package builder
