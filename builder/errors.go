// SPDX-License-Identifier: MIT
// Package: graphsynth/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed, plus ConfigError
//     which carries method context around one of them.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Every parameter/initiator validation failure also matches
//     errors.Is(err, ErrConfiguration); it is raised before any sampling.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrConfiguration classifies every validation failure of generator
// parameters. It is never returned bare; match it with errors.Is.
var ErrConfiguration = errors.New("builder: configuration error")

// ErrTooFewVertices indicates a vertex count below the generator minimum.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrBadEdgeFactor indicates edgeFactor (or an edge count) below one.
var ErrBadEdgeFactor = errors.New("builder: edge factor must be positive")

// ErrAttachmentRange indicates a preferential attachment parameter outside [1, n).
var ErrAttachmentRange = errors.New("builder: attachment parameter out of range")

// ErrScaleTooLarge indicates a Kronecker scale whose vertex or edge count
// cannot be represented.
var ErrScaleTooLarge = errors.New("builder: scale too large")

// ErrInvalidInitiator indicates quadrant probabilities that are negative,
// do not sum to one, or leave no mass on the bottom-right quadrant.
var ErrInvalidInitiator = errors.New("builder: invalid initiator matrix")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrConstructFailed indicates the builder exhausted its bounded attempts
// (or was handed a nil Constructor). Not a configuration error.
var ErrConstructFailed = errors.New("builder: construction failed")

// ConfigError is the concrete type of every validation failure.
// Err holds the specific sentinel; the error also matches ErrConfiguration.
type ConfigError struct {
	Method string // canonical constructor name, e.g. MethodKronecker
	Msg    string // parameter detail
	Err    error  // specific sentinel
}

// Error renders "<Method>: <Msg>: <sentinel>".
func (e *ConfigError) Error() string {
	return e.Method + ": " + e.Msg + ": " + e.Err.Error()
}

// Unwrap exposes the specific sentinel.
func (e *ConfigError) Unwrap() error { return e.Err }

// Is matches ErrConfiguration in addition to the wrapped sentinel.
func (e *ConfigError) Is(target error) bool { return target == ErrConfiguration }

// configErrorf builds a ConfigError for method around sentinel.
//
// Complexity: O(len(format) + Σlen(args)).
func configErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return &ConfigError{Method: method, Msg: fmt.Sprintf(format, args...), Err: sentinel}
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Priority when several validations fail:
//    • sizes first (n, scale, edgeFactor, m),
//    • then the initiator matrix / probabilities,
//    • ErrConstructFailed only after bounded retries are exhausted.
//
// 2) Testing guidance:
//    Table tests asserting errors.Is(err, ErrX) and errors.Is(err, ErrConfiguration).
//    Avoid matching error strings.
