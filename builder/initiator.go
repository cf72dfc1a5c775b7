// SPDX-License-Identifier: MIT
// Package: graphsynth/builder
//
// initiator.go - the 2×2 R-MAT initiator matrix.
//
//	┌───────┬───────┐
//	│   A   │   B   │   row bit 0
//	├───────┼───────┤
//	│   C   │   D   │   row bit 1
//	└───────┴───────┘
//	 col 0    col 1
//
// Contract:
//   • A, B, C, D ≥ 0 and |A+B+C+D−1| ≤ InitiatorTolerance.
//   • D > 0 (equivalently A+B+C < 1), so every renormalisation is defined.
//   • Near-zero quadrants are legal; Degenerate reports them for logging.

package builder

import "math"

// Quadrant names one cell of the initiator matrix.
type Quadrant int

const (
	// TopLeft is the A cell (row bit 0, column bit 0).
	TopLeft Quadrant = iota
	// TopRight is the B cell (row bit 0, column bit 1).
	TopRight
	// BottomLeft is the C cell (row bit 1, column bit 0).
	BottomLeft
	// BottomRight is the D cell (row bit 1, column bit 1).
	BottomRight
)

var quadrantNames = [...]string{"top-left", "top-right", "bottom-left", "bottom-right"}

// String returns the human-readable quadrant name.
func (q Quadrant) String() string {
	if q < TopLeft || q > BottomRight {
		return "unknown"
	}
	return quadrantNames[q]
}

// Initiator holds the four quadrant probabilities.
type Initiator struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
	D float64 `yaml:"d"`
}

// DefaultInitiator is the Graph500 initiator (0.57, 0.19, 0.19, 0.05).
var DefaultInitiator = Initiator{A: 0.57, B: 0.19, C: 0.19, D: 0.05}

// NewInitiator derives D = 1−A−B−C. The result still needs Validate.
func NewInitiator(a, b, c float64) Initiator {
	return Initiator{A: a, B: b, C: c, D: 1 - a - b - c}
}

// Validate checks the contract in the file header.
//
// Errors: ConfigError wrapping ErrInvalidInitiator (matches ErrConfiguration).
// Complexity: O(1).
func (q Initiator) Validate() error {
	vals := [4]float64{q.A, q.B, q.C, q.D}
	for i, p := range vals {
		if math.IsNaN(p) || p < 0 {
			return configErrorf(MethodInitiator, ErrInvalidInitiator,
				"%s probability %g is negative", Quadrant(i), p)
		}
	}
	sum := q.A + q.B + q.C + q.D
	if math.Abs(sum-1) > InitiatorTolerance {
		return configErrorf(MethodInitiator, ErrInvalidInitiator,
			"probabilities sum to %g, want 1", sum)
	}
	if q.D <= 0 {
		return configErrorf(MethodInitiator, ErrInvalidInitiator,
			"bottom-right probability must be > 0 (A+B+C=%g)", q.A+q.B+q.C)
	}

	return nil
}

// Degenerate returns the quadrants whose mass is below eps, in A,B,C,D order.
// Such matrices are valid; bit outcomes just become near-deterministic.
func (q Initiator) Degenerate(eps float64) []Quadrant {
	var out []Quadrant
	for i, p := range [4]float64{q.A, q.B, q.C, q.D} {
		if p < eps {
			out = append(out, Quadrant(i))
		}
	}
	return out
}

// thresholds precomputes the comparison points used per recursion level.
//
//	top    = A+B          row bit is 1 iff u ≥ top
//	aNorm  = A/(A+B)      column bit in the top half is 1 iff u ≥ aNorm
//	cNorm  = C/(C+D)      column bit in the bottom half is 1 iff u ≥ cNorm
//
// A zero-mass top half (A+B = 0) is never entered, so aNorm = 0 there.
type thresholds struct {
	top, aNorm, cNorm float64
}

func (q Initiator) thresholds() thresholds {
	t := thresholds{top: q.A + q.B}
	if t.top > 0 {
		t.aNorm = q.A / t.top
	}
	t.cNorm = q.C / (q.C + q.D) // C+D ≥ D > 0 after Validate
	return t
}
