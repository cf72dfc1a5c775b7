// Package builder provides validation helpers to enforce parameter
// contracts in Constructor factories.
//
// Each function returns a ConfigError (matching ErrConfiguration) when its
// precondition is violated.
package builder

import (
	"math"
	"math/bits"
)

// validateMin ensures got ≥ min, reporting sentinel otherwise.
//
// Complexity: O(1).
func validateMin(method, param string, got, min int, sentinel error) error {
	if got < min {
		return configErrorf(method, sentinel, "%s must be ≥ %d, got %d", param, min, got)
	}

	return nil
}

// validateScale enforces MinKroneckerScale ≤ scale ≤ MaxKroneckerScale and
// that 2^scale fits in an int on this platform.
func validateScale(method string, scale int) error {
	if scale < MinKroneckerScale {
		return configErrorf(method, ErrTooFewVertices,
			"scale must be ≥ %d, got %d", MinKroneckerScale, scale)
	}
	if scale > MaxKroneckerScale || scale > bits.UintSize-2 {
		return configErrorf(method, ErrScaleTooLarge,
			"scale must be ≤ %d, got %d", min(MaxKroneckerScale, bits.UintSize-2), scale)
	}

	return nil
}

// validateEdgeCount returns n·edgeFactor, or ErrScaleTooLarge on overflow.
func validateEdgeCount(method string, n, edgeFactor int) (int, error) {
	if edgeFactor > math.MaxInt/n {
		return 0, configErrorf(method, ErrScaleTooLarge,
			"edge count %d×%d overflows int", n, edgeFactor)
	}

	return n * edgeFactor, nil
}

// validateAttachment enforces MinAttachment ≤ m < n.
func validateAttachment(method string, n, m int) error {
	if m < MinAttachment || m >= n {
		return configErrorf(method, ErrAttachmentRange,
			"attachment must be in [%d,%d), got %d", MinAttachment, n, m)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method, param string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return configErrorf(method, ErrInvalidProbability,
			"%s must be in [%.1f,%.1f], got %g", param, MinProbability, MaxProbability, p)
	}

	return nil
}
