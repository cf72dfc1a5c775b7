// Package builder provides per-edge weight samplers for the Kronecker
// generators. Weights never influence graph shape.
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight from the edge's own stream.
// It must draw deterministically from rng to keep builds reproducible.
type WeightFn func(rng *rand.Rand) float64

// UnitUniformWeightFn samples uniformly in [0,1). It is the default and
// consumes exactly one draw per edge.
func UnitUniformWeightFn(rng *rand.Rand) float64 {
	return rng.Float64()
}

// ZeroWeightFn returns 0 without consuming a draw.
func ZeroWeightFn(_ *rand.Rand) float64 {
	return 0
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if max < min.
func UniformWeightFn(min, max float64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		return min + (max-min)*rng.Float64()
	}
}
