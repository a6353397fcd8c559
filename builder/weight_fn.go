package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/skyroute/core"
)

// WeightFn derives the weight of the edge between two airports.
// It must be deterministic, symmetric and return a finite value ≥ 0.
type WeightFn func(a, b core.Airport) float64

// EuclideanWeight returns the straight-line distance between the positions
// of a and b.
// Complexity: O(1).
func EuclideanWeight(a, b core.Airport) float64 {
	return math.Hypot(a.Position.X-b.Position.X, a.Position.Y-b.Position.Y)
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0 or is not finite.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_, _ core.Airport) float64 {
		return value
	}
}

// ScaledWeightFn returns EuclideanWeight multiplied by factor, e.g. to
// convert map units into nautical miles.
// Panics if factor ≤ 0 or is not finite.
func ScaledWeightFn(factor float64) WeightFn {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		panic(fmt.Sprintf("ScaledWeightFn: factor must be finite and > 0, got %g", factor))
	}

	return func(a, b core.Airport) float64 {
		return factor * EuclideanWeight(a, b)
	}
}
