// SPDX-License-Identifier: MIT
// Package: skyroute/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • weightFn = EuclideanWeight
//   • rng      = nil (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Weight generator for derived edges.
	weightFn WeightFn
	// RNG for stochastic constructors; nil means “no randomness”.
	rng *rand.Rand
}

// newBuilderConfig constructs a config with defaults and applies all
// options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: EuclideanWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
