// SPDX-License-Identifier: MIT
// Package: skyroute/builder
//
// impl_storms.go - implementation of the RandomStorms(p, descriptions...)
// constructor.
//
// Model:
//   • Each linked pair {i,j}, i<j, is independently hazardous with
//     probability p; the description is drawn uniformly from descriptions.
//   • Unlinked pairs are never touched.
//
// Contract:
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   • Empty descriptions default to DefaultStormDescriptions.
//   • All storms are written in one core.Graph.Apply batch.
//
// Determinism:
//   • Trial order is i asc, then j asc; a fixed seed gives fixed storms.
//
// Complexity:
//   • Time: O(n²) trials. Space: O(k) for k storms.

package builder

import (
	"fmt"

	"github.com/katalvlaran/skyroute/core"
)

const (
	methodRandomStorms = "RandomStorms"
	probMin            = 0.0
	probMax            = 1.0
)

// DefaultStormDescriptions are the conditions drawn when none are given.
var DefaultStormDescriptions = []string{"Rain", "Storm"}

// RandomStorms returns a Constructor that marks random linked pairs as
// hazardous.
func RandomStorms(p float64, descriptions ...string) Constructor {
	if len(descriptions) == 0 {
		descriptions = DefaultStormDescriptions
	}

	return func(g *core.Graph, cfg builderConfig) error {
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomStorms, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomStorms, ErrNeedRandSource)
		}
		snap := g.Snapshot()
		n := snap.Order()
		rng := cfg.rng
		var updates []core.WeatherUpdate
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if !snap.Linked(i, j) {
					continue
				}
				desc := descriptions[0]
				if rng != nil {
					if rng.Float64() >= p {
						continue
					}
					desc = descriptions[rng.Intn(len(descriptions))]
				} else if p == probMin {
					continue
				}
				updates = append(updates, core.WeatherUpdate{U: i, V: j, Weather: core.Hazard(desc)})
			}
		}

		if err := g.Apply(updates...); err != nil {
			return wrapCore(methodRandomStorms, "Apply", err)
		}

		return nil
	}
}
