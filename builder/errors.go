// SPDX-License-Identifier: MIT
// Package: skyroute/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w; core errors stay reachable too.

package builder

import "errors"

// ErrTooFewVertices indicates that the graph has fewer airports than the
// constructor requires (e.g. Complete on an empty graph, Airports(nil)).
var ErrTooFewVertices = errors.New("builder: too few airports")

// ErrConstructFailed indicates that a constructor could not apply a step,
// typically because the graph store rejected an airport, an edge or a
// weather update. The underlying core error is wrapped alongside.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor run without an RNG
// (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("builder: random source required")
