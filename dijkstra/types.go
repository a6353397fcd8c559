package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/skyroute/core"
)

// Sentinel errors returned by Shortest.
var (
	// ErrNilNetwork indicates that a nil Network was passed to Shortest.
	ErrNilNetwork = errors.New("dijkstra: network is nil")

	// ErrOutOfRange indicates a source or destination outside [0, Order()).
	ErrOutOfRange = errors.New("dijkstra: node index out of range")

	// ErrNegativeWeight indicates that a linked pair has a negative or NaN weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a
	// negative value, which would make every pair impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Network is the read-only view the solver searches. Indices are 0..Order()-1.
type Network interface {
	// Order returns the number of nodes.
	Order() int

	// Linked reports whether an edge u–v exists.
	Linked(u, v int) bool

	// Weight returns the weight of u–v; only consulted when Linked(u, v).
	Weight(u, v int) float64

	// Available reports whether u–v may currently be traversed.
	Available(u, v int) bool
}

// Options configures Shortest.
//
// MaxDistance      – nodes whose distance would exceed this are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – pairs with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is +Inf (no pair is impassable by weight).
type Options struct {
	MaxDistance      float64 // Maximum total distance to explore
	InfEdgeThreshold float64 // Weight at and above which a pair is non-traversable
}

// Option represents a functional option for configuring Shortest.
type Option func(*Options)

// WithMaxDistance sets a maximum total distance.
// Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every pair whose weight is ≥ threshold as
// impassable. Zero, negative or NaN values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no weight threshold.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result is the outcome of one search.
type Result struct {
	// Path is source-first; empty when the destination is unreachable.
	Path core.Path

	// Cost is the total weight of Path, or +Inf when unreachable.
	Cost float64
}

// Reachable reports whether a path was found.
func (r Result) Reachable() bool { return len(r.Path) > 0 }
