// Package core defines the Airport, Path, Segment and WeatherUpdate types,
// the sentinel errors, and the Weather variant used by the graph store.
package core

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyCode indicates that an airport was added with an empty code.
	ErrEmptyCode = errors.New("core: airport code is empty")

	// ErrDuplicateCode indicates that an airport code is already registered.
	ErrDuplicateCode = errors.New("core: duplicate airport code")

	// ErrUnknownCode indicates a lookup of an airport code that does not exist.
	ErrUnknownCode = errors.New("core: unknown airport code")

	// ErrOutOfRange indicates a node index outside [0, N).
	ErrOutOfRange = errors.New("core: node index out of range")

	// ErrSelfLoop indicates an edge or weather update whose endpoints coincide.
	ErrSelfLoop = errors.New("core: endpoints must be distinct")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be finite and non-negative")

	// ErrNoEdge indicates a path hop between two nodes that are not linked.
	ErrNoEdge = errors.New("core: no edge between nodes")
)

// Position is a 2D coordinate. Routing never reads it; renderers and the
// builder's distance function do.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Airport is a graph node. Its index is its insertion order.
type Airport struct {
	// Code is the unique short identifier, e.g. "JFK".
	Code string `json:"code"`

	// Position is the map location used by renderers and distance functions.
	Position Position `json:"position"`
}

// Path is an ordered sequence of node indices, source first.
// An empty Path means "no route".
type Path []int

// Empty reports whether p denotes "no route".
func (p Path) Empty() bool { return len(p) == 0 }

// Equal reports whether p and q visit the same nodes in the same order.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of p (nil stays nil).
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// String renders indices as "0 → 2 → 1"; renderers that know codes should
// prefer Snapshot.Label.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " → ")
}

// Segment is one hazardous hop of a path.
type Segment struct {
	U int `json:"u"`
	V int `json:"v"`

	// Label is "FROM-TO" built from airport codes, e.g. "JFK-ORD".
	Label string `json:"label"`

	// Description is the hazard description, e.g. "Thunderstorm".
	Description string `json:"description"`
}

// WeatherUpdate is one (u, v, weather) event applied through Graph.Apply.
type WeatherUpdate struct {
	U       int
	V       int
	Weather Weather
}
