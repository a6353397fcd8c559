// File: graph.go
// Role: Live, mutable graph store. All writes go through AddNode, AddEdge and
//       the weather methods; reads either delegate to the current state under
//       the read lock or take a full Snapshot.
// Concurrency:
//   - mu guards every table. Writers hold it exclusively for the whole update,
//     so Snapshot() can never observe one half of a symmetric write.
//   - Snapshot() copies under the read lock; solving happens on the copy with
//     no lock held.

package core

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/skyroute/matrix"
)

// Graph is the airport graph store.
//
// Nodes are never removed, so indices stay valid for the lifetime of the
// Graph. The zero value is not usable; call NewGraph.
type Graph struct {
	mu    sync.RWMutex
	state Snapshot
}

// NewGraph creates an empty graph store.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{state: Snapshot{
		index:     make(map[string]int),
		weight:    mustSquare(0, 0.0),
		linked:    mustSquare(0, false),
		available: mustSquare(0, true),
		weather:   mustSquare(0, Clear("")),
	}}
}

// mustSquare allocates an n×n matrix; n is never negative here.
func mustSquare[T any](n int, fill T) *matrix.Dense[T] {
	m, err := matrix.NewSquare(n, fill)
	if err != nil {
		panic(err)
	}

	return m
}

// AddNode appends an airport and returns its index.
//
// Every new pair touching the node starts as available=true, weather=Clear,
// not linked, weight 0.
//
// Errors:
//   - ErrEmptyCode, ErrDuplicateCode.
//
// Complexity: O(N²) (each matrix grows by one row and one column).
func (g *Graph) AddNode(code string, pos Position) (int, error) {
	if code == "" {
		return -1, ErrEmptyCode
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.state.index[code]; dup {
		return -1, fmt.Errorf("AddNode(%q): %w", code, ErrDuplicateCode)
	}
	s := &g.state
	if err := s.weight.Grow(0); err != nil {
		return -1, fmt.Errorf("AddNode(%q): %w", code, err)
	}
	if err := s.linked.Grow(false); err != nil {
		return -1, fmt.Errorf("AddNode(%q): %w", code, err)
	}
	if err := s.available.Grow(true); err != nil {
		return -1, fmt.Errorf("AddNode(%q): %w", code, err)
	}
	if err := s.weather.Grow(Clear("")); err != nil {
		return -1, fmt.Errorf("AddNode(%q): %w", code, err)
	}

	idx := len(s.nodes)
	s.nodes = append(s.nodes, Airport{Code: code, Position: pos})
	s.index[code] = idx

	return idx, nil
}

// checkEdge validates distinct, in-range endpoints. Caller holds mu.
func (g *Graph) checkEdge(u, v int) error {
	if err := g.state.checkPair(u, v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("pair (%d,%d): %w", u, v, ErrSelfLoop)
	}

	return nil
}

// AddEdge links u–v with the given weight, marks it available and clears
// its weather. Re-adding an existing edge overwrites its weight and resets
// its state.
//
// Errors:
//   - ErrOutOfRange, ErrSelfLoop, ErrBadWeight.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int, weight float64) error {
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("AddEdge(%d,%d,%g): %w", u, v, weight, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEdge(u, v); err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}
	s := &g.state
	// Indices are validated, so the symmetric writes below cannot fail.
	_ = s.weight.SetSymmetric(u, v, weight)
	_ = s.linked.SetSymmetric(u, v, true)
	_ = s.available.SetSymmetric(u, v, true)
	_ = s.weather.SetSymmetric(u, v, Clear(""))

	return nil
}

// UpdateWeather sets weather(u,v) = (isBad, description) both ways and
// available(u,v) = !isBad.
//
// Errors:
//   - ErrOutOfRange, ErrSelfLoop. The graph is untouched on error.
func (g *Graph) UpdateWeather(u, v int, isBad bool, description string) error {
	return g.SetWeather(u, v, NewWeather(isBad, description))
}

// SetWeather is UpdateWeather taking the variant directly.
func (g *Graph) SetWeather(u, v int, w Weather) error {
	return g.Apply(WeatherUpdate{U: u, V: v, Weather: w})
}

// Apply applies a batch of weather updates atomically: every update is
// validated first, then all are written under one exclusive lock. A single
// invalid update rejects the whole batch.
//
// Complexity: O(len(updates)).
func (g *Graph) Apply(updates ...WeatherUpdate) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, up := range updates {
		if err := g.checkEdge(up.U, up.V); err != nil {
			return fmt.Errorf("weather update %d: %w", i, err)
		}
	}
	s := &g.state
	for _, up := range updates {
		_ = s.weather.SetSymmetric(up.U, up.V, up.Weather)
		_ = s.available.SetSymmetric(up.U, up.V, !up.Weather.IsBad())
	}

	return nil
}

// Snapshot deep-copies the current state.
// Complexity: O(N²).
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.state.clone()
}

// Order returns the number of airports.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.state.Order()
}

// Node returns the airport at index i.
func (g *Graph) Node(i int) (Airport, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.state.Node(i)
}

// Nodes returns all airports in index order.
func (g *Graph) Nodes() []Airport {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.state.Nodes()
}

// IndexOf resolves an airport code to its index.
func (g *Graph) IndexOf(code string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.state.IndexOf(code)
}

// Weight returns the weight of u–v and whether the edge exists.
func (g *Graph) Weight(u, v int) (float64, bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.state.checkPair(u, v); err != nil {
		return 0, false, fmt.Errorf("Weight: %w", err)
	}

	return g.state.Weight(u, v), g.state.Linked(u, v), nil
}

// Available reports whether u–v may currently be traversed.
func (g *Graph) Available(u, v int) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.state.checkPair(u, v); err != nil {
		return false, fmt.Errorf("Available: %w", err)
	}

	return g.state.Available(u, v), nil
}

// Weather returns the weather of u–v.
func (g *Graph) Weather(u, v int) (Weather, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.state.checkPair(u, v); err != nil {
		return Weather{}, fmt.Errorf("Weather: %w", err)
	}

	return g.state.Weather(u, v), nil
}

// HasHazard reports whether any hop of p is hazardous.
func (g *Graph) HasHazard(p Path) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.state.HasHazard(p)
}

// HazardSegments lists the hazardous hops of p in path order.
func (g *Graph) HazardSegments(p Path) ([]Segment, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.state.HazardSegments(p)
}

// Hazards lists every linked pair currently under a hazard.
func (g *Graph) Hazards() []Segment {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.state.Hazards()
}
