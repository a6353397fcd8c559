// File: snapshot.go
// Role: Immutable, copyable view of the whole graph state at one instant.
// Determinism:
//   - Hazards() enumerates pairs in (u asc, v asc) order with u < v.
// Concurrency:
//   - A Snapshot owns its matrices; it is safe to read from any goroutine.
//   - Probes (WithAllAvailable, WithoutHazards) copy the availability table and
//     share the rest, which is never written after the snapshot is taken.

package core

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/skyroute/matrix"
)

// Snapshot holds nodes + weights + links + availability + weather.
// The zero value is an empty graph.
type Snapshot struct {
	nodes     []Airport
	index     map[string]int
	weight    *matrix.Dense[float64]
	linked    *matrix.Dense[bool]
	available *matrix.Dense[bool]
	weather   *matrix.Dense[Weather]
}

// clone deep-copies every table. Nodes are immutable once added, so the
// slice header is copied with a capped capacity to keep later appends on
// the live graph from aliasing it.
func (s Snapshot) clone() Snapshot {
	idx := make(map[string]int, len(s.index))
	for k, v := range s.index {
		idx[k] = v
	}

	return Snapshot{
		nodes:     s.nodes[:len(s.nodes):len(s.nodes)],
		index:     idx,
		weight:    s.weight.Clone(),
		linked:    s.linked.Clone(),
		available: s.available.Clone(),
		weather:   s.weather.Clone(),
	}
}

// Order returns the number of airports.
func (s Snapshot) Order() int { return len(s.nodes) }

// Node returns the airport at index i.
func (s Snapshot) Node(i int) (Airport, error) {
	if i < 0 || i >= len(s.nodes) {
		return Airport{}, fmt.Errorf("Node(%d): %w", i, ErrOutOfRange)
	}

	return s.nodes[i], nil
}

// Nodes returns a copy of all airports in index order.
func (s Snapshot) Nodes() []Airport {
	out := make([]Airport, len(s.nodes))
	copy(out, s.nodes)

	return out
}

// Code returns the code of airport i, or "#i" when i is out of range.
func (s Snapshot) Code(i int) string {
	if i < 0 || i >= len(s.nodes) {
		return fmt.Sprintf("#%d", i)
	}

	return s.nodes[i].Code
}

// IndexOf resolves an airport code to its index.
func (s Snapshot) IndexOf(code string) (int, error) {
	if i, ok := s.index[code]; ok {
		return i, nil
	}

	return -1, fmt.Errorf("IndexOf(%q): %w", code, ErrUnknownCode)
}

// Linked reports whether an edge u–v exists. Out-of-range pairs are not linked.
func (s Snapshot) Linked(u, v int) bool {
	ok, _ := s.linked.At(u, v)
	return ok && u != v
}

// Weight returns the weight of u–v (0 when the pair is out of range).
func (s Snapshot) Weight(u, v int) float64 {
	w, _ := s.weight.At(u, v)
	return w
}

// Available reports whether u–v may currently be traversed.
func (s Snapshot) Available(u, v int) bool {
	ok, _ := s.available.At(u, v)
	return ok
}

// Weather returns the weather of u–v (Clear when the pair is out of range).
func (s Snapshot) Weather(u, v int) Weather {
	w, _ := s.weather.At(u, v)
	return w
}

// checkPair validates a pair of indices without requiring them to differ.
func (s Snapshot) checkPair(u, v int) error {
	n := len(s.nodes)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("pair (%d,%d) with N=%d: %w", u, v, n, ErrOutOfRange)
	}

	return nil
}

// HasHazard reports whether any consecutive pair of p is hazardous.
func (s Snapshot) HasHazard(p Path) (bool, error) {
	segs, err := s.HazardSegments(p)
	if err != nil {
		return false, err
	}

	return len(segs) > 0, nil
}

// HazardSegments lists the hazardous hops of p in path order.
// The result is empty (nil) when p has none or has fewer than two nodes.
func (s Snapshot) HazardSegments(p Path) ([]Segment, error) {
	var out []Segment
	var i int
	for i = 0; i+1 < len(p); i++ {
		u, v := p[i], p[i+1]
		if err := s.checkPair(u, v); err != nil {
			return nil, fmt.Errorf("HazardSegments: %w", err)
		}
		w := s.Weather(u, v)
		if !w.IsBad() {
			continue
		}
		out = append(out, s.segment(u, v, w))
	}

	return out, nil
}

// Hazards lists every linked pair currently under a hazard, u < v.
func (s Snapshot) Hazards() []Segment {
	var out []Segment
	var u, v int
	for u = 0; u < len(s.nodes); u++ {
		for v = u + 1; v < len(s.nodes); v++ {
			if !s.Linked(u, v) {
				continue
			}
			if w := s.Weather(u, v); w.IsBad() {
				out = append(out, s.segment(u, v, w))
			}
		}
	}

	return out
}

func (s Snapshot) segment(u, v int, w Weather) Segment {
	return Segment{
		U:           u,
		V:           v,
		Label:       s.Code(u) + "-" + s.Code(v),
		Description: w.Description(),
	}
}

// PathCost sums the weights along p.
//
// Errors:
//   - ErrOutOfRange for invalid indices.
//   - ErrNoEdge when a hop is not linked.
func (s Snapshot) PathCost(p Path) (float64, error) {
	var total float64
	var i int
	for i = 0; i+1 < len(p); i++ {
		u, v := p[i], p[i+1]
		if err := s.checkPair(u, v); err != nil {
			return 0, fmt.Errorf("PathCost: %w", err)
		}
		if !s.Linked(u, v) {
			return 0, fmt.Errorf("PathCost: %s-%s: %w", s.Code(u), s.Code(v), ErrNoEdge)
		}
		total += s.Weight(u, v)
	}

	return total, nil
}

// Codes maps p to airport codes.
func (s Snapshot) Codes(p Path) []string {
	out := make([]string, len(p))
	for i, v := range p {
		out[i] = s.Code(v)
	}

	return out
}

// Label renders p as "JFK → ORD → LAX".
func (s Snapshot) Label(p Path) string {
	return strings.Join(s.Codes(p), " → ")
}

// WithAllAvailable returns a probe in which every pair is traversable,
// i.e. weather is ignored. The receiver is left untouched.
func (s Snapshot) WithAllAvailable() Snapshot {
	probe := s
	probe.available = s.available.Clone()
	probe.available.Fill(true)

	return probe
}

// WithoutHazards returns a probe in which every hazardous pair, on any
// path, is unavailable. The receiver is left untouched.
func (s Snapshot) WithoutHazards() Snapshot {
	probe := s
	probe.available = s.available.Clone()
	var u, v int
	for u = 0; u < len(s.nodes); u++ {
		for v = 0; v < len(s.nodes); v++ {
			if s.Weather(u, v).IsBad() {
				_ = probe.available.Set(u, v, false)
			}
		}
	}

	return probe
}
