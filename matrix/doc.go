// Package matrix provides the dense, row-major storage that backs the
// per-pair state of the airport graph.
//
// The graph store keeps four parallel N×N tables (weights, links,
// availability and weather). Each of them is a Dense[T] with a different
// element type, so a single generic implementation serves them all:
//
//   - Dense[float64] holds leg weights (distances).
//   - Dense[bool] holds the adjacency relation and the availability flags.
//   - Dense[core.Weather] holds the weather variant of every pair.
//
// Public accessors never panic on bad coordinates; At and Set return
// ErrOutOfRange wrapped with the method name and the offending indices,
// so callers match with errors.Is.
//
// Matrices are intended for small, dense graphs where O(N²) memory is
// acceptable. Grow appends one row and one column in O(N²), which keeps
// AddNode simple at the price of a copy per insertion.
package matrix
