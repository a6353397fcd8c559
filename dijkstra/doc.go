// Package dijkstra implements the label-setting shortest-path search used by
// the routing policy.
//
// Overview:
//
//   - Shortest computes the minimum-total-weight path between two node indices
//     of a Network, traversing only pairs that are both linked and currently
//     available. Unavailable pairs are invisible to the search, not penalized.
//   - It relies on a min-heap ordered by (dist, node) ascending, so that equal
//     costs are settled in ascending index order and every run on an identical
//     Network yields the identical path.
//   - The search stops as soon as the destination is extracted from the heap;
//     weights are non-negative, so its distance is final at that point.
//
// Network:
//
//	type Network interface {
//	    Order() int
//	    Linked(u, v int) bool
//	    Weight(u, v int) float64
//	    Available(u, v int) bool
//	}
//
// core.Snapshot satisfies Network, as do the probes derived from it
// (WithAllAvailable, WithoutHazards).
//
// Complexity:
//
//   - Time:  O(V² + E log V). The adjacency is a dense matrix, so each
//     extraction scans one row; each relaxation may push one heap entry.
//   - Space: O(V + E) for dist/prev/visited and the lazy heap.
//
// Options:
//
//   - WithInfEdgeThreshold(t): pairs with weight ≥ t are impassable. The
//     routing layer uses it as the aircraft's maximum leg length.
//   - WithMaxDistance(d): nodes whose distance would exceed d are not explored.
//
// Errors (sentinel):
//
//   - ErrNilNetwork      if the Network is nil.
//   - ErrOutOfRange      if src or dst is outside [0, Order()).
//   - ErrNegativeWeight  if a linked pair carries a negative or NaN weight.
//   - ErrBadMaxDistance  (panic) for WithMaxDistance(d) with d < 0 or NaN.
//   - ErrBadInfThreshold (panic) for WithInfEdgeThreshold(t) with t ≤ 0 or NaN.
//
// Unreachable destinations are not errors: Shortest returns a Result with an
// empty Path and Cost = +Inf.
//
// Example usage:
//
//	res, err := dijkstra.Shortest(g.Snapshot(), jfk, lax)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Reachable() {
//	    fmt.Println(res.Path, res.Cost)
//	}
package dijkstra
