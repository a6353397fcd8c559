package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/skyroute/core"
)

// Shortest returns the minimum-weight path from src to dst over the available
// linked pairs of net.
//
// Preconditions and validation (in order):
//  1. net must be non-nil (ErrNilNetwork).
//  2. src and dst must lie in [0, Order()) (ErrOutOfRange).
//  3. No linked pair may have a negative or NaN weight (ErrNegativeWeight).
//
// src == dst yields Path{src} with Cost 0. An unreachable dst yields an empty
// Path with Cost +Inf and a nil error.
//
// Complexity:
//
//   - Time:  O(V² + E log V)
//   - Space: O(V + E)
func Shortest(net Network, src, dst int, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if net == nil {
		return Result{}, ErrNilNetwork
	}
	n := net.Order()
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return Result{}, fmt.Errorf("%w: src=%d dst=%d N=%d", ErrOutOfRange, src, dst, n)
	}

	// 3) Pre-scan linked pairs for invalid weights. Fail fast.
	var u, v int
	var w float64
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if u == v || !net.Linked(u, v) {
				continue
			}
			if w = net.Weight(u, v); w < 0 || math.IsNaN(w) {
				return Result{}, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, v, w)
			}
		}
	}

	// 4) Trivial route.
	if src == dst {
		return Result{Path: core.Path{src}, Cost: 0}, nil
	}

	// 5) Run the search.
	r := &runner{
		net:     net,
		options: cfg,
		src:     src,
		dst:     dst,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	return r.result(), nil
}

// runner holds the mutable state for a single search.
type runner struct {
	net      Network   // Read-only input.
	options  Options   // Thresholds.
	src, dst int       // Endpoints.
	dist     []float64 // Best known distance from src.
	prev     []int     // Predecessor on the best path, -1 if none.
	visited  []bool    // Whether dist is final.
	pq       nodePQ    // Lazy min-heap of (dist, node).
}

// init sets dist=+Inf, prev=-1 everywhere, then seeds the heap with (0, src).
func (r *runner) init() {
	var i int
	for i = range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[r.src] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{node: r.src, dist: 0})
}

// process extracts nodes in (dist, node) order until the heap is empty, the
// destination is settled, or the next distance exceeds MaxDistance.
func (r *runner) process() {
	var item nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(nodeItem)

		// Stale entry under lazy decrease-key.
		if r.visited[item.node] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[item.node] = true
		if item.node == r.dst {
			return
		}
		r.relax(item.node)
	}
}

// relax improves every unvisited neighbor reachable from u through an
// available pair lighter than InfEdgeThreshold. Only strict improvements
// are recorded.
func (r *runner) relax(u int) {
	var v int
	var w, newDist float64
	for v = 0; v < len(r.dist); v++ {
		if v == u || r.visited[v] {
			continue
		}
		if !r.net.Linked(u, v) || !r.net.Available(u, v) {
			continue
		}
		w = r.net.Weight(u, v)
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist = r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{node: v, dist: newDist})
	}
}

// result walks prev backward from dst; the walk must end at src.
func (r *runner) result() Result {
	if !r.visited[r.dst] {
		return Result{Cost: math.Inf(1)}
	}

	var rev core.Path
	var at int
	for at = r.dst; at != -1; at = r.prev[at] {
		rev = append(rev, at)
	}
	if rev[len(rev)-1] != r.src {
		return Result{Cost: math.Inf(1)}
	}

	path := make(core.Path, len(rev))
	var i int
	for i = range rev {
		path[i] = rev[len(rev)-1-i]
	}

	return Result{Path: path, Cost: r.dist[r.dst]}
}

// nodeItem is one heap entry.
type nodeItem struct {
	node int     // node index
	dist float64 // tentative distance from src
}

// nodePQ is a min-heap of nodeItem ordered by (dist, node) ascending.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by node index for deterministic ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].node < pq[j].node
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x (a nodeItem) to the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
