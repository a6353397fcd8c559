// SPDX-License-Identifier: MIT
// Package: skyroute/builder
//
// impl_complete.go - implementation of the Complete() constructor.
//
// Contract:
//   • The graph must already hold ≥ 2 airports (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once, in
//     lexicographic (i,j) order, weighted by cfg.weightFn(a_i, a_j).
//
// Complexity:
//   • Time: O(n²) edges.
//   • Space: O(n) for the airport slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/skyroute/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that links every pair of airports already
// in the graph.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		nodes := g.Nodes()
		n := len(nodes)
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				w := cfg.weightFn(nodes[i], nodes[j])
				if err := g.AddEdge(i, j, w); err != nil {
					return wrapCore(methodComplete, fmt.Sprintf("AddEdge(%s,%s)", nodes[i].Code, nodes[j].Code), err)
				}
			}
		}

		return nil
	}
}
