// SPDX-License-Identifier: MIT
// Package: skyroute/builder
//
// impl_hubs.go - implementation of the HubAndSpoke(hubs...) constructor.
//
// Contract:
//   • The graph must already hold ≥ 2 airports and hubs must be non-empty
//     (else ErrTooFewVertices).
//   • Every hub is linked to every other airport, hubs included; spokes are
//     never linked to each other.
//   • Edges are emitted in stable order: hubs in argument order, then
//     airports by ascending index. Weights come from cfg.weightFn.
//   • Out-of-range hubs yield ErrConstructFailed wrapping core.ErrOutOfRange.
//
// Complexity:
//   • Time: O(h·n) edges for h hubs and n airports.
//   • Space: O(n) for the airport slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/skyroute/core"
)

const (
	methodHubAndSpoke = "HubAndSpoke"
	minHubNodes       = 2
)

// HubAndSpoke returns a Constructor that links every airport already in the
// graph to each of the given hub indices.
func HubAndSpoke(hubs ...int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		nodes := g.Nodes()
		n := len(nodes)
		if n < minHubNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodHubAndSpoke, n, minHubNodes, ErrTooFewVertices)
		}
		if len(hubs) == 0 {
			return fmt.Errorf("%s: no hubs: %w", methodHubAndSpoke, ErrTooFewVertices)
		}
		for _, h := range hubs {
			if _, err := g.Node(h); err != nil {
				return wrapCore(methodHubAndSpoke, fmt.Sprintf("hub %d", h), err)
			}
		}

		var v int
		for _, h := range hubs {
			for v = 0; v < n; v++ {
				if v == h {
					continue
				}
				w := cfg.weightFn(nodes[h], nodes[v])
				if err := g.AddEdge(h, v, w); err != nil {
					return wrapCore(methodHubAndSpoke, fmt.Sprintf("AddEdge(%s,%s)", nodes[h].Code, nodes[v].Code), err)
				}
			}
		}

		return nil
	}
}
