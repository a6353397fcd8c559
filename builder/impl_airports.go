// SPDX-License-Identifier: MIT
// Package: skyroute/builder
//
// impl_airports.go - Airports, Edges and Hazards constructors.
//
// Contract:
//   • Airports adds nodes in list order; index i of the list becomes node
//     Order()+i of the graph.
//   • Edges links explicit pairs; Weight == AutoWeight derives it through
//     cfg.weightFn from the two airports.
//   • Hazards applies all updates through core.Graph.Apply (all-or-nothing).

package builder

import (
	"fmt"

	"github.com/katalvlaran/skyroute/core"
)

const (
	methodAirports = "Airports"
	methodEdges    = "Edges"
	methodHazards  = "Hazards"
)

// AutoWeight asks Edges to derive the weight with the configured WeightFn.
const AutoWeight = -1.0

// EdgeSpec is one explicit edge between node indices U and V.
type EdgeSpec struct {
	U, V   int
	Weight float64
}

// Airports returns a Constructor that appends the given airports in order.
// An empty list yields ErrTooFewVertices.
func Airports(list []core.Airport) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if len(list) == 0 {
			return fmt.Errorf("%s: empty list: %w", methodAirports, ErrTooFewVertices)
		}
		for _, a := range list {
			if _, err := g.AddNode(a.Code, a.Position); err != nil {
				return wrapCore(methodAirports, fmt.Sprintf("AddNode(%q)", a.Code), err)
			}
		}

		return nil
	}
}

// Edges returns a Constructor that links each listed pair.
func Edges(list []EdgeSpec) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, e := range list {
			w := e.Weight
			if w == AutoWeight {
				a, err := g.Node(e.U)
				if err != nil {
					return wrapCore(methodEdges, fmt.Sprintf("Node(%d)", e.U), err)
				}
				b, err := g.Node(e.V)
				if err != nil {
					return wrapCore(methodEdges, fmt.Sprintf("Node(%d)", e.V), err)
				}
				w = cfg.weightFn(a, b)
			}
			if err := g.AddEdge(e.U, e.V, w); err != nil {
				return wrapCore(methodEdges, fmt.Sprintf("AddEdge(%d,%d)", e.U, e.V), err)
			}
		}

		return nil
	}
}

// Hazards returns a Constructor that applies weather updates atomically.
func Hazards(list []core.WeatherUpdate) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := g.Apply(list...); err != nil {
			return wrapCore(methodHazards, "Apply", err)
		}

		return nil
	}
}
