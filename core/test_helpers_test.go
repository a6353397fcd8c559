// Package core_test contains fixtures shared by the core tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyroute/core"
)

// Common airport codes used across core tests.
const (
	CodeA = "A"
	CodeB = "B"
	CodeC = "C"
	CodeD = "D"
)

// Common concurrency sizes (avoid magic numbers in test bodies).
const (
	NWriters = 50
	NReaders = 50
)

// newTriangle builds A-B-C-A with unit weights and returns the indices.
func newTriangle(t *testing.T) (*core.Graph, int, int, int) {
	t.Helper()

	g := core.NewGraph()
	a, err := g.AddNode(CodeA, core.Position{X: 0, Y: 0})
	require.NoError(t, err)
	b, err := g.AddNode(CodeB, core.Position{X: 1, Y: 0})
	require.NoError(t, err)
	c, err := g.AddNode(CodeC, core.Position{X: 0, Y: 1})
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(a, b, 1))
	require.NoError(t, g.AddEdge(b, c, 1))
	require.NoError(t, g.AddEdge(a, c, 1))

	return g, a, b, c
}
