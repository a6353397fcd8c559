package reroute_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/dijkstra"
	"github.com/katalvlaran/skyroute/internal/ctxlog"
	"github.com/katalvlaran/skyroute/reroute"
)

const (
	A = 0
	B = 1
	C = 2
)

// unitTriangle builds A-B-C-A with weight 1 on every edge.
func unitTriangle(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, code := range []string{"A", "B", "C"} {
		_, err := g.AddNode(code, core.Position{})
		require.NoError(t, err)
	}
	require.NoError(t, g.AddEdge(A, B, 1))
	require.NoError(t, g.AddEdge(B, C, 1))
	require.NoError(t, g.AddEdge(A, C, 1))

	return g
}

func route(t *testing.T, g *core.Graph, src, dst int, opts ...reroute.Option) reroute.Decision {
	t.Helper()

	d, err := reroute.New(opts...).Route(context.Background(), g, src, dst)
	require.NoError(t, err)

	return d
}

func stages(s ...reroute.Stage) []reroute.Stage { return s }

// ------------------------------------------------------------------------
// Scenarios
// ------------------------------------------------------------------------

func TestRoute_ScenarioA_DirectEdgePreferred(t *testing.T) {
	d := route(t, unitTriangle(t), A, C)

	assert.Equal(t, core.Path{A, C}, d.Path)
	assert.False(t, d.Rerouted)
	assert.False(t, d.Degraded)
	assert.Equal(t, reroute.StageDirect, d.Stage)
	assert.Empty(t, d.Hazards)
	assert.Equal(t, stages(reroute.StageDirect, reroute.StageTerminal), d.Trace)
}

func TestRoute_ScenarioB_HazardOnDirectEdge(t *testing.T) {
	g := unitTriangle(t)
	require.NoError(t, g.UpdateWeather(A, C, true, "Thunderstorm"))

	d := route(t, g, A, C)

	assert.Equal(t, core.Path{A, B, C}, d.Path)
	assert.Equal(t, 2.0, d.Cost)
	assert.True(t, d.Rerouted)
	assert.False(t, d.Degraded)
	assert.Equal(t, reroute.StageLocalPatch, d.Stage)
	assert.Equal(t, core.Path{A, C}, d.DirectPath)
	require.Len(t, d.Hazards, 1)
	assert.Equal(t, "A-C", d.Hazards[0].Label)
	assert.Equal(t, "Thunderstorm", d.Hazards[0].Description)
	assert.Equal(t, stages(
		reroute.StageDirect,
		reroute.StageHazardDetected,
		reroute.StageLocalPatch,
		reroute.StageTerminal,
	), d.Trace)
}

func TestRoute_ScenarioC_SourceIsolatedByWeather(t *testing.T) {
	g := unitTriangle(t)
	require.NoError(t, g.UpdateWeather(A, C, true, "Thunderstorm"))
	require.NoError(t, g.UpdateWeather(A, B, true, "Fog"))

	d := route(t, g, A, C)

	assert.Empty(t, d.Path)
	assert.False(t, d.Found())
	assert.False(t, d.Rerouted)
	assert.True(t, math.IsInf(d.Cost, 1))
	assert.Equal(t, core.Path{A, C}, d.DirectPath)
	assert.True(t, d.BlockedByWeather())
	assert.Equal(t, reroute.StageDirect, d.Stage)
}

func TestRoute_ScenarioD_SingleEdge(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode("A", core.Position{})
	b, _ := g.AddNode("B", core.Position{})
	require.NoError(t, g.AddEdge(a, b, 5))

	d := route(t, g, a, b)
	assert.Equal(t, core.Path{a, b}, d.Path)
	assert.Equal(t, 5.0, d.Cost)
	assert.False(t, d.Rerouted)
}

func TestRoute_SameAirport(t *testing.T) {
	d := route(t, unitTriangle(t), B, B)
	assert.Equal(t, core.Path{B}, d.Path)
	assert.Zero(t, d.Cost)
	assert.False(t, d.Rerouted)
}

func TestRoute_TopologicalDisconnection(t *testing.T) {
	g := core.NewGraph()
	for _, code := range []string{"A", "B", "C"} {
		_, err := g.AddNode(code, core.Position{})
		require.NoError(t, err)
	}
	require.NoError(t, g.AddEdge(A, B, 1))

	d := route(t, g, A, C)
	assert.Empty(t, d.Path)
	assert.Empty(t, d.DirectPath)
	assert.False(t, d.BlockedByWeather())
}

// ------------------------------------------------------------------------
// Stale snapshots reach the global-safe and best-effort states
// ------------------------------------------------------------------------

func TestRouteSnapshot_GlobalSafeWhenAvailabilityLags(t *testing.T) {
	g := unitTriangle(t)
	require.NoError(t, g.UpdateWeather(A, C, true, "Ice"))
	stale := g.Snapshot().WithAllAvailable()

	d, err := reroute.New().RouteSnapshot(context.Background(), stale, A, C)
	require.NoError(t, err)

	assert.Equal(t, core.Path{A, B, C}, d.Path)
	assert.True(t, d.Rerouted)
	assert.False(t, d.Degraded)
	assert.Equal(t, reroute.StageGlobalSafe, d.Stage)
	assert.Equal(t, stages(
		reroute.StageDirect,
		reroute.StageHazardDetected,
		reroute.StageGlobalSafe,
		reroute.StageTerminal,
	), d.Trace)
}

func TestRouteSnapshot_BestEffortKeepsHazardousRoute(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode("A", core.Position{})
	b, _ := g.AddNode("B", core.Position{})
	require.NoError(t, g.AddEdge(a, b, 5))
	require.NoError(t, g.UpdateWeather(a, b, true, "Volcanic ash"))
	stale := g.Snapshot().WithAllAvailable()

	d, err := reroute.New().RouteSnapshot(context.Background(), stale, a, b)
	require.NoError(t, err)

	assert.Equal(t, core.Path{a, b}, d.Path)
	assert.Equal(t, 5.0, d.Cost)
	assert.True(t, d.Rerouted)
	assert.True(t, d.Degraded)
	assert.Equal(t, reroute.StageBestEffort, d.Stage)
	want := []core.Segment{{U: a, V: b, Label: "A-B", Description: "Volcanic ash"}}
	if diff := cmp.Diff(want, d.Residual); diff != "" {
		t.Fatalf("residual mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, stages(
		reroute.StageDirect,
		reroute.StageHazardDetected,
		reroute.StageGlobalSafe,
		reroute.StageBestEffort,
		reroute.StageTerminal,
	), d.Trace)
}

// ------------------------------------------------------------------------
// Boundary
// ------------------------------------------------------------------------

func TestRoute_RejectsBadInput(t *testing.T) {
	p := reroute.New()
	_, err := p.Route(context.Background(), nil, 0, 1)
	require.ErrorIs(t, err, reroute.ErrNilGraph)

	g := unitTriangle(t)
	for _, pair := range [][2]int{{-1, 0}, {0, 3}, {3, 3}} {
		_, err = p.Route(context.Background(), g, pair[0], pair[1])
		require.ErrorIs(t, err, reroute.ErrOutOfRange, "pair %v", pair)
	}
}

func TestRoute_DoesNotMutateLiveGraph(t *testing.T) {
	g := unitTriangle(t)
	require.NoError(t, g.UpdateWeather(A, C, true, "Ice"))
	before := g.Snapshot()

	_ = route(t, g, A, C)

	after := g.Snapshot()
	var u, v int
	for u = 0; u < 3; u++ {
		for v = 0; v < 3; v++ {
			assert.Equal(t, before.Available(u, v), after.Available(u, v))
			assert.Equal(t, before.Weather(u, v), after.Weather(u, v))
		}
	}
}

func TestWithMaxLeg(t *testing.T) {
	g := core.NewGraph()
	for _, code := range []string{"A", "B", "C"} {
		_, err := g.AddNode(code, core.Position{})
		require.NoError(t, err)
	}
	require.NoError(t, g.AddEdge(A, C, 500))
	require.NoError(t, g.AddEdge(A, B, 300))
	require.NoError(t, g.AddEdge(B, C, 300))

	assert.Equal(t, core.Path{A, C}, route(t, g, A, C).Path)

	d := route(t, g, A, C, reroute.WithMaxLeg(400))
	assert.Equal(t, core.Path{A, B, C}, d.Path)
	assert.False(t, d.Rerouted, "range limits are not weather")

	assert.Empty(t, route(t, g, A, C, reroute.WithMaxLeg(100)).Path)
	assert.Panics(t, func() { reroute.WithMaxLeg(0) })
	assert.Equal(t, 400.0, reroute.New(reroute.WithMaxLeg(400)).Options().MaxLeg)
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "HAZARD_DETECTED", reroute.StageHazardDetected.String())
	assert.Equal(t, "TERMINAL", reroute.StageTerminal.String())
	assert.Equal(t, "Stage(42)", reroute.Stage(42).String())

	b, err := reroute.StageBestEffort.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "BEST_EFFORT", string(b))
}

func TestRoute_LogsThroughContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	g := unitTriangle(t)
	require.NoError(t, g.UpdateWeather(A, C, true, "Ice"))
	_, err := reroute.New().Route(ctx, g, A, C)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "reroute transition")
	assert.Contains(t, out, "state=DIRECT")
	assert.Contains(t, out, "flight rerouted due to weather")
	assert.Contains(t, out, "from=A to=C")
}

// ------------------------------------------------------------------------
// Properties over seeded random graphs
// ------------------------------------------------------------------------

type randomNet struct {
	g     *core.Graph
	n     int
	pairs [][2]int
}

func newRandomNet(t *testing.T, rng *rand.Rand) randomNet {
	t.Helper()

	n := 3 + rng.Intn(7)
	g := core.NewGraph()
	var i int
	for i = 0; i < n; i++ {
		_, err := g.AddNode(string(rune('A'+i)), core.Position{})
		require.NoError(t, err)
	}
	var pairs [][2]int
	var u, v int
	for u = 0; u < n; u++ {
		for v = u + 1; v < n; v++ {
			if rng.Float64() < 0.6 {
				require.NoError(t, g.AddEdge(u, v, float64(1+rng.Intn(9))))
				pairs = append(pairs, [2]int{u, v})
			}
		}
	}

	return randomNet{g: g, n: n, pairs: pairs}
}

func TestProperty_NoHazardsMeansShortestPath(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var trial int
	for trial = 0; trial < 30; trial++ {
		rn := newRandomNet(t, rng)
		src, dst := rng.Intn(rn.n), rng.Intn(rn.n)

		d := route(t, rn.g, src, dst)
		plain, err := dijkstra.Shortest(rn.g.Snapshot(), src, dst)
		require.NoError(t, err)

		require.Empty(t, cmp.Diff(plain.Path, d.Path), "trial %d", trial)
		require.False(t, d.Rerouted)
		require.Equal(t, reroute.StageDirect, d.Stage)
	}
}

func TestProperty_NotReroutedMeansNoHazardOnPath(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var trial int
	for trial = 0; trial < 40; trial++ {
		rn := newRandomNet(t, rng)
		for _, p := range rn.pairs {
			if rng.Float64() < 0.3 {
				require.NoError(t, rn.g.UpdateWeather(p[0], p[1], true, "Storm"))
			}
		}
		src, dst := rng.Intn(rn.n), rng.Intn(rn.n)
		d := route(t, rn.g, src, dst)

		segs, err := rn.g.HazardSegments(d.Path)
		require.NoError(t, err)
		if !d.Rerouted {
			require.Empty(t, segs, "trial %d", trial)
		}
		require.False(t, d.Degraded, "a live graph keeps availability coupled to weather")
		if !d.Found() && d.BlockedByWeather() {
			require.NotEmpty(t, d.Hazards)
		}
	}
}

func TestProperty_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var trial int
	for trial = 0; trial < 20; trial++ {
		rn := newRandomNet(t, rng)
		for _, p := range rn.pairs {
			if rng.Float64() < 0.25 {
				require.NoError(t, rn.g.UpdateWeather(p[0], p[1], true, "Storm"))
			}
		}
		src, dst := rng.Intn(rn.n), rng.Intn(rn.n)
		snap := rn.g.Snapshot()

		first, err := reroute.New().RouteSnapshot(context.Background(), snap, src, dst)
		require.NoError(t, err)
		second, err := reroute.New().RouteSnapshot(context.Background(), snap, src, dst)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(first, second), "trial %d", trial)
	}
}

func TestProperty_SafeCostIsMonotone(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	var trial int
	for trial = 0; trial < 20; trial++ {
		rn := newRandomNet(t, rng)
		src, dst := rng.Intn(rn.n), rng.Intn(rn.n)

		prev := route(t, rn.g, src, dst).Cost
		order := rng.Perm(len(rn.pairs))
		for _, k := range order {
			p := rn.pairs[k]
			require.NoError(t, rn.g.UpdateWeather(p[0], p[1], true, "Storm"))

			cost := route(t, rn.g, src, dst).Cost
			require.GreaterOrEqual(t, cost, prev, "trial %d: cost dropped after hazard on %v", trial, p)
			prev = cost
		}
	}
}

func TestProperty_DisconnectionByHazards(t *testing.T) {
	// A chain A-B-C: closing B-C disconnects A from C while the chain itself
	// still exists.
	g := core.NewGraph()
	for _, code := range []string{"A", "B", "C"} {
		_, err := g.AddNode(code, core.Position{})
		require.NoError(t, err)
	}
	require.NoError(t, g.AddEdge(A, B, 1))
	require.NoError(t, g.AddEdge(B, C, 1))
	require.NoError(t, g.UpdateWeather(B, C, true, "Hail"))

	d := route(t, g, A, C)
	assert.Empty(t, d.Path)
	assert.False(t, d.Rerouted)
	assert.Equal(t, core.Path{A, B, C}, d.DirectPath)
	require.Len(t, d.Hazards, 1)
	assert.Equal(t, "B-C", d.Hazards[0].Label)
}
