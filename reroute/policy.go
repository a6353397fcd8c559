package reroute

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/dijkstra"
	"github.com/katalvlaran/skyroute/internal/ctxlog"
)

// Policy runs the routing state machine. A Policy is immutable and may be
// shared between goroutines.
type Policy struct {
	options Options
	solver  []dijkstra.Option
}

// New builds a Policy from the given options.
func New(opts ...Option) *Policy {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	p := &Policy{options: cfg}
	if !math.IsInf(cfg.MaxLeg, 1) {
		p.solver = append(p.solver, dijkstra.WithInfEdgeThreshold(cfg.MaxLeg))
	}

	return p
}

// Options returns the configuration the Policy was built with.
func (p *Policy) Options() Options { return p.options }

// Route snapshots g and routes src → dst on the snapshot.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrOutOfRange if src or dst is not an airport of g.
func (p *Policy) Route(ctx context.Context, g *core.Graph, src, dst int) (Decision, error) {
	if g == nil {
		return Decision{}, ErrNilGraph
	}

	return p.RouteSnapshot(ctx, g.Snapshot(), src, dst)
}

// RouteSnapshot routes src → dst on snap. Every probe is a copy of snap.
func (p *Policy) RouteSnapshot(ctx context.Context, snap core.Snapshot, src, dst int) (Decision, error) {
	n := snap.Order()
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return Decision{}, fmt.Errorf("%w: src=%d dst=%d N=%d", ErrOutOfRange, src, dst, n)
	}

	m := &machine{
		policy: p,
		log: ctxlog.FromContext(ctx).With(
			"from", snap.Code(src),
			"to", snap.Code(dst),
		),
		snap: snap,
		src:  src,
		dst:  dst,
	}

	return m.run()
}

// machine holds the mutable state of one routing request.
type machine struct {
	policy   *Policy
	log      *slog.Logger
	snap     core.Snapshot
	src, dst int

	weatherAware dijkstra.Result // solve over snap as-is
	direct       dijkstra.Result // solve with weather ignored

	d Decision
}

// run drives the machine from StageDirect to StageTerminal.
func (m *machine) run() (Decision, error) {
	state := StageDirect
	for state != StageTerminal {
		m.d.Trace = append(m.d.Trace, state)
		next, err := m.step(state)
		if err != nil {
			return Decision{}, fmt.Errorf("reroute %s: %w", state, err)
		}
		m.log.Debug("reroute transition", "state", state.String(), "next", next.String())
		state = next
	}
	m.d.Trace = append(m.d.Trace, StageTerminal)

	return m.d, nil
}

// step executes one state and returns the next one.
func (m *machine) step(s Stage) (Stage, error) {
	switch s {
	case StageDirect:
		return m.stepDirect()
	case StageHazardDetected:
		return m.stepHazardDetected(), nil
	case StageLocalPatch:
		return m.stepLocalPatch()
	case StageGlobalSafe:
		return m.stepGlobalSafe()
	case StageBestEffort:
		return m.stepBestEffort()
	default:
		return StageTerminal, fmt.Errorf("unknown stage %d", int(s))
	}
}

func (m *machine) solve(net dijkstra.Network) (dijkstra.Result, error) {
	return dijkstra.Shortest(net, m.src, m.dst, m.policy.solver...)
}

func (m *machine) stepDirect() (Stage, error) {
	var err error
	if m.weatherAware, err = m.solve(m.snap); err != nil {
		return StageTerminal, err
	}
	if m.direct, err = m.solve(m.snap.WithAllAvailable()); err != nil {
		return StageTerminal, err
	}
	m.d.DirectPath = m.direct.Path
	if m.d.Hazards, err = m.snap.HazardSegments(m.direct.Path); err != nil {
		return StageTerminal, err
	}

	if !m.weatherAware.Reachable() {
		m.log.Info("no path available",
			"blocked_by_weather", m.direct.Reachable(),
			"hazards", len(m.d.Hazards),
		)
		return m.finish(StageDirect, m.weatherAware, false), nil
	}
	if len(m.d.Hazards) == 0 {
		return m.finish(StageDirect, m.weatherAware, false), nil
	}

	return StageHazardDetected, nil
}

func (m *machine) stepHazardDetected() Stage {
	if !m.weatherAware.Path.Equal(m.direct.Path) {
		return StageLocalPatch
	}

	return StageGlobalSafe
}

func (m *machine) stepLocalPatch() (Stage, error) {
	residual, err := m.snap.HazardSegments(m.weatherAware.Path)
	if err != nil {
		return StageTerminal, err
	}
	if len(residual) > 0 {
		return StageGlobalSafe, nil
	}
	m.logReroute(m.weatherAware.Path)

	return m.finish(StageLocalPatch, m.weatherAware, true), nil
}

func (m *machine) stepGlobalSafe() (Stage, error) {
	safe, err := m.solve(m.snap.WithoutHazards())
	if err != nil {
		return StageTerminal, err
	}
	if !safe.Reachable() {
		return StageBestEffort, nil
	}
	m.logReroute(safe.Path)

	return m.finish(StageGlobalSafe, safe, true), nil
}

// stepBestEffort keeps the weather-aware route, falling back to the direct
// one, and reports whatever hazards remain on it.
func (m *machine) stepBestEffort() (Stage, error) {
	best := m.weatherAware
	if !best.Reachable() {
		best = m.direct
	}
	residual, err := m.snap.HazardSegments(best.Path)
	if err != nil {
		return StageTerminal, err
	}
	m.d.Degraded = true
	m.d.Residual = residual

	labels := make([]string, len(residual))
	for i, s := range residual {
		labels[i] = s.Label
	}
	m.log.Warn("route could not be fully cleared of hazards",
		"route", m.snap.Label(best.Path),
		"residual", labels,
	)

	return m.finish(StageBestEffort, best, true), nil
}

func (m *machine) logReroute(p core.Path) {
	m.log.Info("flight rerouted due to weather",
		"original", m.snap.Label(m.direct.Path),
		"route", m.snap.Label(p),
	)
}

// finish records the terminal result.
func (m *machine) finish(s Stage, res dijkstra.Result, rerouted bool) Stage {
	m.d.Path = res.Path
	m.d.Cost = res.Cost
	m.d.Rerouted = rerouted
	m.d.Stage = s

	return StageTerminal
}
