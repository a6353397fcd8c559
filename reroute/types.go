package reroute

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/dijkstra"
)

// Sentinel errors returned by Policy.
var (
	// ErrNilGraph indicates that Route was called with a nil *core.Graph.
	ErrNilGraph = errors.New("reroute: graph is nil")

	// ErrOutOfRange indicates a source or destination outside [0, N).
	ErrOutOfRange = errors.New("reroute: airport index out of range")
)

// Stage is one state of the routing state machine.
type Stage int

const (
	// StageDirect solves the snapshot as-is and with weather ignored.
	StageDirect Stage = iota
	// StageHazardDetected is entered when the unconstrained route crosses a hazard.
	StageHazardDetected
	// StageLocalPatch accepts the weather-aware route if it is clean.
	StageLocalPatch
	// StageGlobalSafe solves with every hazardous pair removed.
	StageGlobalSafe
	// StageBestEffort returns a route that still crosses a hazard.
	StageBestEffort
	// StageTerminal ends the machine.
	StageTerminal
)

var stageNames = [...]string{
	StageDirect:         "DIRECT",
	StageHazardDetected: "HAZARD_DETECTED",
	StageLocalPatch:     "LOCAL_PATCH",
	StageGlobalSafe:     "GLOBAL_SAFE",
	StageBestEffort:     "BEST_EFFORT",
	StageTerminal:       "TERMINAL",
}

// String implements fmt.Stringer.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}

	return stageNames[s]
}

// MarshalText renders the stage name, so Stage reads well in JSON and logs.
func (s Stage) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Decision is the outcome of one routing request.
type Decision struct {
	// Path is the chosen route, source first; empty when no safe route exists.
	Path core.Path

	// Cost is the total weight of Path, +Inf when Path is empty.
	Cost float64

	// Rerouted is true when Path differs from the plain shortest route
	// because of weather.
	Rerouted bool

	// Degraded is true when Path still crosses a hazard (best effort).
	Degraded bool

	// Stage is the state that produced the terminal result.
	Stage Stage

	// DirectPath is the shortest route with weather ignored.
	DirectPath core.Path

	// Hazards lists the hazardous hops of DirectPath, in path order.
	Hazards []core.Segment

	// Residual lists the hazardous hops left on Path; set only when Degraded.
	Residual []core.Segment

	// Trace lists the visited states in order, ending with StageTerminal.
	Trace []Stage
}

// Found reports whether a route was chosen.
func (d Decision) Found() bool { return len(d.Path) > 0 }

// BlockedByWeather reports whether the absence of a route is due to weather
// rather than topology: no safe route, yet a route exists with weather ignored.
func (d Decision) BlockedByWeather() bool {
	return len(d.Path) == 0 && len(d.DirectPath) > 0
}

// Options configures a Policy.
//
// MaxLeg – pairs whose weight is ≥ MaxLeg are never flown. Default +Inf.
type Options struct {
	MaxLeg float64
}

// Option represents a functional option for configuring a Policy.
type Option func(*Options)

// WithMaxLeg sets the aircraft's maximum leg length. It panics, like
// dijkstra.WithInfEdgeThreshold, when d ≤ 0 or NaN.
func WithMaxLeg(d float64) Option {
	dijkstra.WithInfEdgeThreshold(d) // validates d

	return func(o *Options) {
		o.MaxLeg = d
	}
}

// DefaultOptions returns Options with no leg limit.
func DefaultOptions() Options {
	return Options{MaxLeg: math.Inf(1)}
}
