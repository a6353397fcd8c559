package httpapi

import (
	"math"

	"github.com/katalvlaran/skyroute/builder"
	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/reroute"
)

// Airport is one entry of GET /api/airports.
type Airport struct {
	Index int     `json:"index"`
	Code  string  `json:"code"`
	Name  string  `json:"name,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Segment is a hazardous pair.
type Segment struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// WeatherRequest is the body of POST /api/weather. From and To are codes or
// indices.
type WeatherRequest struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Bad         bool   `json:"bad"`
	Description string `json:"description"`
}

// WeatherResponse echoes the stored weather of a pair.
type WeatherResponse struct {
	From    string       `json:"from"`
	To      string       `json:"to"`
	Weather core.Weather `json:"weather"`
}

// RouteResponse is the body of GET /api/route.
type RouteResponse struct {
	From string `json:"from"`
	To   string `json:"to"`

	Found            bool     `json:"found"`
	Path             []string `json:"path"`
	Cost             *float64 `json:"cost,omitempty"` // nil when no route exists
	Rerouted         bool     `json:"rerouted"`
	Degraded         bool     `json:"degraded"`
	BlockedByWeather bool     `json:"blocked_by_weather"`

	Stage      reroute.Stage   `json:"stage"`
	DirectPath []string        `json:"direct_path"`
	Hazards    []Segment       `json:"hazards"`
	Residual   []Segment       `json:"residual,omitempty"`
	Trace      []reroute.Stage `json:"trace"`
}

func airportsOf(snap core.Snapshot) []Airport {
	nodes := snap.Nodes()
	out := make([]Airport, len(nodes))
	for i, a := range nodes {
		out[i] = Airport{
			Index: i,
			Code:  a.Code,
			Name:  builder.AirportName(a.Code),
			X:     a.Position.X,
			Y:     a.Position.Y,
		}
	}

	return out
}

func segmentsOf(snap core.Snapshot, segs []core.Segment) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[i] = Segment{
			From:        snap.Code(s.U),
			To:          snap.Code(s.V),
			Label:       s.Label,
			Description: s.Description,
		}
	}

	return out
}

// routeResponse converts d. JSON has no +Inf, so an unreachable cost is
// left out.
func routeResponse(snap core.Snapshot, src, dst int, d reroute.Decision) RouteResponse {
	resp := RouteResponse{
		From:             snap.Code(src),
		To:               snap.Code(dst),
		Found:            d.Found(),
		Path:             snap.Codes(d.Path),
		Rerouted:         d.Rerouted,
		Degraded:         d.Degraded,
		BlockedByWeather: d.BlockedByWeather(),
		Stage:            d.Stage,
		DirectPath:       snap.Codes(d.DirectPath),
		Hazards:          segmentsOf(snap, d.Hazards),
		Trace:            d.Trace,
	}
	if !math.IsInf(d.Cost, 0) && !math.IsNaN(d.Cost) {
		cost := d.Cost
		resp.Cost = &cost
	}
	if len(d.Residual) > 0 {
		resp.Residual = segmentsOf(snap, d.Residual)
	}

	return resp
}
