package builder

import "github.com/katalvlaran/skyroute/core"

// fleet is the demonstration network: code, display name, map position.
var fleet = []struct {
	code string
	name string
	x, y float64
}{
	{"JFK", "John F. Kennedy International Airport", 150, 100},
	{"LAX", "Los Angeles International Airport", 50, 500},
	{"ORD", "O'Hare International Airport", 350, 150},
	{"DFW", "Dallas/Fort Worth International Airport", 450, 350},
	{"ATL", "Hartsfield-Jackson Atlanta International Airport", 300, 300},
	{"SFO", "San Francisco International Airport", 100, 450},
	{"MIA", "Miami International Airport", 250, 550},
	{"SEA", "Seattle-Tacoma International Airport", 50, 50},
	{"DEN", "Denver International Airport", 300, 200},
	{"BOS", "Boston Logan International Airport", 200, 80},
	{"LAS", "Harry Reid International Airport", 150, 450},
	{"PHX", "Phoenix Sky Harbor International Airport", 350, 450},
	{"IAH", "George Bush Intercontinental Airport", 500, 400},
	{"EWR", "Newark Liberty International Airport", 180, 90},
	{"CLT", "Charlotte Douglas International Airport", 330, 280},
}

// DefaultAirports returns the 15-airport demonstration fleet in index order.
func DefaultAirports() []core.Airport {
	out := make([]core.Airport, len(fleet))
	for i, f := range fleet {
		out[i] = core.Airport{Code: f.code, Position: core.Position{X: f.x, Y: f.y}}
	}

	return out
}

// AirportName returns the display name of a fleet airport, or "" when the
// code is not part of the default fleet.
func AirportName(code string) string {
	for _, f := range fleet {
		if f.code == code {
			return f.name
		}
	}

	return ""
}

// DefaultFleet builds DefaultAirports() joined by Complete().
func DefaultFleet(bopts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(bopts, Airports(DefaultAirports()), Complete())
}
