package config

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/skyroute/builder"
	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/internal/ctxlog"
)

var (
	// ErrInvalid indicates a fleet file that parses but does not describe a
	// usable network.
	ErrInvalid = errors.New("config: invalid fleet file")

	// ErrUnknownAirport indicates an endpoint that names no airport: an
	// unknown code or an index outside [0, N).
	ErrUnknownAirport = errors.New("config: unknown airport")
)

// Default descriptions used when a weather block omits one.
const (
	DefaultBadDescription   = "Bad weather"
	DefaultClearDescription = "Clear skies"
)

// Route is a source/destination pair of airport indices.
type Route struct {
	From int
	To   int
}

// Fleet is a loaded network plus the settings that travel with it.
type Fleet struct {
	// Graph is the live graph store, with initial weather applied.
	Graph *core.Graph

	// Topology is TopologyComplete or TopologyExplicit.
	Topology string

	// MaxLeg is the aircraft range; 0 means unlimited.
	MaxLeg float64

	// Hubs lists the hub indices of a hub topology.
	Hubs []int

	// Route is the default route of the file, nil if none.
	Route *Route
}

// Default returns the built-in demonstration fleet.
func Default() (*Fleet, error) {
	g, err := builder.DefaultFleet()
	if err != nil {
		return nil, err
	}

	return &Fleet{Graph: g, Topology: TopologyComplete}, nil
}

// Load parses the fleet file at path.
func Load(ctx context.Context, path string) (*Fleet, error) {
	ctxlog.FromContext(ctx).Debug("Loading fleet file", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	return decode(ctx, file.Body, path)
}

// Parse decodes fleet source held in memory; filename is used in messages.
func Parse(ctx context.Context, src []byte, filename string) (*Fleet, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	return decode(ctx, file.Body, filename)
}

func decode(ctx context.Context, body hcl.Body, name string) (*Fleet, error) {
	var parsed hclFleetFile
	if diags := gohcl.DecodeBody(body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
	}

	fleet := &Fleet{Topology: TopologyComplete}
	if n := parsed.Network; n != nil {
		switch n.Topology {
		case "", TopologyComplete:
		case TopologyExplicit, TopologyHub:
			fleet.Topology = n.Topology
		default:
			return nil, fmt.Errorf("%s: topology %q: %w", name, n.Topology, ErrInvalid)
		}
		if n.MaxLeg != nil {
			if *n.MaxLeg <= 0 {
				return nil, fmt.Errorf("%s: max_leg must be positive, got %g: %w", name, *n.MaxLeg, ErrInvalid)
			}
			fleet.MaxLeg = *n.MaxLeg
		}
	}
	if fleet.Topology == TopologyExplicit && len(parsed.Edges) == 0 {
		return nil, fmt.Errorf("%s: explicit topology without edge blocks: %w", name, ErrInvalid)
	}

	airports := builder.DefaultAirports()
	if len(parsed.Airports) > 0 {
		airports = make([]core.Airport, len(parsed.Airports))
		for i, a := range parsed.Airports {
			airports[i] = core.Airport{Code: a.Code, Position: core.Position{X: a.X, Y: a.Y}}
		}
	}
	g, err := builder.BuildGraph(nil, builder.Airports(airports))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	snap := g.Snapshot()
	ectx := evalContext(snap)

	var cons []builder.Constructor
	switch fleet.Topology {
	case TopologyComplete:
		cons = append(cons, builder.Complete())
	case TopologyHub:
		if fleet.Hubs, err = resolveHubs(parsed.Network.Hubs, ectx, snap); err != nil {
			return nil, fmt.Errorf("%s: hubs: %w", name, err)
		}
		cons = append(cons, builder.HubAndSpoke(fleet.Hubs...))
	}

	edges := make([]builder.EdgeSpec, 0, len(parsed.Edges))
	for i, e := range parsed.Edges {
		u, v, err := resolvePair(e.From, e.To, ectx, snap)
		if err != nil {
			return nil, fmt.Errorf("%s: edge %d: %w", name, i, err)
		}
		spec := builder.EdgeSpec{U: u, V: v, Weight: builder.AutoWeight}
		if e.Weight != nil {
			if *e.Weight < 0 {
				return nil, fmt.Errorf("%s: edge %d: weight %g: %w: %w", name, i, *e.Weight, ErrInvalid, core.ErrBadWeight)
			}
			spec.Weight = *e.Weight
		}
		edges = append(edges, spec)
	}
	cons = append(cons, builder.Edges(edges))

	var bopts []builder.BuilderOption
	if st := parsed.Storms; st != nil {
		seed := time.Now().UnixNano()
		if st.Seed != nil {
			seed = *st.Seed
		}
		bopts = append(bopts, builder.WithSeed(seed))
		cons = append(cons, builder.RandomStorms(st.Probability, st.Descriptions...))
	}

	updates := make([]core.WeatherUpdate, 0, len(parsed.Weather))
	for i, w := range parsed.Weather {
		u, v, err := resolvePair(w.From, w.To, ectx, snap)
		if err != nil {
			return nil, fmt.Errorf("%s: weather %d: %w", name, i, err)
		}
		wx, err := weatherOf(w.Condition, w.Description)
		if err != nil {
			return nil, fmt.Errorf("%s: weather %d: %w", name, i, err)
		}
		updates = append(updates, core.WeatherUpdate{U: u, V: v, Weather: wx})
	}
	cons = append(cons, builder.Hazards(updates))

	if err = builder.Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if r := parsed.Route; r != nil {
		u, v, err := resolvePair(r.From, r.To, ectx, snap)
		if err != nil {
			return nil, fmt.Errorf("%s: route: %w", name, err)
		}
		fleet.Route = &Route{From: u, To: v}
	}
	fleet.Graph = g

	ctxlog.FromContext(ctx).Info("Fleet loaded",
		"file", name,
		"airports", g.Order(),
		"topology", fleet.Topology,
		"hazards", len(g.Hazards()),
	)

	return fleet, nil
}

// evalContext exposes `airports.<CODE>` = index to endpoint expressions.
func evalContext(snap core.Snapshot) *hcl.EvalContext {
	idx := make(map[string]cty.Value, snap.Order())
	for i, a := range snap.Nodes() {
		idx[a.Code] = cty.NumberIntVal(int64(i))
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"airports": cty.ObjectVal(idx),
		},
	}
}

func resolvePair(from, to hcl.Expression, ectx *hcl.EvalContext, snap core.Snapshot) (int, int, error) {
	u, err := resolveEndpoint(from, ectx, snap)
	if err != nil {
		return -1, -1, fmt.Errorf("from: %w", err)
	}
	v, err := resolveEndpoint(to, ectx, snap)
	if err != nil {
		return -1, -1, fmt.Errorf("to: %w", err)
	}

	return u, v, nil
}

// resolveHubs evaluates the hubs list; a hub topology needs at least one.
func resolveHubs(expr hcl.Expression, ectx *hcl.EvalContext, snap core.Snapshot) ([]int, error) {
	val, diags := expr.Value(ectx)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, diags)
	}
	if val.IsNull() || !val.CanIterateElements() || val.LengthInt() == 0 {
		return nil, fmt.Errorf("hub topology needs a non-empty hubs list: %w", ErrInvalid)
	}

	hubs := make([]int, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		h, err := resolveValue(ev, snap)
		if err != nil {
			return nil, err
		}
		hubs = append(hubs, h)
	}

	return hubs, nil
}

// resolveEndpoint evaluates expr: strings resolve through ResolveAirport,
// numbers must be whole indices in range.
func resolveEndpoint(expr hcl.Expression, ectx *hcl.EvalContext, snap core.Snapshot) (int, error) {
	val, diags := expr.Value(ectx)
	if diags.HasErrors() {
		return -1, fmt.Errorf("%w: %w", ErrInvalid, diags)
	}

	return resolveValue(val, snap)
}

func resolveValue(val cty.Value, snap core.Snapshot) (int, error) {
	if val.IsNull() || !val.IsKnown() {
		return -1, fmt.Errorf("endpoint is null: %w", ErrInvalid)
	}

	switch val.Type() {
	case cty.String:
		return ResolveAirport(snap, val.AsString())
	case cty.Number:
		var i int
		if err := gocty.FromCtyValue(val, &i); err != nil {
			return -1, fmt.Errorf("endpoint index: %w: %w", ErrInvalid, err)
		}
		return checkIndex(snap, i)
	default:
		return -1, fmt.Errorf("endpoint must be a string or a number, got %s: %w", val.Type().FriendlyName(), ErrInvalid)
	}
}

// ResolveAirport maps user input to an airport index. All-digit input is an
// index; anything else is a code, matched exactly and then upper-cased.
func ResolveAirport(snap core.Snapshot, input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return -1, fmt.Errorf("empty airport: %w", ErrUnknownAirport)
	}
	if i, err := strconv.Atoi(input); err == nil {
		return checkIndex(snap, i)
	}
	if i, err := snap.IndexOf(input); err == nil {
		return i, nil
	}
	i, err := snap.IndexOf(strings.ToUpper(input))
	if err != nil {
		return -1, fmt.Errorf("%q: %w: %w", input, ErrUnknownAirport, err)
	}

	return i, nil
}

func checkIndex(snap core.Snapshot, i int) (int, error) {
	if i < 0 || i >= snap.Order() {
		return -1, fmt.Errorf("index %d not in [0,%d): %w: %w", i, snap.Order(), ErrUnknownAirport, core.ErrOutOfRange)
	}

	return i, nil
}

// weatherOf maps a condition keyword to the weather variant.
func weatherOf(condition, description string) (core.Weather, error) {
	switch strings.ToLower(condition) {
	case ConditionBad:
		if description == "" {
			description = DefaultBadDescription
		}
		return core.Hazard(description), nil
	case ConditionGood, ConditionClear:
		if description == "" {
			description = DefaultClearDescription
		}
		return core.Clear(description), nil
	default:
		return core.Weather{}, fmt.Errorf("condition %q: %w", condition, ErrInvalid)
	}
}
