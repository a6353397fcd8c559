package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Topology values accepted by the network block.
const (
	TopologyComplete = "complete"
	TopologyExplicit = "explicit"
	TopologyHub      = "hub"
)

// Weather conditions accepted by the weather block.
const (
	ConditionBad   = "bad"
	ConditionGood  = "good"
	ConditionClear = "clear"
)

// hclFleetFile is the top-level structure of a fleet file for decoding.
type hclFleetFile struct {
	Network  *hclNetwork   `hcl:"network,block"`
	Airports []*hclAirport `hcl:"airport,block"`
	Edges    []*hclEdge    `hcl:"edge,block"`
	Weather  []*hclWeather `hcl:"weather,block"`
	Storms   *hclStorms    `hcl:"storms,block"`
	Route    *hclRoute     `hcl:"route,block"`
}

type hclNetwork struct {
	Topology string         `hcl:"topology,optional"`
	MaxLeg   *float64       `hcl:"max_leg,optional"`
	Hubs     hcl.Expression `hcl:"hubs,optional"`
}

type hclAirport struct {
	Code string  `hcl:"code,label"`
	X    float64 `hcl:"x"`
	Y    float64 `hcl:"y"`
}

type hclEdge struct {
	From   hcl.Expression `hcl:"from,attr"`
	To     hcl.Expression `hcl:"to,attr"`
	Weight *float64       `hcl:"weight,optional"`
}

type hclWeather struct {
	From        hcl.Expression `hcl:"from,attr"`
	To          hcl.Expression `hcl:"to,attr"`
	Condition   string         `hcl:"condition"`
	Description string         `hcl:"description,optional"`
}

type hclStorms struct {
	Probability  float64  `hcl:"probability"`
	Seed         *int64   `hcl:"seed,optional"`
	Descriptions []string `hcl:"descriptions,optional"`
}

type hclRoute struct {
	From hcl.Expression `hcl:"from,attr"`
	To   hcl.Expression `hcl:"to,attr"`
}
