// Package skyroute is a weather-aware flight routing engine: a small network
// of airports, pairwise flight legs with distances, and per-leg weather that
// can close a leg at any time.
//
// 🚀 What is inside?
//
//	A thread-safe graph store plus a rerouting policy on top of Dijkstra:
//		• Graph store: airports, legs, weather, isolated snapshots
//		• Shortest paths: Dijkstra with availability and range limits
//		• Rerouting: a state machine that avoids hazardous legs
//		• Builders: the default 15-airport fleet, explicit networks
//		• Surfaces: a command-line report, an HCL fleet file, a JSON HTTP API
//
// Packages:
//
//	matrix/    - generic dense square matrices backing the graph store
//	core/      - Graph (live, RW-locked) and Snapshot (immutable copy)
//	dijkstra/  - single-pair shortest path over any dijkstra.Network
//	reroute/   - DIRECT → HAZARD_DETECTED → LOCAL_PATCH / GLOBAL_SAFE → BEST_EFFORT
//	builder/   - functional constructors and weight functions
//	cmd/skyroute - the command-line program
//
// Quick ASCII example, a storm on JFK–LAX:
//
//	   JFK ─────── ORD
//	     ╲  ⛈      │
//	      ╲        │
//	       ╲       │
//	        LAX ───┘
//
// The direct JFK → LAX leg is hazardous, so the policy reroutes through
// ORD and reports the avoided segment.
//
//	go run github.com/katalvlaran/skyroute/cmd/skyroute -weather JFK-LAX=Thunderstorm JFK LAX
package skyroute
