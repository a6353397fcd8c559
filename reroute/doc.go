// Package reroute decides which route a flight takes when weather closes
// part of the network.
//
// A Policy runs a small state machine once per request:
//
//	DIRECT ──(no safe route)───────────────────────────────► TERMINAL([], false)
//	   │  ──(unconstrained route crosses no hazard)────────► TERMINAL(aware, false)
//	   ▼
//	HAZARD_DETECTED ──(aware ≠ direct)──► LOCAL_PATCH ──(aware is clean)──► TERMINAL(aware, true)
//	   │                                     │
//	   │ (aware = direct)                    │ (aware still crosses a hazard)
//	   ▼                                     ▼
//	GLOBAL_SAFE ◄─────────────────────────────┘
//	   │  ──(route with every hazard removed)─────────────► TERMINAL(safe, true)
//	   ▼
//	BEST_EFFORT ─────────────────────────────────────────► TERMINAL(aware, true, degraded)
//
// "aware" is the solve over the snapshot as-is, where hazardous pairs are
// unavailable. "direct" is the solve over the same snapshot with every pair
// forced available; it tells a weather closure apart from a topological one.
//
// Every probe is a copy of the snapshot taken at the start of the request;
// the live core.Graph is never modified.
//
// Routing outcomes, including "no route" and degraded best-effort routes,
// are returned as data in Decision. Only caller-contract violations are
// errors: ErrNilGraph and ErrOutOfRange.
//
// Logging goes through the *slog.Logger carried by the request context
// (see internal/ctxlog): transitions at Debug, reroutes at Info and
// best-effort results at Warn.
package reroute
