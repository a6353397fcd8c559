// Package builder assembles airport networks from reusable constructors.
//
// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from functional options, and applies constructors in order:
//
//	g, err := builder.BuildGraph(nil,
//	    builder.Airports(builder.DefaultAirports()),
//	    builder.Complete(),
//	)
//
// Key components:
//
//   - Constructors:
//     – Airports(list):  adds airports in list order (index = position in list).
//     – Complete():      links every pair i<j with cfg.weightFn(a_i, a_j).
//     – Edges(list):     links explicit pairs; AutoWeight derives the weight.
//     – Hazards(list):   applies weather updates as one atomic batch.
//     – HubAndSpoke(hubs...): links every airport to each hub.
//     – RandomStorms(p):  marks each linked pair hazardous with probability p
//       (needs WithSeed or WithRand when 0 < p < 1).
//   - Weight functions (WeightFn implementations):
//     – EuclideanWeight:  straight-line distance between positions (default).
//     – ConstantWeightFn: fixed user-provided value.
//     – ScaledWeightFn:   EuclideanWeight multiplied by a factor.
//   - Fleet:
//     – DefaultAirports(): the 15-airport demonstration fleet.
//     – DefaultFleet():    DefaultAirports() joined by Complete().
//
// Guarantees:
//
//   - Determinism: identical inputs, seed and constructor order yield
//     identical graphs.
//   - Option constructors panic on meaningless inputs; constructors return
//     sentinel errors (ErrTooFewVertices, ErrConstructFailed,
//     ErrInvalidProbability, ErrNeedRandSource) wrapped with %w.
package builder
