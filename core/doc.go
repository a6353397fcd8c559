// Package core provides the airport graph store: a small, dense, thread-safe
// in-memory graph whose edges carry a fixed weight plus mutable availability
// and weather state.
//
// The Graph G = (V,E) is stored as four parallel N×N matrices:
//
//   - weight[u][v]     – non-negative leg distance, fixed when the edge is added
//   - linked[u][v]     – whether an edge exists at all (the adjacency relation)
//   - available[u][v]  – whether a solver may traverse the edge right now
//   - weather[u][v]    – Clear or Hazard(description)
//
// All four are symmetric. The coupling available == !weather.IsBad() is
// enforced at a single choke point: UpdateWeather / SetWeather / Apply.
// Nothing outside this package can write the matrices directly.
//
// Why snapshots?
//
//   - Routing never reads the live graph. Snapshot() deep-copies the matrices
//     under a read lock, and every probe (WithAllAvailable, WithoutHazards)
//     returns a fresh Snapshot with its own availability table.
//   - Writers take the exclusive lock, so a snapshot never observes a torn
//     weather update.
//
// Core Methods:
//
//	// Construction
//	NewGraph() *Graph
//	AddNode(code string, pos Position) (int, error)     // O(N²) matrix growth
//	AddEdge(u, v int, weight float64) error              // O(1)
//
//	// Weather (the only mutation after construction)
//	UpdateWeather(u, v int, isBad bool, desc string) error
//	SetWeather(u, v int, w Weather) error
//	Apply(updates ...WeatherUpdate) error                // all-or-nothing
//
//	// Queries
//	Order() int
//	Node(i int) (Airport, error)
//	IndexOf(code string) (int, error)
//	HasHazard(p Path) (bool, error)
//	HazardSegments(p Path) ([]Segment, error)
//	Hazards() []Segment
//	Snapshot() Snapshot
//
// Errors:
//
//	ErrEmptyCode      – zero-length airport code
//	ErrDuplicateCode  – airport code already registered
//	ErrUnknownCode    – code lookup failed
//	ErrOutOfRange     – node index outside [0, N)
//	ErrSelfLoop       – edge or weather update with u == v
//	ErrBadWeight      – negative, NaN or infinite weight
package core
