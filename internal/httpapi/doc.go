// Package httpapi exposes the routing engine over JSON HTTP.
//
// Routes (gorilla/mux):
//
//	GET  /health                 liveness probe
//	GET  /api/airports           airports in index order
//	GET  /api/weather            every hazardous linked pair
//	POST /api/weather            set the weather of one pair
//	GET  /api/route?from=&to=    route decision; endpoints are codes or indices
//
// Routing requests are serialized by the Service; weather writes go straight
// to the live graph, which is safe for concurrent use.
package httpapi
