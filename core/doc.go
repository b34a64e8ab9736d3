// Package core provides the in-memory transit network: stations with map
// coordinates, weighted routes between them, and a runtime overlay of closures
// and accidents.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected routes (WithDirected)
//   - Parallel routes: AddEdge never deduplicates, so repeated calls add
//     repeated adjacency entries that neighbor enumeration reports
//   - Non-negative weights: a negative weight is coerced to its absolute value
//   - Closures: stations and routes marked unusable without being deleted
//   - Accidents: a percentage weight increase per route, restorable exactly
//   - Structured diagnostics through log/slog (WithLogger)
//
// Determinism:
//
//	Stations(), StationIDs() and Edges() enumerate stations by ascending ID and
//	each adjacency list in insertion order. Algorithm packages iterate the same
//	way, so every traversal order and tie-break is reproducible.
//
// Core Methods:
//
//	// Station lifecycle
//	AddStation(s Station) (replaced bool)   // O(1), overwrite by ID is allowed
//	RemoveStation(id int) error             // O(V+E), cascades to incoming routes and the overlay
//	HasStation(id int) bool                 // O(1)
//	Station(id int) (Station, bool)         // O(1), owned copy
//
//	// Route lifecycle
//	AddEdge(origin, destination int, weight float64) error // O(1)
//	RemoveEdge(origin, destination int) bool               // O(deg)
//	HasEdge(origin, destination int) bool                  // O(deg)
//	EdgeWeight(origin, destination int) float64            // O(deg), +Inf if absent
//	Neighbors(id int) []Neighbor                           // O(deg)
//	Edges() []Edge                                         // O(V log V + E)
//
//	// Closure overlay
//	CloseStation / OpenStation / CloseRoute / OpenRoute / ClearClosures
//	IsStationClosed / IsRouteClosed (symmetric) / ClosedStations / ClosedRoutes
//
//	// Accident overlay
//	ApplyAccident(origin, destination int, percent float64) error
//	RestoreOriginalWeights() bool / ClearAccidents() / AffectedRoutes()
//
//	// Live view, used by bfs, dfs, dijkstra and prim_kruskal
//	CanVisit(id int) bool
//	CanTraverse(from, to int) bool
//
// Errors:
//
//	ErrStationNotFound – unknown station ID
//	ErrEdgeNotFound    – no direct route (accidents)
//	ErrAccidentActive  – second accident on the same route
//	ErrBadIncrement    – negative or NaN accident increment
//
// Every failing call also logs a diagnostic naming the offending IDs. Graph is
// not safe for concurrent use.
package core
