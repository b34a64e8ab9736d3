// Package core defines the Station, Edge, Neighbor, Route and Graph types of a
// transit network and the sentinel errors returned by graph operations.
//
// This file declares the value types, the Graph struct with its overlay state,
// GraphOption and the NewGraph constructor.
//
// Errors:
//
//	ErrStationNotFound - an operation referenced an unknown station ID.
//	ErrEdgeNotFound    - no direct route exists between the two stations.
//	ErrAccidentActive  - the route already carries an active accident.
//	ErrBadIncrement    - an accident increment is negative or NaN.
package core

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for core graph operations.
var (
	// ErrStationNotFound indicates an operation referenced a non-existent station.
	ErrStationNotFound = errors.New("core: station not found")

	// ErrEdgeNotFound indicates that no direct route joins the two stations.
	ErrEdgeNotFound = errors.New("core: route not found")

	// ErrAccidentActive indicates a second accident on an already affected route.
	ErrAccidentActive = errors.New("core: route already has an active accident")

	// ErrBadIncrement indicates an accident increment that is negative or NaN.
	ErrBadIncrement = errors.New("core: accident increment must be a non-negative number")
)

// Station is a vertex of the transit network.
//
// Identity and ordering are defined solely by ID; Name and the X/Y map
// coordinates are payload.
type Station struct {
	// ID is the unique key of the station, positive by convention.
	ID int

	// Name is the display name.
	Name string

	// X and Y position the station on the network map.
	X, Y float64
}

// Less orders stations by ID.
func (s Station) Less(other Station) bool { return s.ID < other.ID }

// String renders the station as "ID: Name (X, Y)".
func (s Station) String() string {
	return fmt.Sprintf("%d: %s (%.1f, %.1f)", s.ID, s.Name, s.X, s.Y)
}

// Neighbor is a single adjacency entry: the station reached and the live weight.
type Neighbor struct {
	ID     int
	Weight float64
}

// Edge is a derived weighted connection From→To. It is produced by Edges() and
// by the MST algorithms; it is never stored.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Route is an ordered pair of station IDs. Closure checks treat (a,b) and (b,a)
// as the same route; accident bookkeeping uses the order given.
type Route struct {
	From int
	To   int
}

// Canonical returns the route with the smaller ID first.
func (r Route) Canonical() Route {
	if r.From > r.To {
		return Route{From: r.To, To: r.From}
	}

	return r
}

// Reverse returns the route with its endpoints swapped.
func (r Route) Reverse() Route { return Route{From: r.To, To: r.From} }

// String renders the route as "From-To".
func (r Route) String() string { return fmt.Sprintf("%d-%d", r.From, r.To) }

// Accident reports an active weight increase on a route.
type Accident struct {
	// Route is the route as it was passed to ApplyAccident.
	Route Route

	// Original is the pre-accident weight that RestoreOriginalWeights brings back.
	Original float64

	// Current is the live, increased weight.
	Current float64

	// Percent is the increment that was applied.
	Percent float64
}

// accidentRecord is the bookkeeping kept per stored direction of an affected route.
type accidentRecord struct {
	applied  Route   // route as passed to ApplyAccident
	original float64 // weight before the accident, for this direction
	percent  float64 // increment applied
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected selects directed (true) or undirected (false, the default) routes.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLogger sets the logger that receives diagnostics (missing stations,
// coerced weights, overwrites, closures). A nil logger is ignored.
func WithLogger(logger *slog.Logger) GraphOption {
	return func(g *Graph) {
		if logger != nil {
			g.log = logger
		}
	}
}

// Graph is the transit network: stations, weighted adjacency, and the closure and
// accident overlay consulted by the traversal, shortest-path and MST packages.
//
// Graph performs no locking. It is meant to be owned by a single goroutine;
// callers that share one across goroutines must guard it themselves.
type Graph struct {
	directed bool
	log      *slog.Logger

	// Storage
	stations  map[int]Station    // station ID → Station
	adjacency map[int][]Neighbor // station ID → neighbors in insertion order

	// Overlay
	closedStations map[int]struct{}         // closed station IDs
	closedRoutes   map[Route]Route          // canonical pair → route as closed
	accidents      map[Route]accidentRecord // stored direction → pre-accident state
}

// NewGraph creates an empty Graph. By default it is undirected and discards
// diagnostics.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		log:            slog.New(slog.DiscardHandler),
		stations:       make(map[int]Station),
		adjacency:      make(map[int][]Neighbor),
		closedStations: make(map[int]struct{}),
		closedRoutes:   make(map[Route]Route),
		accidents:      make(map[Route]accidentRecord),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether routes are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Logger returns the logger used for diagnostics; algorithm packages log
// through it too.
func (g *Graph) Logger() *slog.Logger { return g.log }
