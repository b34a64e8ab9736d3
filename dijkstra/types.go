// Package dijkstra defines the result type, options and sentinel errors for
// single-source shortest paths over a transit core.Graph.
//
// Complexity:
//
//	– Time:  O(V² + E): every round scans all stations for the closest unvisited one.
//	– Space: O(V) for the distance, predecessor and visited tables.
//
// Options:
//
//	– MaxDistance:      stations farther than this stay unexplored (+Inf).
//	– InfEdgeThreshold: routes with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrStationNotFound if the source (or a PathTo destination) is not in the graph.
//	– ErrUnreachable     if PathTo is asked for a station at +Inf.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStationNotFound indicates an unknown source or destination station.
	ErrStationNotFound = errors.New("dijkstra: station not found")

	// ErrUnreachable indicates that no open path reaches the destination.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every route as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// NoPredecessor marks the source and every unreached station in Result.Prev.
const NoPredecessor = -1

// Options configures a Dijkstra run.
type Options struct {
	// MaxDistance stops the search once the closest unvisited station is farther.
	MaxDistance float64

	// InfEdgeThreshold treats routes with weight >= the threshold as walls.
	InfEdgeThreshold float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns unlimited distance and no impassable threshold.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithMaxDistance caps the explored radius.
func WithMaxDistance(d float64) Option {
	return func(o *Options) { o.MaxDistance = d }
}

// WithInfEdgeThreshold marks routes at or above t as impassable.
func WithInfEdgeThreshold(t float64) Option {
	return func(o *Options) { o.InfEdgeThreshold = t }
}

func (o Options) validate() error {
	if o.MaxDistance < 0 || math.IsNaN(o.MaxDistance) {
		return fmt.Errorf("%w: %v", ErrBadMaxDistance, o.MaxDistance)
	}
	if o.InfEdgeThreshold <= 0 || math.IsNaN(o.InfEdgeThreshold) {
		return fmt.Errorf("%w: %v", ErrBadInfThreshold, o.InfEdgeThreshold)
	}
	return nil
}

// Result holds distances and predecessors from one source station.
type Result struct {
	// Source is the start station.
	Source int

	// Dist maps every station to its shortest distance (+Inf if unreachable).
	Dist map[int]float64

	// Prev maps every station to its predecessor on the shortest path;
	// NoPredecessor for the source and for unreached stations.
	Prev map[int]int
}

// Distance returns the shortest distance to dest, +Inf when unknown or unreachable.
func (r *Result) Distance(dest int) float64 {
	d, ok := r.Dist[dest]
	if !ok {
		return math.Inf(1)
	}
	return d
}

// PathTo walks predecessors from dest back to the source and returns the
// path source → dest. The source is prepended exactly once.
func (r *Result) PathTo(dest int) ([]int, error) {
	d, ok := r.Dist[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrStationNotFound, dest)
	}
	if math.IsInf(d, 1) {
		return nil, fmt.Errorf("%w: %d from %d", ErrUnreachable, dest, r.Source)
	}

	var path []int
	for cur := dest; cur != r.Source; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	path = append(path, r.Source)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
