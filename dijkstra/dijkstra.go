// Package dijkstra implements Dijkstra's shortest-path algorithm on a transit
// core.Graph, honoring its closure overlay and the live (accident-adjusted)
// route weights.
//
// The search is the classic array variant: each round scans every station for
// the unvisited one with the smallest finite tentative distance (ties go to the
// lowest station ID), marks it visited, then relaxes its open routes. A closed
// station can still be selected; it is marked visited and left inert, so no
// path ever passes through it.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/urbanpath/core"
)

// Dijkstra computes the shortest distance from source to every station of g.
// Unreachable stations map to +Inf.
func Dijkstra(g *core.Graph, source int, opts ...Option) (map[int]float64, error) {
	res, err := DijkstraWithPath(g, source, opts...)
	if err != nil {
		return nil, err
	}
	return res.Dist, nil
}

// DijkstraWithPath computes distances and the predecessor map from source.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  3. g must contain source (ErrStationNotFound, logged).
func DijkstraWithPath(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1. Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if !g.HasStation(source) {
		g.Logger().Error("dijkstra: source station not found", "station", source)
		return nil, fmt.Errorf("%w: %d", ErrStationNotFound, source)
	}

	// 2. Initialize every station at +Inf with no predecessor.
	ids := g.StationIDs()
	res := &Result{
		Source: source,
		Dist:   make(map[int]float64, len(ids)),
		Prev:   make(map[int]int, len(ids)),
	}
	for _, id := range ids {
		res.Dist[id] = math.Inf(1)
		res.Prev[id] = NoPredecessor
	}
	res.Dist[source] = 0
	visited := make(map[int]bool, len(ids))

	// 3. Main loop: one station settled per round.
	for range ids {
		// 3a. Closest unvisited station; ascending ID scan keeps ties on the lowest.
		u, best := NoPredecessor, math.Inf(1)
		for _, id := range ids {
			if !visited[id] && res.Dist[id] < best {
				u, best = id, res.Dist[id]
			}
		}
		if u == NoPredecessor || best > o.MaxDistance {
			break
		}

		// 3b. Settle it; a closed station stays inert.
		visited[u] = true
		if !g.CanVisit(u) {
			continue
		}

		// 3c. Relax open routes.
		for _, nb := range g.Neighbors(u) {
			if visited[nb.ID] || !g.CanTraverse(u, nb.ID) || nb.Weight >= o.InfEdgeThreshold {
				continue
			}
			if alt := best + nb.Weight; alt < res.Dist[nb.ID] {
				res.Dist[nb.ID] = alt
				res.Prev[nb.ID] = u
			}
		}
	}

	// 4. Anything past MaxDistance was never settled; report it unreachable.
	if !math.IsInf(o.MaxDistance, 1) {
		for _, id := range ids {
			if !visited[id] {
				res.Dist[id] = math.Inf(1)
				res.Prev[id] = NoPredecessor
			}
		}
	}

	return res, nil
}
