// File: methods_edges.go
// Role: Route lifecycle & queries over the adjacency lists.
//
// Policy:
//   - Undirected routes are stored as two mirrored entries, added and removed together.
//   - Parallel routes are kept: a second AddEdge between the same pair appends again.
//   - Lookups (HasEdge, EdgeWeight) and removals act on the first matching entry.

package core

import (
	"fmt"
	"math"
)

// AddEdge adds a route origin→destination with the given weight; undirected
// graphs also store destination→origin. A negative weight is replaced by its
// absolute value with a warning. Returns ErrStationNotFound, naming the missing
// endpoint, when either station is unknown.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(origin, destination int, weight float64) error {
	if !g.HasStation(origin) {
		g.log.Error("cannot add route: origin missing", "origin", origin, "destination", destination)
		return fmt.Errorf("%w: origin %d", ErrStationNotFound, origin)
	}
	if !g.HasStation(destination) {
		g.log.Error("cannot add route: destination missing", "origin", origin, "destination", destination)
		return fmt.Errorf("%w: destination %d", ErrStationNotFound, destination)
	}
	if weight < 0 {
		g.log.Warn("negative route weight, using absolute value",
			"origin", origin, "destination", destination, "weight", weight)
		weight = math.Abs(weight)
	}

	g.adjacency[origin] = append(g.adjacency[origin], Neighbor{ID: destination, Weight: weight})
	if !g.directed {
		g.adjacency[destination] = append(g.adjacency[destination], Neighbor{ID: origin, Weight: weight})
	}

	return nil
}

// RemoveEdge removes the first origin→destination entry and, for undirected
// graphs, the first destination→origin entry. Any accident on the removed
// route is dropped. It reports whether anything was removed.
// Complexity: O(deg(origin) + deg(destination)).
func (g *Graph) RemoveEdge(origin, destination int) bool {
	removed := g.removeFirst(origin, destination)
	if !g.directed && g.removeFirst(destination, origin) {
		removed = true
	}

	return removed
}

// removeFirst deletes the first entry from→to and reports success. An accident
// on that direction goes with it.
func (g *Graph) removeFirst(from, to int) bool {
	i := g.indexOf(from, to)
	if i < 0 {
		return false
	}
	list := g.adjacency[from]
	g.adjacency[from] = append(list[:i], list[i+1:]...)
	delete(g.accidents, Route{From: from, To: to})

	return true
}

// indexOf returns the position of the first entry from→to, or -1.
func (g *Graph) indexOf(from, to int) int {
	for i, nb := range g.adjacency[from] {
		if nb.ID == to {
			return i
		}
	}

	return -1
}

// HasEdge reports whether a direct route origin→destination is stored.
// Complexity: O(deg(origin)).
func (g *Graph) HasEdge(origin, destination int) bool {
	return g.indexOf(origin, destination) >= 0
}

// EdgeWeight returns the live weight of the first origin→destination entry, or
// +Inf when there is none.
// Complexity: O(deg(origin)).
func (g *Graph) EdgeWeight(origin, destination int) float64 {
	i := g.indexOf(origin, destination)
	if i < 0 {
		return math.Inf(1)
	}

	return g.adjacency[origin][i].Weight
}

// Neighbors returns a copy of the adjacency list of id in insertion order, or
// nil when id is unknown. Parallel routes appear once per entry.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) []Neighbor {
	list, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	out := make([]Neighbor, len(list))
	copy(out, list)

	return out
}

// Degree returns the number of adjacency entries of id (0 when unknown).
func (g *Graph) Degree(id int) int { return len(g.adjacency[id]) }

// Edges enumerates routes in discovery order: stations by ascending ID, then
// each adjacency list in insertion order. Undirected graphs report each station
// pair once, keyed by its canonical form, so the first entry found wins.
// Complexity: O(V log V + E).
func (g *Graph) Edges() []Edge {
	var (
		edges []Edge
		seen  map[Route]struct{}
	)
	if !g.directed {
		seen = make(map[Route]struct{})
	}

	for _, from := range g.StationIDs() {
		for _, nb := range g.adjacency[from] {
			if !g.directed {
				key := Route{From: from, To: nb.ID}.Canonical()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
			}
			edges = append(edges, Edge{From: from, To: nb.ID, Weight: nb.Weight})
		}
	}

	return edges
}

// EdgeCount returns len(Edges()).
func (g *Graph) EdgeCount() int { return len(g.Edges()) }

// setFirstWeight overwrites the weight of the first from→to entry.
func (g *Graph) setFirstWeight(from, to int, weight float64) bool {
	i := g.indexOf(from, to)
	if i < 0 {
		return false
	}
	g.adjacency[from][i].Weight = weight

	return true
}
