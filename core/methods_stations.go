// File: methods_stations.go
// Role: Station lifecycle & queries.
//
// Determinism:
//   - Stations() and StationIDs() are sorted by ascending ID.

package core

import (
	"fmt"
	"sort"
)

// AddStation inserts s, or overwrites the station stored under the same ID, and
// reports whether an existing station was replaced. An adjacency entry is created
// when missing; existing routes of a replaced station are kept.
// Complexity: O(1) amortized.
func (g *Graph) AddStation(s Station) (replaced bool) {
	if _, replaced = g.stations[s.ID]; replaced {
		g.log.Info("station exists, updating", "station", s.ID, "name", s.Name)
	}
	g.stations[s.ID] = s
	if _, ok := g.adjacency[s.ID]; !ok {
		g.adjacency[s.ID] = []Neighbor{}
	}

	return replaced
}

// RemoveStation deletes the station, its adjacency list, and every route of any
// other station that points at it, together with the closures and accidents
// that involve it. Returns ErrStationNotFound when id is unknown.
// Complexity: O(V + E).
func (g *Graph) RemoveStation(id int) error {
	if _, ok := g.stations[id]; !ok {
		g.log.Error("cannot remove station", "station", id, "err", ErrStationNotFound)
		return fmt.Errorf("%w: %d", ErrStationNotFound, id)
	}

	delete(g.stations, id)
	delete(g.adjacency, id)

	// Strip every entry targeting id, preserving the order of the rest.
	for from, list := range g.adjacency {
		kept := list[:0]
		for _, nb := range list {
			if nb.ID != id {
				kept = append(kept, nb)
			}
		}
		g.adjacency[from] = kept
	}

	delete(g.closedStations, id)
	for key := range g.closedRoutes {
		if key.From == id || key.To == id {
			delete(g.closedRoutes, key)
		}
	}
	for key := range g.accidents {
		if key.From == id || key.To == id {
			delete(g.accidents, key)
		}
	}

	return nil
}

// HasStation reports whether a station with the given ID is stored.
func (g *Graph) HasStation(id int) bool {
	_, ok := g.stations[id]
	return ok
}

// Station returns a copy of the station stored under id and true, or the zero
// Station and false.
func (g *Graph) Station(id int) (Station, bool) {
	s, ok := g.stations[id]
	return s, ok
}

// Stations returns all stations sorted by ID.
// Complexity: O(V log V).
func (g *Graph) Stations() []Station {
	out := make([]Station, 0, len(g.stations))
	for _, s := range g.stations {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// StationIDs returns all station IDs in ascending order. This is the iteration
// order every algorithm package uses.
// Complexity: O(V log V).
func (g *Graph) StationIDs() []int {
	ids := make([]int, 0, len(g.stations))
	for id := range g.stations {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// StationCount returns the number of stored stations.
func (g *Graph) StationCount() int { return len(g.stations) }

// MaxStationID returns the largest stored station ID, or 0 for an empty graph.
func (g *Graph) MaxStationID() int {
	maxID, first := 0, true
	for id := range g.stations {
		if first || id > maxID {
			maxID, first = id, false
		}
	}

	return maxID
}

// IsEmpty reports whether the graph holds no stations.
func (g *Graph) IsEmpty() bool { return len(g.stations) == 0 }

// Clear drops all stations, routes, closures and accidents. Directedness and the
// logger are preserved.
func (g *Graph) Clear() {
	g.stations = make(map[int]Station)
	g.adjacency = make(map[int][]Neighbor)
	g.closedStations = make(map[int]struct{})
	g.closedRoutes = make(map[Route]Route)
	g.accidents = make(map[Route]accidentRecord)
}
