package report

import (
	"math"

	"github.com/katalvlaran/urbanpath/bfs"
	"github.com/katalvlaran/urbanpath/core"
	"github.com/katalvlaran/urbanpath/dfs"
	"github.com/katalvlaran/urbanpath/prim_kruskal"
)

// MST runs Kruskal and Prim on the live network and reports both trees and
// the difference between their weights.
func MST(w *Writer, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	w.Header("MINIMUM SPANNING TREE REPORT")
	if g.IsEmpty() {
		w.Printf("No stations in the system.\n")
		w.Footer()
		return w.Err()
	}

	kruskal, kw, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return err
	}
	prim, pw, err := prim_kruskal.Prim(g)
	if err != nil {
		return err
	}

	w.Section("KRUSKAL'S ALGORITHM")
	w.Printf("Selected edges (by weight):\n")
	treeEdges(w, kruskal)
	w.Printf("\nTotal weight (Kruskal): %.1f\n", kw)
	w.Printf("Total edges: %d\n", len(kruskal))

	w.Section("PRIM'S ALGORITHM")
	w.Printf("Selected edges (in construction order):\n")
	treeEdges(w, prim)
	w.Printf("\nTotal weight (Prim): %.1f\n", pw)
	w.Printf("Total edges: %d\n", len(prim))

	w.Section("COMPARISON")
	w.Printf("Kruskal weight: %.1f\n", kw)
	w.Printf("Prim weight: %.1f\n", pw)
	w.Printf("Difference: %.4f\n", math.Abs(kw-pw))
	if len(kruskal) < len(openStations(g))-1 {
		w.Printf("Note: the live network is disconnected; Kruskal spans every component, Prim only the first.\n")
	} else {
		w.Printf("Note: both algorithms must produce the same total weight.\n")
	}
	w.Footer()

	return w.Err()
}

func treeEdges(w *Writer, edges []core.Edge) {
	for i, e := range edges {
		w.Printf("  %d. (%d, %d) - Weight: %.1f\n", i+1, e.From, e.To, e.Weight)
	}
}

// Connectivity lists every station's direct connections, then tests
// reachability with a BFS from the lowest open station and groups the open
// stations into DFS components.
func Connectivity(w *Writer, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	w.Header("SYSTEM CONNECTIVITY REPORT")
	stations := g.Stations()
	if len(stations) == 0 {
		w.Printf("No stations in the system.\n")
		w.Footer()
		return w.Err()
	}

	// 1. Adjacency listing, closures marked.
	w.Section("CONNECTIVITY ANALYSIS")
	w.Printf("Stations in the system: %d\n\n", len(stations))
	for _, s := range stations {
		w.Printf("Station %d (%s)%s:\n", s.ID, s.Name, closedMark(g.IsStationClosed(s.ID)))
		neighbors := g.Neighbors(s.ID)
		if len(neighbors) == 0 {
			w.Printf("  No direct connections\n")
		} else {
			w.Printf("  Direct connections: %d\n", len(neighbors))
		}
		for _, nb := range neighbors {
			w.Printf("    -> Station %d (weight: %.1f)%s\n", nb.ID, nb.Weight,
				closedMark(g.IsRouteClosed(s.ID, nb.ID)))
		}
		w.Printf("\n")
	}

	// 2. Reachability from the lowest open station.
	open := openStations(g)
	w.Section("REACHABILITY TEST (BFS)")
	if len(open) == 0 {
		w.Printf("Every station is closed.\n")
		w.Footer()
		return w.Err()
	}
	res, err := bfs.BFS(g, open[0])
	if err != nil {
		return err
	}
	w.Printf("Starting from station %d:\n\n", open[0])
	w.Printf("Reachable stations:\n")
	for i, id := range res.Order {
		w.Printf("  %d. Station %d\n", i+1, id)
	}
	w.Printf("\nTotal reachable: %d of %d open stations\n", len(res.Order), len(open))
	if len(res.Order) == len(open) {
		w.Printf("Conclusion: the network is fully connected.\n")
	} else {
		w.Printf("Conclusion: the network is NOT fully connected.\n")
		w.Printf("There are isolated stations or disconnected components.\n")
	}

	// 3. Components.
	groups, err := dfs.Components(g)
	if err != nil {
		return err
	}
	w.Section("COMPONENTS (DFS)")
	for i, group := range groups {
		w.Printf("  %d. %d stations: %v\n", i+1, len(group), group)
	}
	w.Footer()

	return w.Err()
}

// SystemStats reports counts, average connectivity, the Kruskal tree and a
// station listing.
func SystemStats(w *Writer, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	stations := g.Stations()
	routes := g.EdgeCount()

	w.Header("URBANPATH SYSTEM STATISTICS")
	w.Section("GENERAL STATISTICS")
	w.Printf("Total stations: %d\n", len(stations))
	w.Printf("Total routes (connections): %d\n", routes)
	if g.Directed() {
		w.Printf("Graph type: directed\n")
	} else {
		w.Printf("Graph type: undirected\n")
	}
	var degrees int
	for _, s := range stations {
		degrees += g.Degree(s.ID)
	}
	avg := 0.0
	if len(stations) > 0 {
		avg = float64(degrees) / float64(len(stations))
	}
	w.Printf("Average connectivity per station: %.2f\n", avg)
	w.Printf("Closed stations: %d\n", len(g.ClosedStations()))
	w.Printf("Closed routes: %d\n", len(g.ClosedRoutes()))
	w.Printf("Active accidents: %d\n", len(g.AffectedRoutes()))

	w.Section("MINIMUM SPANNING TREE (MST)")
	if len(stations) == 0 {
		w.Printf("No stations in the system.\n")
	} else {
		edges, total, err := prim_kruskal.Kruskal(g)
		if err != nil {
			return err
		}
		w.Printf("MST edges:\n")
		for _, e := range edges {
			w.Printf("  Station %d <-> Station %d: %.1f\n", e.From, e.To, e.Weight)
		}
		w.Printf("\nTotal MST edges: %d\n", len(edges))
		w.Printf("Total MST weight: %.1f\n", total)
		if len(edges) > 0 {
			w.Printf("Average weight per edge: %.2f\n", total/float64(len(edges)))
		}
	}

	w.Section("STATION LIST")
	for i, s := range stations {
		w.Printf("  %d. %s\n", i+1, stationLine(g, s.ID))
		w.Printf("     Connections: %d\n", g.Degree(s.ID))
	}
	w.Footer()

	return w.Err()
}

func openStations(g *core.Graph) []int {
	var ids []int
	for _, id := range g.StationIDs() {
		if g.CanVisit(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

func closedMark(closed bool) string {
	if closed {
		return " [closed]"
	}
	return ""
}
