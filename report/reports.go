package report

import (
	"errors"
	"math"

	"github.com/katalvlaran/urbanpath/core"
)

// ErrGraphNil indicates that a nil *core.Graph was passed to a report.
var ErrGraphNil = errors.New("report: graph is nil")

// Route reports path stop by stop with the distance of each leg and the total.
// Consecutive stops without a direct route are flagged and add nothing to the
// total. An empty path is reported as "no route available".
func Route(w *Writer, g *core.Graph, path []int) error {
	if g == nil {
		return ErrGraphNil
	}
	w.Header("ROUTE REPORT")
	w.Printf("ROUTE INFORMATION\n")
	w.Separator()
	w.Printf("Stations on route: %d\n", len(path))
	if len(path) == 0 {
		w.Printf("\nNo route available.\n")
		w.Footer()
		return w.Err()
	}

	w.Printf("\nItinerary:\n")
	var total float64
	for i, id := range path {
		w.Printf("  %d. %s\n", i+1, stationLine(g, id))
		if i == len(path)-1 {
			break
		}
		weight := g.EdgeWeight(id, path[i+1])
		if math.IsInf(weight, 1) {
			w.Printf("     -> No direct connection\n")
			continue
		}
		total += weight
		w.Printf("     -> Distance to next: %.1f\n", weight)
	}
	w.Separator()
	w.Printf("Total route distance: %.1f\n", total)
	w.Footer()

	return w.Err()
}

// Traversal reports a visit order, such as a BFS or DFS result, under title.
func Traversal(w *Writer, g *core.Graph, title string, order []int) error {
	if g == nil {
		return ErrGraphNil
	}
	w.Header("TRAVERSAL REPORT")
	w.Section(title)
	for i, id := range order {
		w.Printf("  %d. %s\n", i+1, stationLine(g, id))
	}
	w.Printf("\nStations visited: %d\n", len(order))
	w.Footer()

	return w.Err()
}

// Closures lists closed stations and closed routes.
func Closures(w *Writer, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	stations, routes := g.ClosedStations(), g.ClosedRoutes()

	w.Header("CLOSURES REPORT")
	w.Section("CLOSED STATIONS")
	if len(stations) == 0 {
		w.Printf("  None\n")
	}
	for i, id := range stations {
		w.Printf("  %d. %s\n", i+1, stationLine(g, id))
	}

	w.Section("CLOSED ROUTES")
	if len(routes) == 0 {
		w.Printf("  None\n")
	}
	for i, r := range routes {
		w.Printf("  %d. Station %d <-> Station %d\n", i+1, r.From, r.To)
	}
	w.Printf("\nTotal closures: %d\n", len(stations)+len(routes))
	w.Footer()

	return w.Err()
}

// Accidents lists active accidents with their original and current weights.
func Accidents(w *Writer, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	accidents := g.AffectedRoutes()

	w.Header("ACCIDENT REPORT")
	w.Section("ACTIVE ACCIDENTS")
	if len(accidents) == 0 {
		w.Printf("No active accidents.\n")
	}
	for i, a := range accidents {
		w.Printf("  %d. Station %d -> Station %d: %.1f -> %.1f (+%.1f%%)\n",
			i+1, a.Route.From, a.Route.To, a.Original, a.Current, a.Percent)
	}
	w.Printf("\nAffected routes: %d\n", len(accidents))
	w.Footer()

	return w.Err()
}
