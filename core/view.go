// File: view.go
// Role: Live-view predicates over the closure overlay.
//
// Every overlay-aware algorithm (bfs, dfs, dijkstra, prim_kruskal) filters through
// CanVisit and CanTraverse only. Accidents need no predicate: they are already
// folded into the stored weights.

package core

// CanVisit reports whether the station may be visited, i.e. is not closed.
func (g *Graph) CanVisit(id int) bool { return !g.IsStationClosed(id) }

// CanTraverse reports whether the route from→to may be crossed: the route is not
// closed and the destination station is not closed.
func (g *Graph) CanTraverse(from, to int) bool {
	return !g.IsRouteClosed(from, to) && !g.IsStationClosed(to)
}
