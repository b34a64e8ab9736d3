// Package urbanpath is an in-memory transit network engine: stations joined by
// weighted routes, a closure and accident overlay, and the classic graph
// algorithms run against the live network.
//
// What is inside?
//
//	core/         Graph, Station, Route; closures and accidents
//	unionfind/    disjoint sets with path compression and union by rank
//	bfs/, dfs/    traversals that skip closed stations and routes
//	dijkstra/     single-source shortest routes with path reconstruction
//	matrix/       dense matrices and Floyd-Warshall all-pairs distances
//	prim_kruskal/ minimum spanning trees
//	builder/      synthetic networks (line, ring, grid, star, random)
//	loader/       record files and YAML/TOML network documents
//	store/sqlite/ named networks in a sqlite database
//	report/       plain-text reports
//	cmd/urbanpath the command-line tool
//
// Closures never delete anything: a closed station or route stays in storage
// and is skipped by traversals, shortest paths and spanning trees until it is
// reopened. An accident multiplies a route's weight by (1 + percent/100) and
// keeps the original weight so it can be restored.
//
// Quick example:
//
//	    1───5───2
//	    │       │
//	   10       3
//	    │       │
//	    3───────┘
//
//	g := core.NewGraph()
//	// add stations 1..3, routes 1-2=5, 2-3=3, 1-3=10
//	dist, _ := dijkstra.Dijkstra(g, 1) // dist[3] == 8
//	_ = g.CloseStation(2)
//	dist, _ = dijkstra.Dijkstra(g, 1)  // dist[3] == 10
package urbanpath
