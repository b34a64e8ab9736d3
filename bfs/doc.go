// Package bfs provides breadth-first search over a transit core.Graph,
// returning hop counts, parent links and visit order.
//
// What
//
//   - Explore stations in non-decreasing hop count from a start station.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: station → hops from start
//   - Parent: station → predecessor in the BFS tree
//   - Honors the closure overlay of core.Graph: closed stations are never
//     visited and closed routes are never crossed. A closed start station
//     produces an empty Order.
//   - Optional OnVisit hook (may abort with an error), MaxDepth limit and
//     neighbor filter.
//
// Determinism
//
//	Neighbors are expanded in adjacency (insertion) order and each station is
//	marked visited when enqueued, so the visit sequence is reproducible.
//
// Complexity
//
//	Time O(V + E), memory O(V).
package bfs
