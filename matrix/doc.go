// Package matrix provides a small dense float64 matrix and the Floyd–Warshall
// all-pairs shortest-path computation for transit networks.
//
// Dense is row-major with bounds-checked At/Set returning ErrOutOfRange.
// FloydWarshall(g) builds a Distances table keyed by station ID.
//
// Floyd–Warshall is a structural query: it reads the raw adjacency (with the
// current, possibly accident-adjusted weights) and does not honor station or
// route closures. Use dijkstra for distances over the live network.
//
// Complexity: O(V³) time, O(V²) memory.
package matrix
