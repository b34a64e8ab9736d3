// Package prim_kruskal computes minimum spanning trees of a transit network.
//
// Two algorithms are provided:
//
//   - Prim: grows one tree from a root station (the lowest open ID by default),
//     scanning all tree stations for the lightest crossing route each step.
//   - Kruskal: sorts all routes by weight (stable) and accepts those joining two
//     components, tracked with unionfind.DisjointSet over dense labels.
//
// Both skip closed stations and closed routes and use the live weights, so an
// active accident can change the chosen tree. A disconnected live network is
// not an error: Kruskal returns a spanning forest and Prim the tree of its
// root's component. For a connected network both return the same total weight.
//
// Compute(g, MSTOptions) dispatches on MSTOptions.Method.
package prim_kruskal
