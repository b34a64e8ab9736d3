// Package prim_kruskal provides Prim's and Kruskal's minimum spanning tree
// algorithms over a transit core.Graph. Both honor the closure overlay and use
// the live (accident-adjusted) route weights.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/urbanpath/core"
)

// Prim grows a minimum spanning tree from the lowest open station ID.
// A closed lowest station is passed over rather than yielding an empty tree;
// use PrimFrom to root the tree at a specific station. See PrimFrom.
func Prim(g *core.Graph) ([]core.Edge, float64, error) {
	if err := validate(g, MethodPrim); err != nil {
		return nil, 0, err
	}
	for _, id := range g.StationIDs() {
		if g.CanVisit(id) {
			return PrimFrom(g, id)
		}
	}

	return []core.Edge{}, 0, nil // every station is closed
}

// PrimFrom grows a minimum spanning tree outwards from root.
//
// Steps:
//  1. Validate: graph non-nil and non-empty, root present.
//  2. Seed the tree with root (a closed root yields an empty tree).
//  3. Repeat until the tree holds every station:
//     a. Scan every tree station in insertion order, skipping closed ones, and
//     each of its routes to a station outside the tree that passes CanTraverse.
//     b. Keep the first strictly lighter candidate.
//     c. No candidate: the live network is disconnected, stop.
//     d. Add the candidate route and its far station.
//  4. Return the accepted routes and their total weight.
//
// Complexity: O(V·E) time, O(V) memory.
func PrimFrom(g *core.Graph, root int) ([]core.Edge, float64, error) {
	// 1. Validate.
	if err := validate(g, MethodPrim); err != nil {
		return nil, 0, err
	}
	if !g.HasStation(root) {
		g.Logger().Error("cannot build spanning tree: root not found", "station", root)
		return nil, 0, fmt.Errorf("%w: %d", ErrRootNotFound, root)
	}

	// 2. Seed.
	n := g.StationCount()
	mst := make([]core.Edge, 0, n-1)
	if !g.CanVisit(root) {
		return mst, 0, nil
	}
	inTree := map[int]bool{root: true}
	tree := []int{root}

	var total float64
	for len(tree) < n {
		// 3a-b. Lightest crossing route; strict < keeps the first minimum.
		var best core.Edge
		found := false
		for _, u := range tree {
			if !g.CanVisit(u) {
				continue
			}
			for _, nb := range g.Neighbors(u) {
				if inTree[nb.ID] || !g.CanTraverse(u, nb.ID) {
					continue
				}
				if !found || nb.Weight < best.Weight {
					best = core.Edge{From: u, To: nb.ID, Weight: nb.Weight}
					found = true
				}
			}
		}

		// 3c. Disconnected.
		if !found {
			break
		}

		// 3d. Grow.
		mst = append(mst, best)
		total += best.Weight
		inTree[best.To] = true
		tree = append(tree, best.To)
	}

	return mst, total, nil
}
