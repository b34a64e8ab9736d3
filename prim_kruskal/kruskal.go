package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/urbanpath/core"
	"github.com/katalvlaran/urbanpath/unionfind"
)

// Kruskal computes a minimum spanning forest of the live network.
//
// Steps:
//  1. Validate: graph non-nil and non-empty.
//  2. Collect routes via g.Edges() and stable-sort them by weight, so equal
//     weights keep discovery order.
//  3. Map station IDs to dense labels 1..V for the disjoint set.
//  4. Scan the sorted routes:
//     a. Skip routes touching a closed station or closed themselves.
//     b. Accept a route whose endpoints are in different components, merging them.
//     c. Stop after StationCount()-1 accepted routes.
//  5. Return the accepted routes and their total weight.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(g *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate.
	if err := validate(g, MethodKruskal); err != nil {
		return nil, 0, err
	}

	// 2. Sorted candidate routes.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Dense labels.
	ids := g.StationIDs()
	label := make(map[int]int, len(ids))
	for i, id := range ids {
		label[id] = i + 1
	}
	ds := unionfind.New(len(ids))

	// 4. Greedy scan.
	limit := len(ids) - 1
	mst := make([]core.Edge, 0, limit)
	var total float64
	for _, e := range edges {
		if len(mst) == limit {
			break
		}
		if !g.CanVisit(e.From) || !g.CanVisit(e.To) || g.IsRouteClosed(e.From, e.To) {
			continue
		}
		if ds.Union(label[e.From], label[e.To]) {
			mst = append(mst, e)
			total += e.Weight
		}
	}

	return mst, total, nil
}
