// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with deterministic k → i → j loop order.
//   - Adapter from a transit core.Graph to a distance table keyed by station ID.
//
// Contract:
//   - Square matrix; +Inf means “no path”; diagonal must be 0 before calling.
//   - The graph adapter reads the raw adjacency with live weights. Closed
//     stations and closed routes are NOT filtered: the table describes the
//     physical network, unlike bfs/dfs/dijkstra/prim_kruskal.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/urbanpath/core"
)

// FloydWarshallInPlace runs APSP closure on a square *Dense in place.
// Returns ErrDimensionMismatch for a non-square matrix.
// Time: O(n³); extra space: O(1).
func FloydWarshallInPlace(d *Dense) error {
	if d.r != d.c {
		return fmt.Errorf("FloydWarshallInPlace: non-square %dx%d: %w", d.r, d.c, ErrDimensionMismatch)
	}
	n := d.r
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}

// FloydWarshall computes all-pairs shortest distances over g.
//
// Initialization: 0 on the diagonal, EdgeWeight(i, j) where a direct route
// exists (the first stored entry when routes are parallel), +Inf otherwise.
// Rows and columns follow g.StationIDs() (ascending).
func FloydWarshall(g *core.Graph) (*Distances, error) {
	// 1. Validate.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Index stations densely.
	ids := g.StationIDs()
	index := make(map[int]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	// 3. Seed the table from the raw adjacency.
	n := len(ids)
	d := newDense(n, n)
	d.Fill(math.Inf(1))
	for i, id := range ids {
		d.data[i*n+i] = 0
		for _, nb := range g.Neighbors(id) {
			j := index[nb.ID]
			if i == j {
				continue
			}
			d.data[i*n+j] = g.EdgeWeight(id, nb.ID)
		}
	}

	// 4. Relax.
	if err := FloydWarshallInPlace(d); err != nil {
		return nil, err
	}

	return &Distances{ids: ids, index: index, dist: d}, nil
}
