// Package dfs implements depth-first search on a transit core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): recursive pre-order traversal in adjacency order
//   - Components(g): the open stations grouped by DFS reachability
//   - Closure overlay: closed stations are never visited, closed routes never crossed
//   - Hooks: OnVisit (pre-order) with error abort
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//
// Complexity:
//
//   - Time:   O(V + E), plus overhead of hooks and filters.
//   - Memory: O(V) for the recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil          if g is nil.
//   - ErrStartNotFound     if start is missing (also logged).
//   - ErrOptionViolation   for a negative MaxDepth.
//   - any error returned by OnVisit, wrapped.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/urbanpath/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    Options
	visited map[int]bool
	res     *Result
}

func newWalker(g *core.Graph, opts Options) *dfsWalker {
	n := g.StationCount()
	return &dfsWalker{
		graph:   g,
		opts:    opts,
		visited: make(map[int]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
}

// DFS performs depth-first search on g from start. A closed start station
// contributes nothing: the result is empty and no error is returned.
// On a hook error the partial result is returned with the error.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate input graph and options
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2. Verify start
	if !g.HasStation(start) {
		g.Logger().Error("dfs: start station not found", "station", start)
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	// 3. Traverse
	w := newWalker(g, o)
	if err := w.traverse(start, 0); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// traverse visits id at the given depth, then recurses into each unvisited,
// open neighbor in adjacency order.
func (w *dfsWalker) traverse(id, depth int) error {
	// 1. Closed stations are inert
	if !w.graph.CanVisit(id) {
		return nil
	}

	// 2. Mark visited and record
	w.visited[id] = true
	w.res.Order = append(w.res.Order, id)
	w.res.Depth[id] = depth

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	// 4. Depth limit
	if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	// 5. Explore each neighbor
	for _, nb := range w.graph.Neighbors(id) {
		if w.visited[nb.ID] || !w.graph.CanTraverse(id, nb.ID) {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, nb.ID) {
			w.res.SkippedNeighbors++
			continue
		}
		w.res.Parent[nb.ID] = id
		if err := w.traverse(nb.ID, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// Components groups the open stations of g by DFS reachability, starting a
// new tree at every unvisited open station in ascending ID order. Each group
// is in discovery order and begins with its lowest ID. For undirected graphs
// the groups are the connected components of the live network.
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := newWalker(g, DefaultOptions())
	var groups [][]int
	for _, id := range g.StationIDs() {
		if w.visited[id] || !g.CanVisit(id) {
			continue
		}
		from := len(w.res.Order)
		if err := w.traverse(id, 0); err != nil {
			return nil, err
		}
		group := make([]int, len(w.res.Order)-from)
		copy(group, w.res.Order[from:])
		groups = append(groups, group)
	}

	return groups, nil
}
