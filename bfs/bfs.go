package bfs

import (
	"fmt"

	"github.com/katalvlaran/urbanpath/core"
)

// queueItem pairs a station with its BFS depth and its parent.
type queueItem struct {
	id        int
	depth     int
	parent    int
	hasParent bool
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[int]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start, honoring the closure
// overlay: a neighbor is enqueued only when the route and the neighbor are open,
// and a closed start station yields an empty result.
//
// Returns ErrGraphNil, ErrStartNotFound (also logged), ErrOptionViolation for
// bad options, or a wrapped OnVisit error together with the partial result.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasStation(start) {
		g.Logger().Error("bfs: start station not found", "station", start)
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := g.StationCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(queueItem{id: start})

	return w.res, w.loop()
}

// enqueue marks the station visited so it is never queued twice.
func (w *walker) enqueue(item queueItem) {
	w.visited[item.id] = true
	w.queue = append(w.queue, item)
}

// loop processes the queue until it drains or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		// A closed station contributes nothing; only the start can get here closed.
		if !w.graph.CanVisit(item.id) {
			continue
		}
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the station in Order, Depth and Parent and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	w.res.Depth[item.id] = item.depth
	if item.hasParent {
		w.res.Parent[item.id] = item.parent
	}
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors queues every unseen neighbor reachable over an open route,
// in adjacency order, within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nb := range w.graph.Neighbors(item.id) {
		if w.visited[nb.ID] {
			continue
		}
		if !w.graph.CanTraverse(item.id, nb.ID) || !w.opts.FilterNeighbor(item.id, nb.ID) {
			continue
		}
		w.enqueue(queueItem{id: nb.ID, depth: nextDepth, parent: item.id, hasParent: true})
	}
}
