package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/urbanpath/bfs"
	"github.com/katalvlaran/urbanpath/core"
)

// line builds stations 1..n joined in a chain with weight 1.
func line(t *testing.T, n int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for id := 1; id <= n; id++ {
		g.AddStation(core.Station{ID: id})
	}
	for id := 1; id < n; id++ {
		require.NoError(t, g.AddEdge(id, id+1, 1))
	}
	return g
}

// diamond builds 1-2, 1-3, 2-4, 3-4, 4-5.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id := 1; id <= 5; id++ {
		g.AddStation(core.Station{ID: id})
	}
	for _, e := range [][2]int{{1, 2}, {1, 3}, {2, 4}, {3, 4}, {4, 5}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}
	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 1)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := line(t, 2)
	_, err = bfs.BFS(g, 42)
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	_, err = bfs.BFS(g, 1, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_LayersAndParents(t *testing.T) {
	res, err := bfs.BFS(diamond(t), 1)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, res.Order)
	assert.Equal(t, map[int]int{1: 0, 2: 1, 3: 1, 4: 2, 5: 3}, res.Depth)
	assert.Equal(t, map[int]int{2: 1, 3: 1, 4: 2, 5: 4}, res.Parent)

	path, err := res.PathTo(5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 5}, path)
}

// TestBFS_ClosedStationNeverVisited verifies that a closed station is excluded
// and that stations reachable only through it are excluded too.
func TestBFS_ClosedStationNeverVisited(t *testing.T) {
	g := line(t, 4)
	require.NoError(t, g.CloseStation(3))

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, res.Order)
	assert.False(t, res.Visited(3))

	_, err = res.PathTo(4)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_ClosedRouteDetour(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.CloseRoute(4, 2)) // closed in both directions

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	path, err := res.PathTo(5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4, 5}, path)
}

func TestBFS_ClosedStart(t *testing.T) {
	g := line(t, 3)
	require.NoError(t, g.CloseStation(1))

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.Empty(t, res.Depth)
}

func TestBFS_Directed(t *testing.T) {
	g := line(t, 3, core.WithDirected(true))

	res, err := bfs.BFS(g, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, res.Order)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	res, err := bfs.BFS(line(t, 5), 1, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, res.Order)

	res, err = bfs.BFS(diamond(t), 1, bfs.WithFilterNeighbor(func(_, nb int) bool { return nb != 2 }))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4, 5}, res.Order)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	var seen []int
	res, err := bfs.BFS(line(t, 5), 1, bfs.WithOnVisit(func(id, _ int) error {
		seen = append(seen, id)
		if id == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.Equal(t, []int{1, 2, 3}, res.Order)
}
