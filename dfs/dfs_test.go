package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/urbanpath/core"
	"github.com/katalvlaran/urbanpath/dfs"
)

// network builds stations 1..n and the given unit-weight routes.
func network(t *testing.T, n int, routes [][2]int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for id := 1; id <= n; id++ {
		g.AddStation(core.Station{ID: id})
	}
	for _, r := range routes {
		require.NoError(t, g.AddEdge(r[0], r[1], 1))
	}
	return g
}

var tree = [][2]int{{1, 2}, {1, 3}, {2, 4}, {2, 5}, {3, 6}}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, 1)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := network(t, 2, nil)
	_, err = dfs.DFS(g, 7)
	assert.ErrorIs(t, err, dfs.ErrStartNotFound)

	_, err = dfs.DFS(g, 1, dfs.WithMaxDepth(-3))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestDFS_PreOrder(t *testing.T) {
	res, err := dfs.DFS(network(t, 6, tree), 1)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 4, 5, 3, 6}, res.Order)
	assert.Equal(t, 2, res.Depth[6])
	assert.Equal(t, map[int]int{2: 1, 3: 1, 4: 2, 5: 2, 6: 3}, res.Parent)

	path, err := res.PathTo(6)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 6}, path)

	path, err = res.PathTo(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, path)
}

func TestDFS_ClosuresFiltered(t *testing.T) {
	g := network(t, 6, tree)
	require.NoError(t, g.CloseStation(2))
	require.NoError(t, g.CloseRoute(6, 3))

	res, err := dfs.DFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, res.Order)

	_, err = res.PathTo(4)
	assert.ErrorIs(t, err, dfs.ErrNoPath)
}

func TestDFS_ClosedStart(t *testing.T) {
	g := network(t, 3, [][2]int{{1, 2}, {2, 3}})
	require.NoError(t, g.CloseStation(1))

	res, err := dfs.DFS(g, 1)
	require.NoError(t, err)
	assert.Empty(t, res.Order)
}

func TestDFS_Cycle(t *testing.T) {
	g := network(t, 4, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}})
	res, err := dfs.DFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, res.Order)
	assert.Equal(t, 3, res.Depth[4])
}

func TestDFS_Options(t *testing.T) {
	g := network(t, 6, tree)

	res, err := dfs.DFS(g, 1, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, res.Order)

	res, err = dfs.DFS(g, 1, dfs.WithFilterNeighbor(func(_, nb int) bool { return nb%2 == 1 }))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, res.Order)
	assert.Equal(t, 2, res.SkippedNeighbors) // 2 from 1, 6 from 3

	boom := errors.New("boom")
	res, err = dfs.DFS(g, 1, dfs.WithOnVisit(func(id, _ int) error {
		if id == 5 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{1, 2, 4, 5}, res.Order)
}

func TestComponents(t *testing.T) {
	g := network(t, 7, [][2]int{{1, 2}, {2, 3}, {4, 5}, {6, 7}})
	require.NoError(t, g.CloseStation(6))

	groups, err := dfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5}, {7}}, groups)

	_, err = dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}
