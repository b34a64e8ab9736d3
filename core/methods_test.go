package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/urbanpath/core"
)

func TestNewGraph_Defaults(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.Directed())
	assert.True(t, g.IsEmpty())
	assert.NotNil(t, g.Logger())
	assert.Equal(t, 0, g.MaxStationID())

	assert.True(t, core.NewGraph(core.WithDirected(true)).Directed())
	assert.NotNil(t, core.NewGraph(core.WithLogger(nil)).Logger()) // nil logger ignored
}

func TestAddStation_OverwriteIsLogged(t *testing.T) {
	logger, buf := captureLogger()
	g := core.NewGraph(core.WithLogger(logger))

	assert.False(t, g.AddStation(core.Station{ID: 7, Name: "Old", X: 1, Y: 2}))
	assert.True(t, g.AddStation(core.Station{ID: 7, Name: "New", X: 3, Y: 4}))

	s, ok := g.Station(7)
	require.True(t, ok)
	assert.Equal(t, "New", s.Name)
	assert.Equal(t, 3.0, s.X)
	assert.Equal(t, 1, g.StationCount())
	assert.Contains(t, buf.String(), "station exists, updating")
	assert.NotNil(t, g.Neighbors(7)) // adjacency entry exists, possibly empty
	assert.Empty(t, g.Neighbors(7))
}

func TestAddStation_KeepsRoutesOnOverwrite(t *testing.T) {
	g := buildTriangle(t)
	g.AddStation(core.Station{ID: StationA, Name: "Renamed"})
	assert.True(t, g.HasEdge(StationA, StationB))
	assert.Len(t, g.Neighbors(StationA), 2)
}

func TestStations_SortedByID(t *testing.T) {
	g := core.NewGraph()
	addStations(g, 30, 4, 17, 2)

	assert.Equal(t, []int{2, 4, 17, 30}, g.StationIDs())
	stations := g.Stations()
	require.Len(t, stations, 4)
	for i := 1; i < len(stations); i++ {
		assert.True(t, stations[i-1].Less(stations[i]))
	}
	assert.Equal(t, 30, g.MaxStationID())
}

func TestStation_Missing(t *testing.T) {
	g := core.NewGraph()
	s, ok := g.Station(Missing)
	assert.False(t, ok)
	assert.Equal(t, core.Station{}, s)
	assert.Nil(t, g.Neighbors(Missing))
}

// TestRemoveStation_Cascade verifies that removal deletes the station and every
// route pointing to it.
func TestRemoveStation_Cascade(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.RemoveStation(StationB))

	assert.False(t, g.HasStation(StationB))
	for _, s := range g.Stations() {
		assert.NotEqual(t, StationB, s.ID)
		for _, nb := range g.Neighbors(s.ID) {
			assert.NotEqual(t, StationB, nb.ID, "station %d still points at removed station", s.ID)
		}
	}
	assert.True(t, g.HasEdge(StationA, StationC)) // unrelated route survives
	assert.Equal(t, 1, g.EdgeCount())
}

func TestRemoveStation_Missing(t *testing.T) {
	logger, buf := captureLogger()
	g := core.NewGraph(core.WithLogger(logger))
	err := g.RemoveStation(Missing)
	assert.ErrorIs(t, err, core.ErrStationNotFound)
	assert.Contains(t, err.Error(), "99")
	assert.Contains(t, buf.String(), "cannot remove station")
}

func TestAddEdge_MissingEndpoint(t *testing.T) {
	g := core.NewGraph()
	addStations(g, StationA)

	err := g.AddEdge(StationA, Missing, Weight1)
	assert.ErrorIs(t, err, core.ErrStationNotFound)
	assert.Contains(t, err.Error(), "destination 99")

	err = g.AddEdge(Missing, StationA, Weight1)
	assert.ErrorIs(t, err, core.ErrStationNotFound)
	assert.Contains(t, err.Error(), "origin 99")

	assert.Empty(t, g.Neighbors(StationA))
}

func TestAddEdge_NegativeWeightCoerced(t *testing.T) {
	logger, buf := captureLogger()
	g := core.NewGraph(core.WithLogger(logger))
	addStations(g, StationA, StationB)

	require.NoError(t, g.AddEdge(StationA, StationB, -4.5))
	assert.Equal(t, 4.5, g.EdgeWeight(StationA, StationB))
	assert.Equal(t, 4.5, g.EdgeWeight(StationB, StationA))
	assert.Contains(t, buf.String(), "negative route weight")
}

// TestUndirected_Symmetry checks hasEdge and weight symmetry for every added route.
func TestUndirected_Symmetry(t *testing.T) {
	g := buildTriangle(t)
	for _, e := range g.Edges() {
		assert.Equal(t, g.HasEdge(e.From, e.To), g.HasEdge(e.To, e.From))
		assert.Equal(t, g.EdgeWeight(e.From, e.To), g.EdgeWeight(e.To, e.From))
	}
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, g.Degree(StationA))
}

func TestDirected_OneWay(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	addStations(g, StationA, StationB)
	require.NoError(t, g.AddEdge(StationA, StationB, Weight3))

	assert.True(t, g.HasEdge(StationA, StationB))
	assert.False(t, g.HasEdge(StationB, StationA))
	assert.True(t, math.IsInf(g.EdgeWeight(StationB, StationA), 1))
	assert.Equal(t, []core.Edge{{From: StationA, To: StationB, Weight: Weight3}}, g.Edges())
}

// TestAddEdge_ParallelRoutesKept pins the non-deduplicating behavior: a second
// AddEdge between the same pair adds a second adjacency entry.
func TestAddEdge_ParallelRoutesKept(t *testing.T) {
	g := core.NewGraph()
	addStations(g, StationA, StationB)
	require.NoError(t, g.AddEdge(StationA, StationB, Weight5))
	require.NoError(t, g.AddEdge(StationA, StationB, Weight1))

	assert.Equal(t, []core.Neighbor{{ID: StationB, Weight: Weight5}, {ID: StationB, Weight: Weight1}},
		g.Neighbors(StationA))
	assert.Equal(t, Weight5, g.EdgeWeight(StationA, StationB)) // first entry wins
	assert.Len(t, g.Edges(), 1)                                // canonical dedup in enumeration

	assert.True(t, g.RemoveEdge(StationA, StationB))
	assert.Equal(t, Weight1, g.EdgeWeight(StationA, StationB))
	assert.Equal(t, Weight1, g.EdgeWeight(StationB, StationA))
}

func TestRemoveEdge(t *testing.T) {
	g := buildTriangle(t)
	assert.True(t, g.RemoveEdge(StationB, StationA))
	assert.False(t, g.HasEdge(StationA, StationB))
	assert.False(t, g.HasEdge(StationB, StationA))
	assert.False(t, g.RemoveEdge(StationB, StationA)) // already gone
	assert.False(t, g.RemoveEdge(Missing, StationA))
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := buildTriangle(t)
	nbs := g.Neighbors(StationA)
	nbs[0].Weight = 1000
	assert.Equal(t, Weight5, g.EdgeWeight(StationA, StationB))
}

func TestEdges_DiscoveryOrder(t *testing.T) {
	g := buildTriangle(t)
	assert.Equal(t, []core.Edge{
		{From: 1, To: 2, Weight: 5},
		{From: 1, To: 3, Weight: 10},
		{From: 2, To: 3, Weight: 3},
	}, g.Edges())
}

func TestClear(t *testing.T) {
	g := buildTriangle(t, core.WithDirected(true))
	require.NoError(t, g.CloseStation(StationA))
	g.Clear()
	assert.True(t, g.IsEmpty())
	assert.Empty(t, g.ClosedStations())
	assert.True(t, g.Directed())
}

func TestRouteHelpers(t *testing.T) {
	r := core.Route{From: 5, To: 2}
	assert.Equal(t, core.Route{From: 2, To: 5}, r.Canonical())
	assert.Equal(t, core.Route{From: 2, To: 5}, r.Reverse())
	assert.Equal(t, "5-2", r.String())
	assert.Equal(t, "7: Central (1.5, 2.0)", core.Station{ID: 7, Name: "Central", X: 1.5, Y: 2}.String())
}
