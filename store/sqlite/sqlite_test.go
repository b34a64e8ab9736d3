package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/urbanpath/core"
	"github.com/katalvlaran/urbanpath/loader"
	"github.com/katalvlaran/urbanpath/store/sqlite"
)

// testStore creates a temporary store and registers cleanup.
func testStore(t *testing.T) (*sqlite.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urbanpath.db")
	s, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func sampleNetwork() *loader.Network {
	return &loader.Network{
		Directed: true,
		Stations: []loader.Station{
			{ID: 5, Name: "Harbor", X: 4.5, Y: -2},
			{ID: 1, Name: "Central", X: 0, Y: 0},
		},
		Routes:    []loader.Route{{From: 1, To: 5, Weight: 7.25}, {From: 5, To: 1, Weight: 3}},
		Closures:  []loader.Closure{{Kind: loader.ClosureRoute, From: 5, To: 1}, {Kind: loader.ClosureStation, Station: 5}},
		Accidents: []loader.Accident{{From: 1, To: 5, Percent: 12.5}},
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := testStore(t)

	require.NoError(t, s.SaveNetwork(ctx, "downtown", sampleNetwork()))
	got, err := s.LoadNetwork(ctx, "downtown")
	require.NoError(t, err)
	assert.Equal(t, sampleNetwork(), got)
}

func TestSave_ReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	s, _ := testStore(t)

	require.NoError(t, s.SaveNetwork(ctx, "n", sampleNetwork()))
	smaller := &loader.Network{Stations: []loader.Station{{ID: 9, Name: "Solo"}}}
	require.NoError(t, s.SaveNetwork(ctx, "n", smaller))

	got, err := s.LoadNetwork(ctx, "n")
	require.NoError(t, err)
	assert.False(t, got.Directed)
	assert.Equal(t, smaller.Stations, got.Stations)
	assert.Empty(t, got.Routes)
	assert.Empty(t, got.Closures)
	assert.Empty(t, got.Accidents)
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := testStore(t)

	names, err := s.ListNetworks(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, s.SaveNetwork(ctx, "west", sampleNetwork()))
	require.NoError(t, s.SaveNetwork(ctx, "east", sampleNetwork()))
	names, err = s.ListNetworks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"east", "west"}, names)

	require.NoError(t, s.DeleteNetwork(ctx, "east"))
	_, err = s.LoadNetwork(ctx, "east")
	assert.ErrorIs(t, err, sqlite.ErrNetworkNotFound)
	assert.ErrorIs(t, s.DeleteNetwork(ctx, "east"), sqlite.ErrNetworkNotFound)

	west, err := s.LoadNetwork(ctx, "west")
	require.NoError(t, err)
	assert.Len(t, west.Routes, 2)
}

func TestValidation(t *testing.T) {
	ctx := context.Background()
	s, _ := testStore(t)

	assert.ErrorIs(t, s.SaveNetwork(ctx, "  ", sampleNetwork()), sqlite.ErrEmptyName)
	assert.ErrorIs(t, s.SaveNetwork(ctx, "x", nil), loader.ErrNilNetwork)
	_, err := s.LoadNetwork(ctx, "")
	assert.ErrorIs(t, err, sqlite.ErrEmptyName)
	assert.ErrorIs(t, s.DeleteNetwork(ctx, ""), sqlite.ErrEmptyName)
}

// TestReopen verifies that snapshots survive closing the database and that
// opening an existing file is idempotent.
func TestReopen(t *testing.T) {
	ctx := context.Background()
	s, path := testStore(t)
	require.NoError(t, s.SaveNetwork(ctx, "keep", sampleNetwork()))
	require.NoError(t, s.Close())

	again, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	defer again.Close()

	got, err := again.LoadNetwork(ctx, "keep")
	require.NoError(t, err)
	assert.Equal(t, sampleNetwork(), got)
}

// TestGraphSnapshot stores a captured graph and rebuilds it.
func TestGraphSnapshot(t *testing.T) {
	ctx := context.Background()
	s, _ := testStore(t)

	g := core.NewGraph()
	g.AddStation(core.Station{ID: 1, Name: "A"})
	g.AddStation(core.Station{ID: 2, Name: "B"})
	require.NoError(t, g.AddEdge(1, 2, 8))
	require.NoError(t, g.ApplyAccident(1, 2, 50))

	n, err := loader.Capture(g)
	require.NoError(t, err)
	require.NoError(t, s.SaveNetwork(ctx, "live", n))

	back, err := s.LoadNetwork(ctx, "live")
	require.NoError(t, err)
	rebuilt, st, err := loader.Build(back)
	require.NoError(t, err)
	assert.Zero(t, st.Rejected)
	assert.Equal(t, 12.0, rebuilt.EdgeWeight(2, 1))
}
