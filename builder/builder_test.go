package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/urbanpath/builder"
	"github.com/katalvlaran/urbanpath/core"
)

func build(t *testing.T, gopts []core.GraphOption, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(gopts, bopts, cons...)
	require.NoError(t, err)
	return g
}

func TestLine(t *testing.T) {
	g := build(t, nil, nil, builder.Line(4))

	assert.Equal(t, []int{1, 2, 3, 4}, g.StationIDs())
	assert.Equal(t, []core.Edge{{From: 1, To: 2, Weight: 10}, {From: 2, To: 3, Weight: 10}, {From: 3, To: 4, Weight: 10}}, g.Edges())
	s, ok := g.Station(3)
	require.True(t, ok)
	assert.Equal(t, "Station 3", s.Name)
	assert.Equal(t, 20.0, s.X)
}

func TestLine_Directed(t *testing.T) {
	g := build(t, []core.GraphOption{core.WithDirected(true)}, nil, builder.Line(3))

	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge(2, 1))
}

func TestRing(t *testing.T) {
	g := build(t, nil, nil, builder.Ring(4))

	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge(4, 1))
	for _, e := range g.Edges() {
		assert.InDelta(t, 9.0, e.Weight, 1e-9, "adjacent stations on a circle of circumference 40")
	}
}

func TestGrid(t *testing.T) {
	g := build(t, nil, nil, builder.Grid(2, 3))

	assert.Equal(t, 6, g.StationCount())
	assert.Equal(t, 7, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(1, 4))
	assert.False(t, g.HasEdge(3, 4), "row ends do not wrap")
}

func TestStar(t *testing.T) {
	g := build(t, nil, nil, builder.Star(5))

	assert.Equal(t, 4, g.Degree(1))
	for id := 2; id <= 5; id++ {
		assert.Equal(t, 1, g.Degree(id))
		assert.Equal(t, 10.0, g.EdgeWeight(1, id))
	}
}

func TestCompositionAndOptions(t *testing.T) {
	name := func(id int) string { return "Stop-" + string(rune('A'+id-100)) }
	g := build(t, nil,
		[]builder.BuilderOption{builder.WithFirstID(100), builder.WithNameScheme(name), builder.WithSpacing(2)},
		builder.Line(2), builder.Star(3))

	assert.Equal(t, []int{100, 101, 102, 103, 104}, g.StationIDs())
	s, _ := g.Station(101)
	assert.Equal(t, "Stop-B", s.Name)
	assert.Equal(t, 2.0, g.EdgeWeight(100, 101))
	assert.False(t, g.HasEdge(101, 102), "constructors do not join each other")
}

func TestWeightFns(t *testing.T) {
	g := build(t, nil, []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(3))}, builder.Grid(2, 2))
	for _, e := range g.Edges() {
		assert.Equal(t, 3.0, e.Weight)
	}

	g = build(t, nil,
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(8, 2))},
		builder.Line(50))
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 2.0)
		assert.LessOrEqual(t, e.Weight, 8.0)
	}

	assert.Equal(t, 0.1, builder.DistanceWeightFn(core.Station{}, core.Station{}, nil))
	assert.Equal(t, 5.0, builder.DistanceWeightFn(core.Station{}, core.Station{X: 3, Y: 4}, nil))
}

func TestRandomSparse(t *testing.T) {
	seeded := []builder.BuilderOption{builder.WithSeed(42)}
	a := build(t, nil, seeded, builder.RandomSparse(30, 0.2))
	b := build(t, nil, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(30, 0.2))
	assert.Equal(t, a.Edges(), b.Edges(), "same seed, same network")
	assert.Equal(t, a.Stations(), b.Stations())

	full := build(t, nil, nil, builder.RandomSparse(5, 1))
	assert.Equal(t, 10, full.EdgeCount())
	fullDirected := build(t, []core.GraphOption{core.WithDirected(true)}, nil, builder.RandomSparse(5, 1))
	assert.Equal(t, 20, fullDirected.EdgeCount())
	empty := build(t, nil, nil, builder.RandomSparse(5, 0))
	assert.Zero(t, empty.EdgeCount())
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"line", builder.Line(0), nil, builder.ErrTooFewStations},
		{"ring", builder.Ring(2), nil, builder.ErrTooFewStations},
		{"grid", builder.Grid(0, 3), nil, builder.ErrTooFewStations},
		{"star", builder.Star(1), nil, builder.ErrTooFewStations},
		{"probability", builder.RandomSparse(4, 1.5), nil, builder.ErrInvalidProbability},
		{"no rng", builder.RandomSparse(4, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
		{"bad weight", builder.Line(2), []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(-1))}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.opts, tc.cons)
			if tc.want == nil {
				assert.NoError(t, err, "negative weights are coerced by the graph")
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
