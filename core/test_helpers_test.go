// Package core_test contains fixtures shared by the core tests.
package core_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/urbanpath/core"
)

// Common station IDs used across core tests.
const (
	StationA = 1
	StationB = 2
	StationC = 3
	StationD = 4
	Missing  = 99
)

// Common weights used across core tests.
const (
	Weight1  = 1.0
	Weight3  = 3.0
	Weight5  = 5.0
	Weight10 = 10.0
)

// addStations registers stations named "S<id>" at (id, id).
func addStations(g *core.Graph, ids ...int) {
	for _, id := range ids {
		g.AddStation(core.Station{ID: id, Name: "S" + string(rune('0'+id%10)), X: float64(id), Y: float64(id)})
	}
}

// buildTriangle returns stations 1,2,3 with routes 1-2=5, 2-3=3, 1-3=10.
func buildTriangle(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	addStations(g, StationA, StationB, StationC)
	require.NoError(t, g.AddEdge(StationA, StationB, Weight5))
	require.NoError(t, g.AddEdge(StationB, StationC, Weight3))
	require.NoError(t, g.AddEdge(StationA, StationC, Weight10))

	return g
}

// captureLogger returns a logger writing text records into the returned buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}
