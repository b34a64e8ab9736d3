package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/urbanpath/builder"
	"github.com/katalvlaran/urbanpath/core"
	"github.com/katalvlaran/urbanpath/prim_kruskal"
)

func benchGraph(b *testing.B) *core.Graph {
	b.Helper()
	opts := []builder.BuilderOption{builder.WithSeed(30), builder.WithWeightFn(builder.UniformWeightFn(1, 13))}
	g, err := builder.BuildGraph(nil, opts, builder.Grid(30, 30))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

// BenchmarkKruskal_Grid runs Kruskal on a 30×30 grid.
func BenchmarkKruskal_Grid(b *testing.B) {
	g := benchGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim_Grid runs the O(V·E) Prim scan on the same grid.
func BenchmarkPrim_Grid(b *testing.B) {
	g := benchGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g)
	}
}
