package matrix_test

import (
	"testing"

	"github.com/katalvlaran/urbanpath/builder"
	"github.com/katalvlaran/urbanpath/matrix"
)

// BenchmarkFloydWarshall_Ring measures the O(V³) closure on a 150-station ring.
func BenchmarkFloydWarshall_Ring(b *testing.B) {
	opts := []builder.BuilderOption{builder.WithSeed(5), builder.WithWeightFn(builder.UniformWeightFn(1, 5))}
	g, err := builder.BuildGraph(nil, opts, builder.Ring(150))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.FloydWarshall(g)
	}
}
