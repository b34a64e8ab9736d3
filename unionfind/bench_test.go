package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/urbanpath/unionfind"
)

// BenchmarkUnionFind measures random unions followed by connectivity queries.
func BenchmarkUnionFind(b *testing.B) {
	const n = 10000
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n) + 1, r.Intn(n) + 1}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ds := unionfind.New(n)
		for _, p := range pairs {
			ds.Union(p[0], p[1])
		}
		for _, p := range pairs {
			_ = ds.Connected(p[1], p[0])
		}
	}
}
