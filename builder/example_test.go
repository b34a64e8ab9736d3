package builder_test

import (
	"fmt"

	"github.com/katalvlaran/urbanpath/builder"
	"github.com/katalvlaran/urbanpath/prim_kruskal"
)

// ExampleBuildGraph generates a 2×3 block of stations 10 units apart and
// spans it.
func ExampleBuildGraph() {
	g, _ := builder.BuildGraph(nil, nil, builder.Grid(2, 3))
	fmt.Println(g.StationCount(), g.EdgeCount())

	mst, total, _ := prim_kruskal.Kruskal(g)
	fmt.Println(len(mst), total)
	// Output:
	// 6 7
	// 5 50
}
