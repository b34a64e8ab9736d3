package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/urbanpath/core"
	"github.com/katalvlaran/urbanpath/dfs"
)

// ExampleDFS explores a branch line depth first and then lists the
// connected components left after closing the junction.
func ExampleDFS() {
	g := core.NewGraph()
	for id := 1; id <= 5; id++ {
		g.AddStation(core.Station{ID: id})
	}
	_ = g.AddEdge(1, 2, 3)
	_ = g.AddEdge(2, 3, 3)
	_ = g.AddEdge(2, 4, 1)
	_ = g.AddEdge(4, 5, 2)

	res, _ := dfs.DFS(g, 1)
	fmt.Println("order:", res.Order)

	_ = g.CloseStation(2)
	groups, _ := dfs.Components(g)
	fmt.Println("components:", groups)
	// Output:
	// order: [1 2 3 4 5]
	// components: [[1] [3] [4 5]]
}
