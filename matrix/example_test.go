package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/urbanpath/core"
	"github.com/katalvlaran/urbanpath/matrix"
)

// ExampleFloydWarshall prints the all-pairs table of a three-station line.
func ExampleFloydWarshall() {
	g := core.NewGraph()
	for id := 1; id <= 3; id++ {
		g.AddStation(core.Station{ID: id})
	}
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(2, 3, 5)

	d, _ := matrix.FloydWarshall(g)
	fmt.Print(d.Matrix())
	fmt.Println("1→3:", d.At(1, 3))
	// Output:
	// [0 2 7]
	// [2 0 5]
	// [7 5 0]
	// 1→3: 7
}
