package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/urbanpath/unionfind"
)

// ExampleDisjointSet shows cycle detection the way Kruskal uses it: an edge is
// accepted only when its endpoints are not yet connected.
func ExampleDisjointSet() {
	ds := unionfind.New(4)
	edges := [][2]int{{1, 2}, {2, 3}, {1, 3}, {3, 4}}
	for _, e := range edges {
		if ds.Connected(e[0], e[1]) {
			fmt.Printf("skip %d-%d (cycle)\n", e[0], e[1])
			continue
		}
		ds.Union(e[0], e[1])
		fmt.Printf("take %d-%d\n", e[0], e[1])
	}
	fmt.Println("sets:", ds.Sets())
	// Output:
	// take 1-2
	// take 2-3
	// skip 1-3 (cycle)
	// take 3-4
	// sets: [[1 2 3 4]]
}
