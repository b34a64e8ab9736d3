package matrix

import (
	"math"

	"github.com/katalvlaran/urbanpath/core"
)

// Distances is the all-pairs table produced by FloydWarshall, addressed by
// station ID rather than matrix index.
type Distances struct {
	ids   []int
	index map[int]int
	dist  *Dense
}

// IDs returns the station IDs in row order.
func (d *Distances) IDs() []int {
	out := make([]int, len(d.ids))
	copy(out, d.ids)
	return out
}

// At returns the shortest distance from → to, +Inf for unknown IDs or
// disconnected pairs.
func (d *Distances) At(from, to int) float64 {
	i, ok := d.index[from]
	if !ok {
		return math.Inf(1)
	}
	j, ok := d.index[to]
	if !ok {
		return math.Inf(1)
	}
	return d.dist.data[i*d.dist.c+j]
}

// Matrix returns a copy of the underlying table.
func (d *Distances) Matrix() *Dense { return d.dist.Clone() }

// Pairs returns every ordered pair of distinct stations with a finite distance.
func (d *Distances) Pairs() map[core.Route]float64 {
	out := make(map[core.Route]float64)
	n := len(d.ids)
	for i, from := range d.ids {
		for j, to := range d.ids {
			if i == j {
				continue
			}
			if v := d.dist.data[i*n+j]; !math.IsInf(v, 1) {
				out[core.Route{From: from, To: to}] = v
			}
		}
	}
	return out
}
