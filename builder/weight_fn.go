package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/urbanpath/core"
)

// minWeight keeps generated weights positive when stations coincide.
const minWeight = 0.1

// WeightFn chooses the weight of a generated route between a and b. rng is
// nil unless the build was seeded.
type WeightFn func(a, b core.Station, rng *rand.Rand) float64

// DistanceWeightFn weighs a route by the straight-line distance between its
// stations, rounded to one decimal.
func DistanceWeightFn(a, b core.Station, _ *rand.Rand) float64 {
	d := math.Hypot(a.X-b.X, a.Y-b.Y)
	return math.Max(math.Round(d*10)/10, minWeight)
}

// ConstantWeightFn gives every route the same weight.
func ConstantWeightFn(w float64) WeightFn {
	return func(core.Station, core.Station, *rand.Rand) float64 { return w }
}

// UniformWeightFn draws whole-number weights uniformly from [lo, hi]. Without
// an RNG it returns lo. Bounds are swapped when reversed.
func UniformWeightFn(lo, hi int) WeightFn {
	if lo > hi {
		lo, hi = hi, lo
	}
	return func(_, _ core.Station, rng *rand.Rand) float64 {
		if rng == nil {
			return float64(lo)
		}
		return float64(lo + rng.Intn(hi-lo+1))
	}
}
