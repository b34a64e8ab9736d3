// Package builder generates synthetic transit networks for benchmarks, tests
// and the CLI's generate command.
//
// A network is assembled by BuildGraph from one or more Constructors (Line,
// Ring, Grid, Star, RandomSparse). Each constructor appends fresh stations
// after the highest ID already in the graph, places them on the map and joins
// them with routes whose weight comes from the configured WeightFn. The
// default weight is the straight-line distance between the two stations.
//
// Determinism: the same constructors, options and seed always yield the same
// graph. Constructors that need randomness fail with ErrNeedRandSource unless
// WithSeed or WithRand is given.
package builder
