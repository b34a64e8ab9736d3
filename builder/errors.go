package builder

import "errors"

// ErrTooFewStations indicates a size parameter below the constructor's minimum.
var ErrTooFewStations = errors.New("builder: too few stations")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without a seed.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a graph that refused a
// generated station or route.
var ErrConstructFailed = errors.New("builder: construction failed")
