package builder

import (
	"fmt"
	"math/rand"
)

// Default layout parameters.
const (
	DefaultSpacing = 10.0 // map units between neighboring stations
	defaultFirstID = 1
)

type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
	nameFn   func(id int) string
	spacing  float64
	firstID  int
}

// BuilderOption configures generation.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DistanceWeightFn,
		nameFn:   func(id int) string { return fmt.Sprintf("Station %d", id) },
		spacing:  DefaultSpacing,
		firstID:  defaultFirstID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed seeds a private RNG for stochastic constructors and weights.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source. Nil is ignored.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithWeightFn sets how route weights are chosen. Nil is ignored.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithNameScheme sets how stations are named from their ID. Nil is ignored.
func WithNameScheme(fn func(id int) string) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.nameFn = fn
		}
	}
}

// WithSpacing sets the map distance between neighboring stations.
// Non-positive values are ignored.
func WithSpacing(d float64) BuilderOption {
	return func(c *builderConfig) {
		if d > 0 {
			c.spacing = d
		}
	}
}

// WithFirstID sets the ID given to the first generated station of an empty
// graph. Values below 1 are ignored.
func WithFirstID(id int) BuilderOption {
	return func(c *builderConfig) {
		if id >= 1 {
			c.firstID = id
		}
	}
}
