package builder

import (
	"fmt"

	"github.com/katalvlaran/urbanpath/core"
)

// Constructor adds stations and routes to g using the resolved configuration.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts and applies the constructors in order.
// Constructor errors are wrapped with "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// nextID returns the first free ID for a constructor's stations.
func nextID(g *core.Graph, cfg builderConfig) int {
	if g.IsEmpty() {
		return cfg.firstID
	}
	return g.MaxStationID() + 1
}

// addStation places a generated station.
func addStation(g *core.Graph, cfg builderConfig, id int, x, y float64) core.Station {
	s := core.Station{ID: id, Name: cfg.nameFn(id), X: x, Y: y}
	g.AddStation(s)
	return s
}

// link joins a and b with a route weighted by cfg.weightFn.
func link(g *core.Graph, cfg builderConfig, method string, a, b core.Station) error {
	w := cfg.weightFn(a, b, cfg.rng)
	if err := g.AddEdge(a.ID, b.ID, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w: %w", method, a.ID, b.ID, w, ErrConstructFailed, err)
	}
	return nil
}
