// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/urbanpath/core"
)

// ErrGraphNil indicates that a nil *core.Graph was passed.
var ErrGraphNil = errors.New("prim_kruskal: graph is nil")

// ErrEmptyGraph indicates that the graph holds no stations, so no tree exists.
var ErrEmptyGraph = errors.New("prim_kruskal: graph has no stations")

// ErrUnknownMethod is returned by Compute for a Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// ErrRootNotFound indicates that the requested Prim root is not a station.
var ErrRootNotFound = errors.New("prim_kruskal: root station not found")

// MethodPrim selects Prim's algorithm (grow a tree from one station).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all routes and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting station to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Complexity: O(V·E) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting station for Prim; 0 picks the lowest open station ID.
	// Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting station for Prim.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
// Returns the accepted routes, their total weight and an error only for a nil
// or empty graph, an unknown root or an unknown method. A disconnected live
// network is not an error: the result is a spanning forest with fewer than
// StationCount()-1 routes.
func Compute(g *core.Graph, opts MSTOptions) ([]core.Edge, float64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		if opts.Root == 0 {
			return Prim(g)
		}
		return PrimFrom(g, opts.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// TotalWeight sums edge weights.
func TotalWeight(edges []core.Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}
	return total
}

// validate rejects nil and empty graphs, logging the latter.
func validate(g *core.Graph, method string) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.IsEmpty() {
		g.Logger().Error("cannot build spanning tree: graph is empty", "method", method)
		return ErrEmptyGraph
	}
	return nil
}
