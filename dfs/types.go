// Package dfs defines types and options for depth-first search traversal,
// including pre-order hooks, depth limiting and neighbor filtering.
package dfs

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start station does not exist.
	ErrStartNotFound = errors.New("dfs: start station not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a station the traversal never reached.
	ErrNoPath = errors.New("dfs: station not reached")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// OnVisit, if non-nil, is invoked on discovering a station (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id, depth int) error

	// MaxDepth, if > 0, limits recursion to the given depth. 0 means no limit.
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each open neighbor before
	// recursing. Return false to skip it; skips are counted in SkippedNeighbors.
	FilterNeighbor func(curr, neighbor int) bool

	err error
}

// DefaultOptions returns Options with no hook, no depth limit and no filter.
func DefaultOptions() Options {
	return Options{}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth. A limit of 0 disables it; a negative
// limit is rejected with ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor filters neighbors after the closure overlay.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records stations in the sequence they were discovered (pre-order).
	Order []int

	// Depth maps each station to its depth in the DFS tree.
	Depth map[int]int

	// Parent maps each station to the station it was discovered from.
	// The start station is absent.
	Parent map[int]int

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}

// PathTo returns the tree path from the start station to dest. It is a DFS
// tree path, not necessarily the shortest one.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}
	path := make([]int, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
