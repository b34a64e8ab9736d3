package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/urbanpath/core"
)

const (
	methodLine         = "Line"
	methodRing         = "Ring"
	methodGrid         = "Grid"
	methodStar         = "Star"
	methodRandomSparse = "RandomSparse"

	minLineStations = 1
	minRingStations = 3
	minStarStations = 2
	minGridDim      = 1
)

// connect links a→b, and b→a as well on directed graphs so generated lines
// run both ways.
func connect(g *core.Graph, cfg builderConfig, method string, a, b core.Station) error {
	if err := link(g, cfg, method, a, b); err != nil {
		return err
	}
	if g.Directed() {
		return link(g, cfg, method, b, a)
	}
	return nil
}

// Line adds n stations along the x axis, each joined to the next.
// Complexity: O(n).
func Line(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minLineStations {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLine, n, minLineStations, ErrTooFewStations)
		}
		first := nextID(g, cfg)
		prev := addStation(g, cfg, first, 0, 0)
		for i := 1; i < n; i++ {
			s := addStation(g, cfg, first+i, float64(i)*cfg.spacing, 0)
			if err := connect(g, cfg, methodLine, prev, s); err != nil {
				return err
			}
			prev = s
		}
		return nil
	}
}

// Ring adds n stations evenly spaced on a circle, each joined to the next and
// the last back to the first.
// Complexity: O(n).
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRingStations {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingStations, ErrTooFewStations)
		}
		first := nextID(g, cfg)
		radius := cfg.spacing * float64(n) / (2 * math.Pi)
		stations := make([]core.Station, n)
		for i := range stations {
			angle := 2 * math.Pi * float64(i) / float64(n)
			stations[i] = addStation(g, cfg, first+i, radius*math.Cos(angle), radius*math.Sin(angle))
		}
		for i := range stations {
			if err := connect(g, cfg, methodRing, stations[i], stations[(i+1)%n]); err != nil {
				return err
			}
		}
		return nil
	}
}

// Grid adds a rows×cols block of stations, IDs in row-major order, joined to
// their right and lower neighbors.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewStations)
		}
		first := nextID(g, cfg)
		cell := make([]core.Station, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				cell[i] = addStation(g, cfg, first+i, float64(c)*cfg.spacing, float64(r)*cfg.spacing)
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cell[r*cols+c]
				if c+1 < cols {
					if err := connect(g, cfg, methodGrid, u, cell[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, methodGrid, u, cell[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// Star adds a hub and n-1 spokes around it, each joined to the hub only.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarStations {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarStations, ErrTooFewStations)
		}
		first := nextID(g, cfg)
		hub := addStation(g, cfg, first, 0, 0)
		spokes := n - 1
		for i := 0; i < spokes; i++ {
			angle := 2 * math.Pi * float64(i) / float64(spokes)
			s := addStation(g, cfg, first+1+i, cfg.spacing*math.Cos(angle), cfg.spacing*math.Sin(angle))
			if err := connect(g, cfg, methodStar, hub, s); err != nil {
				return err
			}
		}
		return nil
	}
}

// RandomSparse adds n stations scattered over a square map and joins each
// pair with probability p (each ordered pair on directed graphs). p of 0 or 1
// needs no RNG; the stations are then laid out on a line.
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minLineStations {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minLineStations, ErrTooFewStations)
		}
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 1. Place stations.
		first := nextID(g, cfg)
		side := cfg.spacing * math.Sqrt(float64(n))
		stations := make([]core.Station, n)
		for i := range stations {
			x, y := float64(i)*cfg.spacing, 0.0
			if rng != nil {
				x, y = rng.Float64()*side, rng.Float64()*side
			}
			stations[i] = addStation(g, cfg, first+i, x, y)
		}

		// 2. Draw routes.
		keep := func() bool { return p == 1 || (p > 0 && rng.Float64() < p) }
		for i := 0; i < n; i++ {
			j0 := i + 1
			if g.Directed() {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, stations[i], stations[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
