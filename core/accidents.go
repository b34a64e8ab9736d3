// File: accidents.go
// Role: Accident overlay. An accident multiplies the live weight of a route by
// (1 + percent/100) and keeps the pre-accident weight until it is restored.

package core

import (
	"fmt"
	"math"
)

// ApplyAccident increases the weight of the direct route origin→destination by
// incrementPercent percent. Undirected graphs update and mark both stored
// directions. A route carries at most one active accident.
//
// Errors:
//   - ErrBadIncrement    if incrementPercent is negative or NaN.
//   - ErrStationNotFound if either station is unknown.
//   - ErrEdgeNotFound    if no direct route exists.
//   - ErrAccidentActive  if the route is already affected.
func (g *Graph) ApplyAccident(origin, destination int, incrementPercent float64) error {
	route := Route{From: origin, To: destination}

	// 1. Validate the increment and the endpoints.
	if math.IsNaN(incrementPercent) || incrementPercent < 0 {
		g.log.Error("invalid accident increment", "route", route.String(), "percent", incrementPercent)
		return fmt.Errorf("%w: %v", ErrBadIncrement, incrementPercent)
	}
	if !g.HasStation(origin) || !g.HasStation(destination) {
		g.log.Error("cannot apply accident: station not found", "route", route.String())
		return fmt.Errorf("%w: route %s", ErrStationNotFound, route)
	}

	// 2. A direct route must exist and must not already be affected.
	if !g.HasEdge(origin, destination) {
		g.log.Error("cannot apply accident: no direct route", "route", route.String())
		return fmt.Errorf("%w: %s", ErrEdgeNotFound, route)
	}
	if g.IsRouteAffected(origin, destination) {
		g.log.Warn("route already has an active accident", "route", route.String())
		return fmt.Errorf("%w: %s", ErrAccidentActive, route)
	}

	// 3. Record the original weight and scale the live weight, per direction.
	factor := 1 + incrementPercent/100
	g.scale(route, route, factor, incrementPercent)
	if !g.directed && origin != destination {
		g.scale(route.Reverse(), route, factor, incrementPercent)
	}

	g.log.Info("accident applied", "route", route.String(), "percent", incrementPercent,
		"weight", g.EdgeWeight(origin, destination))

	return nil
}

// scale records and multiplies the first entry of the stored direction dir.
func (g *Graph) scale(dir, applied Route, factor, percent float64) {
	original := g.EdgeWeight(dir.From, dir.To)
	if math.IsInf(original, 1) {
		return
	}
	g.accidents[dir] = accidentRecord{applied: applied, original: original, percent: percent}
	g.setFirstWeight(dir.From, dir.To, original*factor)
}

// IsRouteAffected reports whether an accident is active on origin→destination.
// For undirected graphs both orders match.
func (g *Graph) IsRouteAffected(origin, destination int) bool {
	_, ok := g.accidents[Route{From: origin, To: destination}]
	return ok
}

// OriginalWeight returns the pre-accident weight of an affected route.
func (g *Graph) OriginalWeight(origin, destination int) (float64, bool) {
	rec, ok := g.accidents[Route{From: origin, To: destination}]
	return rec.original, ok
}

// AffectedRoutes lists active accidents once each, as applied, ordered by route.
func (g *Graph) AffectedRoutes() []Accident {
	keys := make([]Route, 0, len(g.accidents))
	for key, rec := range g.accidents {
		if key == rec.applied {
			keys = append(keys, key)
		}
	}
	sortRoutes(keys)

	out := make([]Accident, len(keys))
	for i, key := range keys {
		rec := g.accidents[key]
		out[i] = Accident{
			Route:    key,
			Original: rec.original,
			Current:  g.EdgeWeight(key.From, key.To),
			Percent:  rec.percent,
		}
	}

	return out
}

// RestoreOriginalWeights puts every affected route back to its pre-accident
// weight and forgets all accidents. It reports whether any accident was active.
func (g *Graph) RestoreOriginalWeights() bool {
	if len(g.accidents) == 0 {
		return false
	}
	for dir, rec := range g.accidents {
		g.setFirstWeight(dir.From, dir.To, rec.original)
	}
	g.accidents = make(map[Route]accidentRecord)
	g.log.Info("original route weights restored")

	return true
}

// ClearAccidents is RestoreOriginalWeights without the report.
func (g *Graph) ClearAccidents() { g.RestoreOriginalWeights() }
