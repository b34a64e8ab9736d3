package loader

import (
	"github.com/katalvlaran/urbanpath/core"
)

// ApplyStats counts what Apply fed into the graph and what it rejected.
type ApplyStats struct {
	Stations  int
	Routes    int
	Closures  int
	Accidents int
	Rejected  int
}

// Apply feeds n into g through the public Graph API in dependency order:
// stations, routes, closures, accidents. Records the graph refuses (a route to
// an unknown station, a second accident on a route...) are counted in Rejected
// and logged by the graph; they never abort the load.
//
// Apply does not change g's directedness; n.Directed is advisory.
func Apply(g *core.Graph, n *Network) (ApplyStats, error) {
	var st ApplyStats
	if g == nil {
		return st, ErrNilGraph
	}
	if n == nil {
		return st, ErrNilNetwork
	}

	// 1. Stations.
	for _, s := range n.Stations {
		g.AddStation(core.Station{ID: s.ID, Name: s.Name, X: s.X, Y: s.Y})
		st.Stations++
	}

	// 2. Routes.
	for _, r := range n.Routes {
		if err := g.AddEdge(r.From, r.To, r.Weight); err != nil {
			st.Rejected++
			continue
		}
		st.Routes++
	}

	// 3. Closures.
	for _, c := range n.Closures {
		var err error
		switch c.Kind {
		case ClosureStation:
			err = g.CloseStation(c.Station)
		case ClosureRoute:
			err = g.CloseRoute(c.From, c.To)
		default:
			g.Logger().Warn("unknown closure kind", "kind", string(c.Kind))
			st.Rejected++
			continue
		}
		if err != nil {
			st.Rejected++
			continue
		}
		st.Closures++
	}

	// 4. Accidents.
	for _, a := range n.Accidents {
		if err := g.ApplyAccident(a.From, a.To, a.Percent); err != nil {
			st.Rejected++
			continue
		}
		st.Accidents++
	}

	return st, nil
}

// Capture snapshots g into a Network. Routes carry their pre-accident weights
// and active accidents are listed separately, so Apply on a fresh graph with
// the same directedness rebuilds the same live state. Parallel routes
// collapse to the first entry of each pair.
func Capture(g *core.Graph) (*Network, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := &Network{Directed: g.Directed()}

	for _, s := range g.Stations() {
		n.Stations = append(n.Stations, Station{ID: s.ID, Name: s.Name, X: s.X, Y: s.Y})
	}
	for _, e := range g.Edges() {
		w := e.Weight
		if orig, ok := g.OriginalWeight(e.From, e.To); ok {
			w = orig
		}
		n.Routes = append(n.Routes, Route{From: e.From, To: e.To, Weight: w})
	}
	for _, id := range g.ClosedStations() {
		n.Closures = append(n.Closures, Closure{Kind: ClosureStation, Station: id})
	}
	for _, r := range g.ClosedRoutes() {
		n.Closures = append(n.Closures, Closure{Kind: ClosureRoute, From: r.From, To: r.To})
	}
	for _, a := range g.AffectedRoutes() {
		n.Accidents = append(n.Accidents, Accident{From: a.Route.From, To: a.Route.To, Percent: a.Percent})
	}

	return n, nil
}

// Build creates a graph with n's directedness and applies n to it.
func Build(n *Network, opts ...core.GraphOption) (*core.Graph, ApplyStats, error) {
	if n == nil {
		return nil, ApplyStats{}, ErrNilNetwork
	}
	opts = append([]core.GraphOption{core.WithDirected(n.Directed)}, opts...)
	g := core.NewGraph(opts...)
	st, err := Apply(g, n)

	return g, st, err
}
