package cli

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/urbanpath/bfs"
	"github.com/katalvlaran/urbanpath/dfs"
	"github.com/katalvlaran/urbanpath/dijkstra"
	"github.com/katalvlaran/urbanpath/matrix"
	"github.com/katalvlaran/urbanpath/prim_kruskal"
	"github.com/katalvlaran/urbanpath/report"
)

func (a *app) stationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stations",
		Short: "List stations with their degree and closure state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range g.Stations() {
				state := ""
				if g.IsStationClosed(s.ID) {
					state = " [closed]"
				}
				fmt.Fprintf(out, "%s routes=%d%s\n", s, g.Degree(s.ID), state)
			}
			fmt.Fprintf(out, "%d stations, %d routes\n", g.StationCount(), g.EdgeCount())
			return nil
		},
	}
}

func (a *app) bfsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bfs <station>",
		Short: "Breadth-first traversal from a station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args...)
			if err != nil {
				return err
			}
			depth, _ := cmd.Flags().GetInt("max-depth")
			asReport, _ := cmd.Flags().GetBool("report")

			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			res, err := bfs.BFS(g, ids[0], bfs.WithMaxDepth(depth))
			if err != nil {
				return err
			}
			if asReport {
				w := report.NewWriter(cmd.OutOrStdout())
				return report.Traversal(w, g, fmt.Sprintf("BFS FROM STATION %d", ids[0]), res.Order)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BFS from %d: %v\n", ids[0], res.Order)
			for _, id := range res.Order {
				fmt.Fprintf(out, "  %d depth=%d\n", id, res.Depth[id])
			}
			return nil
		},
	}
	cmd.Flags().Int("max-depth", 0, "stop expanding after this many hops (0 = no limit)")
	cmd.Flags().Bool("report", false, "render a traversal report")

	return cmd
}

func (a *app) dfsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dfs [station]",
		Short: "Depth-first traversal from a station, or the components of the live network",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			components, _ := cmd.Flags().GetBool("components")
			if !components && len(args) == 0 {
				return fmt.Errorf("dfs needs a start station or --components")
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if components {
				groups, err := dfs.Components(g)
				if err != nil {
					return err
				}
				for i, group := range groups {
					fmt.Fprintf(out, "component %d: %v\n", i+1, group)
				}
				return nil
			}

			ids, err := parseIDs(args...)
			if err != nil {
				return err
			}
			depth, _ := cmd.Flags().GetInt("max-depth")
			res, err := dfs.DFS(g, ids[0], dfs.WithMaxDepth(depth))
			if err != nil {
				return err
			}
			if asReport, _ := cmd.Flags().GetBool("report"); asReport {
				w := report.NewWriter(out)
				return report.Traversal(w, g, fmt.Sprintf("DFS FROM STATION %d", ids[0]), res.Order)
			}
			fmt.Fprintf(out, "DFS from %d: %v\n", ids[0], res.Order)
			return nil
		},
	}
	cmd.Flags().Int("max-depth", 0, "do not descend past this depth (0 = no limit)")
	cmd.Flags().Bool("components", false, "list the connected groups of open stations")
	cmd.Flags().Bool("report", false, "render a traversal report")

	return cmd
}

func (a *app) routeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route <from> <to>",
		Short: "Shortest route between two stations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args...)
			if err != nil {
				return err
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			res, err := dijkstra.DijkstraWithPath(g, ids[0])
			if err != nil {
				return err
			}
			path, err := res.PathTo(ids[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asReport, _ := cmd.Flags().GetBool("report"); asReport {
				return report.Route(report.NewWriter(out), g, path)
			}
			hops := make([]string, len(path))
			for i, id := range path {
				hops[i] = fmt.Sprint(id)
			}
			fmt.Fprintf(out, "Route: %s\n", strings.Join(hops, " -> "))
			fmt.Fprintf(out, "Distance: %.1f\n", res.Distance(ids[1]))
			return nil
		},
	}
	cmd.Flags().Bool("report", false, "render a route report")

	return cmd
}

func (a *app) distancesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distances <from>",
		Short: "Shortest distance from a station to every station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args...)
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetFloat64("max-distance")
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			dist, err := dijkstra.Dijkstra(g, ids[0], dijkstra.WithMaxDistance(limit))
			if err != nil {
				return err
			}

			keys := make([]int, 0, len(dist))
			for id := range dist {
				keys = append(keys, id)
			}
			sort.Ints(keys)
			out := cmd.OutOrStdout()
			for _, id := range keys {
				if math.IsInf(dist[id], 1) {
					fmt.Fprintf(out, "  %d: unreachable\n", id)
					continue
				}
				fmt.Fprintf(out, "  %d: %.1f\n", id, dist[id])
			}
			return nil
		},
	}
	cmd.Flags().Float64("max-distance", math.Inf(1), "stop the search beyond this distance")

	return cmd
}

func (a *app) apspCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apsp",
		Short: "All-pairs shortest distances (Floyd-Warshall)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			d, err := matrix.FloydWarshall(g)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "stations: %v\n", d.IDs())
			fmt.Fprint(out, d.Matrix().String())
			return nil
		},
	}
}

func (a *app) mstCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Minimum spanning tree of the live network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			method, _ := cmd.Flags().GetString("method")
			root, _ := cmd.Flags().GetInt("root")
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			opts := prim_kruskal.NewOptions(prim_kruskal.WithMethod(method), prim_kruskal.WithRoot(root))
			edges, total, err := prim_kruskal.Compute(g, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range edges {
				fmt.Fprintf(out, "  %d - %d: %.1f\n", e.From, e.To, e.Weight)
			}
			fmt.Fprintf(out, "Total weight (%s): %.1f\n", method, total)
			return nil
		},
	}
	cmd.Flags().String("method", prim_kruskal.MethodKruskal, "prim or kruskal")
	cmd.Flags().Int("root", 0, "Prim start station (0 = lowest open station)")

	return cmd
}
