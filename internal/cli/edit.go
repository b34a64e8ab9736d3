package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/urbanpath/core"
	"github.com/katalvlaran/urbanpath/loader"
)

// mutate loads the graph, applies fn and saves the result back.
func (a *app) mutate(fn func(g *core.Graph) error) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	if err := fn(g); err != nil {
		return err
	}
	return a.saveGraph(g)
}

func (a *app) closeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close",
		Short: "Close a station or a route and save the closure",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "station <id>",
			Short: "Close a station",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args...)
				if err != nil {
					return err
				}
				return a.mutate(func(g *core.Graph) error {
					if err := g.CloseStation(ids[0]); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Station %d closed\n", ids[0])
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "route <a> <b>",
			Short: "Close the route between two stations",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args...)
				if err != nil {
					return err
				}
				return a.mutate(func(g *core.Graph) error {
					if err := g.CloseRoute(ids[0], ids[1]); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Route %d-%d closed\n", ids[0], ids[1])
					return nil
				})
			},
		},
	)

	return cmd
}

func (a *app) openCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Reopen a station or a route and save the change",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "station <id>",
			Short: "Reopen a station",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args...)
				if err != nil {
					return err
				}
				return a.mutate(func(g *core.Graph) error {
					if err := g.OpenStation(ids[0]); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Station %d open\n", ids[0])
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "route <a> <b>",
			Short: "Reopen the route between two stations",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args...)
				if err != nil {
					return err
				}
				return a.mutate(func(g *core.Graph) error {
					if !g.OpenRoute(ids[0], ids[1]) {
						fmt.Fprintf(cmd.OutOrStdout(), "Route %d-%d was not closed\n", ids[0], ids[1])
						return nil
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Route %d-%d open\n", ids[0], ids[1])
					return nil
				})
			},
		},
	)

	return cmd
}

func (a *app) accidentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accident <a> <b> <percent>",
		Short: "Raise the weight of a route by a percentage and save the accident",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args[:2]...)
			if err != nil {
				return err
			}
			pct, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid percent %q", args[2])
			}
			return a.mutate(func(g *core.Graph) error {
				if err := g.ApplyAccident(ids[0], ids[1], pct); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Route %d-%d now weighs %.1f\n",
					ids[0], ids[1], g.EdgeWeight(ids[0], ids[1]))
				return nil
			})
		},
	}
}

func (a *app) restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Restore every route affected by an accident to its original weight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.mutate(func(g *core.Graph) error {
				if !g.RestoreOriginalWeights() {
					fmt.Fprintln(cmd.OutOrStdout(), "No active accidents")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Original weights restored")
				return nil
			})
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded network as a YAML or TOML document, or as record files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			path, _ := cmd.Flags().GetString("out")

			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			n, err := loader.Capture(g)
			if err != nil {
				return err
			}

			if format == "records" {
				if path == "" {
					return fmt.Errorf("export --format records needs --out <dir>")
				}
				return loader.SaveDir(path, a.cfg.LoaderFiles(), n)
			}
			f, err := loader.ParseFormat(format)
			if err != nil {
				return err
			}
			if path == "" {
				return loader.EncodeNetwork(cmd.OutOrStdout(), n, f)
			}
			out, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := loader.EncodeNetwork(out, n, f); err != nil {
				out.Close()
				return err
			}
			return out.Close()
		},
	}
	cmd.Flags().String("format", "yaml", "yaml, toml or records")
	cmd.Flags().String("out", "", "output file (directory for records); stdout when empty")

	return cmd
}
