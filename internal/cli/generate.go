package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/urbanpath/builder"
	"github.com/katalvlaran/urbanpath/core"
	"github.com/katalvlaran/urbanpath/loader"
)

func (a *app) generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <line|ring|grid|star|random>",
		Short: "Generate a synthetic network and save it to the data files (or network document)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			size, _ := flags.GetInt("size")
			rows, _ := flags.GetInt("rows")
			cols, _ := flags.GetInt("cols")
			p, _ := flags.GetFloat64("p")
			seed, _ := flags.GetInt64("seed")
			maxWeight, _ := flags.GetInt("max-weight")

			var cons builder.Constructor
			switch args[0] {
			case "line":
				cons = builder.Line(size)
			case "ring":
				cons = builder.Ring(size)
			case "grid":
				cons = builder.Grid(rows, cols)
			case "star":
				cons = builder.Star(size)
			case "random":
				cons = builder.RandomSparse(size, p)
			default:
				return fmt.Errorf("unknown topology %q", args[0])
			}

			bopts := []builder.BuilderOption{builder.WithSeed(seed)}
			if maxWeight > 0 {
				bopts = append(bopts, builder.WithWeightFn(builder.UniformWeightFn(1, maxWeight)))
			}
			g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(a.cfg.Directed), core.WithLogger(a.log)}, bopts, cons)
			if err != nil {
				return err
			}
			n, err := loader.Capture(g)
			if err != nil {
				return err
			}
			if err := a.saveNetwork(n); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s network: %d stations, %d routes\n",
				args[0], len(n.Stations), len(n.Routes))
			return nil
		},
	}
	cmd.Flags().Int("size", 10, "number of stations (line, ring, star, random)")
	cmd.Flags().Int("rows", 3, "grid rows")
	cmd.Flags().Int("cols", 3, "grid columns")
	cmd.Flags().Float64("p", 0.2, "route probability for random networks")
	cmd.Flags().Int64("seed", 1, "random seed")
	cmd.Flags().Int("max-weight", 0, "draw whole weights from 1..max-weight instead of map distance")

	return cmd
}
