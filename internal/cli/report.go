package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/urbanpath/core"
	"github.com/katalvlaran/urbanpath/report"
)

// reportKinds maps report names to their renderers.
var reportKinds = map[string]func(*report.Writer, *core.Graph) error{
	"stats":        report.SystemStats,
	"mst":          report.MST,
	"connectivity": report.Connectivity,
	"accidents":    report.Accidents,
	"closures":     report.Closures,
}

func reportNames() string {
	names := make([]string, 0, len(reportKinds))
	for name := range reportKinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func renderReport(out io.Writer, kind string, g *core.Graph) error {
	fn, ok := reportKinds[kind]
	if !ok {
		return fmt.Errorf("unknown report %q (want one of %s)", kind, reportNames())
	}
	return fn(report.NewWriter(out), g)
}

func (a *app) reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <kind>",
		Short: "Render a text report: " + reportNames(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := reportKinds[args[0]]; !ok {
				return fmt.Errorf("unknown report %q (want one of %s)", args[0], reportNames())
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}

			path, _ := cmd.Flags().GetString("out")
			if path == "" {
				return renderReport(cmd.OutOrStdout(), args[0], g)
			}
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := renderReport(f, args[0], g); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			a.log.Info("report written", "kind", args[0], "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().String("out", "", "write the report to this file instead of stdout")

	return cmd
}
