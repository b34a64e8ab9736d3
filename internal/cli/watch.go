package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/urbanpath/internal/watch"
)

func (a *app) watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render a report whenever the network files change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, _ := cmd.Flags().GetString("report")
			if kind == "" {
				kind = a.cfg.Watch.Report
			}
			if _, ok := reportKinds[kind]; !ok {
				return fmt.Errorf("unknown report %q (want one of %s)", kind, reportNames())
			}

			dir, files := a.cfg.DataDir, []string{
				a.cfg.Files.Stations, a.cfg.Files.Routes, a.cfg.Files.Closures, a.cfg.Files.Accidents,
			}
			if a.cfg.Network != "" {
				dir, files = filepath.Dir(a.cfg.Network), []string{filepath.Base(a.cfg.Network)}
			}
			w, err := watch.NewWatcher(dir, files,
				watch.WithDebounce(a.cfg.Watch.Debounce), watch.WithLogger(a.log))
			if err != nil {
				return err
			}
			if err := w.Start(); err != nil {
				return err
			}
			defer w.Stop()

			out := cmd.OutOrStdout()
			render := func() {
				g, err := a.loadGraph()
				if err != nil {
					a.log.Error("reload failed", "err", err)
					return
				}
				if err := renderReport(out, kind, g); err != nil {
					a.log.Error("report failed", "kind", kind, "err", err)
				}
			}
			render()

			ctx := cmd.Context()
			for {
				select {
				case <-ctx.Done():
					return nil
				case c, ok := <-w.Changes:
					if !ok {
						return nil
					}
					a.log.Info("network changed", "file", c.File, "change", c.Kind.String())
					render()
				}
			}
		},
	}
	cmd.Flags().String("report", "", "report to render (default from config watch.report)")

	return cmd
}
