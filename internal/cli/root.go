// Package cli wires the urbanpath command tree: loading a network from record
// files, a YAML/TOML document or the sqlite store, querying it, editing its
// closures and accidents, and rendering reports.
package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/urbanpath/core"
	"github.com/katalvlaran/urbanpath/internal/config"
	"github.com/katalvlaran/urbanpath/loader"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *slog.Logger
}

// flagKeys maps persistent flags to their config keys.
var flagKeys = map[string]string{
	"data-dir":  "data_dir",
	"network":   "network",
	"db":        "db",
	"directed":  "directed",
	"log-level": "log_level",
	"verbose":   "verbose",
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:               "urbanpath",
		Short:             "Transit network analysis",
		Long:              "UrbanPath loads a transit network and answers traversal, shortest-route and spanning-tree queries under closures and accidents.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .urbanpath)")
	pf.String("data-dir", ".", "directory holding the record files")
	pf.String("network", "", "YAML or TOML network document, used instead of the record files")
	pf.String("db", "urbanpath.db", "sqlite database for saved networks")
	pf.Bool("directed", false, "treat routes as one-way")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.BoolP("verbose", "v", false, "debug logging")

	root.AddCommand(
		a.stationsCmd(),
		a.bfsCmd(),
		a.dfsCmd(),
		a.routeCmd(),
		a.distancesCmd(),
		a.apspCmd(),
		a.mstCmd(),
		a.reportCmd(),
		a.closeCmd(),
		a.openCmd(),
		a.accidentCmd(),
		a.restoreCmd(),
		a.exportCmd(),
		a.generateCmd(),
		a.dbCmd(),
		a.watchCmd(),
	)

	return root
}

// setup reads the config file and environment, binds the persistent flags and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()
	cfgFile, _ := flags.GetString("config")
	if err := config.Init(a.v, cfgFile); err != nil {
		return err
	}
	for flag, key := range flagKeys {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("binding --%s: %w", flag, err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))

	return nil
}

// loadNetwork reads the network document when one is configured, otherwise
// the record files of the data directory.
func (a *app) loadNetwork() (*loader.Network, error) {
	var n *loader.Network
	if a.cfg.Network != "" {
		doc, err := loader.LoadDocument(a.cfg.Network)
		if err != nil {
			return nil, err
		}
		a.log.Info("network document loaded", "path", a.cfg.Network, "stations", len(doc.Stations))
		n = doc
	} else {
		dir, st, err := loader.LoadDir(a.cfg.DataDir, a.cfg.LoaderFiles(), loader.WithLogger(a.log))
		if err != nil {
			return nil, err
		}
		a.log.Info("record files loaded", "dir", a.cfg.DataDir, "accepted", st.Accepted, "skipped", st.Skipped)
		n = dir
	}
	if a.cfg.Directed {
		n.Directed = true
	}

	return n, nil
}

// loadGraph builds the live graph.
func (a *app) loadGraph() (*core.Graph, error) {
	n, err := a.loadNetwork()
	if err != nil {
		return nil, err
	}
	g, st, err := loader.Build(n, core.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	if st.Rejected > 0 {
		a.log.Warn("records rejected by the graph", "count", st.Rejected)
	}

	return g, nil
}

// saveGraph persists g where it was loaded from.
func (a *app) saveGraph(g *core.Graph) error {
	n, err := loader.Capture(g)
	if err != nil {
		return err
	}
	return a.saveNetwork(n)
}

func (a *app) saveNetwork(n *loader.Network) error {
	if a.cfg.Network != "" {
		return loader.SaveDocument(a.cfg.Network, n)
	}
	return loader.SaveDir(a.cfg.DataDir, a.cfg.LoaderFiles(), n, loader.WithLogger(a.log))
}

// parseIDs converts station ID arguments.
func parseIDs(args ...string) ([]int, error) {
	ids := make([]int, len(args))
	for i, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid station id %q", arg)
		}
		ids[i] = id
	}
	return ids, nil
}
