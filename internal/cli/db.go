package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/urbanpath/loader"
	"github.com/katalvlaran/urbanpath/store/sqlite"
)

// withStore opens the configured database for the duration of fn.
func (a *app) withStore(cmd *cobra.Command, fn func(s *sqlite.Store) error) error {
	s, err := sqlite.Open(cmd.Context(), a.cfg.DB)
	if err != nil {
		return err
	}
	defer s.Close()

	return fn(s)
}

func (a *app) dbCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Save, restore and manage named networks in the sqlite store",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "save <name>",
			Short: "Store the loaded network, including closures and accidents, under name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				g, err := a.loadGraph()
				if err != nil {
					return err
				}
				n, err := loader.Capture(g)
				if err != nil {
					return err
				}
				return a.withStore(cmd, func(s *sqlite.Store) error {
					if err := s.SaveNetwork(cmd.Context(), args[0], n); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Saved %q: %d stations, %d routes\n",
						args[0], len(n.Stations), len(n.Routes))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "load <name>",
			Short: "Replace the data files (or network document) with a stored network",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(cmd, func(s *sqlite.Store) error {
					n, err := s.LoadNetwork(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					if err := a.saveNetwork(n); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Loaded %q: %d stations, %d routes\n",
						args[0], len(n.Stations), len(n.Routes))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List stored networks",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.withStore(cmd, func(s *sqlite.Store) error {
					names, err := s.ListNetworks(cmd.Context())
					if err != nil {
						return err
					}
					for _, name := range names {
						fmt.Fprintln(cmd.OutOrStdout(), name)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a stored network",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(cmd, func(s *sqlite.Store) error {
					if err := s.DeleteNetwork(cmd.Context(), args[0]); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", args[0])
					return nil
				})
			},
		},
	)

	return cmd
}
