// Package commands implements the ptsearch CLI's subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool //nolint:gochecknoglobals

// Root builds the ptsearch root command with its subcommands attached.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ptsearch",
		Short: "Shortest-path search over process trees",
		Long: `ptsearch parses a process tree written in the textual grammar
(operator(arg, arg, ...) | 'label') and computes the minimum-cost
sequence of activations, completions, skips and re-arms that drives it
from all-Future to all-Closed.`,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(searchCmd())
	cmd.AddCommand(dumpCmd())

	return cmd
}
