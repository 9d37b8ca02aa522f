package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dragomit/ptsearch"
	"github.com/dragomit/ptsearch/parser"
	"github.com/dragomit/ptsearch/render"
)

func searchCmd() *cobra.Command {
	var unidirectional bool

	cmd := &cobra.Command{
		Use:   "search <tree>",
		Short: "Find the shortest firing sequence for a process tree",
		Long: `Parse the given process tree and run bidirectional Dijkstra search
over its state space to find a minimum-cost firing sequence from
all-Future to all-Closed.

Examples:
  ptsearch search "->(*('a','b'),X('c','d'))"
  ptsearch search --unidirectional "+('a','b')"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], unidirectional)
		},
	}

	cmd.Flags().BoolVar(&unidirectional, "unidirectional", false, "after one priming expansion of each frontier, expand only the forward frontier")

	return cmd
}

func runSearch(cmd *cobra.Command, treeString string, unidirectional bool) error {
	tree, err := parser.Parse(treeString)
	if err != nil {
		return fmt.Errorf("parsing tree: %w", err)
	}
	slog.Debug("parsed tree", "size", tree.Size(), "tree", tree.String())

	result, err := ptsearch.Search(tree, unidirectional)
	if err != nil {
		return fmt.Errorf("searching: %w", err)
	}
	slog.Debug("search complete", "cost", result.Cost, "visited", result.VisitedStates)

	render.Report(cmd.OutOrStdout(), result)
	return nil
}
