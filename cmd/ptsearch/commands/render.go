package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dragomit/ptsearch"
	"github.com/dragomit/ptsearch/parser"
	"github.com/dragomit/ptsearch/render"
)

func dumpCmd() *cobra.Command {
	var stateString string

	cmd := &cobra.Command{
		Use:   "dump <tree>",
		Short: "Print a tree's structure, one node per line",
		Long: `Parse the given process tree and print an indented debug listing of
its nodes. With --state, also print each node's NodeState.

Examples:
  ptsearch dump "->('a','b')"
  ptsearch dump --state ofccf "->(*('a','b'),'c')"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args[0], stateString)
		},
	}

	cmd.Flags().StringVar(&stateString, "state", "", "tree state string to annotate each node with")

	return cmd
}

func runDump(cmd *cobra.Command, treeString, stateString string) error {
	tree, err := parser.Parse(treeString)
	if err != nil {
		return fmt.Errorf("parsing tree: %w", err)
	}

	var state *ptsearch.TreeState
	if stateString != "" {
		parsed, err := ptsearch.ParseTreeState(stateString)
		if err != nil {
			return fmt.Errorf("parsing state: %w", err)
		}
		state = &parsed
	}

	fmt.Fprint(cmd.OutOrStdout(), render.Dump(tree, state))
	return nil
}
