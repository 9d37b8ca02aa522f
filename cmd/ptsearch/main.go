// Command ptsearch parses process trees written in the textual grammar
// and finds the shortest execution path through them.
package main

import (
	"fmt"
	"os"

	"github.com/dragomit/ptsearch/cmd/ptsearch/commands"
)

func main() {
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
