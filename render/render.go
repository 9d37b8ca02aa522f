// Package render turns ptsearch trees and search results into
// human-readable text: a structural debug dump of a tree, and a report
// of a search's firing sequence.
package render

import (
	"fmt"
	"strings"

	"github.com/dragomit/ptsearch"
)

// Dump renders tree as an indented, one-node-per-line debug listing:
// position, operator or label, and (if state is non-nil) the node's
// current NodeState. Unlike Tree.String, the output does not round-trip
// back through the parser — it exists to be read, not re-parsed.
func Dump(tree *ptsearch.Tree, state *ptsearch.TreeState) string {
	var b strings.Builder
	dumpNode(&b, tree.Root(), 0, state)
	return b.String()
}

func dumpNode(b *strings.Builder, n *ptsearch.Node, depth int, state *ptsearch.TreeState) {
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(b, "[%d] ", n.Position())

	if n.IsLeaf() {
		fmt.Fprintf(b, "'%s'", n.Label())
	} else {
		fmt.Fprintf(b, "%s", n.Operator())
	}

	if state != nil {
		fmt.Fprintf(b, " (%s)", state.Get(n))
	}
	b.WriteByte('\n')

	for _, c := range n.Children() {
		dumpNode(b, c, depth+1, state)
	}
}
