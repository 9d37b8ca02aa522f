package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dragomit/ptsearch"
)

// Report writes a human-oriented summary of result to w: the total cost,
// the leaf (activity) sequence, and a step-by-step table of the firing
// sequence with each transition's kind color-coded.
func Report(w io.Writer, result *ptsearch.SearchResult) {
	color.New(color.FgGreen, color.Bold).Fprintf(w, "cost: %d\n", result.Cost)
	color.New(color.FgCyan).Fprintf(w, "leaf sequence: %s\n\n", leafSequenceString(result.LeafSequence))

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"#", "node", "transition"})

	for i, t := range result.FiringSequence {
		tbl.AppendRow(table.Row{i + 1, nodeLabel(t.Node), transitionKindString(t)})
	}
	tbl.AppendFooter(table.Row{"", "", fmt.Sprintf("%d transitions", len(result.FiringSequence))})
	tbl.Render()
}

func leafSequenceString(leaves []*ptsearch.Node) string {
	labels := make([]string, len(leaves))
	for i, n := range leaves {
		labels[i] = n.Label()
	}
	return strings.Join(labels, " -> ")
}

func nodeLabel(n *ptsearch.Node) string {
	if n.IsLeaf() {
		return fmt.Sprintf("'%s'", n.Label())
	}
	return fmt.Sprintf("%s @%d", n.Operator(), n.Position())
}

func transitionKindString(t ptsearch.Transition) string {
	var c *color.Color
	var label string
	switch {
	case t.IsFutureToOpen():
		c, label = color.New(color.FgGreen), "activate"
	case t.IsOpenToClosed():
		c, label = color.New(color.FgBlue), "complete"
	case t.IsFutureToClosed():
		c, label = color.New(color.FgYellow), "skip"
	case t.IsClosedToFuture():
		c, label = color.New(color.FgMagenta), "re-arm"
	default:
		c, label = color.New(color.FgRed), "?"
	}
	return c.Sprintf("%s -> %s (%s)", t.From, t.To, label)
}
