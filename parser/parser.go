// Package parser reads process trees from the textual grammar used
// throughout ptsearch: an operator node is "op(arg, arg, ...)" and a leaf
// is "'label'", where op is one of "->", "<-", "+", "X", "*".
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dragomit/ptsearch"
)

var (
	operatorLine = regexp.MustCompile(`^(->|<-|\+|X|\*)\((.*)\)$`)
	leafLine     = regexp.MustCompile(`^'(.*)'$`)
)

func operatorFromLiteral(lit string) (ptsearch.Operator, bool) {
	switch lit {
	case "->":
		return ptsearch.Sequence, true
	case "<-":
		return ptsearch.ReverseSequence, true
	case "+":
		return ptsearch.Parallel, true
	case "X":
		return ptsearch.Xor, true
	case "*":
		return ptsearch.Loop, true
	}
	return 0, false
}

// Parse parses a process tree written in the textual grammar, e.g.
// "->(*('a','b'),X('c','d'))", and finalizes it into a Tree. The inverse
// of Tree.String for any tree produced by Parse.
func Parse(s string) (*ptsearch.Tree, error) {
	b, err := parseBuilder(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return b.Build()
}

func parseBuilder(s string) (*ptsearch.Builder, error) {
	s = strings.TrimSpace(s)

	if m := operatorLine.FindStringSubmatch(s); m != nil {
		op, ok := operatorFromLiteral(m[1])
		if !ok {
			return nil, fmt.Errorf("%w: unknown operator %q", ptsearch.ErrInvalidTreeString, m[1])
		}
		argStrs := splitArguments(m[2])
		children := make([]*ptsearch.Builder, 0, len(argStrs))
		for _, a := range argStrs {
			c, err := parseBuilder(a)
			if err != nil {
				return nil, err
			}
			children = append(children, c)
		}
		return ptsearch.Op(op, children...), nil
	}

	if m := leafLine.FindStringSubmatch(s); m != nil {
		return ptsearch.Leaf(m[1]), nil
	}

	return nil, fmt.Errorf("%w: cannot parse %q", ptsearch.ErrInvalidTreeString, s)
}

// splitArguments splits a comma-separated argument list at top-level
// commas only; a comma nested inside a child operator's own parentheses
// does not split.
func splitArguments(s string) []string {
	var args []string
	depth := 0
	var cur strings.Builder

	for _, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		}
		if c == ',' && depth == 0 {
			args = append(args, strings.TrimSpace(cur.String()))
			cur.Reset()
			continue
		}
		cur.WriteRune(c)
	}
	if cur.Len() > 0 {
		args = append(args, strings.TrimSpace(cur.String()))
	}
	return args
}
