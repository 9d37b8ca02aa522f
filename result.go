package ptsearch

// reconstruct walks the parent chains hanging off startNode (the forward
// frontier's half of the meeting) and endNode (the backward frontier's
// half) and splices them into one firing sequence from all-Future to
// all-Closed.
//
// The forward half is collected node-to-root (most recent transition
// first) and then reversed into root-first order. The backward half is
// also collected node-to-root, but is NOT reversed: each of its
// transitions is inverted instead, and transition inversion already
// performs the time-reversal that makes node-to-root order on the
// reverse tree equal to root-to-node (continuation) order on the
// original tree. Concatenating reversed-forward with inverted-backward
// therefore yields one chronological sequence.
func (e *engine) reconstruct(startNode, endNode *searchState) *SearchResult {
	var fwdTransitions []Transition
	var fwdLeaves []*Node
	for s := startNode; s.parent != nil; s = s.parent {
		fwdTransitions = append(fwdTransitions, s.transition)
		if s.executedLeaf != nil {
			fwdLeaves = append(fwdLeaves, s.executedLeaf)
		}
	}
	reverseTransitionsInPlace(fwdTransitions)
	reverseNodesInPlace(fwdLeaves)

	var bwdTransitions []Transition
	var bwdLeaves []*Node
	for s := endNode; s.parent != nil; s = s.parent {
		bwdTransitions = append(bwdTransitions, e.toOriginalTree(s.transition.Invert()))
		if s.executedLeaf != nil {
			bwdLeaves = append(bwdLeaves, e.tree.NodeAt(s.executedLeaf.Position()))
		}
	}

	firing := append(fwdTransitions, bwdTransitions...)
	leaves := append(fwdLeaves, bwdLeaves...)

	return &SearchResult{
		Cost:           startNode.g + endNode.g,
		FiringSequence: firing,
		LeafSequence:   leaves,
		VisitedStates:  e.visitedStates,
	}
}

// toOriginalTree rewrites t.Node, which may belong to the reverse tree's
// arena, to the corresponding node of e.tree. Positions (and hence
// labels) are identical across a tree and its mirror; only the pointer
// identity differs, and callers comparing nodes by identity should never
// have to care which arena a transition in the result happened to come
// from.
func (e *engine) toOriginalTree(t Transition) Transition {
	return Transition{Node: e.tree.NodeAt(t.Node.Position()), From: t.From, To: t.To}
}

func reverseTransitionsInPlace(s []Transition) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseNodesInPlace(s []*Node) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
