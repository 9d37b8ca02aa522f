package ptsearch

// Transition is a single legal move of one node from one NodeState to
// another. From must differ from To; the admitted (from, to) pairs are
// exactly the four kinds constructed by the helpers below.
type Transition struct {
	Node *Node
	From NodeState
	To   NodeState
}

// FutureToOpen is the activation transition.
func FutureToOpen(n *Node) Transition { return Transition{n, Future, Open} }

// FutureToClosed is the skip transition.
func FutureToClosed(n *Node) Transition { return Transition{n, Future, Closed} }

// OpenToClosed is the completion transition.
func OpenToClosed(n *Node) Transition { return Transition{n, Open, Closed} }

// ClosedToFuture is the re-arming transition (loop/redo semantics).
func ClosedToFuture(n *Node) Transition { return Transition{n, Closed, Future} }

// IsFutureToOpen reports whether t is an activation.
func (t Transition) IsFutureToOpen() bool { return t.From == Future && t.To == Open }

// IsFutureToClosed reports whether t is a skip.
func (t Transition) IsFutureToClosed() bool { return t.From == Future && t.To == Closed }

// IsOpenToClosed reports whether t is a completion.
func (t Transition) IsOpenToClosed() bool { return t.From == Open && t.To == Closed }

// IsClosedToFuture reports whether t is a re-arm.
func (t Transition) IsClosedToFuture() bool { return t.From == Closed && t.To == Future }

// Invert swaps and re-involutes t's endpoints: the new From is the
// involution of the old To, and the new To is the involution of the old
// From. This maps Future->Open to Open->Closed (and back), and leaves
// Future->Closed and Closed->Future each self-paired, since involuting
// Open is the identity but involuting Future/Closed swaps them back to
// where the un-swapped endpoint already was.
func (t Transition) Invert() Transition {
	return Transition{Node: t.Node, From: t.To.Invert(), To: t.From.Invert()}
}

func indexOfChild(children []*Node, n *Node) int {
	for i, c := range children {
		if c == n {
			return i
		}
	}
	return -1
}

func assertPrecondition(cond bool, msg string) {
	if !cond {
		panic("ptsearch: " + msg)
	}
}

// canFutureToOpen reports whether node may activate. Precondition: node is
// Future.
func canFutureToOpen(node *Node, state TreeState) bool {
	assertPrecondition(state.IsFuture(node), "canFutureToOpen: node is not Future")

	for _, c := range node.children {
		if !state.AllDescendantsIn(c, Future) {
			return false
		}
	}
	if node.IsRoot() {
		return true
	}
	if !state.IsOpen(node.parent) {
		return false
	}
	return futureToOpenSiblingConditions(node, state)
}

// canOpenToClosed reports whether node may complete. Precondition: node is
// Open.
func canOpenToClosed(node *Node, state TreeState) bool {
	assertPrecondition(state.IsOpen(node), "canOpenToClosed: node is not Open")

	for _, c := range node.children {
		if !state.AllDescendantsIn(c, Closed) {
			return false
		}
	}
	if node.IsRoot() {
		return true
	}
	if !state.IsOpen(node.parent) {
		return false
	}
	return openToClosedSiblingConditions(node, state)
}

// canFutureToClosed reports whether node may skip. Only meaningful for
// Xor alternatives and Loop redo children; delegates upward to the
// nearest open ancestor when node's own parent is not Open, since
// skip-enablement is decided at that ancestor, not locally.
func canFutureToClosed(node *Node, state TreeState) bool {
	if !state.IsFuture(node) {
		return false
	}
	if node.IsRoot() {
		return false
	}
	if state.IsOpen(node.parent) {
		return futureToClosedSiblingConditions(node, state)
	}
	return canFutureToClosed(node.parent, state)
}

// canClosedToFuture reports whether node may re-arm. This is the defining
// move of Loop; delegation mirrors canFutureToClosed.
func canClosedToFuture(node *Node, state TreeState) bool {
	if !state.IsClosed(node) {
		return false
	}
	if node.IsRoot() {
		return false
	}
	if state.IsOpen(node.parent) {
		return closedToFutureSiblingConditions(node, state)
	}
	return canClosedToFuture(node.parent, state)
}

func closedToFutureSiblingConditions(node *Node, state TreeState) bool {
	p := node.parent
	if IsDoChild(node) {
		return state.IsOpen(p.children[1])
	}
	if IsRedoChild(node) {
		return !state.IsOpen(p.children[0])
	}
	return false
}

func futureToClosedSiblingConditions(node *Node, state TreeState) bool {
	p := node.parent
	if IsXor(p) {
		for _, sib := range p.children {
			if sib != node && state.IsOpen(sib) {
				return true
			}
		}
		return false
	}
	if IsRedoChild(node) {
		return state.IsOpen(p.children[0])
	}
	return false
}

func futureToOpenSiblingConditions(node *Node, state TreeState) bool {
	p := node.parent
	if IsParallel(p) {
		return true
	}
	idx := indexOfChild(p.children, node)

	if IsSequence(p) {
		for _, l := range p.children[:idx] {
			if !state.AllDescendantsIn(l, Closed) {
				return false
			}
		}
		for _, r := range p.children[idx+1:] {
			if !state.AllDescendantsIn(r, Future) {
				return false
			}
		}
		return true
	}
	if IsReverseSequence(p) {
		for _, l := range p.children[:idx] {
			if !state.AllDescendantsIn(l, Future) {
				return false
			}
		}
		for _, r := range p.children[idx+1:] {
			if !state.AllDescendantsIn(r, Closed) {
				return false
			}
		}
		return true
	}
	if IsXor(p) {
		for _, sib := range p.children {
			if !state.AllDescendantsIn(sib, Future) {
				return false
			}
		}
		return true
	}
	if IsDoChild(node) {
		return state.AllDescendantsIn(p.children[1], Future)
	}
	if IsRedoChild(node) {
		return state.AllDescendantsIn(p.children[0], Closed)
	}
	return false
}

func openToClosedSiblingConditions(node *Node, state TreeState) bool {
	p := node.parent
	if IsParallel(p) {
		return true
	}
	idx := indexOfChild(p.children, node)

	if IsSequence(p) {
		for _, l := range p.children[:idx] {
			if !state.AllDescendantsIn(l, Closed) {
				return false
			}
		}
		for _, r := range p.children[idx+1:] {
			if !state.AllDescendantsIn(r, Future) {
				return false
			}
		}
		return true
	}
	if IsReverseSequence(p) {
		for _, l := range p.children[:idx] {
			if !state.AllDescendantsIn(l, Future) {
				return false
			}
		}
		for _, r := range p.children[idx+1:] {
			if !state.AllDescendantsIn(r, Closed) {
				return false
			}
		}
		return true
	}
	if IsXor(p) {
		for _, sib := range p.children {
			if sib == node {
				continue
			}
			if !state.AllDescendantsIn(sib, Closed) {
				return false
			}
		}
		return true
	}
	if IsDoChild(node) {
		return state.AllDescendantsIn(p.children[1], Closed)
	}
	if IsRedoChild(node) {
		return state.AllDescendantsIn(p.children[0], Future)
	}
	return false
}

// GetValidTransitions enumerates every legal transition in tree at state.
// The recursion short-circuits twice: an admitted activation preempts
// descendant enumeration on that subtree (an ancestor activating is a
// higher-impact move than anything below it), and likewise an admitted
// completion preempts its subtree. Omitting either short-circuit would
// still be sound (just more transitions enumerated) but can blow up the
// branching factor.
func GetValidTransitions(tree *Tree, state TreeState) []Transition {
	return collectValidTransitions(tree.Root(), state, nil)
}

func collectValidTransitions(node *Node, state TreeState, out []Transition) []Transition {
	if state.IsFuture(node) {
		if canFutureToOpen(node, state) {
			return append(out, FutureToOpen(node))
		}
		if canFutureToClosed(node, state) {
			out = append(out, FutureToClosed(node))
		}
	}

	if state.IsClosed(node) && canClosedToFuture(node, state) {
		out = append(out, ClosedToFuture(node))
	}

	if state.IsOpen(node) && canOpenToClosed(node, state) {
		return append(out, OpenToClosed(node))
	}

	for _, c := range node.children {
		out = collectValidTransitions(c, state, out)
	}
	return out
}
