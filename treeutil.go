package ptsearch

// IsSequence reports whether n is a Sequence operator node.
func IsSequence(n *Node) bool {
	return n != nil && !n.IsLeaf() && n.operator == Sequence
}

// IsReverseSequence reports whether n is a ReverseSequence operator node.
func IsReverseSequence(n *Node) bool {
	return n != nil && !n.IsLeaf() && n.operator == ReverseSequence
}

// IsParallel reports whether n is a Parallel operator node.
func IsParallel(n *Node) bool {
	return n != nil && !n.IsLeaf() && n.operator == Parallel
}

// IsXor reports whether n is an Xor operator node.
func IsXor(n *Node) bool {
	return n != nil && !n.IsLeaf() && n.operator == Xor
}

// IsLoop reports whether n is a Loop operator node.
func IsLoop(n *Node) bool {
	return n != nil && !n.IsLeaf() && n.operator == Loop
}

// IsDoChild reports whether n is the first ("do") child of a Loop parent.
func IsDoChild(n *Node) bool {
	return n.parent != nil && IsLoop(n.parent) && n.parent.children[0] == n
}

// IsRedoChild reports whether n is the second ("redo") child of a Loop
// parent.
func IsRedoChild(n *Node) bool {
	return n.parent != nil && IsLoop(n.parent) && n.parent.children[1] == n
}

// Reverse builds the mirror tree T_rev of t: a structural copy preserving
// positions, labels, and child order, with Sequence and ReverseSequence
// swapped at every operator node (Parallel, Xor, Loop are unchanged).
// Positions are preserved so a TreeState vector indexes identically into
// both t and Reverse(t). Reverse(Reverse(t)) is structurally identical to
// t.
func Reverse(t *Tree) *Tree {
	nodes := make([]*Node, t.Size())

	var mirror func(n, parent *Node) *Node
	mirror = func(n, parent *Node) *Node {
		op := n.operator
		switch op {
		case Sequence:
			op = ReverseSequence
		case ReverseSequence:
			op = Sequence
		}
		nn := &Node{
			operator:   op,
			isOperator: n.isOperator,
			label:      n.label,
			parent:     parent,
			position:   n.position,
		}
		nodes[n.position] = nn
		if n.isOperator {
			nn.children = make([]*Node, len(n.children))
			for i, c := range n.children {
				nn.children[i] = mirror(c, nn)
			}
		}
		return nn
	}

	root := mirror(t.root, nil)
	return &Tree{root: root, nodes: nodes}
}
