package ptsearch

// TreeState is an immutable snapshot of every node's NodeState in a tree,
// stored as a flat vector indexed by Node.Position. Equality and hashing
// depend on the whole vector; Update never mutates the receiver, it
// returns a fresh value differing in exactly one cell, so two search
// states may alias an intermediate TreeState without interference.
//
// The vector is kept as a string (one byte per position, one of 'f', 'o',
// 'c') rather than a []NodeState: strings are comparable and hashable for
// free, which is exactly the value semantics a Dijkstra distance-table key
// needs, and the representation doubles as the textual state format from
// the external-interfaces contract.
type TreeState struct {
	codes string
}

// InitialState returns the all-Future state vector for t.
func InitialState(t *Tree) TreeState {
	b := make([]byte, t.Size())
	for i := range b {
		b[i] = 'f'
	}
	return TreeState{codes: string(b)}
}

// ParseTreeState parses a state string of length N, one character per
// position in order, drawn from {o, c, f}. ParseTreeState(s.String()) == s
// for any TreeState s.
func ParseTreeState(s string) (TreeState, error) {
	for i := 0; i < len(s); i++ {
		if _, err := ParseNodeState(s[i]); err != nil {
			return TreeState{}, err
		}
	}
	return TreeState{codes: s}, nil
}

// String renders the state vector as its textual form, the inverse of
// ParseTreeState.
func (s TreeState) String() string {
	return s.codes
}

// Get returns the NodeState stored at n's position.
func (s TreeState) Get(n *Node) NodeState {
	switch s.codes[n.position] {
	case 'o':
		return Open
	case 'c':
		return Closed
	default:
		return Future
	}
}

// IsFuture reports whether n is Future in s.
func (s TreeState) IsFuture(n *Node) bool {
	return s.Get(n) == Future
}

// IsOpen reports whether n is Open in s.
func (s TreeState) IsOpen(n *Node) bool {
	return s.Get(n) == Open
}

// IsClosed reports whether n is Closed in s.
func (s TreeState) IsClosed(n *Node) bool {
	return s.Get(n) == Closed
}

// Update returns a fresh TreeState differing from s in exactly n's cell,
// set to the given NodeState.
func (s TreeState) Update(n *Node, state NodeState) TreeState {
	b := []byte(s.codes)
	b[n.position] = state.String()[0]
	return TreeState{codes: string(b)}
}

// Invert applies the node-state involution cellwise: Closed and Future
// swap, Open is unchanged. s.Invert().Invert() == s always.
func (s TreeState) Invert() TreeState {
	b := []byte(s.codes)
	for i, c := range b {
		switch c {
		case 'c':
			b[i] = 'f'
		case 'f':
			b[i] = 'c'
		}
	}
	return TreeState{codes: string(b)}
}

// AllDescendantsIn reports whether n and every transitive child of n is in
// the given state. Evaluated recursively, no memoization required.
func (s TreeState) AllDescendantsIn(n *Node, state NodeState) bool {
	if s.Get(n) != state {
		return false
	}
	for _, c := range n.children {
		if !s.AllDescendantsIn(c, state) {
			return false
		}
	}
	return true
}
