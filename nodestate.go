package ptsearch

import "fmt"

// NodeState is the three-valued lifecycle tag carried by every node of a
// process tree's state vector.
type NodeState int

const (
	// Future means the node has not yet been enabled.
	Future NodeState = iota
	// Open means the node has started but not finished.
	Open
	// Closed means the node has finished.
	Closed
)

// String renders a NodeState the same way ParseNodeState reads it,
// one character per state: 'f', 'o', 'c'.
func (s NodeState) String() string {
	switch s {
	case Future:
		return "f"
	case Open:
		return "o"
	case Closed:
		return "c"
	default:
		return "?"
	}
}

// Invert is the node-state involution: Closed and Future swap, Open is a
// fixed point. Invert(Invert(s)) == s for all three values.
func (s NodeState) Invert() NodeState {
	switch s {
	case Closed:
		return Future
	case Future:
		return Closed
	default:
		return Open
	}
}

// ParseNodeState maps a single state character to its NodeState, the
// inverse of NodeState.String. Any character outside {o,c,f} is rejected.
func ParseNodeState(c byte) (NodeState, error) {
	switch c {
	case 'o':
		return Open, nil
	case 'c':
		return Closed, nil
	case 'f':
		return Future, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStateChar, c)
	}
}
