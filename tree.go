package ptsearch

import "fmt"

// Operator is a control-flow operator labeling an inner node of a process
// tree.
type Operator int

const (
	// Sequence executes its children left to right.
	Sequence Operator = iota
	// ReverseSequence executes its children right to left. It exists
	// primarily to make the mirror tree (see Reverse) expressible;
	// user-authored trees will rarely contain it.
	ReverseSequence
	// Parallel executes all children concurrently, in any interleaving.
	Parallel
	// Xor executes exactly one child, chosen nondeterministically.
	Xor
	// Loop executes its first child (the "do" body), then may re-arm
	// through its second child (the "redo" path) any number of times.
	// A Loop has exactly two children.
	Loop
)

// String renders an Operator using the textual-format literal from the
// grammar: "->", "<-", "+", "X", "*".
func (o Operator) String() string {
	switch o {
	case Sequence:
		return "->"
	case ReverseSequence:
		return "<-"
	case Parallel:
		return "+"
	case Xor:
		return "X"
	case Loop:
		return "*"
	default:
		return "?"
	}
}

// Node is one node of an immutable rooted ordered process tree. A Node is
// either an operator with an ordered list of children, or a leaf carrying a
// label and no children. Position is a stable pre-order index, unique
// within the tree, that indexes into a TreeState vector.
type Node struct {
	operator   Operator
	isOperator bool
	label      string
	parent     *Node
	children   []*Node
	position   int
}

// IsLeaf reports whether n is a labeled leaf (no children, no operator).
func (n *Node) IsLeaf() bool {
	return !n.isOperator
}

// Operator returns n's control-flow operator. Only meaningful when
// !n.IsLeaf(); callers must check IsLeaf first, same precondition
// discipline the teacher's State.IsLeaf/children pair relies on.
func (n *Node) Operator() Operator {
	return n.operator
}

// Label returns n's activity label. Only meaningful when n.IsLeaf().
func (n *Node) Label() string {
	return n.label
}

// Parent returns n's parent, or nil if n is the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns n's ordered children, or nil for a leaf.
func (n *Node) Children() []*Node {
	return n.children
}

// Position is n's stable pre-order index in [0, tree size).
func (n *Node) Position() int {
	return n.position
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// String renders the subtree rooted at n back to the textual grammar,
// e.g. "->(*('a','b'),X('c','d'))" round-trips through Parse.
func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("'%s'", n.label)
	}
	s := n.operator.String() + "("
	for i, c := range n.children {
		if i > 0 {
			s += ","
		}
		s += c.String()
	}
	return s + ")"
}

// Tree is an immutable rooted ordered process tree. Positions are assigned
// pre-order during construction and are stable for the tree's lifetime;
// nodes are held in a single arena indexed by position (see Builder),
// which keeps the tree cheap to traverse and trivial to mirror.
type Tree struct {
	root  *Node
	nodes []*Node // arena, nodes[i].position == i
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Size returns the node count N; positions range over [0, N).
func (t *Tree) Size() int {
	return len(t.nodes)
}

// NodeAt returns the node at the given pre-order position.
func (t *Tree) NodeAt(position int) *Node {
	return t.nodes[position]
}

func (t *Tree) String() string {
	return t.root.String()
}

// Builder assembles a Node before it is attached to a finalized Tree. Build
// a tree bottom-up with Leaf/Op, then call Build on the root builder to
// assign positions pre-order and produce the immutable Tree.
type Builder struct {
	operator Operator
	isOp     bool
	label    string
	children []*Builder
}

// Leaf starts a builder for a labeled leaf.
func Leaf(label string) *Builder {
	return &Builder{label: label}
}

// Op starts a builder for an operator node over the given children, in
// order. Sequence, ReverseSequence, Parallel and Xor require at least two
// children; Loop requires exactly two (do, redo).
func Op(operator Operator, children ...*Builder) *Builder {
	return &Builder{operator: operator, isOp: true, children: children}
}

// Build finalizes the tree rooted at b: validates operator arity,
// assigns pre-order positions, and links parent back-references.
func (b *Builder) Build() (*Tree, error) {
	if err := validateArity(b); err != nil {
		return nil, err
	}
	nodes := make([]*Node, 0, countBuilders(b))
	var assign func(nb *Builder, parent *Node) *Node
	assign = func(nb *Builder, parent *Node) *Node {
		n := &Node{
			operator:   nb.operator,
			isOperator: nb.isOp,
			label:      nb.label,
			parent:     parent,
			position:   len(nodes),
		}
		nodes = append(nodes, n)
		if nb.isOp {
			n.children = make([]*Node, len(nb.children))
			for i, c := range nb.children {
				n.children[i] = assign(c, n)
			}
		}
		return n
	}
	root := assign(b, nil)
	return &Tree{root: root, nodes: nodes}, nil
}

func countBuilders(b *Builder) int {
	n := 1
	for _, c := range b.children {
		n += countBuilders(c)
	}
	return n
}

func validateArity(b *Builder) error {
	if !b.isOp {
		return nil
	}
	if b.operator == Loop && len(b.children) != 2 {
		return fmt.Errorf("%w: loop must have exactly 2 children (do, redo), got %d", ErrInvalidTreeString, len(b.children))
	}
	if b.operator != Loop && len(b.children) < 2 {
		return fmt.Errorf("%w: operator %s requires at least 2 children, got %d", ErrInvalidTreeString, b.operator, len(b.children))
	}
	for _, c := range b.children {
		if err := validateArity(c); err != nil {
			return err
		}
	}
	return nil
}
