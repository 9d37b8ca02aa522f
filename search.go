package ptsearch

import (
	"container/heap"
	"math"
)

// searchState is one node of the search's back-pointer DAG: the tree state
// reached, the cost to reach it, the transition that produced it, and
// enough context to reconstruct a firing sequence once two frontiers meet.
// Ordering is by g ascending; equality/hash (as a distance-table key) is
// carried by treeState alone, not by searchState itself — the distance
// table is keyed directly on TreeState.
type searchState struct {
	g                int
	depth            int
	treeState        TreeState
	fromStart        bool
	transition       Transition // meaningful only when parent != nil
	validTransitions []Transition
	executedLeaf     *Node
	parent           *searchState
}

// priorityQueue is a binary min-heap of searchState ordered by g, the
// open-set structure for one direction of the bidirectional search.
type priorityQueue []*searchState

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].g < pq[j].g }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(*searchState)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// distEntry is a distance-table slot: the best searchState found so far
// for a given TreeState, and whether that state has already been
// expanded. Keeping a separate visited flag (rather than a sentinel cost
// value) avoids the documented looseness of clobbering the cost slot —
// the real cost is always read off entry.state.g.
type distEntry struct {
	visited bool
	state   *searchState
}

// meetingInfo tracks the cheapest confirmed meeting between the two
// frontiers found so far.
type meetingInfo struct {
	bestCost  int
	startNode *searchState // from_start == true
	endNode   *searchState // from_start == false
}

// SearchResult is the outcome of a successful Search: the minimal cost to
// drive tree from all-Future to all-Closed, the firing sequence that
// achieves it, the projected leaf (activity) sequence, and an
// observability counter.
type SearchResult struct {
	Cost           int
	FiringSequence []Transition
	LeafSequence   []*Node
	VisitedStates  int
}

// engine holds the mutable search state for one Search call: two
// frontiers (forward over tree, backward over its mirror), their
// distance tables, and the current best meeting. The tree and its mirror
// are read-only for the engine's lifetime; nothing here is shared across
// calls or goroutines.
type engine struct {
	tree        *Tree
	reverseTree *Tree

	forwardQueue  priorityQueue
	backwardQueue priorityQueue
	forwardDist   map[TreeState]*distEntry
	backwardDist  map[TreeState]*distEntry

	meeting       meetingInfo
	visitedStates int
}

func newEngine(tree *Tree) *engine {
	e := &engine{
		tree:         tree,
		reverseTree:  Reverse(tree),
		forwardDist:  make(map[TreeState]*distEntry),
		backwardDist: make(map[TreeState]*distEntry),
	}
	e.meeting.bestCost = math.MaxInt

	forwardInitial := &searchState{treeState: InitialState(tree), fromStart: true}
	backwardInitial := &searchState{treeState: InitialState(e.reverseTree), fromStart: false}

	heap.Push(&e.forwardQueue, forwardInitial)
	heap.Push(&e.backwardQueue, backwardInitial)
	return e
}

// Search runs bidirectional Dijkstra over tree's reachable state graph and
// returns the lowest-cost firing sequence from all-Future to all-Closed.
// When unidirectional is true, the search locks onto the forward
// direction after the initial priming expansion of both frontiers.
func Search(tree *Tree, unidirectional bool) (*SearchResult, error) {
	e := newEngine(tree)
	return e.run(unidirectional)
}

func (e *engine) run(unidirectional bool) (*SearchResult, error) {
	expandForward := true
	lock := unidirectional

	// Prime both frontiers with one expansion each before entering the
	// alternating main loop.
	e.expand(true)
	e.expand(false)

	for len(e.forwardQueue) > 0 || len(e.backwardQueue) > 0 {
		f := 0
		if len(e.forwardQueue) > 0 {
			f = e.forwardQueue[0].g
		}
		b := 0
		if len(e.backwardQueue) > 0 {
			b = e.backwardQueue[0].g
		}

		if e.meeting.startNode != nil {
			return e.reconstruct(e.meeting.startNode, e.meeting.endNode), nil
		}
		if f+b >= e.meeting.bestCost {
			return e.reconstruct(e.meeting.startNode, e.meeting.endNode), nil
		}

		e.expand(expandForward)
		expandForward = !expandForward || lock
	}

	return nil, ErrNoPathFound
}

func (e *engine) expand(forward bool) {
	tree := e.tree
	queue := &e.forwardQueue
	dist := e.forwardDist
	if !forward {
		tree = e.reverseTree
		queue = &e.backwardQueue
		dist = e.backwardDist
	}
	if queue.Len() == 0 {
		return
	}

	s := heap.Pop(queue).(*searchState)

	if entry, ok := dist[s.treeState]; ok && entry.visited {
		return
	}
	e.visitedStates++
	if entry, ok := dist[s.treeState]; ok {
		entry.visited = true
		entry.state = s
	} else {
		dist[s.treeState] = &distEntry{visited: true, state: s}
	}

	transitions := GetValidTransitions(tree, s.treeState)
	for _, t := range transitions {
		var leaf *Node
		if t.Node.IsLeaf() {
			isForwardExec := t.IsFutureToOpen() && forward
			isBackwardExec := t.IsOpenToClosed() && !forward
			if isForwardExec || isBackwardExec {
				leaf = t.Node
			}
		}

		successor := &searchState{
			g:                s.g + 1,
			depth:            s.depth + 1,
			treeState:        s.treeState.Update(t.Node, t.To),
			fromStart:        forward,
			transition:       t,
			validTransitions: transitions,
			executedLeaf:     leaf,
			parent:           s,
		}

		existing, exists := dist[successor.treeState]
		if !exists || existing.state.g > successor.g {
			heap.Push(queue, successor)
			if exists {
				existing.state = successor
			} else {
				dist[successor.treeState] = &distEntry{state: successor}
			}
			e.checkForMatch(successor)
		}
	}
}

func (e *engine) checkForMatch(s *searchState) {
	otherDist := e.backwardDist
	if !s.fromStart {
		otherDist = e.forwardDist
	}

	inv := s.treeState.Invert()
	entry, ok := otherDist[inv]
	if !ok {
		return
	}
	match := entry.state

	if match.g+s.g < e.meeting.bestCost {
		e.meeting.bestCost = match.g + s.g
		if s.fromStart {
			e.meeting.startNode, e.meeting.endNode = s, match
		} else {
			e.meeting.startNode, e.meeting.endNode = match, s
		}
	}
}
