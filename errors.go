package ptsearch

import "errors"

// Sentinel errors surfaced to callers. None are retried internally; each
// corresponds to one of the error kinds in the system's error-handling
// design: malformed external input (tree/state text), a search that
// exhausted both frontiers, or an API misuse that an assertion would
// otherwise have caught.
var (
	// ErrInvalidTreeString is returned when tree construction is given a
	// structurally invalid shape (wrong operator arity, a Loop without
	// exactly a do/redo pair).
	ErrInvalidTreeString = errors.New("ptsearch: invalid tree structure")

	// ErrInvalidStateChar is returned by ParseNodeState/ParseTreeState on
	// any character outside {o,c,f}.
	ErrInvalidStateChar = errors.New("ptsearch: invalid state character")

	// ErrNoPathFound is returned by Search when both frontiers of the
	// bidirectional Dijkstra search are exhausted without ever meeting.
	ErrNoPathFound = errors.New("ptsearch: no path found")

	// ErrIllegalTransition denotes a requested transition whose (from, to)
	// pair does not match the node's current state, or whose move's
	// predicate is false. No function in this package returns it.
	ErrIllegalTransition = errors.New("ptsearch: illegal transition requested")
)
