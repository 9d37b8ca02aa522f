package ptsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValidTransitionsAtInitialStateIsJustRootActivation(t *testing.T) {
	tree, err := Op(Sequence, Leaf("a"), Leaf("b")).Build()
	require.NoError(t, err)

	ts := GetValidTransitions(tree, InitialState(tree))
	require.Len(t, ts, 1)
	assert.True(t, ts[0].IsFutureToOpen())
	assert.Same(t, tree.Root(), ts[0].Node)
}

func TestGetValidTransitionsSequenceOnlyActivatesFirstChild(t *testing.T) {
	tree, err := Op(Sequence, Leaf("a"), Leaf("b")).Build()
	require.NoError(t, err)
	root := tree.Root()

	state := InitialState(tree).Update(root, Open)
	ts := GetValidTransitions(tree, state)

	require.Len(t, ts, 1)
	assert.Same(t, root.Children()[0], ts[0].Node)
	assert.True(t, ts[0].IsFutureToOpen())
}

func TestGetValidTransitionsParallelActivatesAllChildren(t *testing.T) {
	tree, err := Op(Parallel, Leaf("a"), Leaf("b")).Build()
	require.NoError(t, err)
	root := tree.Root()

	state := InitialState(tree).Update(root, Open)
	ts := GetValidTransitions(tree, state)

	require.Len(t, ts, 2)
	for _, tr := range ts {
		assert.True(t, tr.IsFutureToOpen())
	}
}

func TestGetValidTransitionsXorOffersBothThenSkipsTheLoser(t *testing.T) {
	tree, err := Op(Xor, Leaf("a"), Leaf("b")).Build()
	require.NoError(t, err)
	root := tree.Root()
	a, b := root.Children()[0], root.Children()[1]

	state := InitialState(tree).Update(root, Open)
	ts := GetValidTransitions(tree, state)
	require.Len(t, ts, 2)
	for _, tr := range ts {
		assert.True(t, tr.IsFutureToOpen())
	}

	state = state.Update(a, Open)
	ts = GetValidTransitions(tree, state)
	require.Len(t, ts, 1)
	assert.Same(t, b, ts[0].Node)
	assert.True(t, ts[0].IsFutureToClosed())
}

func TestGetValidTransitionsLoopOnlyActivatesDoChild(t *testing.T) {
	tree, err := Op(Loop, Leaf("a"), Leaf("b")).Build()
	require.NoError(t, err)
	root := tree.Root()
	do, redo := root.Children()[0], root.Children()[1]

	state := InitialState(tree).Update(root, Open)
	ts := GetValidTransitions(tree, state)
	require.Len(t, ts, 1)
	assert.Same(t, do, ts[0].Node)
	assert.True(t, ts[0].IsFutureToOpen())

	state = state.Update(do, Open)
	ts = GetValidTransitions(tree, state)
	require.Len(t, ts, 1)
	assert.Same(t, redo, ts[0].Node)
	assert.True(t, ts[0].IsFutureToClosed())
}

func TestTransitionInvertPairing(t *testing.T) {
	tree, err := Leaf("a").Build()
	require.NoError(t, err)
	n := tree.Root()

	assert.Equal(t, OpenToClosed(n), FutureToOpen(n).Invert())
	assert.Equal(t, FutureToOpen(n), OpenToClosed(n).Invert())
	assert.Equal(t, FutureToClosed(n), FutureToClosed(n).Invert())
	assert.Equal(t, ClosedToFuture(n), ClosedToFuture(n).Invert())
}

func TestTransitionInvertIsInvolution(t *testing.T) {
	tree, err := Leaf("a").Build()
	require.NoError(t, err)
	n := tree.Root()

	for _, tr := range []Transition{FutureToOpen(n), OpenToClosed(n), FutureToClosed(n), ClosedToFuture(n)} {
		assert.Equal(t, tr, tr.Invert().Invert())
	}
}
