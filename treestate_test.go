package ptsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialStateIsAllFuture(t *testing.T) {
	tree, err := Op(Sequence, Leaf("a"), Leaf("b")).Build()
	require.NoError(t, err)

	s := InitialState(tree)
	assert.Equal(t, "fff", s.String())
	for i := 0; i < tree.Size(); i++ {
		assert.True(t, s.IsFuture(tree.NodeAt(i)))
	}
}

func TestTreeStateUpdateIsImmutable(t *testing.T) {
	tree, err := Leaf("a").Build()
	require.NoError(t, err)

	s0 := InitialState(tree)
	s1 := s0.Update(tree.Root(), Open)

	assert.Equal(t, "f", s0.String())
	assert.Equal(t, "o", s1.String())
	assert.True(t, s0.IsFuture(tree.Root()))
	assert.True(t, s1.IsOpen(tree.Root()))
}

func TestTreeStateParseRoundTrips(t *testing.T) {
	s, err := ParseTreeState("foc")
	require.NoError(t, err)
	assert.Equal(t, "foc", s.String())
}

func TestTreeStateParseRejectsBadChar(t *testing.T) {
	_, err := ParseTreeState("fox")
	assert.Error(t, err)
}

func TestTreeStateInvertIsInvolution(t *testing.T) {
	s, err := ParseTreeState("foc")
	require.NoError(t, err)

	inv := s.Invert()
	assert.Equal(t, "cof", inv.String())
	assert.Equal(t, s, inv.Invert())
}

func TestTreeStateEqualityIsByValue(t *testing.T) {
	a, err := ParseTreeState("foc")
	require.NoError(t, err)
	b, err := ParseTreeState("foc")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	m := map[TreeState]int{a: 1}
	assert.Equal(t, 1, m[b])
}

func TestAllDescendantsIn(t *testing.T) {
	tree, err := Op(Sequence, Leaf("a"), Leaf("b")).Build()
	require.NoError(t, err)

	s := InitialState(tree)
	assert.True(t, s.AllDescendantsIn(tree.Root(), Future))

	s = s.Update(tree.Root().Children()[0], Open)
	assert.False(t, s.AllDescendantsIn(tree.Root(), Future))
}
