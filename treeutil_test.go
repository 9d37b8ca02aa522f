package ptsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOperatorPredicates(t *testing.T) {
	tree, err := Op(Loop, Leaf("a"), Leaf("b")).Build()
	require.NoError(t, err)

	assert.True(t, IsLoop(tree.Root()))
	assert.False(t, IsSequence(tree.Root()))
	assert.False(t, IsLoop(tree.Root().Children()[0]))
}

func TestIsDoRedoChild(t *testing.T) {
	tree, err := Op(Loop, Leaf("a"), Leaf("b")).Build()
	require.NoError(t, err)

	do, redo := tree.Root().Children()[0], tree.Root().Children()[1]
	assert.True(t, IsDoChild(do))
	assert.False(t, IsRedoChild(do))
	assert.True(t, IsRedoChild(redo))
	assert.False(t, IsDoChild(redo))
}

func TestReversePreservesPositionsLabelsAndSwapsSequence(t *testing.T) {
	tree, err := Op(Sequence, Leaf("a"), Op(ReverseSequence, Leaf("b"), Leaf("c"))).Build()
	require.NoError(t, err)

	rev := Reverse(tree)

	assert.Equal(t, tree.Size(), rev.Size())
	assert.Equal(t, ReverseSequence, rev.Root().Operator())
	assert.Equal(t, Sequence, rev.Root().Children()[1].Operator())

	for i := 0; i < tree.Size(); i++ {
		assert.Equal(t, i, rev.NodeAt(i).Position())
		assert.Equal(t, tree.NodeAt(i).Label(), rev.NodeAt(i).Label())
		assert.Equal(t, tree.NodeAt(i).IsLeaf(), rev.NodeAt(i).IsLeaf())
	}
}

func TestReverseLeavesNonSequenceOperatorsUnchanged(t *testing.T) {
	tree, err := Op(Parallel, Op(Xor, Leaf("a"), Leaf("b")), Op(Loop, Leaf("c"), Leaf("d"))).Build()
	require.NoError(t, err)

	rev := Reverse(tree)
	assert.Equal(t, Parallel, rev.Root().Operator())
	assert.Equal(t, Xor, rev.Root().Children()[0].Operator())
	assert.Equal(t, Loop, rev.Root().Children()[1].Operator())
}

func TestReverseIsAnInvolution(t *testing.T) {
	tree, err := Op(Sequence, Leaf("a"), Op(ReverseSequence, Leaf("b"), Leaf("c"))).Build()
	require.NoError(t, err)

	assert.Equal(t, tree.String(), Reverse(Reverse(tree)).String())
}
