package ptsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeStateInvertIsInvolution(t *testing.T) {
	cases := []struct {
		state, inverted NodeState
	}{
		{Future, Closed},
		{Closed, Future},
		{Open, Open},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.inverted, tc.state.Invert())
		assert.Equal(t, tc.state, tc.state.Invert().Invert())
	}
}

func TestNodeStateString(t *testing.T) {
	assert.Equal(t, "f", Future.String())
	assert.Equal(t, "o", Open.String())
	assert.Equal(t, "c", Closed.String())
}

func TestParseNodeState(t *testing.T) {
	for c, want := range map[byte]NodeState{'f': Future, 'o': Open, 'c': Closed} {
		got, err := ParseNodeState(c)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseNodeStateRejectsUnknown(t *testing.T) {
	_, err := ParseNodeState('x')
	assert.ErrorIs(t, err, ErrInvalidStateChar)
}
