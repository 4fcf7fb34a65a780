package handle_test

import (
	"testing"

	"github.com/katalvlaran/vgunfold/handle"
	"github.com/stretchr/testify/require"
)

func TestNewAndAccessors(t *testing.T) {
	h, err := handle.New(7, true)
	require.NoError(t, err)
	require.Equal(t, uint64(7), h.ID())
	require.True(t, h.IsReverse())
	require.Equal(t, "7-", h.String())

	fwd, err := handle.New(7, false)
	require.NoError(t, err)
	require.False(t, fwd.IsReverse())
	require.Equal(t, "7+", fwd.String())
}

func TestRCIsBitFlip(t *testing.T) {
	h := handle.MustNew(42, false)
	rc := h.RC()
	require.Equal(t, h.ID(), rc.ID())
	require.True(t, rc.IsReverse())
	require.Equal(t, h, rc.RC(), "RC must be an involution")
}

func TestNewOverflow(t *testing.T) {
	_, err := handle.New(^uint64(0), false)
	require.ErrorIs(t, err, handle.ErrIDOverflow)
}

func TestEdgeRC(t *testing.T) {
	a := handle.MustNew(1, false)
	b := handle.MustNew(2, false)
	e := handle.NewEdge(a, b)
	rc := e.RC()
	require.Equal(t, b.RC(), rc.From)
	require.Equal(t, a.RC(), rc.To)
	require.Equal(t, e, rc.RC(), "RC of RC restores the original edge")
}

func TestWalkReverseComplement(t *testing.T) {
	w := handle.Walk{
		handle.MustNew(1, false),
		handle.MustNew(2, false),
		handle.MustNew(3, true),
	}
	rc := w.ReverseComplement()
	require.Equal(t, handle.MustNew(3, false), rc[0])
	require.Equal(t, handle.MustNew(2, true), rc[1])
	require.Equal(t, handle.MustNew(1, true), rc[2])
	require.Equal(t, w, rc.ReverseComplement())
}

func TestWalkCanonicalPicksSmaller(t *testing.T) {
	w := handle.Walk{handle.MustNew(5, false), handle.MustNew(1, false)}
	rc := w.ReverseComplement()

	canonW := w.Canonical()
	canonRC := rc.Canonical()
	require.Equal(t, canonW, canonRC, "W and RC(W) must canonicalize identically")
	require.Equal(t, rc, canonW, "RC(W) = 1- 5- packs smaller than W = 5+ 1+")
}
