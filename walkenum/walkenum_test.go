package walkenum_test

import (
	"testing"

	"github.com/katalvlaran/vgunfold/handle"
	"github.com/katalvlaran/vgunfold/hapidx"
	"github.com/katalvlaran/vgunfold/refidx"
	"github.com/katalvlaran/vgunfold/vgraph"
	"github.com/katalvlaran/vgunfold/walkenum"
	"github.com/stretchr/testify/require"
)

func componentChain(t *testing.T, ids ...uint64) *vgraph.Graph {
	t.Helper()
	g := vgraph.New()
	for _, id := range ids {
		require.NoError(t, g.AddNode(id, "N"))
	}
	for i := 0; i+1 < len(ids); i++ {
		require.NoError(t, g.AddEdge(handle.MustNew(ids[i], false), handle.MustNew(ids[i+1], false)))
	}
	return g
}

func TestReferenceWalksForwardAndBackward(t *testing.T) {
	component := componentChain(t, 1, 2, 3)
	x := refidx.NewStatic(map[string]handle.Walk{
		"ref": {handle.MustNew(1, false), handle.MustNew(2, false), handle.MustNew(3, false)},
	}, nil)
	border := map[uint64]bool{1: true, 3: true}

	walks := walkenum.ReferenceWalks(component, x, 1, border)
	require.Len(t, walks, 1, "only the forward walk from rank 0 extends (no backward room)")
	require.Equal(t, handle.Walk{
		handle.MustNew(1, false), handle.MustNew(2, false), handle.MustNew(3, false),
	}, walks[0])
}

func TestReferenceWalksFromMiddleOccurrence(t *testing.T) {
	component := componentChain(t, 1, 2, 3)
	x := refidx.NewStatic(map[string]handle.Walk{
		"ref": {handle.MustNew(1, false), handle.MustNew(2, false), handle.MustNew(3, false)},
	}, nil)
	border := map[uint64]bool{1: true, 3: true}

	// node 2 is not itself a border node but we still probe from it to
	// exercise both directions independently.
	walks := walkenum.ReferenceWalks(component, x, 2, border)
	require.Len(t, walks, 2)
}

func TestHaplotypeWalksEmitBorderToBorder(t *testing.T) {
	component := componentChain(t, 1, 2, 3)
	thread := handle.Walk{handle.MustNew(1, false), handle.MustNew(2, false), handle.MustNew(3, false)}
	h := hapidx.NewStatic([]handle.Walk{thread})
	border := map[uint64]bool{1: true, 3: true}

	walks := walkenum.HaplotypeWalks(component, h, 1, border)
	require.Len(t, walks, 1)
	require.Equal(t, thread, walks[0])
}

func TestHaplotypeWalksMaximalOnDeadEnd(t *testing.T) {
	component := componentChain(t, 1, 2)
	thread := handle.Walk{handle.MustNew(1, false), handle.MustNew(2, false)}
	h := hapidx.NewStatic([]handle.Walk{thread})
	border := map[uint64]bool{1: true} // 2 is NOT a border node

	walks := walkenum.HaplotypeWalks(component, h, 1, border)
	require.Len(t, walks, 1)
	require.Equal(t, thread, walks[0], "dead end within evidence still emits the maximal walk")
}

func TestHaplotypeWalksSelfLoopBorder(t *testing.T) {
	// H thread 1+2+2+3+ through a self-loop node, per spec.md §8 scenario (c).
	g := vgraph.New()
	require.NoError(t, g.AddNode(1, "A"))
	require.NoError(t, g.AddNode(2, "C"))
	require.NoError(t, g.AddNode(3, "G"))
	require.NoError(t, g.AddEdge(handle.MustNew(1, false), handle.MustNew(2, false)))
	require.NoError(t, g.AddEdge(handle.MustNew(2, false), handle.MustNew(2, false)))
	require.NoError(t, g.AddEdge(handle.MustNew(2, false), handle.MustNew(3, false)))

	thread := handle.Walk{
		handle.MustNew(1, false), handle.MustNew(2, false),
		handle.MustNew(2, false), handle.MustNew(3, false),
	}
	h := hapidx.NewStatic([]handle.Walk{thread})
	border := map[uint64]bool{1: true, 3: true}

	walks := walkenum.HaplotypeWalks(g, h, 1, border)
	require.Len(t, walks, 1)
	require.Equal(t, thread, walks[0])
}
