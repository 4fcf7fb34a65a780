package hapidx_test

import (
	"testing"

	"github.com/katalvlaran/vgunfold/handle"
	"github.com/katalvlaran/vgunfold/hapidx"
	"github.com/stretchr/testify/require"
)

func TestFindAndExtendThroughThread(t *testing.T) {
	thread := handle.Walk{
		handle.MustNew(1, false),
		handle.MustNew(2, false),
		handle.MustNew(3, false),
	}
	idx := hapidx.NewStatic([]handle.Walk{thread})

	s, ok := idx.Find(handle.MustNew(1, false))
	require.True(t, ok)

	s, ok = idx.Extend(s, handle.MustNew(2, false))
	require.True(t, ok)

	s, ok = idx.Extend(s, handle.MustNew(3, false))
	require.True(t, ok)

	_, ok = idx.Extend(s, hapidx.EndMarker)
	require.True(t, ok, "thread must terminate at EndMarker")
}

func TestExtendFailsOnWrongNext(t *testing.T) {
	thread := handle.Walk{handle.MustNew(1, false), handle.MustNew(2, false)}
	idx := hapidx.NewStatic([]handle.Walk{thread})

	s, ok := idx.Find(handle.MustNew(1, false))
	require.True(t, ok)
	_, ok = idx.Extend(s, handle.MustNew(99, false))
	require.False(t, ok)
}

func TestFindMissingStart(t *testing.T) {
	idx := hapidx.NewStatic([]handle.Walk{{handle.MustNew(1, false)}})
	_, ok := idx.Find(handle.MustNew(2, false))
	require.False(t, ok)
}

func TestEdgesFromIncludesEndMarker(t *testing.T) {
	thread := handle.Walk{handle.MustNew(1, false), handle.MustNew(2, false)}
	idx := hapidx.NewStatic([]handle.Walk{thread})

	edges := idx.EdgesFrom(handle.MustNew(2, false))
	require.Contains(t, edges, hapidx.EndMarker)
}

func TestNodeIDs(t *testing.T) {
	thread := handle.Walk{handle.MustNew(5, false), handle.MustNew(9, false)}
	idx := hapidx.NewStatic([]handle.Walk{thread})
	require.Equal(t, []uint64{5, 9}, idx.NodeIDs())
}

func TestThreadsReturnsEveryThreadWithoutEndMarker(t *testing.T) {
	a := handle.Walk{handle.MustNew(1, false), handle.MustNew(2, false)}
	b := handle.Walk{handle.MustNew(3, false), handle.MustNew(4, false), handle.MustNew(5, false)}
	idx := hapidx.NewStatic([]handle.Walk{a, b})

	threads := idx.Threads()
	require.Len(t, threads, 2)
	require.Equal(t, a, threads[0])
	require.Equal(t, b, threads[1])
	for _, th := range threads {
		require.NotContains(t, th, hapidx.EndMarker)
	}
}
