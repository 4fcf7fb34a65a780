package complement_test

import (
	"testing"

	"github.com/katalvlaran/vgunfold/complement"
	"github.com/katalvlaran/vgunfold/handle"
	"github.com/katalvlaran/vgunfold/hapidx"
	"github.com/katalvlaran/vgunfold/refidx"
	"github.com/katalvlaran/vgunfold/vgraph"
	"github.com/stretchr/testify/require"
)

func TestBuildFindsMissingReferenceEdges(t *testing.T) {
	g := vgraph.New()
	require.NoError(t, g.AddNode(1, "A"))
	require.NoError(t, g.AddNode(2, "C"))
	require.NoError(t, g.AddNode(3, "G"))
	// no edges in G: path 1+2+3+ is entirely pruned evidence.

	x := refidx.NewStatic(map[string]handle.Walk{
		"ref": {handle.MustNew(1, false), handle.MustNew(2, false), handle.MustNew(3, false)},
	}, map[uint64]string{1: "A", 2: "C", 3: "G"})

	comps := complement.Build(g, x, nil)
	require.Len(t, comps, 1)
	require.Equal(t, 3, comps[0].NodeCount())
	require.True(t, comps[0].HasEdge(handle.MustNew(1, false), handle.MustNew(2, false)))
}

func TestBuildSkipsEdgesAlreadyInG(t *testing.T) {
	g := vgraph.New()
	require.NoError(t, g.AddNode(1, "A"))
	require.NoError(t, g.AddNode(2, "C"))
	require.NoError(t, g.AddEdge(handle.MustNew(1, false), handle.MustNew(2, false)))

	x := refidx.NewStatic(map[string]handle.Walk{
		"ref": {handle.MustNew(1, false), handle.MustNew(2, false)},
	}, map[uint64]string{1: "A", 2: "C"})

	comps := complement.Build(g, x, nil)
	require.Empty(t, comps)
}

func TestBuildFromHaplotypeThreads(t *testing.T) {
	g := vgraph.New()
	require.NoError(t, g.AddNode(1, "A"))
	require.NoError(t, g.AddNode(2, "C"))

	x := refidx.NewStatic(nil, map[uint64]string{1: "A", 2: "C"})
	h := hapidx.NewStatic([]handle.Walk{
		{handle.MustNew(1, false), handle.MustNew(2, false)},
	})

	comps := complement.Build(g, x, h)
	require.Len(t, comps, 1)
	require.True(t, comps[0].HasEdge(handle.MustNew(1, false), handle.MustNew(2, false)))
}

func TestBuildSkipsUnresolvableEvidence(t *testing.T) {
	g := vgraph.New()
	x := refidx.NewStatic(map[string]handle.Walk{
		"ref": {handle.MustNew(1, false), handle.MustNew(2, false)},
	}, nil) // no sequences resolvable

	comps := complement.Build(g, x, nil)
	require.Empty(t, comps)
}
