package vgraph_test

import (
	"testing"

	"github.com/katalvlaran/vgunfold/handle"
	"github.com/katalvlaran/vgunfold/vgraph"
	"github.com/stretchr/testify/require"
)

func build3ChainGraph(t *testing.T) (*vgraph.Graph, handle.Handle, handle.Handle, handle.Handle) {
	t.Helper()
	g := vgraph.New()
	require.NoError(t, g.AddNode(1, "A"))
	require.NoError(t, g.AddNode(2, "C"))
	require.NoError(t, g.AddNode(3, "G"))

	h1 := handle.MustNew(1, false)
	h2 := handle.MustNew(2, false)
	h3 := handle.MustNew(3, false)
	require.NoError(t, g.AddEdge(h1, h2))
	require.NoError(t, g.AddEdge(h2, h3))

	return g, h1, h2, h3
}

func TestAddEdgeMirrorsReverseComplement(t *testing.T) {
	g, h1, h2, _ := build3ChainGraph(t)
	require.True(t, g.HasEdge(h1, h2))
	require.True(t, g.HasEdge(h2.RC(), h1.RC()))
}

func TestEdgeCountDoublesPerAddEdge(t *testing.T) {
	g, _, _, _ := build3ChainGraph(t)
	require.Equal(t, 4, g.EdgeCount())
}

func TestWeakComponentsSplitsDisjointGraphs(t *testing.T) {
	g := vgraph.New()
	require.NoError(t, g.AddNode(1, "A"))
	require.NoError(t, g.AddNode(2, "C"))
	require.NoError(t, g.AddNode(10, "G"))
	require.NoError(t, g.AddNode(11, "T"))
	require.NoError(t, g.AddEdge(handle.MustNew(1, false), handle.MustNew(2, false)))
	require.NoError(t, g.AddEdge(handle.MustNew(10, false), handle.MustNew(11, false)))

	comps := g.WeakComponents()
	require.Len(t, comps, 2)
	sizes := []int{comps[0].NodeCount(), comps[1].NodeCount()}
	require.ElementsMatch(t, []int{2, 2}, sizes)
}

func TestBorderSet(t *testing.T) {
	original := vgraph.New()
	require.NoError(t, original.AddNode(1, "A"))
	require.NoError(t, original.AddNode(3, "G"))

	component, _, _, _ := build3ChainGraph(t)
	b := vgraph.BorderSet(component, original)
	require.True(t, b[1])
	require.True(t, b[3])
	require.False(t, b[2])
}

func TestExtendUnifiesBorderNodes(t *testing.T) {
	g := vgraph.New()
	require.NoError(t, g.AddNode(1, "A"))
	require.NoError(t, g.AddNode(3, "G"))

	unfolded := vgraph.New()
	require.NoError(t, unfolded.AddNode(1, "A"))
	require.NoError(t, unfolded.AddNode(2, "C"))
	require.NoError(t, unfolded.AddNode(3, "G"))
	require.NoError(t, unfolded.AddEdge(handle.MustNew(1, false), handle.MustNew(2, false)))
	require.NoError(t, unfolded.AddEdge(handle.MustNew(2, false), handle.MustNew(3, false)))

	require.NoError(t, g.Extend(unfolded))
	require.Equal(t, 3, g.NodeCount())
	require.True(t, g.HasEdge(handle.MustNew(1, false), handle.MustNew(2, false)))
}

func TestMaxNodeID(t *testing.T) {
	g, _, _, _ := build3ChainGraph(t)
	require.Equal(t, uint64(3), g.MaxNodeID())
}
