package complement

import (
	"log/slog"

	"github.com/katalvlaran/vgunfold/handle"
	"github.com/katalvlaran/vgunfold/hapidx"
	"github.com/katalvlaran/vgunfold/refidx"
	"github.com/katalvlaran/vgunfold/vgraph"
)

// Build scans every reference path in x and every haplotype-thread
// adjacency in h for edges absent from g, collects them into a scratch
// graph, and splits that scratch graph into weakly connected components
// (spec.md §4.1).
func Build(g *vgraph.Graph, x refidx.Index, h hapidx.Index) []*vgraph.Graph {
	scratch := vgraph.New()

	addFromReferencePaths(scratch, g, x)
	if h != nil {
		addFromHaplotypeThreads(scratch, g, x, h)
	}

	return scratch.WeakComponents()
}

// addFromReferencePaths walks every path in x; for every consecutive
// pair of handles whose edge is absent from g, it adds both endpoints
// (sequences fetched from x) and the edge to scratch.
func addFromReferencePaths(scratch *vgraph.Graph, g *vgraph.Graph, x refidx.Index) {
	for _, name := range x.PathNames() {
		n := x.PathLen(name)
		for rank := 0; rank+1 < n; rank++ {
			prev := x.HandleAt(name, rank)
			curr := x.HandleAt(name, rank+1)
			if g.HasEdge(prev, curr) {
				continue
			}
			if !addNodeFromX(scratch, x, prev) || !addNodeFromX(scratch, x, curr) {
				slog.Warn("complement: skipping edge with unresolvable endpoint",
					"path", name, "rank", rank)
				continue
			}
			_ = scratch.AddEdge(prev, curr)
		}
	}
}

// addFromHaplotypeThreads enumerates every node H has recorded thread
// adjacency for (spec.md's "node component... 1..effective"), in both
// orientations, and adds any outgoing edge missing from g, skipping the
// end-marker sentinel.
func addFromHaplotypeThreads(scratch *vgraph.Graph, g *vgraph.Graph, x refidx.Index, h hapidx.Index) {
	for _, id := range h.NodeIDs() {
		for _, reverse := range [2]bool{false, true} {
			from := handle.MustNew(id, reverse)
			for _, next := range h.EdgesFrom(from) {
				if next == hapidx.EndMarker {
					continue
				}
				if g.HasEdge(from, next) {
					continue
				}
				if !addNodeFromX(scratch, x, from) || !addNodeFromX(scratch, x, next) {
					slog.Warn("complement: skipping haplotype edge with unresolvable endpoint",
						"node", id)
					continue
				}
				_ = scratch.AddEdge(from, next)
			}
		}
	}
}

// addNodeFromX adds h's node to scratch using x's recorded sequence.
// Returns false if x cannot resolve a sequence for the node (the
// "inconsistent evidence" case of spec.md §7, logged and skipped by the
// caller rather than corrupting scratch).
func addNodeFromX(scratch *vgraph.Graph, x refidx.Index, h handle.Handle) bool {
	if scratch.HasNode(h.ID()) {
		return true
	}
	seq, ok := x.Sequence(h.ID())
	if !ok {
		return false
	}
	_ = scratch.AddNode(h.ID(), seq)
	return true
}
