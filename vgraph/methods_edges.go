package vgraph

import (
	"sort"

	"github.com/katalvlaran/vgunfold/handle"
)

// ensureAdjacency guarantees the presence of the adjacency bucket for h.
// Must be called under muEdgeAdj write lock.
func (g *Graph) ensureAdjacency(h handle.Handle) {
	if g.adjacency[h] == nil {
		g.adjacency[h] = make(map[handle.Handle]struct{})
	}
}

// AddEdge records an edge from -> to. Both endpoints' node ids must
// already be present via AddNode/AddNodeFromDescriptor; AddEdge does not
// implicitly create nodes (unlike lvlath's AddEdge), because a
// variation-graph edge without a resolvable sequence on either endpoint
// is exactly the "inconsistent evidence" case spec.md §7 asks callers to
// detect and skip before calling AddEdge.
//
// Per spec.md §3, (from, to) and its reverse complement denote the same
// physical adjacency, so AddEdge writes both adjacency entries.
func (g *Graph) AddEdge(from, to handle.Handle) error {
	if !g.HasNode(from.ID()) || !g.HasNode(to.ID()) {
		return ErrNodeNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.ensureAdjacency(from)
	g.adjacency[from][to] = struct{}{}

	rcFrom, rcTo := to.RC(), from.RC()
	g.ensureAdjacency(rcFrom)
	g.adjacency[rcFrom][rcTo] = struct{}{}

	return nil
}

// HasEdge reports whether an edge from -> to exists, checking both the
// direct orientation and (transparently, since AddEdge mirrors it) its
// reverse complement.
func (g *Graph) HasEdge(from, to handle.Handle) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.adjacency[from][to]
	return ok
}

// EdgesFrom returns every handle reachable by one edge from h, sorted for
// deterministic enumeration (mirrors lvlath core.Graph.NeighborIDs's
// sorted contract).
func (g *Graph) EdgesFrom(h handle.Handle) []handle.Handle {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]handle.Handle, 0, len(g.adjacency[h]))
	for next := range g.adjacency[h] {
		out = append(out, next)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// EdgeCount returns the number of directed adjacency entries recorded
// (each AddEdge call contributes two, its forward and RC form, unless
// they coincide).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	n := 0
	for _, m := range g.adjacency {
		n += len(m)
	}
	return n
}

// Edges returns every (from, to) adjacency entry as a handle.Edge, sorted
// for deterministic enumeration. Includes both the forward and RC
// entries AddEdge wrote; callers that want one representative per
// biological edge should canonicalize via handle.Edge.Less/RC.
func (g *Graph) Edges() []handle.Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]handle.Edge, 0)
	for from, m := range g.adjacency {
		for to := range m {
			out = append(out, handle.NewEdge(from, to))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}
