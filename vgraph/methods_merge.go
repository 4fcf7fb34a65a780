package vgraph

import "github.com/katalvlaran/vgunfold/handle"

// Extend merges other into g: every node and edge of other is added to
// g. Nodes that already exist in g (the border nodes shared between a
// complement component and the original graph, spec.md §4.5) are
// unified by id — AddNode is idempotent for matching sequences, so no
// special-casing is needed here.
func (g *Graph) Extend(other *Graph) error {
	for _, id := range other.NodeIDs() {
		n, _ := other.GetNode(id)
		if err := g.AddNode(n.ID, n.Sequence); err != nil {
			return err
		}
	}
	for _, e := range other.Edges() {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep, independent copy of g.
func (g *Graph) Clone() *Graph {
	out := New()
	for _, id := range g.NodeIDs() {
		n, _ := g.GetNode(id)
		out.nodes[n.ID] = &Node{ID: n.ID, Sequence: n.Sequence}
	}
	g.muEdgeAdj.RLock()
	for from, m := range g.adjacency {
		cp := make(map[handle.Handle]struct{}, len(m))
		for to := range m {
			cp[to] = struct{}{}
		}
		out.adjacency[from] = cp
	}
	g.muEdgeAdj.RUnlock()

	return out
}
