package vgraph

// WeakComponents splits g into weakly connected components, one *Graph
// per component, each carrying the subset of g's nodes and edges that
// fall inside it. Used by the Complement Builder (spec.md §4.1) to
// bound memory per unfolding round.
//
// Traversal is a BFS flood fill over node ids (treating every adjacency
// entry, regardless of orientation, as connecting two node ids), the
// same queue-of-unvisited-ids shape as lvlath's gridgraph.ConnectedComponents
// and bfs.BFS, generalized from a 2-D grid / single-strand graph to
// bidirected node ids.
func (g *Graph) WeakComponents() []*Graph {
	undirected := g.undirectedNodeAdjacency()

	visited := make(map[uint64]bool, len(undirected))
	var components []*Graph

	for _, id := range g.NodeIDs() {
		if visited[id] {
			continue
		}
		member := make(map[uint64]bool)
		queue := []uint64{id}
		visited[id] = true
		member[id] = true

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nbr := range undirected[cur] {
				if visited[nbr] {
					continue
				}
				visited[nbr] = true
				member[nbr] = true
				queue = append(queue, nbr)
			}
		}

		components = append(components, g.inducedSubgraph(member))
	}

	return components
}

// undirectedNodeAdjacency collapses the oriented-handle adjacency down to
// a plain node-id adjacency list, for component discovery purposes only.
func (g *Graph) undirectedNodeAdjacency() map[uint64][]uint64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	seen := make(map[[2]uint64]bool)
	out := make(map[uint64][]uint64)
	add := func(a, b uint64) {
		if a == b {
			return
		}
		key := [2]uint64{a, b}
		if seen[key] {
			return
		}
		seen[key] = true
		out[a] = append(out[a], b)
	}
	for from, m := range g.adjacency {
		for to := range m {
			add(from.ID(), to.ID())
			add(to.ID(), from.ID())
		}
	}
	return out
}

// inducedSubgraph returns a new Graph containing exactly the given node
// ids and every edge of g between two of them.
func (g *Graph) inducedSubgraph(member map[uint64]bool) *Graph {
	out := New()
	for id := range member {
		n, _ := g.GetNode(id)
		out.nodes[id] = &Node{ID: n.ID, Sequence: n.Sequence}
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for from, m := range g.adjacency {
		if !member[from.ID()] {
			continue
		}
		for to := range m {
			if !member[to.ID()] {
				continue
			}
			out.ensureAdjacency(from)
			out.adjacency[from][to] = struct{}{}
		}
	}

	return out
}

// BorderSet returns B: the ids present in both component c and original
// by intersecting c's node ids with original's. Spec.md §3 defines B as
// ids shared between the complement component and G.
func BorderSet(component, original *Graph) map[uint64]bool {
	b := make(map[uint64]bool)
	for _, id := range component.NodeIDs() {
		if original.HasNode(id) {
			b[id] = true
		}
	}
	return b
}
