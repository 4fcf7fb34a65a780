package vgraph

import "sort"

// AddNode inserts a node with the given id and sequence. Idempotent if
// the id already exists with the same sequence; returns ErrNodeExists if
// it exists with a different one (a store consistency guard — the spec's
// evidence-skip-on-inconsistency rule, §7, belongs to the caller, not G).
func (g *Graph) AddNode(id uint64, sequence string) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	if existing, ok := g.nodes[id]; ok {
		if existing.Sequence != sequence {
			return ErrNodeExists
		}
		return nil
	}
	g.nodes[id] = &Node{ID: id, Sequence: sequence}

	return nil
}

// AddNodeFromDescriptor adds a node described by an external collaborator
// (spec.md §1, "node addition from an external node descriptor").
func (g *Graph) AddNodeFromDescriptor(d NodeDescriptor) error {
	return g.AddNode(d.ID, d.Sequence)
}

// HasNode reports whether id is present.
func (g *Graph) HasNode(id uint64) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// GetNode returns the node for id, or (nil, false) if absent.
func (g *Graph) GetNode(id uint64) (*Node, bool) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	return n, ok
}

// NodeIDs returns every node id present, sorted ascending (deterministic
// enumeration, matching lvlath core.Graph.Vertices's sorted contract).
func (g *Graph) NodeIDs() []uint64 {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := make([]uint64, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return len(g.nodes)
}

// MaxNodeID returns the largest node id currently present, or 0 if empty.
// Callers allocate M's first duplicate id as MaxNodeID()+1 so duplicates
// never collide with originals (spec.md §3, "Identifier Mapping M").
func (g *Graph) MaxNodeID() uint64 {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	var max uint64
	for id := range g.nodes {
		if id > max {
			max = id
		}
	}
	return max
}
