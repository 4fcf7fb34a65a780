package assemble

import (
	"fmt"

	"github.com/katalvlaran/vgunfold/handle"
	"github.com/katalvlaran/vgunfold/refidx"
	"github.com/katalvlaran/vgunfold/trie"
	"github.com/katalvlaran/vgunfold/vgraph"
)

// Assemble materializes a trie.Duplicator's prefix, suffix, and crossing
// edges into a standalone graph: every handle touched gets a node (its
// sequence resolved via x, using the handle's original id through d), and
// every P/S/C edge is added. The caller merges the result into the main
// store with (*vgraph.Graph).Extend (spec.md §4.5).
func Assemble(d *trie.Duplicator, x refidx.Index) (*vgraph.Graph, error) {
	out := vgraph.New()

	edges := make([]handle.Edge, 0)
	edges = append(edges, d.PrefixEdges()...)
	edges = append(edges, d.SuffixEdges()...)
	edges = append(edges, d.CrossingEdges()...)

	for _, e := range edges {
		if err := addNode(out, x, d, e.From); err != nil {
			return nil, err
		}
		if err := addNode(out, x, d, e.To); err != nil {
			return nil, err
		}
		if err := out.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("assemble: add edge %s->%s: %w", e.From, e.To, err)
		}
	}

	return out, nil
}

// addNode ensures h's node id is present in out, resolving its sequence
// through x by h's original id (duplicate ids resolve through d, ids
// below M's first_node resolve to themselves).
func addNode(out *vgraph.Graph, x refidx.Index, d *trie.Duplicator, h handle.Handle) error {
	if out.HasNode(h.ID()) {
		return nil
	}
	original := d.DuplicateOriginal(h)
	seq, ok := x.Sequence(original)
	if !ok {
		return fmt.Errorf("assemble: no sequence for original node %d (duplicate %s)", original, h)
	}
	return out.AddNode(h.ID(), seq)
}

// RestorePaths implements the Reference-Only Path Restoration fallback
// (spec.md §4.6): when H is empty or unavailable, every reference-path
// edge missing from g is added directly under its original id, with no
// duplication, no trie, and no M involvement at all.
func RestorePaths(g *vgraph.Graph, x refidx.Index) error {
	for _, name := range x.PathNames() {
		n := x.PathLen(name)
		for rank := 0; rank+1 < n; rank++ {
			prev := x.HandleAt(name, rank)
			curr := x.HandleAt(name, rank+1)
			if g.HasEdge(prev, curr) {
				continue
			}
			if err := restoreNode(g, x, prev); err != nil {
				return err
			}
			if err := restoreNode(g, x, curr); err != nil {
				return err
			}
			if err := g.AddEdge(prev, curr); err != nil {
				return fmt.Errorf("assemble: restore edge %s->%s on path %q: %w", prev, curr, name, err)
			}
		}
	}
	return nil
}

func restoreNode(g *vgraph.Graph, x refidx.Index, h handle.Handle) error {
	if g.HasNode(h.ID()) {
		return nil
	}
	seq, ok := x.Sequence(h.ID())
	if !ok {
		return fmt.Errorf("assemble: no sequence for node %d while restoring reference paths", h.ID())
	}
	return g.AddNode(h.ID(), seq)
}
