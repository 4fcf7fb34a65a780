package unfold

import (
	"context"
	"fmt"

	"github.com/katalvlaran/vgunfold/assemble"
	"github.com/katalvlaran/vgunfold/complement"
	"github.com/katalvlaran/vgunfold/hapidx"
	"github.com/katalvlaran/vgunfold/idmap"
	"github.com/katalvlaran/vgunfold/refidx"
	"github.com/katalvlaran/vgunfold/trie"
	"github.com/katalvlaran/vgunfold/verify"
	"github.com/katalvlaran/vgunfold/vgraph"
	"github.com/katalvlaran/vgunfold/walkenum"
)

// NewMap creates M with its first duplicate id set just past g's current
// node ids, so no duplicate ever collides with an original (spec.md §3).
func NewMap(g *vgraph.Graph) *idmap.Map {
	return idmap.New(g.MaxNodeID() + 1)
}

// isEmpty reports whether h carries no haplotype-thread evidence at all,
// the trigger for the restore-only fallback (spec.md §4.6, §8 invariant
// 5).
func isEmpty(h hapidx.Index) bool {
	return h == nil || len(h.NodeIDs()) == 0
}

// Unfold restores the evidence X (and, when present, H) imply but g is
// missing, per spec.md §2's control flow. It mutates g in place via
// Extend and returns the unfolded subgraph that was merged in (nil when
// the restore-only fallback ran, since that path writes directly to g
// with no separate subgraph — spec.md §8 invariant 5: "in restore_paths
// no duplicate ids are allocated").
func Unfold(g *vgraph.Graph, x refidx.Index, h hapidx.Index, m *idmap.Map) (*vgraph.Graph, error) {
	if isEmpty(h) {
		if err := assemble.RestorePaths(g, x); err != nil {
			return nil, fmt.Errorf("unfold: restore paths: %w", err)
		}
		return nil, nil
	}

	components := complement.Build(g, x, h)
	merged := vgraph.New()

	for _, comp := range components {
		if err := unfoldComponent(comp, g, x, h, m, merged); err != nil {
			return nil, err
		}
	}

	if err := g.Extend(merged); err != nil {
		return nil, fmt.Errorf("unfold: extend g with unfolded subgraph: %w", err)
	}
	return merged, nil
}

// unfoldComponent runs the per-component Enumerator -> Trie Duplicator
// -> Assembler sequence (spec.md §2) and folds the result into merged.
// Scratch state (the border set, plus the tries and crossing set held by
// the Duplicator returned by trie.NewDuplicator) is local to this call
// and discarded once it returns, per spec.md §5's per-component scratch
// lifecycle.
func unfoldComponent(comp, g *vgraph.Graph, x refidx.Index, h hapidx.Index, m *idmap.Map, merged *vgraph.Graph) error {
	border := vgraph.BorderSet(comp, g)
	dup := trie.NewDuplicator(m)

	for id := range border {
		for _, w := range walkenum.ReferenceWalks(comp, x, id, border) {
			if err := dup.InsertWalk(w); err != nil {
				return fmt.Errorf("unfold: insert reference walk from %d: %w", id, err)
			}
		}
		for _, w := range walkenum.HaplotypeWalks(comp, h, id, border) {
			if err := dup.InsertWalk(w); err != nil {
				return fmt.Errorf("unfold: insert haplotype walk from %d: %w", id, err)
			}
		}
	}

	out, err := assemble.Assemble(dup, x)
	if err != nil {
		return fmt.Errorf("unfold: assemble component: %w", err)
	}
	if err := merged.Extend(out); err != nil {
		return fmt.Errorf("unfold: merge assembled component: %w", err)
	}
	return nil
}

// VerifyWalks runs the Verifier (spec.md §4.7) against g. Callers must
// pass the same g that Unfold just extended in place: Verify's
// reverse_mapping only sees originals still present in the merged graph,
// never a pre-merge fragment (see verify package doc).
func VerifyWalks(ctx context.Context, g *vgraph.Graph, m *idmap.Map, x refidx.Index, h hapidx.Index) (int64, error) {
	return verify.Verify(ctx, g, m, x, h)
}
