package verify

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vgunfold/handle"
	"github.com/katalvlaran/vgunfold/hapidx"
	"github.com/katalvlaran/vgunfold/idmap"
	"github.com/katalvlaran/vgunfold/refidx"
	"github.com/katalvlaran/vgunfold/vgraph"
)

// ReverseMapping builds reverse_mapping (spec.md §4.7): original node id
// -> every candidate id that can stand in for it in unfolded, namely
// every duplicate m has allocated for that original plus the original id
// itself whenever unfolded still contains it. Each list is deduplicated.
func ReverseMapping(unfolded *vgraph.Graph, m *idmap.Map) map[uint64][]uint64 {
	rev := make(map[uint64][]uint64)
	seen := make(map[uint64]map[uint64]bool)

	add := func(original, candidate uint64) {
		if seen[original] == nil {
			seen[original] = make(map[uint64]bool)
		}
		if seen[original][candidate] {
			return
		}
		seen[original][candidate] = true
		rev[original] = append(rev[original], candidate)
	}

	for _, d := range m.Duplicates() {
		add(m.Resolve(d), d)
	}
	for _, id := range unfolded.NodeIDs() {
		if id < m.FirstNode() {
			add(id, id)
		}
	}

	return rev
}

// candidateHandles returns the candidate handles for original within
// rev: every candidate id paired with original's own strand, since
// duplication always preserves orientation (spec.md §3, "reverse(v_dup)
// = reverse(v_orig)").
func candidateHandles(rev map[uint64][]uint64, original handle.Handle) []handle.Handle {
	ids := rev[original.ID()]
	out := make([]handle.Handle, 0, len(ids))
	for _, id := range ids {
		out = append(out, handle.MustNew(id, original.IsReverse()))
	}
	return out
}

// VerifyWalk checks that w is realized in unfolded modulo duplication,
// per spec.md §4.7's verify_walk. It tracks the frontier of candidate
// handles still reachable from offset 0; a step that narrows the
// frontier to one handle has implicitly committed (every other branch
// is unreachable from here on), giving O(len(w)) work regardless of how
// many candidates ever existed (spec.md §8 scenario (f)).
func VerifyWalk(w handle.Walk, unfolded *vgraph.Graph, rev map[uint64][]uint64) bool {
	if w.Len() == 0 {
		return true
	}

	frontier := candidateHandles(rev, w.At(0))
	if len(frontier) == 0 {
		return false
	}

	for i := 1; i < w.Len(); i++ {
		next := candidateHandles(rev, w.At(i))
		seen := make(map[handle.Handle]bool, len(next))
		nextFrontier := make([]handle.Handle, 0, len(next))

		for _, cur := range frontier {
			for _, cand := range next {
				if seen[cand] || !unfolded.HasEdge(cur, cand) {
					continue
				}
				seen[cand] = true
				nextFrontier = append(nextFrontier, cand)
			}
		}

		if len(nextFrontier) == 0 {
			return false
		}
		frontier = nextFrontier
	}

	return true
}

// referenceWalks materializes every reference path in x as a single
// full handle.Walk, skipping paths shorter than 2 handles.
func referenceWalks(x refidx.Index) []handle.Walk {
	var out []handle.Walk
	for _, name := range x.PathNames() {
		n := x.PathLen(name)
		if n < 2 {
			continue
		}
		w := make(handle.Walk, n)
		for rank := 0; rank < n; rank++ {
			w[rank] = x.HandleAt(name, rank)
		}
		out = append(out, w)
	}
	return out
}

// Verify runs verify_walk (spec.md §4.7) for every reference walk in x
// and every haplotype thread in h against unfolded, one goroutine per
// walk, dynamically scheduled over a bounded worker pool, with a shared
// atomic failure counter (spec.md §5). unfolded must be the post-Extend
// merged graph (see package doc).
func Verify(ctx context.Context, unfolded *vgraph.Graph, m *idmap.Map, x refidx.Index, h hapidx.Index) (int64, error) {
	rev := ReverseMapping(unfolded, m)

	var walks []handle.Walk
	walks = append(walks, referenceWalks(x)...)
	if h != nil {
		for _, w := range h.Threads() {
			if w.Len() >= 2 {
				walks = append(walks, w)
			}
		}
	}

	var failures int64
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, w := range walks {
		w := w
		g.Go(func() error {
			if !VerifyWalk(w, unfolded, rev) {
				atomic.AddInt64(&failures, 1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return atomic.LoadInt64(&failures), err
	}
	return failures, nil
}
