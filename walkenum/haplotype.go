package walkenum

import (
	"github.com/katalvlaran/vgunfold/handle"
	"github.com/katalvlaran/vgunfold/hapidx"
	"github.com/katalvlaran/vgunfold/vgraph"
)

// frame pairs a haplotype-index search state with the walk it matches so
// far. Kept private: callers only ever see the finished walks HaplotypeWalks
// returns.
type frame struct {
	state hapidx.State
	walk  handle.Walk
}

// HaplotypeWalks enumerates every border-to-border (or maximal) walk
// that evidence source H supports through border node `from` within
// component (spec.md §4.3).
//
// Stack order is not semantically significant (spec.md §4.3,
// "Tie-break"): walks are canonicalized before insertion downstream, so
// this function may emit them in any order.
func HaplotypeWalks(component *vgraph.Graph, h hapidx.Index, from uint64, border map[uint64]bool) []handle.Walk {
	var out []handle.Walk
	var stack []frame

	for _, reverse := range [2]bool{false, true} {
		start := handle.MustNew(from, reverse)
		if st, ok := h.Find(start); ok {
			stack = append(stack, frame{state: st, walk: handle.Walk{start}})
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		head := top.walk[len(top.walk)-1]

		if len(top.walk) >= 2 && border[head.ID()] {
			out = append(out, top.walk)
			continue
		}

		extended := false
		for _, next := range component.EdgesFrom(head) {
			st, ok := h.Extend(top.state, next)
			if !ok {
				continue
			}
			extended = true
			nw := append(top.walk.Clone(), next)
			stack = append(stack, frame{state: st, walk: nw})
		}
		if !extended {
			out = append(out, top.walk)
		}
	}

	return out
}
