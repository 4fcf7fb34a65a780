package walkenum

import (
	"github.com/katalvlaran/vgunfold/handle"
	"github.com/katalvlaran/vgunfold/refidx"
	"github.com/katalvlaran/vgunfold/vgraph"
)

// ReferenceWalks enumerates every border-to-border walk that evidence
// source X supports through border node `from` within component (spec.md
// §4.2). Walks of length < 2 are dropped here and never returned.
func ReferenceWalks(component *vgraph.Graph, x refidx.Index, from uint64, border map[uint64]bool) []handle.Walk {
	var out []handle.Walk
	for _, path := range x.PathNames() {
		for _, rank := range x.Occurrences(path, from) {
			if w := forwardWalk(component, x, path, rank, border); len(w) >= 2 {
				out = append(out, w)
			}
			if w := backwardWalk(component, x, path, rank, border); len(w) >= 2 {
				out = append(out, w)
			}
		}
	}
	return out
}

// forwardWalk starts at the occurrence's recorded orientation and extends
// toward increasing rank.
func forwardWalk(component *vgraph.Graph, x refidx.Index, path string, rank int, border map[uint64]bool) handle.Walk {
	n := x.PathLen(path)
	walk := handle.Walk{x.HandleAt(path, rank)}
	for rank+1 < n {
		next := x.HandleAt(path, rank+1)
		if !component.HasEdge(walk[len(walk)-1], next) {
			break
		}
		walk = append(walk, next)
		rank++
		if border[next.ID()] {
			break
		}
	}
	return walk
}

// backwardWalk starts at the occurrence with orientation flipped and
// extends toward rank 0, also flipping every handle it picks up — it
// walks the reverse complement of the path prefix up to the occurrence.
func backwardWalk(component *vgraph.Graph, x refidx.Index, path string, rank int, border map[uint64]bool) handle.Walk {
	walk := handle.Walk{x.HandleAt(path, rank).RC()}
	for rank-1 >= 0 {
		next := x.HandleAt(path, rank-1).RC()
		if !component.HasEdge(walk[len(walk)-1], next) {
			break
		}
		walk = append(walk, next)
		rank--
		if border[next.ID()] {
			break
		}
	}
	return walk
}
