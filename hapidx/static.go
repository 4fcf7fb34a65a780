package hapidx

import (
	"sort"

	"github.com/katalvlaran/vgunfold/handle"
)

// Static is a minimal immutable in-memory Index built from a fixed set
// of haplotype threads (each a handle.Walk, implicitly terminated by
// EndMarker). Construction is not concurrency-safe; reads afterward are.
type Static struct {
	threads []handle.Walk
	edges   map[handle.Handle]map[handle.Handle]struct{}
	nodeIDs []uint64
}

// NewStatic builds an Index from a set of haplotype threads.
func NewStatic(threads []handle.Walk) *Static {
	s := &Static{
		threads: make([]handle.Walk, len(threads)),
		edges:   make(map[handle.Handle]map[handle.Handle]struct{}),
	}
	ids := make(map[uint64]bool)
	for i, w := range threads {
		s.threads[i] = w.Clone()
		for rank, h := range w {
			ids[h.ID()] = true
			var next handle.Handle
			if rank+1 < len(w) {
				next = w[rank+1]
			} else {
				next = EndMarker
			}
			if s.edges[h] == nil {
				s.edges[h] = make(map[handle.Handle]struct{})
			}
			s.edges[h][next] = struct{}{}
		}
	}
	for id := range ids {
		s.nodeIDs = append(s.nodeIDs, id)
	}
	sort.Slice(s.nodeIDs, func(i, j int) bool { return s.nodeIDs[i] < s.nodeIDs[j] })

	return s
}

func (s *Static) Find(h handle.Handle) (State, bool) {
	var candidates []int
	for i, w := range s.threads {
		if len(w) > 0 && w[0] == h {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return State{}, false
	}
	return State{ok: true, depth: 0, candidates: candidates}, true
}

func (s *Static) Extend(st State, next handle.Handle) (State, bool) {
	if !st.ok {
		return State{}, false
	}
	nextDepth := st.depth + 1
	var candidates []int
	for _, i := range st.candidates {
		w := s.threads[i]
		if nextDepth < len(w) && w[nextDepth] == next {
			candidates = append(candidates, i)
			continue
		}
		if nextDepth >= len(w) && next == EndMarker {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return State{}, false
	}
	return State{ok: true, depth: nextDepth, candidates: candidates}, true
}

func (s *Static) NodeIDs() []uint64 { return s.nodeIDs }

func (s *Static) EdgesFrom(h handle.Handle) []handle.Handle {
	out := make([]handle.Handle, 0, len(s.edges[h]))
	for next := range s.edges[h] {
		out = append(out, next)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s *Static) Threads() []handle.Walk {
	out := make([]handle.Walk, len(s.threads))
	for i, w := range s.threads {
		out[i] = w.Clone()
	}
	return out
}
