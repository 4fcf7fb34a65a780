package refidx

import (
	"sort"

	"github.com/katalvlaran/vgunfold/handle"
)

// Static is a minimal immutable in-memory Index built once from a fixed
// set of named paths and node sequences. Construction is not
// concurrency-safe; once built, all reads are safe for concurrent use.
type Static struct {
	order       []string
	paths       map[string]handle.Walk
	occurrences map[string]map[uint64][]int // path -> nodeID -> sorted ranks
	sequences   map[uint64]string
}

// NewStatic builds an Index from named walks and a node-id->sequence
// table. Occurrence lists are precomputed and sorted once here so
// Occurrences is O(1) thereafter.
func NewStatic(paths map[string]handle.Walk, sequences map[uint64]string) *Static {
	s := &Static{
		paths:       make(map[string]handle.Walk, len(paths)),
		occurrences: make(map[string]map[uint64][]int, len(paths)),
		sequences:   sequences,
	}
	// Deterministic path iteration order: sort names, matching lvlath's
	// convention of sorted, reproducible enumeration surfaces.
	for name := range paths {
		s.order = append(s.order, name)
	}
	sort.Strings(s.order)

	for _, name := range s.order {
		w := paths[name].Clone()
		s.paths[name] = w
		byNode := make(map[uint64][]int, len(w))
		for rank, h := range w {
			byNode[h.ID()] = append(byNode[h.ID()], rank)
		}
		s.occurrences[name] = byNode
	}

	return s
}

func (s *Static) PathNames() []string { return s.order }

func (s *Static) PathLen(path string) int { return len(s.paths[path]) }

func (s *Static) HandleAt(path string, rank int) handle.Handle {
	return s.paths[path][rank]
}

func (s *Static) Occurrences(path string, nodeID uint64) []int {
	return s.occurrences[path][nodeID]
}

func (s *Static) Sequence(nodeID uint64) (string, bool) {
	seq, ok := s.sequences[nodeID]
	return seq, ok
}
