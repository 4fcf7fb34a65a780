package idmap

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Sentinel errors for M.
var (
	// ErrNextNodeOverflow is the fatal, programmer-error condition from
	// spec.md §7: Insert would advance next_node past the representable
	// range. It should never occur in practice (it requires allocating
	// more than 2^64-first_node duplicates) and callers should treat it
	// as unrecoverable rather than retry.
	ErrNextNodeOverflow = errors.New("idmap: next_node would overflow")
)

// Map is M: the append-only duplicate→original identifier mapping.
//
// mapping[i] holds the original id of duplicate (FirstNode + i). Ids
// below FirstNode are identity-mapped to themselves (they are originals,
// never duplicates).
type Map struct {
	mu sync.RWMutex

	firstNode uint64
	nextNode  uint64
	mapping   []uint64
}

// New creates an M whose first duplicate id will be firstNode. Pass the
// current next_node of the graph store G so duplicate ids never collide
// with original ids already present in G.
func New(firstNode uint64) *Map {
	return &Map{firstNode: firstNode, nextNode: firstNode}
}

// FirstNode returns the first id considered a duplicate (below this, ids
// are original and map to themselves).
func (m *Map) FirstNode() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.firstNode
}

// NextNode returns the next id that Insert would allocate.
func (m *Map) NextNode() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.nextNode
}

// Insert allocates a fresh duplicate id for original, appends the mapping,
// and returns the newly allocated duplicate id. Monotone: next_node only
// ever increases, so a failed component (one whose later processing steps
// error out) leaves M in a perfectly consistent, reusable state — no
// rollback is required (spec.md §7).
func (m *Map) Insert(original uint64) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.nextNode == math.MaxUint64 {
		return 0, fmt.Errorf("%w: first_node=%d", ErrNextNodeOverflow, m.firstNode)
	}
	dup := m.nextNode
	m.mapping = append(m.mapping, original)
	m.nextNode++

	return dup, nil
}

// Resolve returns the original id for x: identity if x < first_node,
// otherwise the recorded original for the duplicate. Safe for concurrent
// callers.
func (m *Map) Resolve(x uint64) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if x < m.firstNode {
		return x
	}
	idx := x - m.firstNode
	if idx >= uint64(len(m.mapping)) {
		// Unknown id outside any allocated range: treat as identity,
		// matching the spec's fallback for ids below first_node.
		return x
	}
	return m.mapping[idx]
}

// Len reports how many duplicates have been allocated so far.
func (m *Map) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.mapping)
}

// Duplicates returns every currently allocated duplicate id, in
// allocation order. Used by verify to build the reverse_mapping
// (spec.md §4.7).
func (m *Map) Duplicates() []uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]uint64, len(m.mapping))
	for i := range m.mapping {
		out[i] = m.firstNode + uint64(i)
	}
	return out
}
