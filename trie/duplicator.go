package trie

import (
	"sync"

	"github.com/katalvlaran/vgunfold/handle"
	"github.com/katalvlaran/vgunfold/idmap"
)

// prefixKey and suffixKey are the two trie key shapes from spec.md §4.4.
// They are deliberately asymmetric (parent-then-child vs child-then-parent)
// so a node reached by different parents on the prefix side, or leading
// into different parents on the suffix side, still gets distinct
// duplicates where the walk structure actually diverges.
type prefixKey struct {
	parent      handle.Handle
	originalKid handle.Handle
}

type suffixKey struct {
	originalKid handle.Handle
	parent      handle.Handle
}

// Duplicator owns the prefix trie P, the suffix trie S, and the crossing
// edge set C described in spec.md §4.4, allocating duplicate ids through
// an idmap.Map.
type Duplicator struct {
	mu sync.Mutex

	m        *idmap.Map
	prefix   map[prefixKey]handle.Handle
	suffix   map[suffixKey]handle.Handle
	crossing map[handle.Edge]struct{}
}

// NewDuplicator creates a Duplicator that allocates duplicate ids through m.
func NewDuplicator(m *idmap.Map) *Duplicator {
	return &Duplicator{
		m:        m,
		prefix:   make(map[prefixKey]handle.Handle),
		suffix:   make(map[suffixKey]handle.Handle),
		crossing: make(map[handle.Edge]struct{}),
	}
}

// InsertWalk processes one walk discovered by walkenum, per spec.md §4.4:
//
//  1. discard walks shorter than 2 handles (no duplicable interior);
//  2. canonicalize, so W and RC(W) always land on the same trie entries;
//  3. split at mid = (len+1)/2;
//  4. walk prefix indices [1, mid) forward, threading `from` through P,
//     allocating a fresh duplicate only the first time a (parent, child)
//     pair is seen;
//  5. walk suffix indices [len-2, mid] backward, threading `to` through S
//     the same way;
//  6. record the single crossing edge (from, to) in C.
//
// Insertion order does not affect which trie keys exist, but duplicate
// ids are allocated through idmap.Map.Insert in call order, so the id a
// key receives depends on which walk reached it first. InsertWalk
// serializes itself with mu, so each call's allocations are contiguous.
func (d *Duplicator) InsertWalk(w handle.Walk) error {
	if w.Len() < 2 {
		return nil
	}
	w = w.Canonical()

	d.mu.Lock()
	defer d.mu.Unlock()

	mid := (w.Len() + 1) / 2

	from := w[0]
	for i := 1; i < mid; i++ {
		key := prefixKey{parent: from, originalKid: w[i]}
		dup, ok := d.prefix[key]
		if !ok {
			id, err := d.m.Insert(w[i].ID())
			if err != nil {
				return err
			}
			dup = handle.MustNew(id, w[i].IsReverse())
			d.prefix[key] = dup
		}
		from = dup
	}

	to := w[w.Len()-1]
	for i := w.Len() - 2; i >= mid; i-- {
		key := suffixKey{originalKid: w[i], parent: to}
		dup, ok := d.suffix[key]
		if !ok {
			id, err := d.m.Insert(w[i].ID())
			if err != nil {
				return err
			}
			dup = handle.MustNew(id, w[i].IsReverse())
			d.suffix[key] = dup
		}
		to = dup
	}

	d.crossing[handle.NewEdge(from, to)] = struct{}{}
	return nil
}

// PrefixEdges returns every (parent, duplicate) edge P recorded, in no
// particular order. assemble uses these to materialize prefix-trie nodes
// and edges into the unfolded graph.
func (d *Duplicator) PrefixEdges() []handle.Edge {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]handle.Edge, 0, len(d.prefix))
	for k, dup := range d.prefix {
		out = append(out, handle.NewEdge(k.parent, dup))
	}
	return out
}

// SuffixEdges returns every (duplicate, parent) edge S recorded. Suffix
// entries are threaded tail-to-head during InsertWalk, so the stored edge
// direction here is (duplicate, parent) to match the forward direction of
// the walk it was cut from.
func (d *Duplicator) SuffixEdges() []handle.Edge {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]handle.Edge, 0, len(d.suffix))
	for k, dup := range d.suffix {
		out = append(out, handle.NewEdge(dup, k.parent))
	}
	return out
}

// CrossingEdges returns every recorded crossing edge C, deduplicated.
func (d *Duplicator) CrossingEdges() []handle.Edge {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]handle.Edge, 0, len(d.crossing))
	for e := range d.crossing {
		out = append(out, e)
	}
	return out
}

// DuplicateOriginal resolves a duplicate handle allocated by this
// Duplicator back to the original node id it copies, via M.
func (d *Duplicator) DuplicateOriginal(h handle.Handle) uint64 {
	return d.m.Resolve(h.ID())
}
