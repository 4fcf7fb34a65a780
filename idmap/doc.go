// Package idmap implements M, the persistent duplicate→original node-id
// map described in spec.md §3 and §6.
//
// M is an append-only table: ids below first_node are originals (identity
// mapping), ids in [first_node, next_node) are duplicates, each resolving
// to exactly one original id. Insert is the only mutator and is total-order
// consistent with call order (spec.md §5, "Ordering").
//
// Locking follows the split-lock style of lvlath's core.Graph: a single
// sync.RWMutex here since M has only one mutable axis (the append-only
// slice plus the next_node counter), unlike core.Graph's separate vertex
// and edge/adjacency locks.
package idmap
