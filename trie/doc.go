// Package trie implements the Trie Duplicator from spec.md §4.4: it
// accepts walks discovered by walkenum, chooses a canonical orientation,
// splits each at its midpoint, and inserts the prefix half into a prefix
// trie keyed on (parent, original_child) and the suffix half (walked from
// the tail inward) into a suffix trie keyed on (original_child, parent).
// Shared prefixes/suffixes across walks collapse onto the same duplicate
// id because the trie keys themselves collapse; a walk's one crossing
// edge is recorded separately.
//
// The two tries are plain maps rather than a pointer-linked trie
// structure: lookups are always by a single (parent, child) pair, never
// by prefix traversal from the root, so a map gives the same O(1)
// amortized lookup lvlath's core.Graph adjacency maps give for edges,
// without the extra node bookkeeping a real trie would need.
package trie
