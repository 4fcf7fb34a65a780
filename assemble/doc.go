// Package assemble implements the Assembler (spec.md §4.5) and the
// Reference-Only Path Restoration fallback (spec.md §4.6): it turns a
// trie.Duplicator's P/S/C entries into real nodes and edges in a scratch
// vgraph.Graph, ready for G.Extend, and separately offers a
// no-duplication path for callers that have X but no H.
//
// Node creation here always resolves sequences through X by the
// *original* id (via the duplicator's M), then stores the resulting
// node under the *duplicate* id — the duplicate is a distinct graph
// node carrying a copy of the original's sequence, not an alias.
package assemble
