// Package vgraph implements G, the mutable bidirected variation graph
// store from spec.md §1: node/edge membership queries, node/edge
// insertion, per-node edge enumeration, weakly-connected-component
// decomposition, node addition from an external descriptor, and merging
// another graph in.
//
// vgraph is adapted from lvlath's core.Graph: the same split-lock
// design (one sync.RWMutex guarding the node catalog, a second guarding
// edges and adjacency), Clone, and sorted read accessors (NodeIDs,
// EdgesFrom, Edges) — generalized from string-keyed unweighted/weighted labeled graphs to
// uint64-keyed bidirected graphs of oriented handle.Handle edges, with
// a DNA sequence payload per node instead of arbitrary metadata.
//
// A bidirected edge (u, v) and its reverse complement (RC(v), RC(u))
// denote the same physical adjacency (spec.md §3); AddEdge therefore
// always records both orientations, and HasEdge/EdgesFrom are
// defined in terms of that canonical doubling rather than a plain
// directed or mirrored-undirected adjacency list.
package vgraph
