// Package complement implements the Complement Builder from spec.md
// §4.1: it scans X and H for edges missing from G, collects them into a
// scratch graph, and splits that scratch graph into weakly connected
// components — the pruned territory evidence re-implies, bounded so
// later stages process it one component at a time.
//
// Component splitting itself is delegated to vgraph.Graph.WeakComponents,
// which carries forward the BFS-flood-fill shape of lvlath's
// gridgraph.ConnectedComponents and bfs.BFS.
package complement
