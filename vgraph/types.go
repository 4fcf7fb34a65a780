package vgraph

import (
	"errors"
	"sync"

	"github.com/katalvlaran/vgunfold/handle"
)

// Sentinel errors for G.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("vgraph: node not found")

	// ErrNodeExists indicates AddNode was called for an id already present
	// with a conflicting sequence.
	ErrNodeExists = errors.New("vgraph: node already exists with different sequence")
)

// Node is a vertex of the variation graph: an id plus its DNA sequence.
type Node struct {
	ID       uint64
	Sequence string
}

// NodeDescriptor is the external shape used to add a node fetched from a
// collaborator index (spec.md §1's "node addition from an external node
// descriptor"): an id plus the sequence a caller looked up for it, e.g.
// through refidx.Index.Sequence).
type NodeDescriptor struct {
	ID       uint64
	Sequence string
}

// Graph is G: the mutable bidirected variation graph.
//
// muNode guards the node catalog; muEdgeAdj guards the adjacency lists.
// Lock order is muNode -> muEdgeAdj, mirroring lvlath core.Graph's
// muVert -> muEdgeAdj convention.
type Graph struct {
	muNode    sync.RWMutex
	muEdgeAdj sync.RWMutex

	nodes map[uint64]*Node

	// adjacency[h][next] = struct{}{} records that an edge from oriented
	// handle h to oriented handle next exists. AddEdge always writes both
	// the forward entry and its reverse-complement entry (see doc.go).
	adjacency map[handle.Handle]map[handle.Handle]struct{}
}

// New creates an empty variation graph.
func New() *Graph {
	return &Graph{
		nodes:     make(map[uint64]*Node),
		adjacency: make(map[handle.Handle]map[handle.Handle]struct{}),
	}
}
