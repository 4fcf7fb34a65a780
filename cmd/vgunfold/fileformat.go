package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vgunfold/handle"
	"github.com/katalvlaran/vgunfold/hapidx"
	"github.com/katalvlaran/vgunfold/refidx"
	"github.com/katalvlaran/vgunfold/vgraph"
)

// graphFile is the on-disk YAML shape for a variation graph: a flat node
// list plus a flat edge list, each edge naming its endpoints in
// "<id>+"/"<id>-" handle notation.
type graphFile struct {
	Nodes []nodeFile `yaml:"nodes"`
	Edges []edgeFile `yaml:"edges"`
}

type nodeFile struct {
	ID       uint64 `yaml:"id"`
	Sequence string `yaml:"sequence"`
}

type edgeFile struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// refIndexFile is the on-disk YAML shape for X: named paths (each a
// sequence of handle strings) plus a node id -> sequence table.
type refIndexFile struct {
	Paths     map[string][]string `yaml:"paths"`
	Sequences map[string]string   `yaml:"sequences"`
}

// hapIndexFile is the on-disk YAML shape for H: a flat list of threads,
// each a sequence of handle strings (no trailing end-marker entry; the
// in-memory hapidx.Static appends that implicitly).
type hapIndexFile struct {
	Threads [][]string `yaml:"threads"`
}

// parseHandle parses "<id>+"/"<id>-" into a handle.Handle.
func parseHandle(s string) (handle.Handle, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("vgunfold: malformed handle %q", s)
	}
	strand := s[len(s)-1:]
	var reverse bool
	switch strand {
	case "+":
		reverse = false
	case "-":
		reverse = true
	default:
		return 0, fmt.Errorf("vgunfold: handle %q missing +/- strand", s)
	}
	id, err := strconv.ParseUint(s[:len(s)-1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("vgunfold: handle %q has non-numeric id: %w", s, err)
	}
	return handle.New(id, reverse)
}

func parseHandles(ss []string) (handle.Walk, error) {
	out := make(handle.Walk, len(ss))
	for i, s := range ss {
		h, err := parseHandle(s)
		if err != nil {
			return nil, err
		}
		out[i] = h
	}
	return out, nil
}

// loadGraph reads path as a graphFile and builds a *vgraph.Graph.
func loadGraph(path string) (*vgraph.Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vgunfold: read graph %s: %w", path, err)
	}
	var gf graphFile
	if err := yaml.Unmarshal(raw, &gf); err != nil {
		return nil, fmt.Errorf("vgunfold: parse graph %s: %w", path, err)
	}

	g := vgraph.New()
	for _, n := range gf.Nodes {
		if err := g.AddNode(n.ID, n.Sequence); err != nil {
			return nil, fmt.Errorf("vgunfold: graph %s node %d: %w", path, n.ID, err)
		}
	}
	for _, e := range gf.Edges {
		from, err := parseHandle(e.From)
		if err != nil {
			return nil, fmt.Errorf("vgunfold: graph %s: %w", path, err)
		}
		to, err := parseHandle(e.To)
		if err != nil {
			return nil, fmt.Errorf("vgunfold: graph %s: %w", path, err)
		}
		if err := g.AddEdge(from, to); err != nil {
			return nil, fmt.Errorf("vgunfold: graph %s edge %s->%s: %w", path, e.From, e.To, err)
		}
	}
	return g, nil
}

// saveGraph writes g to path in graphFile form. Edges are emitted once
// per canonical direction recorded in g.Edges (which already includes
// both the forward and RC adjacency entries AddEdge wrote); the file is
// therefore a faithful, if redundant, record of g's adjacency.
func saveGraph(path string, g *vgraph.Graph) error {
	gf := graphFile{}
	for _, id := range g.NodeIDs() {
		n, _ := g.GetNode(id)
		gf.Nodes = append(gf.Nodes, nodeFile{ID: n.ID, Sequence: n.Sequence})
	}
	for _, e := range g.Edges() {
		gf.Edges = append(gf.Edges, edgeFile{From: e.From.String(), To: e.To.String()})
	}

	raw, err := yaml.Marshal(gf)
	if err != nil {
		return fmt.Errorf("vgunfold: marshal graph: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("vgunfold: write graph %s: %w", path, err)
	}
	return nil
}

// loadRefIndex reads path as a refIndexFile and builds a *refidx.Static.
func loadRefIndex(path string) (*refidx.Static, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vgunfold: read refidx %s: %w", path, err)
	}
	var rf refIndexFile
	if err := yaml.Unmarshal(raw, &rf); err != nil {
		return nil, fmt.Errorf("vgunfold: parse refidx %s: %w", path, err)
	}

	paths := make(map[string]handle.Walk, len(rf.Paths))
	for name, hs := range rf.Paths {
		w, err := parseHandles(hs)
		if err != nil {
			return nil, fmt.Errorf("vgunfold: refidx %s path %q: %w", path, name, err)
		}
		paths[name] = w
	}

	sequences := make(map[uint64]string, len(rf.Sequences))
	for idStr, seq := range rf.Sequences {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("vgunfold: refidx %s sequence key %q: %w", path, idStr, err)
		}
		sequences[id] = seq
	}

	return refidx.NewStatic(paths, sequences), nil
}

// loadHapIndex reads path as a hapIndexFile and builds a *hapidx.Static.
// An empty or missing path yields a nil index, the signal unfold.Unfold
// treats as "H unavailable" (spec.md §4.6).
func loadHapIndex(path string) (*hapidx.Static, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vgunfold: read hapidx %s: %w", path, err)
	}
	var hf hapIndexFile
	if err := yaml.Unmarshal(raw, &hf); err != nil {
		return nil, fmt.Errorf("vgunfold: parse hapidx %s: %w", path, err)
	}

	threads := make([]handle.Walk, len(hf.Threads))
	for i, hs := range hf.Threads {
		w, err := parseHandles(hs)
		if err != nil {
			return nil, fmt.Errorf("vgunfold: hapidx %s thread %d: %w", path, i, err)
		}
		threads[i] = w
	}

	return hapidx.NewStatic(threads), nil
}
