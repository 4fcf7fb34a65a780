package idmap

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// header is the fixed binary header from spec.md §6:
// {first_node, next_node, mapping_size}, each a u64, little-endian.
type header struct {
	FirstNode   uint64
	NextNode    uint64
	MappingSize uint64
}

// Save writes M's binary form to w: the fixed header followed by
// mapping_size u64 entries, the i-th being the original id of duplicate
// first_node+i. mapping_size always equals next_node-first_node.
func (m *Map) Save(w io.Writer) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	h := header{
		FirstNode:   m.firstNode,
		NextNode:    m.nextNode,
		MappingSize: uint64(len(m.mapping)),
	}
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("idmap: write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, m.mapping); err != nil {
		return fmt.Errorf("idmap: write mapping: %w", err)
	}
	return nil
}

// Load reads M's binary form from r, replacing no existing state (it
// always constructs a fresh *Map).
func Load(r io.Reader) (*Map, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("idmap: read header: %w", err)
	}
	mapping := make([]uint64, h.MappingSize)
	if h.MappingSize > 0 {
		if err := binary.Read(r, binary.LittleEndian, mapping); err != nil {
			return nil, fmt.Errorf("idmap: read mapping: %w", err)
		}
	}
	return &Map{firstNode: h.FirstNode, nextNode: h.NextNode, mapping: mapping}, nil
}

// SaveFile opens path in binary mode and writes M to it. Per spec.md §7,
// I/O errors here are logged to stderr via slog and treated as non-fatal:
// the error is still returned so the caller can decide whether to
// continue, but SaveFile itself never panics or exits.
func (m *Map) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		slog.Error("idmap: open for save failed", "path", path, "err", err)
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := m.Save(bw); err != nil {
		slog.Error("idmap: save failed", "path", path, "err", err)
		return err
	}
	if err := bw.Flush(); err != nil {
		slog.Error("idmap: flush failed", "path", path, "err", err)
		return err
	}
	return nil
}

// LoadFile opens path in binary mode and loads M from it. See SaveFile
// for the error-handling contract.
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		slog.Error("idmap: open for load failed", "path", path, "err", err)
		return nil, err
	}
	defer f.Close()

	m, err := Load(bufio.NewReader(f))
	if err != nil {
		slog.Error("idmap: load failed", "path", path, "err", err)
		return nil, err
	}
	return m, nil
}
