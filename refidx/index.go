package refidx

import "github.com/katalvlaran/vgunfold/handle"

// Index is X: an immutable index of named reference paths, queryable by
// rank. Implementations must be safe for concurrent read access (spec.md
// §5).
type Index interface {
	// PathNames returns every reference path name, in a stable order.
	PathNames() []string

	// PathLen returns the number of handles on path.
	PathLen(path string) int

	// HandleAt returns the oriented handle at the given rank (0-based) on
	// path.
	HandleAt(path string, rank int) handle.Handle

	// Occurrences returns the sorted ranks at which nodeID occurs on
	// path, in either orientation.
	Occurrences(path string, nodeID uint64) []int

	// Sequence returns the DNA sequence recorded for nodeID and whether
	// it is resolvable via X at all. Complement/Assembler use this to
	// fetch original sequences for nodes and duplicates alike (spec.md
	// §4.1, §4.5).
	Sequence(nodeID uint64) (string, bool)
}
