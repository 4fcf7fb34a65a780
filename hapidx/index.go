package hapidx

import (
	"math"

	"github.com/katalvlaran/vgunfold/handle"
)

// EndMarker is the sentinel handle marking the end of a haplotype
// thread. Its value is the reverse-strand handle of the largest id
// handle.New accepts (handle.maxPackableID); Static and the complement
// builder treat that value as the end marker wherever it appears. It
// must be filtered from edge enumeration before it reaches the
// complement scratch graph (spec.md §6).
const EndMarker = handle.Handle(math.MaxUint64)

// State is an opaque haplotype-index search cursor: the set of threads
// consistent with the handles matched so far. A State is "empty" (no
// matching threads) once Ok reports false; Index.Extend on an empty
// State always yields another empty State.
type State struct {
	ok    bool
	depth int
	// candidates holds the set of thread indices (in the owning Static)
	// still consistent with the matched prefix. Only Static constructs
	// and interprets this field; it is opaque to callers.
	candidates []int
}

// Ok reports whether the state still matches at least one thread.
func (s State) Ok() bool { return s.ok }

// Index is H: supports Find (seed a cursor at a starting handle) and
// Extend (narrow a cursor by one more handle), the two primitives
// walkenum's threaded DFS needs (spec.md §4.3).
type Index interface {
	// Find seeds a search state at h. Returns (state, false) if no
	// thread starts with h.
	Find(h handle.Handle) (State, bool)

	// Extend advances s by next. Returns (state, false) if no thread
	// consistent with s also has next at the following position.
	Extend(s State, next handle.Handle) (State, bool)

	// NodeIDs returns the node ids ("components", spec.md §4.1) H has
	// recorded thread adjacency for.
	NodeIDs() []uint64

	// EdgesFrom returns every distinct next-handle observed, across all
	// threads, immediately following h. May include EndMarker; callers
	// building the complement scratch graph (spec.md §4.1) must skip it.
	EdgesFrom(h handle.Handle) []handle.Handle

	// Threads returns every complete haplotype thread as a handle.Walk,
	// with the end-marker sentinel stripped. verify uses this to check
	// each full thread end to end (spec.md §4.7), as opposed to the
	// border-to-border slices walkenum produces for unfolding.
	Threads() []handle.Walk
}
