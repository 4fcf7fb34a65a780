// Package unfold wires the core pipeline together (spec.md §2's control
// flow): Complement Builder -> per-component { Evidence Walk Enumerator,
// Trie Duplicator } -> Assembler -> G.Extend, with a Reference-Only Path
// Restoration fallback when H carries no threads (spec.md §4.6, §8
// invariant 5's restore/unfold equivalence).
//
// Unfold is single-threaded (spec.md §5); VerifyWalks is the separate,
// parallel verification entry point and must be called with the same
// *vgraph.Graph Unfold just mutated via Extend, not a pre-merge fragment
// (see verify package doc and DESIGN.md's Open Question decision #2).
package unfold
