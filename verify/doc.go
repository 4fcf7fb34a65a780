// Package verify implements the Verifier (spec.md §4.7): a parallel check
// that every reference-path walk in X and every haplotype thread in H is
// realized in an unfolded graph modulo duplication.
//
// Verify must be called with the *merged* graph — the result of
// (*vgraph.Graph).Extend, not a pre-merge unfolded fragment — per spec.md
// §9's open question on candidate-list meaning; see DESIGN.md for the
// decision record. unfold.VerifyWalks passes its graph straight through,
// so it is given the same graph unfold.Unfold extended in place.
//
// verify_walk narrows a live set of candidate handles one step at a time
// instead of exploring every branch explicitly: at each offset the
// frontier holds exactly the candidate handles still reachable from
// offset 0, so once a step narrows the frontier to a single handle no
// further branch bookkeeping survives past it (the "commit" spec.md §4.7
// describes). The shape mirrors hapidx.State's candidate-narrowing (see
// hapidx/static.go's Extend), generalized from thread indices to graph
// handles, and keeps a single walk's check at O(len(walk)) work instead
// of exponential in branch count (spec.md §8 scenario (f)).
package verify
