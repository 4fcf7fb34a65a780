// Package hapidx implements H, the haplotype-thread index collaborator
// from spec.md §1: an immutable succinct index of haplotype threads
// supporting prefix-search extension, i.e. a haplotype-aware FM-index
// style interface (GBWT-shaped: Find/Extend over a search cursor).
//
// Building a real succinct haplotype index is an explicit Non-goal
// (spec.md §1). Index is the cursor interface the unfolding core
// depends on; Static is a minimal immutable in-memory implementation —
// a flat table of threads instead of a compressed FM-index — sufficient
// to exercise and test walkenum/complement end to end.
package hapidx
