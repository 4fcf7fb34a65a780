// Package refidx implements X, the reference-path index collaborator
// from spec.md §1: an immutable index of named reference paths over the
// original graph, queryable by path rank.
//
// Building a production-grade X (e.g. an rGFA-style path index) is an
// explicit Non-goal (spec.md §1); Index is the interface the unfolding
// core actually depends on, and Static is a minimal immutable in-memory
// implementation sufficient to exercise and test complement/walkenum
// against real path data.
package refidx
