// Command vgunfold is the CLI surface from spec.md §6: a single `unfold`
// subcommand wiring the graph store, reference-path index, and
// haplotype-thread index files through unfold.Unfold and
// unfold.VerifyWalks, following the cobra command-tree convention
// AleutianFOSS uses for cmd/aleutian (see SPEC_FULL.md §2, §3).
//
// Persistence of G, X, and H themselves is out of spec's scope (spec.md
// §1 Non-goals); the YAML file shapes in this package exist only so the
// CLI has something concrete to read and write while exercising the
// unfolding algorithm end to end, mirroring cmd/aleutian/config's
// yaml.v3-backed config loading (SPEC_FULL.md §3).
package main
