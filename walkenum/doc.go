// Package walkenum implements the Evidence Walk Enumerator from spec.md
// §4.2 (reference-path walks) and §4.3 (haplotype-thread walks): per
// component, per border node, produce every border-to-border walk each
// evidence source supports.
//
// The haplotype side is an explicit-stack DFS over (search_state, walk)
// pairs, the same shape as lvlath's dfs.dfsWalker, generalized from a
// plain id-visited traversal to one carrying a hapidx.State cursor
// alongside each partial walk so multiple in-flight candidate threads
// can coexist (a single vertex id may appear on many walks at once,
// which a plain visited-set DFS cannot represent).
package walkenum
