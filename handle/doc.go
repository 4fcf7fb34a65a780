// Package handle implements the oriented-node-handle encoding shared by
// every other package in vgunfold: a node id and its strand, packed into
// a single uint64, plus the Edge and Walk types built on top of it.
//
// Packing follows spec.md §3 and §9: handle = 2*id + (reverse ? 1 : 0),
// so the reverse complement of a handle is a single XOR against bit 0.
// The technique mirrors the closed-form bit arithmetic lvlath's sibling
// pack example gaissmai/bart uses for its baseIndex/hostMasks prefix
// encoding, adapted here from IP-prefix indexing to node orientation.
package handle
