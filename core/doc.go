// Package core implements the graph store at the heart of the planarity
// engine: vertices, virtual vertices (bicomp root copies), and the paired
// half-edge arcs that link them, all held in fixed-capacity arrays indexed
// by stable integers rather than pointers.
//
// The representation follows the edge-addition planarity suite's design:
// a Graph of order N allocates 2N vertex records — indices [0,N) are real
// vertices, indices [N,2N) are virtual vertices, where virtual vertex N+c
// is a "root copy" of c created the moment c becomes a DFS child. Arcs are
// allocated from a single fixed-capacity pool in twin-adjacent pairs
// (arc a and T(a) = a XOR 1 represent the two directions of one edge) and
// are linked into per-owner doubly-linked rings via parallel nextArc/
// prevArc arrays, so ring splicing, hiding, and restoring are all O(1).
//
// Nothing here performs DFS, embedding, or isolation — see the dfs, embed,
// and kuratowski packages. This package only owns the arrays and enforces
// the ring/twin invariants spec'd for them.
package core
