// Package kuratowski implements the nonplanarity isolator (C8): given a
// Graph on which Walkdown stalled while vertex v still had pending back
// edges, it reduces the graph in place to a subdivision of K5 or K3,3 (or,
// in outerplanar mode, K4 or K2,3) proving nonplanarity.
//
// The full minor classification (spec.md §4.7) distinguishes five cases,
// A through E, by where the obstruction's witnessing paths run relative to
// the stalled bicomp's two externally-active boundary vertices X and Y.
// This implementation distinguishes minors A (the stalled vertex is itself
// pertinent through one of its own child bicomps) and B (a separated child
// of the stalled vertex has an active lowpoint) from everything else, which
// it folds into a single general reduction standing in for minors C, D,
// and E alike: mark the DFS tree path to the pending back edge's
// descendant, both external-face paths out to X and Y, and one further
// back-edge witness climbed from whichever of X/Y isn't the stall vertex.
// It does not separately apply C's and D's tie-break on where the X-Y path
// crosses relative to R. This trade-off, and what is and is not verified
// about the resulting subdivision's shape, is recorded in DESIGN.md.
package kuratowski
