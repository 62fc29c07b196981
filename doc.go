// Package planarity implements Boyer–Myrvold linear-time planarity
// testing and embedding: given an undirected simple graph, Embed either
// produces a combinatorial planar embedding (a rotation system admitting a
// crossing-free drawing on the sphere) or isolates a Kuratowski
// subdivision (a subgraph homeomorphic to K5 or K3,3) proving
// nonplanarity. Small behavioral deltas over the same core answer related
// questions: outerplanar embedding (K4/K2,3 obstruction), K3,3 and K2,3
// subgraph search, and visibility-drawing computation from a planar
// embedding.
//
// The package is organized the way the algorithm's own components
// separate:
//
//	core/        — Graph store: vertices, virtual vertices, arc records,
//	               adjacency rings, twin-arc pairing, hide/restore.
//	dfs/         — DFS preprocessing: DFI, parent, lowpoint, leastAncestor,
//	               arc typing, and the self-inverse sort-by-DFI toggle.
//	embed/       — The edge-addition embedder: Walkup, Walkdown, bicomp
//	               merge/orient/join, and the Mode variants.
//	kuratowski/  — The nonplanarity isolator: reduces a stalled graph to a
//	               K5/K3,3 (or K4/K2,3) subdivision in place.
//	integrity/   — Post-condition checks: embedding face count and
//	               adjacency preservation, obstruction homeomorphism.
//	drawing/     — Visibility representation from a DrawPlanar embedding.
//
// This package itself holds only the orchestration (Embed) and the small
// public vocabulary (Mode, Result, the sentinel error) that ties the
// subpackages into the one operation external callers invoke.
package planarity
