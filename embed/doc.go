// Package embed implements the edge-addition planar embedder: Walkup (C5),
// Walkdown (C6), and the bicomp operations (C7) that merge biconnected
// components at cut vertices and join them back together once every
// back edge has embedded.
//
// Behavioral differences between the planarity variants spec.md §4.8
// describes (outerplanar, K3,3 search, K2,3 search, drawing) are expressed
// as a Mode value: a Kind plus boolean flags that the engine branches on,
// in place of the original source's per-build function-table overload.
// There is no runtime function-table lookup; a Mode is a small struct of
// flags chosen once per Embed call.
package embed
