// Package dfs builds the depth-first-search skeleton a planarity embedding
// runs on top of: DFI assignment, parent pointers, CHILD/PARENT/FORWARD/BACK
// arc typing, one virtual vertex per DFS child edge, and the Lowpoint and
// LeastAncestor values that drive the externally/internally-active tests
// during Walkup and Walkdown.
//
// Everything here runs in one linear pass over the graph using core.Graph's
// DFSStack rather than Go call-stack recursion, so a pathological input
// cannot exhaust the goroutine stack and the traversal cost stays O(N+M).
package dfs
