package dfs

import "errors"

// ErrIncompleteTraversal indicates Preprocess's stack was exhausted before
// every vertex was reached — an internal invariant violation, since every
// vertex belongs to exactly one DFS tree by construction (each outer-loop
// start that finds a still-unvisited vertex walks its entire component).
var ErrIncompleteTraversal = errors.New("dfs: preprocessing did not reach every vertex")
