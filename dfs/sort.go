package dfs

import "github.com/pednova/planarity/core"

// SortByDFI reorders the graph into DFI order (C4, spec.md §4.3) and is a
// thin wrapper over core.Graph.SortVertices kept here so callers assembling
// the pipeline (Preprocess, then sort, then embed) read top to bottom from
// this package rather than reaching back into core for the one step that
// conceptually belongs to preprocessing's output contract.
//
// Calling this twice restores the original input-label order; see
// core.Graph.SortVertices for the self-inverse details.
func SortByDFI(g *core.Graph) error {
	return g.SortVertices()
}
