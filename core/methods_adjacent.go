package core

// Neighbors returns the list of vertex/virtual-vertex indices adjacent to
// v, in current ring order. It is a convenience built on Iterate for
// callers (tests, integrity checks) that want a materialized slice rather
// than a one-shot iterator.
func (g *Graph) Neighbors(v int) []int {
	out := make([]int, 0, g.Degree(v))
	it := g.Iterate(v)
	for a, ok := it.Next(); ok; a, ok = it.Next() {
		out = append(out, g.Neighbor(a))
	}

	return out
}

// Arcs returns the list of arc indices owned by v, in current ring order.
func (g *Graph) Arcs(v int) []int {
	out := make([]int, 0, g.Degree(v))
	it := g.Iterate(v)
	for a, ok := it.Next(); ok; a, ok = it.Next() {
		out = append(out, a)
	}

	return out
}
