// Package drawing computes a visibility representation (spec.md §4.8
// "Drawing", §8 scenario 5) from a graph that Embed has already placed in
// DrawPlanar mode: each vertex becomes a horizontal segment at some
// integer y-coordinate spanning an x-interval, and each edge becomes a
// vertical segment at one x-coordinate touching its two endpoints'
// horizontal segments. Each vertex's x-interval is the DFI range of its
// DFS subtree, so an ancestor's interval contains its descendants'
// intervals: vertex segments on different rows do share x-coordinates.
package drawing
