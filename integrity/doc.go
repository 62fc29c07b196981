// Package integrity implements the post-condition checks (C10) that give
// the engine's success/failure results an observable contract: that a
// returned embedding really is one (Euler face count, adjacency
// preservation), and that a returned obstruction really is a subdivision
// of the claimed Kuratowski graph (subgraph inclusion, degree sequence).
package integrity
