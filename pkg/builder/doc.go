// Package builder constructs ring lattices and Watts-Strogatz small-world
// graphs.
//
// # Ring Lattice
//
// [RingLattice] places n nodes on a circle and connects every node to its k/2
// nearest neighbors on each side. The result has exactly n·k/2 edges, every
// node has degree k, and the graph is connected.
//
// # Watts-Strogatz Rewiring
//
// [WattsStrogatz] starts from the lattice and visits each lattice edge once,
// in a fixed order: nodes u ascending, and for each u the forward neighbors
// u+1, ..., u+k/2 (mod n). For every edge it draws one probability from the
// supplied [rng.Source]; when the draw is below beta, the far endpoint is
// replaced by a node chosen uniformly among those that are neither u nor
// already adjacent to u. When no such node exists the edge is left alone.
//
// Rewiring moves endpoints and never adds or removes edges, so the edge count
// stays n·k/2 and the graph stays simple. With beta = 0 no draw can trigger a
// rewire and the output equals the lattice.
//
//	src := rng.New(42)
//	g, err := builder.WattsStrogatz(20, 4, 0.2, src)
//
// # Errors
//
// Invalid parameters are reported with the INVALID_PARAMETER code from
// [github.com/matzehuels/smallworld/pkg/errors] before any work is done.
package builder
