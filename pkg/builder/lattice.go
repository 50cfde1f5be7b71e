package builder

import (
	"fmt"

	"github.com/matzehuels/smallworld/pkg/errors"
	"github.com/matzehuels/smallworld/pkg/graph"
)

const methodRingLattice = "RingLattice"

// ValidateLattice checks the (n, k) domain shared by every constructor here.
func ValidateLattice(n, k int) error {
	return errors.ValidateDegree(n, k)
}

// RingLattice builds the k-regular ring lattice on n nodes.
func RingLattice(n, k int) (*graph.Graph, error) {
	if err := ValidateLattice(n, k); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRingLattice, err)
	}
	g, err := graph.New(n, latticeEdges(n, k))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: n=%d k=%d", methodRingLattice, n, k)
	}
	return g, nil
}

// latticeEdges emits lattice edges in traversal order: u ascending, then the
// forward offsets 1..k/2. Callers must have validated (n, k).
func latticeEdges(n, k int) []graph.Edge {
	half := k / 2
	edges := make([]graph.Edge, 0, n*half)
	for u := 0; u < n; u++ {
		for j := 1; j <= half; j++ {
			edges = append(edges, graph.Edge{U: u, V: (u + j) % n})
		}
	}
	return edges
}
