package builder

import (
	"fmt"

	"github.com/matzehuels/smallworld/pkg/errors"
	"github.com/matzehuels/smallworld/pkg/graph"
	"github.com/matzehuels/smallworld/pkg/rng"
)

const methodWattsStrogatz = "WattsStrogatz"

// ValidateBeta checks that beta is a probability in [0,1].
func ValidateBeta(beta float64) error {
	return errors.ValidateBeta(beta)
}

// WattsStrogatz builds a ring lattice on n nodes with degree k and rewires
// each edge with probability beta, drawing all randomness from src.
//
// One Float64 draw is consumed per lattice edge regardless of beta, plus
// IntN draws for every rewired edge, so the same seed and parameters always
// produce the same graph.
func WattsStrogatz(n, k int, beta float64, src rng.Source) (*graph.Graph, error) {
	if err := ValidateLattice(n, k); err != nil {
		return nil, fmt.Errorf("%s: %w", methodWattsStrogatz, err)
	}
	if err := ValidateBeta(beta); err != nil {
		return nil, fmt.Errorf("%s: %w", methodWattsStrogatz, err)
	}
	if src == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "%s: random source is required", methodWattsStrogatz)
	}

	a := newAdjacency(n)
	lattice := latticeEdges(n, k)
	for _, e := range lattice {
		a.add(e.U, e.V)
	}

	for _, e := range lattice {
		if src.Float64() >= beta {
			continue
		}
		u, v := e.U, e.V
		if !a.has(u, v) {
			continue
		}
		w, ok := a.pickNonNeighbor(u, src)
		if !ok {
			continue
		}
		a.remove(u, v)
		a.add(u, w)
	}

	g, err := graph.New(n, a.edges())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: n=%d k=%d beta=%v", methodWattsStrogatz, n, k, beta)
	}
	return g, nil
}
