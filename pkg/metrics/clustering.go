package metrics

import (
	"math"

	"github.com/matzehuels/smallworld/pkg/graph"
)

// LatticeClustering returns 3(k−2) / (4(k−1)), the clustering coefficient of
// a k-regular ring lattice.
func LatticeClustering(k int) float64 {
	return float64(3*(k-2)) / float64(4*(k-1))
}

// ClusteringApprox returns the closed-form clustering approximation for a
// Watts-Strogatz graph with parameters (n, k, beta).
//
// Callers validate (n, k, beta) before asking; the function itself is total
// over its numeric inputs.
func ClusteringApprox(n, k int, beta float64) float64 {
	switch beta {
	case 0:
		return LatticeClustering(k)
	case 1:
		return float64(k) / float64(n)
	default:
		return LatticeClustering(k) * math.Pow(1-beta, 3)
	}
}

// EmpiricalClustering returns the average local clustering coefficient of g.
//
// For each node the local value is the fraction of neighbor pairs that are
// themselves adjacent; nodes with fewer than two neighbors contribute 0.
//
// Complexity: O(Σ deg(u)² · log deg) time.
func EmpiricalClustering(g *graph.Graph) float64 {
	n := g.NodeCount()
	var total float64
	for u := 0; u < n; u++ {
		nbrs := g.Neighbors(u)
		d := len(nbrs)
		if d < 2 {
			continue
		}
		closed := 0
		for i := 0; i < d; i++ {
			for j := i + 1; j < d; j++ {
				if g.HasEdge(nbrs[i], nbrs[j]) {
					closed++
				}
			}
		}
		total += float64(closed) / float64(d*(d-1)/2)
	}
	return total / float64(n)
}
