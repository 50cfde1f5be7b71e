package builder

import (
	"github.com/matzehuels/smallworld/pkg/graph"
	"github.com/matzehuels/smallworld/pkg/rng"
)

// adjacency is the mutable neighbor-set representation used while rewiring.
type adjacency struct {
	nbrs []map[int]struct{}
}

func newAdjacency(n int) *adjacency {
	nbrs := make([]map[int]struct{}, n)
	for i := range nbrs {
		nbrs[i] = make(map[int]struct{})
	}
	return &adjacency{nbrs: nbrs}
}

func (a *adjacency) add(u, v int) {
	a.nbrs[u][v] = struct{}{}
	a.nbrs[v][u] = struct{}{}
}

func (a *adjacency) remove(u, v int) {
	delete(a.nbrs[u], v)
	delete(a.nbrs[v], u)
}

func (a *adjacency) has(u, v int) bool {
	_, ok := a.nbrs[u][v]
	return ok
}

// pickNonNeighbor draws a node uniformly from those that are neither u nor
// adjacent to u. It reports false when u is already adjacent to every other
// node. Rejection sampling keeps the draw uniform over the eligible set.
func (a *adjacency) pickNonNeighbor(u int, src rng.Source) (int, bool) {
	n := len(a.nbrs)
	if len(a.nbrs[u]) >= n-1 {
		return 0, false
	}
	for {
		w := src.IntN(n)
		if w == u || a.has(u, w) {
			continue
		}
		return w, true
	}
}

// edges flattens the neighbor sets into an edge list (each pair once).
func (a *adjacency) edges() []graph.Edge {
	var out []graph.Edge
	for u, nbrs := range a.nbrs {
		for v := range nbrs {
			if u < v {
				out = append(out, graph.Edge{U: u, V: v})
			}
		}
	}
	return out
}
