package graph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeCount is returned by [New] when n is not positive.
	ErrInvalidNodeCount = errors.New("node count must be positive")

	// ErrNodeOutOfRange is returned by [New] when an edge endpoint is
	// outside 0..n-1.
	ErrNodeOutOfRange = errors.New("edge endpoint out of range")

	// ErrSelfLoop is returned by [New] when an edge connects a node to itself.
	ErrSelfLoop = errors.New("self-loops are not allowed")

	// ErrDuplicateEdge is returned by [New] when the same unordered pair
	// appears more than once.
	ErrDuplicateEdge = errors.New("duplicate edge")
)

// Edge is an undirected edge between two node ids.
// Edges returned by this package always satisfy U < V.
type Edge struct {
	U int
	V int
}

// Normalize returns the edge with its endpoints ordered so that U <= V.
func (e Edge) Normalize() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}
	return e
}

// compareEdges orders edges by U, then V.
func compareEdges(a, b Edge) int {
	if a.U != b.U {
		return a.U - b.U
	}
	return a.V - b.V
}

// Graph is an immutable undirected simple graph over nodes 0..n-1.
//
// The zero value is not usable - use [New] to create a valid Graph.
type Graph struct {
	n     int
	edges []Edge  // sorted by (U, V), U < V
	adj   [][]int // sorted neighbor lists
}

// New builds a graph with n nodes and the given edges.
//
// Edges may be given in any order and with either endpoint first; they are
// normalized and sorted. Returns [ErrInvalidNodeCount], [ErrNodeOutOfRange],
// [ErrSelfLoop] or [ErrDuplicateEdge] when the input does not describe a
// simple graph.
func New(n int, edges []Edge) (*Graph, error) {
	if n <= 0 {
		return nil, ErrInvalidNodeCount
	}

	norm := make([]Edge, len(edges))
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, ErrNodeOutOfRange
		}
		if e.U == e.V {
			return nil, ErrSelfLoop
		}
		norm[i] = e.Normalize()
	}
	slices.SortFunc(norm, compareEdges)
	for i := 1; i < len(norm); i++ {
		if norm[i] == norm[i-1] {
			return nil, ErrDuplicateEdge
		}
	}

	adj := make([][]int, n)
	for _, e := range norm {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}
	for _, nbrs := range adj {
		slices.Sort(nbrs)
	}

	return &Graph{n: n, edges: norm, adj: adj}, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the edge list, sorted by (U, V).
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Neighbors returns the sorted neighbors of u.
// The returned slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(u int) []int { return g.adj[u] }

// Degree returns the number of neighbors of u.
func (g *Graph) Degree(u int) int { return len(g.adj[u]) }

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}
	_, found := slices.BinarySearch(g.adj[u], v)
	return found
}

// Equal reports whether g and o have the same node count and edge set.
func (g *Graph) Equal(o *Graph) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.n == o.n && slices.Equal(g.edges, o.edges)
}
