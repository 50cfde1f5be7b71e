package metrics

import (
	"github.com/matzehuels/smallworld/pkg/errors"
	"github.com/matzehuels/smallworld/pkg/graph"
)

// AverageShortestPathLength returns the mean shortest-path distance over all
// ordered pairs of distinct nodes.
//
// Returns INVALID_PARAMETER for a single-node graph (there are no pairs) and
// DISCONNECTED_GRAPH when some pair has no path between them.
//
// Complexity: O(n·(n+m)) time, O(n) extra space.
func AverageShortestPathLength(g *graph.Graph) (float64, error) {
	n := g.NodeCount()
	if n < 2 {
		return 0, errors.New(errors.ErrCodeInvalidParameter,
			"average shortest path needs at least 2 nodes, got %d", n)
	}

	dist := make([]int, n)
	queue := make([]int, 0, n)
	var total int64

	for s := 0; s < n; s++ {
		reached, sum := bfs(g, s, dist, queue)
		if reached != n {
			return 0, errors.New(errors.ErrCodeDisconnectedGraph,
				"node %d reaches only %d of %d nodes", s, reached, n)
		}
		total += sum
	}

	return float64(total) / float64(n*(n-1)), nil
}

// bfs fills dist with hop distances from s (-1 for unreachable) and returns
// the number of reached nodes (including s) and the sum of their distances.
// dist and queue are scratch buffers reused across sources.
func bfs(g *graph.Graph, s int, dist []int, queue []int) (int, int64) {
	for i := range dist {
		dist[i] = -1
	}
	dist[s] = 0
	queue = append(queue[:0], s)

	var sum int64
	reached := 1
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range g.Neighbors(u) {
			if dist[v] >= 0 {
				continue
			}
			dist[v] = dist[u] + 1
			sum += int64(dist[v])
			reached++
			queue = append(queue, v)
		}
	}
	return reached, sum
}
