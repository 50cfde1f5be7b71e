package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/smallworld/pkg/builder"
	"github.com/matzehuels/smallworld/pkg/errors"
	"github.com/matzehuels/smallworld/pkg/graph"
	"github.com/matzehuels/smallworld/pkg/rng"
)

// floydWarshall computes all-pairs hop distances independently of the BFS
// implementation under test. Unreachable pairs stay at math.MaxInt32.
func floydWarshall(g *graph.Graph) [][]int {
	n := g.NodeCount()
	const inf = math.MaxInt32
	d := make([][]int, n)
	for i := range d {
		d[i] = make([]int, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = inf
			}
		}
	}
	for _, e := range g.Edges() {
		d[e.U][e.V], d[e.V][e.U] = 1, 1
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k] != inf && d[k][j] != inf && d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}
	return d
}

func bruteForceMean(t *testing.T, g *graph.Graph) float64 {
	t.Helper()
	d := floydWarshall(g)
	n := g.NodeCount()
	sum := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			require.NotEqual(t, math.MaxInt32, d[i][j], "pair %d-%d unreachable", i, j)
			sum += d[i][j]
		}
	}
	return float64(sum) / float64(n*(n-1))
}

func TestAverageShortestPathLengthLattice(t *testing.T) {
	g, err := builder.RingLattice(20, 4)
	require.NoError(t, err)

	got, err := AverageShortestPathLength(g)
	require.NoError(t, err)

	assert.InDelta(t, bruteForceMean(t, g), got, 1e-9)
	// From any node the 19 others sit at hop distances summing to 55.
	assert.InDelta(t, 55.0/19.0, got, 1e-9)

	again, err := AverageShortestPathLength(g)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestAverageShortestPathLengthRewired(t *testing.T) {
	for _, beta := range []float64{0.2, 0.4} {
		g, err := builder.WattsStrogatz(30, 6, beta, rng.New(9))
		require.NoError(t, err)

		got, err := AverageShortestPathLength(g)
		if errors.Is(err, errors.ErrCodeDisconnectedGraph) {
			t.Skipf("seed produced a disconnected graph at beta=%v", beta)
		}
		require.NoError(t, err)
		assert.InDelta(t, bruteForceMean(t, g), got, 1e-9, "beta=%v", beta)
	}
}

func TestAverageShortestPathLengthSmallGraphs(t *testing.T) {
	pair, err := graph.New(2, []graph.Edge{{U: 0, V: 1}})
	require.NoError(t, err)
	got, err := AverageShortestPathLength(pair)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	path, err := graph.New(3, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
	require.NoError(t, err)
	got, err = AverageShortestPathLength(path)
	require.NoError(t, err)
	// Ordered distances: 1,2,1,1,2,1 → 8/6.
	assert.InDelta(t, 8.0/6.0, got, 1e-12)
}

func TestAverageShortestPathLengthDisconnected(t *testing.T) {
	g, err := graph.New(4, []graph.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	require.NoError(t, err)

	_, err = AverageShortestPathLength(g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeDisconnectedGraph), "got %v", err)
}

func TestAverageShortestPathLengthSingleNode(t *testing.T) {
	g, err := graph.New(1, nil)
	require.NoError(t, err)

	_, err = AverageShortestPathLength(g)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidParameter), "got %v", err)
}

func TestClusteringApprox(t *testing.T) {
	cases := []struct {
		name string
		n, k int
		beta float64
		want float64
	}{
		{"lattice k=4", 20, 4, 0, 3.0 * 2 / (4.0 * 3)},
		{"lattice k=6", 100, 6, 0, 3.0 * 4 / (4.0 * 5)},
		{"lattice k=2", 20, 2, 0, 0},
		{"random", 20, 4, 1, 4.0 / 20.0},
		{"random other n", 1000, 10, 1, 10.0 / 1000.0},
		{"small world", 20, 4, 0.2, 0.5 * 0.8 * 0.8 * 0.8},
		{"small world half", 20, 4, 0.5, 0.5 * 0.125},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, ClusteringApprox(c.n, c.k, c.beta), 1e-12)
		})
	}
}

func TestClusteringApproxExactBranches(t *testing.T) {
	for _, c := range []struct{ n, k int }{{20, 4}, {50, 8}, {7, 2}} {
		assert.Equal(t, float64(c.k)/float64(c.n), ClusteringApprox(c.n, c.k, 1))
		assert.Equal(t, float64(3*(c.k-2))/float64(4*(c.k-1)), ClusteringApprox(c.n, c.k, 0))
	}
}

func TestClusteringApproxGrouping(t *testing.T) {
	// The divisor is the whole product 4(k−1). A left-to-right reading,
	// (3(k−2)/4)·(k−1), grows without bound in k; the lattice value must
	// stay below 3/4.
	for k := 2; k <= 200; k += 2 {
		c := ClusteringApprox(1000, k, 0)
		assert.GreaterOrEqual(t, c, 0.0)
		assert.Less(t, c, 0.75, "k=%d", k)
	}
}

func TestClusteringApproxIgnoresGraph(t *testing.T) {
	// The approximation depends only on parameters, never on a seed.
	a := ClusteringApprox(20, 4, 0.4)
	b := ClusteringApprox(20, 4, 0.4)
	assert.Equal(t, a, b)
	assert.Equal(t, ClusteringApprox(20, 4, 0), LatticeClustering(4))
}

func TestEmpiricalClusteringLattice(t *testing.T) {
	for _, k := range []int{4, 6, 8} {
		g, err := builder.RingLattice(40, k)
		require.NoError(t, err)
		assert.InDelta(t, LatticeClustering(k), EmpiricalClustering(g), 1e-12, "k=%d", k)
	}
}

func TestEmpiricalClusteringSmallGraphs(t *testing.T) {
	triangle, err := graph.New(3, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}})
	require.NoError(t, err)
	assert.Equal(t, 1.0, EmpiricalClustering(triangle))

	star, err := graph.New(4, []graph.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, EmpiricalClustering(star))
}
