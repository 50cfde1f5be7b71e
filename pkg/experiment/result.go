package experiment

import (
	"time"

	"github.com/matzehuels/smallworld/pkg/graph"
	"github.com/matzehuels/smallworld/pkg/metrics"
	"github.com/matzehuels/smallworld/pkg/regime"
)

// Metrics summarizes one generated graph.
type Metrics struct {
	AvgPathLength float64         `json:"avg_path_length"`
	Clustering    float64         `json:"clustering"`
	Category      regime.Category `json:"category"`

	// EmpiricalClustering is the measured average local clustering of the
	// realized graph. Nil unless requested.
	EmpiricalClustering *float64 `json:"empirical_clustering,omitempty"`
}

// Entry is the outcome for one beta.
type Entry struct {
	Index   int          // position in Params.Betas
	Beta    float64
	Graph   *graph.Graph
	Metrics Metrics
	Cached  bool // loaded from cache instead of generated

	BuildTime   time.Duration
	MetricsTime time.Duration
}

// Result contains the outputs of one run.
type Result struct {
	// RunID identifies the run in logs and reports.
	RunID string

	Params Params

	// Seed is the seed actually used, explicit or generated.
	Seed uint64

	// Entries holds one entry per successful beta, in input order.
	Entries []Entry

	Stats Stats
}

// Stats contains run timing and cache information.
type Stats struct {
	Duration    time.Duration
	BuildTime   time.Duration // summed over betas
	MetricsTime time.Duration // summed over betas
	CacheHits   int
	Failed      int
}

// Measure computes the metrics of g, generated with degree k and rewiring
// probability beta.
func Measure(g *graph.Graph, k int, beta float64, empirical bool) (Metrics, error) {
	l, err := metrics.AverageShortestPathLength(g)
	if err != nil {
		return Metrics{}, err
	}
	m := Metrics{
		AvgPathLength: l,
		Clustering:    metrics.ClusteringApprox(g.NodeCount(), k, beta),
		Category:      regime.Classify(beta),
	}
	if empirical {
		c := metrics.EmpiricalClustering(g)
		m.EmpiricalClustering = &c
	}
	return m, nil
}
