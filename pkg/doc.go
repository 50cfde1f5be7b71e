// Package pkg holds the libraries behind the smallworld CLI.
//
// # Overview
//
// smallworld reproduces the Watts-Strogatz experiment: start from a ring
// lattice, rewire each edge with probability beta, and watch the average
// shortest path length collapse long before the clustering coefficient does.
// The packages split that experiment into small, independently usable pieces:
//
//  1. [rng] - Seedable random sources, one per generation stream
//  2. [graph] - Immutable undirected graph and its JSON format
//  3. [builder] - Ring lattice and Watts-Strogatz generators
//  4. [metrics] - Average shortest path length and clustering
//  5. [regime] - Regular / small-world / random classification by beta
//  6. [experiment] - Runs a beta sweep with caching and optional parallelism
//  7. [report] and [render/circular] - Tables, JSON and circular drawings
//
// # Architecture
//
//	experiment.Params (n, k, betas, seed)
//	         ↓
//	    [builder] WattsStrogatz per beta, fed by [rng]
//	         ↓
//	    [metrics] + [regime]
//	         ↓
//	    experiment.Result ──→ [report] table / JSON
//	                      └─→ [render/circular] PNG / SVG / DOT
//
// Supporting packages: [cache] (file, Redis and null result caches),
// [config] (TOML/YAML experiment files), [errors] (coded errors),
// [observability] (build, metrics and render hooks) and [buildinfo].
//
// # Quick Start
//
//	seed := uint64(42)
//	runner := experiment.NewRunner(nil, nil, nil)
//	res, err := runner.Run(ctx, experiment.Params{
//	    N: 20, K: 4, Betas: []float64{0, 0.2, 0.4, 1}, Seed: &seed,
//	})
//	if err != nil {
//	    return err
//	}
//	report.WriteTable(os.Stdout, res)
//
// [rng]: github.com/matzehuels/smallworld/pkg/rng
// [graph]: github.com/matzehuels/smallworld/pkg/graph
// [builder]: github.com/matzehuels/smallworld/pkg/builder
// [metrics]: github.com/matzehuels/smallworld/pkg/metrics
// [regime]: github.com/matzehuels/smallworld/pkg/regime
// [experiment]: github.com/matzehuels/smallworld/pkg/experiment
// [report]: github.com/matzehuels/smallworld/pkg/report
// [render/circular]: github.com/matzehuels/smallworld/pkg/render/circular
// [cache]: github.com/matzehuels/smallworld/pkg/cache
// [config]: github.com/matzehuels/smallworld/pkg/config
// [errors]: github.com/matzehuels/smallworld/pkg/errors
// [observability]: github.com/matzehuels/smallworld/pkg/observability
// [buildinfo]: github.com/matzehuels/smallworld/pkg/buildinfo
package pkg
