// Package experiment runs Watts-Strogatz experiments: for each requested
// rewiring probability it builds a graph, measures it, and classifies it.
//
// # Usage
//
//	runner := experiment.NewRunner(nil, nil, logger)
//	seed := uint64(42)
//	res, err := runner.Run(ctx, experiment.Params{
//	    N:     20,
//	    K:     4,
//	    Betas: []float64{0, 0.2, 0.4, 1},
//	    Seed:  &seed,
//	})
//	for _, e := range res.Entries {
//	    fmt.Println(e.Beta, e.Metrics.AvgPathLength, e.Metrics.Category)
//	}
//
// # Randomness
//
// Sequential runs draw every beta from one source seeded with the run seed,
// consumed in beta order. With Parallel > 1 each beta gets its own stream,
// [rng.Derive](seed, index), so results do not depend on scheduling. The two
// modes produce different graphs for the same seed; each is reproducible on
// its own.
//
// # Errors
//
// All parameters are validated before any graph is built. A per-beta failure
// (a disconnected graph, for example) aborts [Runner.Run]; [Runner.RunEach]
// reports it to the callback and lets the caller decide.
//
// # Caching
//
// Entries are cached only when the seed is explicit, since an unseeded run
// can never be asked for again.
package experiment
