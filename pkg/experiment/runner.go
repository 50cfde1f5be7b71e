package experiment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/smallworld/pkg/builder"
	"github.com/matzehuels/smallworld/pkg/cache"
	"github.com/matzehuels/smallworld/pkg/observability"
	"github.com/matzehuels/smallworld/pkg/rng"
)

// Runner executes experiments with optional caching.
//
// The Runner holds no per-run state, so one Runner can serve several
// goroutines with different parameters.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL of cached entries. Zero uses [cache.TTLEntry].
	TTL time.Duration
}

// NewRunner creates a runner.
// A nil cache disables caching, a nil keyer uses [cache.DefaultKeyer] and a
// nil logger uses the charmbracelet default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// EntryFunc receives the outcome of one beta: e is set on success, err on
// failure. Returning a non-nil error stops the run.
//
// In parallel mode calls may arrive in any order, but never concurrently.
type EntryFunc func(idx int, e *Entry, err error) error

// Run generates every beta and stops at the first failure. The error names
// the beta that failed.
func (r *Runner) Run(ctx context.Context, p Params) (*Result, error) {
	return r.RunEach(ctx, p, func(_ int, _ *Entry, err error) error { return err })
}

// RunEach generates every beta and reports each outcome to fn. Per-beta
// errors are wrapped with the beta value. If fn returns nil for a failure the
// run continues and the beta is left out of [Result.Entries]. A nil fn skips
// failures silently.
//
// Invalid parameters are returned before any graph is built.
func (r *Runner) RunEach(ctx context.Context, p Params, fn EntryFunc) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	start := time.Now()
	seed, explicit := p.resolveSeed()
	res := &Result{
		RunID:  uuid.NewString(),
		Params: p,
		Seed:   seed,
	}
	r.Logger.Info("starting experiment",
		"run", res.RunID,
		"n", p.N,
		"k", p.K,
		"betas", len(p.Betas),
		"seed", seed,
		"parallel", p.Parallel)

	run := &run{
		runner:   r,
		params:   p,
		seed:     seed,
		explicit: explicit,
		result:   res,
		slots:    make([]*Entry, len(p.Betas)),
		fn:       fn,
	}

	var err error
	if p.parallel() {
		err = run.parallel(ctx)
	} else {
		err = run.sequential(ctx)
	}
	if err != nil {
		return nil, err
	}

	for _, e := range run.slots {
		if e != nil {
			res.Entries = append(res.Entries, *e)
		}
	}
	res.Stats.Duration = time.Since(start)

	r.Logger.Info("experiment complete",
		"run", res.RunID,
		"entries", len(res.Entries),
		"cache_hits", res.Stats.CacheHits,
		"failed", res.Stats.Failed,
		"duration", res.Stats.Duration)
	return res, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (p Params) resolveSeed() (uint64, bool) {
	if p.Seed != nil {
		return *p.Seed, true
	}
	return rng.RandomSeed(), false
}

// run is the state of one RunEach call.
type run struct {
	runner   *Runner
	params   Params
	seed     uint64
	explicit bool
	result   *Result
	slots    []*Entry
	fn       EntryFunc

	mu sync.Mutex
}

// sequential consumes one source in beta order. A cache hit is only usable
// when every beta hits, since skipping a generation would shift the stream
// for the betas after it.
func (x *run) sequential(ctx context.Context) error {
	p := x.params
	keys := make([]string, len(p.Betas))
	for i := range p.Betas {
		keys[i] = x.runner.entryKey(p, x.seed, i)
	}

	if x.explicit {
		if cached, ok := x.loadAll(ctx, keys); ok {
			for i, e := range cached {
				if err := x.report(i, e, nil); err != nil {
					return err
				}
			}
			return nil
		}
	}

	src := rng.New(x.seed)
	for i, beta := range p.Betas {
		if err := ctx.Err(); err != nil {
			return err
		}
		e, err := x.runner.generate(ctx, p, i, beta, src)
		if err == nil && x.explicit {
			x.runner.store(ctx, keys[i], e)
		}
		if err := x.report(i, e, err); err != nil {
			return err
		}
	}
	return nil
}

func (x *run) loadAll(ctx context.Context, keys []string) ([]*Entry, bool) {
	out := make([]*Entry, len(keys))
	for i, key := range keys {
		e, ok := x.runner.load(ctx, key)
		if !ok {
			return nil, false
		}
		out[i] = e
	}
	return out, true
}

// parallel gives every beta its own derived stream and lets up to
// params.Parallel of them run at once.
func (x *run) parallel(ctx context.Context) error {
	p := x.params
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Parallel)

	for i, beta := range p.Betas {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			key := x.runner.entryKey(p, x.seed, i)
			if x.explicit {
				if e, ok := x.runner.load(gctx, key); ok {
					return x.report(i, e, nil)
				}
			}
			e, err := x.runner.generate(gctx, p, i, beta, rng.Derive(x.seed, uint64(i)))
			if err == nil && x.explicit {
				x.runner.store(gctx, key, e)
			}
			return x.report(i, e, err)
		})
	}
	return g.Wait()
}

// report records an outcome and forwards it to the callback.
func (x *run) report(idx int, e *Entry, err error) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if err != nil {
		err = fmt.Errorf("beta %v: %w", x.params.Betas[idx], err)
		x.result.Stats.Failed++
		x.runner.Logger.Debug("beta failed", "index", idx, "error", err)
	} else {
		x.slots[idx] = e
		if e.Cached {
			x.result.Stats.CacheHits++
		}
		x.result.Stats.BuildTime += e.BuildTime
		x.result.Stats.MetricsTime += e.MetricsTime
	}
	if x.fn == nil {
		return nil
	}
	return x.fn(idx, e, err)
}

// generate builds and measures the graph for one beta.
func (r *Runner) generate(ctx context.Context, p Params, idx int, beta float64, src rng.Source) (*Entry, error) {
	hooks := observability.Experiment()

	hooks.OnBuildStart(ctx, p.N, p.K, beta)
	buildStart := time.Now()
	g, err := builder.WattsStrogatz(p.N, p.K, beta, src)
	buildTime := time.Since(buildStart)
	edges := 0
	if g != nil {
		edges = g.EdgeCount()
	}
	hooks.OnBuildComplete(ctx, beta, edges, buildTime, err)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	metricsStart := time.Now()
	m, err := Measure(g, p.K, beta, p.Empirical)
	metricsTime := time.Since(metricsStart)
	hooks.OnMetricsComplete(ctx, beta, metricsTime, err)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}

	r.Logger.Debug("generated graph",
		"beta", beta,
		"edges", edges,
		"avg_path_length", m.AvgPathLength,
		"clustering", m.Clustering,
		"build", buildTime,
		"metrics", metricsTime)

	return &Entry{
		Index:       idx,
		Beta:        beta,
		Graph:       g,
		Metrics:     m,
		BuildTime:   buildTime,
		MetricsTime: metricsTime,
	}, nil
}
