package experiment

import (
	"context"
	"encoding/json"

	"github.com/matzehuels/smallworld/pkg/cache"
	"github.com/matzehuels/smallworld/pkg/graph"
	"github.com/matzehuels/smallworld/pkg/observability"
)

const keyTypeEntry = "entry"

// cachedEntry is the cache wire format of an [Entry].
type cachedEntry struct {
	Index   int            `json:"index"`
	Beta    float64        `json:"beta"`
	Graph   graph.Document `json:"graph"`
	Metrics Metrics        `json:"metrics"`
}

func (r *Runner) entryKey(p Params, seed uint64, idx int) string {
	opts := cache.EntryKeyOpts{
		N:         p.N,
		K:         p.K,
		Beta:      p.Betas[idx],
		Seed:      seed,
		Parallel:  p.parallel(),
		Index:     idx,
		Empirical: p.Empirical,
	}
	if !p.parallel() {
		opts.Preceding = p.Betas[:idx]
	}
	return r.Keyer.EntryKey(opts)
}

// load returns the cached entry for key. Any read or decode failure is a miss.
func (r *Runner) load(ctx context.Context, key string) (*Entry, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeEntry)
		return nil, false
	}

	var ce cachedEntry
	if err := json.Unmarshal(data, &ce); err != nil {
		r.Logger.Debug("discarding undecodable cache entry", "error", err)
		return nil, false
	}
	g, err := graph.FromDocument(ce.Graph)
	if err != nil {
		r.Logger.Debug("discarding invalid cached graph", "error", err)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypeEntry)
	return &Entry{Index: ce.Index, Beta: ce.Beta, Graph: g, Metrics: ce.Metrics, Cached: true}, true
}

// store writes e to the cache. Failures are logged and otherwise ignored.
func (r *Runner) store(ctx context.Context, key string, e *Entry) {
	data, err := json.Marshal(cachedEntry{
		Index:   e.Index,
		Beta:    e.Beta,
		Graph:   graph.ToDocument(e.Graph, nil),
		Metrics: e.Metrics,
	})
	if err != nil {
		r.Logger.Warn("encode cache entry", "error", err)
		return
	}
	ttl := r.TTL
	if ttl == 0 {
		ttl = cache.TTLEntry
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyTypeEntry, len(data))
}
