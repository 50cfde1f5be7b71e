// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries emit events through the registered hooks; applications register
// their own implementations at startup. No-op hooks are installed by default,
// so nothing is recorded unless a consumer opts in.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetExperimentHooks(&myHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run experiments
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Experiment().OnBuildStart(ctx, n, k, beta)
//	// ... build graph ...
//	observability.Experiment().OnBuildComplete(ctx, beta, edges, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// ExperimentHooks receives events from the experiment runner and renderer.
type ExperimentHooks interface {
	// OnBuildStart fires before a graph is generated for beta.
	OnBuildStart(ctx context.Context, n, k int, beta float64)
	// OnBuildComplete fires after generation, with the edge count on success.
	OnBuildComplete(ctx context.Context, beta float64, edges int, duration time.Duration, err error)
	// OnMetricsComplete fires after path length and clustering are computed.
	OnMetricsComplete(ctx context.Context, beta float64, duration time.Duration, err error)
	// OnRenderComplete fires after an image is produced for one beta.
	OnRenderComplete(ctx context.Context, beta float64, format string, size int, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopExperimentHooks is a no-op implementation of ExperimentHooks.
type NoopExperimentHooks struct{}

func (NoopExperimentHooks) OnBuildStart(context.Context, int, int, float64) {}
func (NoopExperimentHooks) OnBuildComplete(context.Context, float64, int, time.Duration, error) {
}
func (NoopExperimentHooks) OnMetricsComplete(context.Context, float64, time.Duration, error) {}
func (NoopExperimentHooks) OnRenderComplete(context.Context, float64, string, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	experimentHooks ExperimentHooks = NoopExperimentHooks{}
	cacheHooks      CacheHooks      = NoopCacheHooks{}
	hooksMu         sync.RWMutex
)

// SetExperimentHooks registers custom experiment hooks. A nil value is ignored.
func SetExperimentHooks(h ExperimentHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		experimentHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. A nil value is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Experiment returns the registered experiment hooks.
func Experiment() ExperimentHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return experimentHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	experimentHooks = NoopExperimentHooks{}
	cacheHooks = NoopCacheHooks{}
}
