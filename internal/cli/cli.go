// Package cli implements the smallworld command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/smallworld/pkg/cache"
	"github.com/matzehuels/smallworld/pkg/config"
	"github.com/matzehuels/smallworld/pkg/experiment"
)

// appName is the application name used for directories and display.
const appName = "smallworld"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// newRunner creates an experiment runner backed by the configured cache.
// noCache or an unreachable backend falls back to no caching.
func (c *CLI) newRunner(ctx context.Context, cfg config.CacheConfig, noCache bool) *experiment.Runner {
	store := c.openCache(ctx, cfg, noCache)
	r := experiment.NewRunner(store, cache.NewScopedKeyer(nil, appName+":"), c.Logger)
	if ttl, err := cfg.TTLDuration(); err == nil {
		r.TTL = ttl
	}
	return r
}

func (c *CLI) openCache(ctx context.Context, cfg config.CacheConfig, noCache bool) cache.Cache {
	if noCache || cfg.Backend == config.BackendNone {
		return cache.NewNullCache()
	}
	dir, _ := cacheDir()
	if dir == "" && cfg.Dir == "" && cfg.Backend != config.BackendRedis {
		return cache.NewNullCache()
	}
	store, err := cfg.Open(ctx, dir)
	if err != nil {
		c.Logger.Warn("cache unavailable, continuing without it", "backend", cfg.Backend, "error", err)
		return cache.NewNullCache()
	}
	return store
}

// cacheDir returns the cache directory using XDG standard (~/.cache/smallworld/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats splits a comma-separated format list. Empty input yields nil.
func parseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(strings.ToLower(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}
