package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/smallworld/pkg/cache"
	"github.com/matzehuels/smallworld/pkg/config"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", "smallworld")
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != filepath.Join(xdg, "smallworld") {
		t.Errorf("cacheDir() = %q, want it under %q", dir, xdg)
	}
}

func TestCachePathCommand(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	var out bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"cache", "path"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("cache path: %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != filepath.Join(xdg, "smallworld") {
		t.Errorf("cache path printed %q", got)
	}
}

func TestCacheClearCommand(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	fc, err := cache.NewFileCache(filepath.Join(xdg, "smallworld"))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, key := range []string{"a", "b"} {
		if err := fc.Set(ctx, key, []byte("x"), 0); err != nil {
			t.Fatal(err)
		}
	}

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.ExecuteContext(ctx); err != nil {
		t.Fatalf("cache clear: %v", err)
	}

	if _, ok, _ := fc.Get(ctx, "a"); ok {
		t.Error("entry a should be gone after clear")
	}
}

func TestOpenCacheFallsBack(t *testing.T) {
	c := New(io.Discard, LogInfo)
	ctx := context.Background()

	if _, ok := c.openCache(ctx, config.Default().Cache, true).(*cache.NullCache); !ok {
		t.Error("--no-cache should yield a NullCache")
	}

	unreachable := config.CacheConfig{Backend: config.BackendRedis, RedisAddr: "127.0.0.1:1"}
	if _, ok := c.openCache(ctx, unreachable, false).(*cache.NullCache); !ok {
		t.Error("an unreachable redis should fall back to a NullCache")
	}
}
