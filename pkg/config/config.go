// Package config loads experiment settings from TOML or YAML files.
//
// A config file mirrors the run command's flags:
//
//	n = 100
//	k = 6
//	betas = [0.0, 0.01, 0.1, 1.0]
//	seed = 42
//	parallel = 4
//
//	output = "out"
//	formats = ["png", "svg"]
//	report = "table"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "24h"
//
// Fields missing from the file keep their [Default] values.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/smallworld/pkg/cache"
	"github.com/matzehuels/smallworld/pkg/errors"
	"github.com/matzehuels/smallworld/pkg/experiment"
	"github.com/matzehuels/smallworld/pkg/render/circular"
	"github.com/matzehuels/smallworld/pkg/report"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config holds every setting of a run.
type Config struct {
	N         int       `toml:"n" yaml:"n"`
	K         int       `toml:"k" yaml:"k"`
	Betas     []float64 `toml:"betas" yaml:"betas"`
	Seed      *uint64   `toml:"seed" yaml:"seed"`
	Parallel  int       `toml:"parallel" yaml:"parallel"`
	Empirical bool      `toml:"empirical" yaml:"empirical"`

	Output    string   `toml:"output" yaml:"output"`
	Formats   []string `toml:"formats" yaml:"formats"`
	Report    string   `toml:"report" yaml:"report"`
	Visualize bool     `toml:"visualize" yaml:"visualize"`

	Cache CacheConfig `toml:"cache" yaml:"cache"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend   string `toml:"backend" yaml:"backend"`
	Dir       string `toml:"dir" yaml:"dir"` // file backend; empty uses the user cache dir
	RedisAddr string `toml:"redis_addr" yaml:"redis_addr"`
	RedisDB   int    `toml:"redis_db" yaml:"redis_db"`
	TTL       string `toml:"ttl" yaml:"ttl"` // Go duration, e.g. "24h"
}

// Default returns the demo configuration: 20 nodes, degree 4 and
// betas 0, 0.2, 0.4 and 1, rendered as PNG into the working directory.
func Default() Config {
	return Config{
		N:         experiment.DefaultN,
		K:         experiment.DefaultK,
		Betas:     append([]float64(nil), experiment.DefaultBetas...),
		Output:    ".",
		Formats:   []string{circular.FormatPNG},
		Report:    report.FormatTable,
		Visualize: true,
		Cache: CacheConfig{
			Backend: BackendFile,
			TTL:     cache.TTLEntry.String(),
		},
	}
}

// Load reads a config file on top of [Default]. The format is chosen by
// extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return cfg, errors.New(errors.ErrCodeInvalidFormat, "unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}
	return cfg, nil
}

// Params converts the experiment settings.
func (c Config) Params() experiment.Params {
	return experiment.Params{
		N:         c.N,
		K:         c.K,
		Betas:     c.Betas,
		Seed:      c.Seed,
		Parallel:  c.Parallel,
		Empirical: c.Empirical,
	}
}

// Validate checks every setting.
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if err := report.ValidateFormat(c.Report); err != nil {
		return err
	}
	if c.Visualize {
		if err := circular.ValidateFormats(c.Formats); err != nil {
			return err
		}
		if err := errors.ValidatePath(c.Output); err != nil {
			return err
		}
	}
	return c.Cache.Validate()
}

// Validate checks the cache settings.
func (c CacheConfig) Validate() error {
	switch c.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if c.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (valid: file, redis, none)", c.Backend)
	}
	if _, err := c.TTLDuration(); err != nil {
		return err
	}
	return nil
}

// TTLDuration parses TTL. An empty TTL means [cache.TTLEntry].
func (c CacheConfig) TTLDuration() (time.Duration, error) {
	if c.TTL == "" {
		return cache.TTLEntry, nil
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil || d < 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "invalid cache.ttl %q", c.TTL)
	}
	return d, nil
}

// Open creates the configured cache. defaultDir is used by the file backend
// when Dir is empty.
func (c CacheConfig) Open(ctx context.Context, defaultDir string) (cache.Cache, error) {
	switch c.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:   c.RedisAddr,
			DB:     c.RedisDB,
			Prefix: "smallworld:",
		})
		if err != nil {
			return nil, err
		}
		return rc, nil
	case BackendFile, "":
		dir := c.Dir
		if dir == "" {
			dir = defaultDir
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, fmt.Errorf("open cache dir %s: %w", dir, err)
		}
		return fc, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Backend)
	}
}
