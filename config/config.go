// Package config loads hoard cache configuration from files and the
// environment with Viper integration.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/bnema/hoard"
	"github.com/bnema/hoard/policy"
)

// Config is the file/env-facing configuration for one cache instance.
type Config struct {
	// Capacity is the aggregate size cost the cache may hold.
	Capacity int64 `mapstructure:"capacity" yaml:"capacity" json:"capacity"`
	// EvictionPolicy is one of: lru, lfu, fifo, random, arc.
	EvictionPolicy string `mapstructure:"eviction_policy" yaml:"eviction_policy" json:"eviction_policy"`
	// DefaultTTL applies to every entry that does not override it. Zero
	// disables expiry.
	DefaultTTL time.Duration `mapstructure:"default_ttl" yaml:"default_ttl" json:"default_ttl"`
	// Strategy is one of: aside, read_through, write_through, write_behind.
	Strategy string `mapstructure:"strategy" yaml:"strategy" json:"strategy"`
	// WriteBehindQueueDepth bounds the async persist queue.
	WriteBehindQueueDepth int `mapstructure:"write_behind_queue_depth" yaml:"write_behind_queue_depth" json:"write_behind_queue_depth"`
	// WriteRetryLimit bounds write-behind retries per write.
	WriteRetryLimit int `mapstructure:"write_retry_limit" yaml:"write_retry_limit" json:"write_retry_limit"`
	// SourceTimeout bounds each loader/writer call. Zero leaves timing to
	// the caller's context.
	SourceTimeout time.Duration `mapstructure:"source_timeout" yaml:"source_timeout" json:"source_timeout"`
	// RandomSeed seeds the random eviction policy.
	RandomSeed int64 `mapstructure:"random_seed" yaml:"random_seed" json:"random_seed"`

	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" json:"logging"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// Load reads configuration from the given file, layered under HOARD_*
// environment overrides. An empty path loads defaults plus environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("HOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Options converts a validated Config into cache construction options.
// Collaborators (loader, writer) and hooks are code, not configuration, and
// are appended by the caller.
func Options[K comparable, V any](cfg *Config) []hoard.Option[K, V] {
	opts := []hoard.Option[K, V]{
		hoard.WithPolicy[K, V](policy.Kind(cfg.EvictionPolicy)),
		hoard.WithStrategy[K, V](hoard.Strategy(cfg.Strategy)),
		hoard.WithQueueDepth[K, V](cfg.WriteBehindQueueDepth),
		hoard.WithRetryLimit[K, V](cfg.WriteRetryLimit),
	}
	if cfg.DefaultTTL > 0 {
		opts = append(opts, hoard.WithDefaultTTL[K, V](cfg.DefaultTTL))
	}
	if cfg.SourceTimeout > 0 {
		opts = append(opts, hoard.WithSourceTimeout[K, V](cfg.SourceTimeout))
	}
	if cfg.RandomSeed != 0 {
		opts = append(opts, hoard.WithSeed[K, V](cfg.RandomSeed))
	}
	return opts
}
