// Package config provides default configuration values for hoard.
package config

import "github.com/spf13/viper"

// Default configuration constants
const (
	defaultCapacity   = 1024 // aggregate size cost
	defaultQueueDepth = 256  // write-behind queue slots
	defaultRetryLimit = 3    // write-behind retries per write
)

// DefaultConfig returns the default configuration values for hoard.
func DefaultConfig() *Config {
	return &Config{
		Capacity:              defaultCapacity,
		EvictionPolicy:        "lru",
		Strategy:              "aside",
		WriteBehindQueueDepth: defaultQueueDepth,
		WriteRetryLimit:       defaultRetryLimit,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("capacity", d.Capacity)
	v.SetDefault("eviction_policy", d.EvictionPolicy)
	v.SetDefault("default_ttl", d.DefaultTTL)
	v.SetDefault("strategy", d.Strategy)
	v.SetDefault("write_behind_queue_depth", d.WriteBehindQueueDepth)
	v.SetDefault("write_retry_limit", d.WriteRetryLimit)
	v.SetDefault("source_timeout", d.SourceTimeout)
	v.SetDefault("random_seed", d.RandomSeed)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}
