// Package config provides validation utilities for configuration values.
package config

import (
	"fmt"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(cfg *Config) error {
	var validationErrors []string

	if cfg.Capacity <= 0 {
		validationErrors = append(validationErrors, "capacity must be positive")
	}

	switch cfg.EvictionPolicy {
	case "lru", "lfu", "fifo", "random", "arc":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("eviction_policy must be one of: lru, lfu, fifo, random, arc (got: %s)", cfg.EvictionPolicy))
	}

	switch cfg.Strategy {
	case "aside", "read_through", "write_through", "write_behind":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("strategy must be one of: aside, read_through, write_through, write_behind (got: %s)", cfg.Strategy))
	}

	if cfg.DefaultTTL < 0 {
		validationErrors = append(validationErrors, "default_ttl must be non-negative")
	}
	if cfg.SourceTimeout < 0 {
		validationErrors = append(validationErrors, "source_timeout must be non-negative")
	}
	if cfg.WriteBehindQueueDepth <= 0 {
		validationErrors = append(validationErrors, "write_behind_queue_depth must be positive")
	}
	if cfg.WriteRetryLimit < 0 {
		validationErrors = append(validationErrors, "write_retry_limit must be non-negative")
	}

	switch cfg.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", cfg.Logging.Level))
	}
	switch cfg.Logging.Format {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of: console, json (got: %s)", cfg.Logging.Format))
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}
