package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hoard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, int64(defaultCapacity), cfg.Capacity)
	assert.Equal(t, "lru", cfg.EvictionPolicy)
	assert.Equal(t, "aside", cfg.Strategy)
	assert.Equal(t, defaultQueueDepth, cfg.WriteBehindQueueDepth)
	assert.Equal(t, defaultRetryLimit, cfg.WriteRetryLimit)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
capacity: 500
eviction_policy: arc
strategy: write_behind
default_ttl: 30s
write_behind_queue_depth: 64
write_retry_limit: 5
source_timeout: 2s
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(500), cfg.Capacity)
	assert.Equal(t, "arc", cfg.EvictionPolicy)
	assert.Equal(t, "write_behind", cfg.Strategy)
	assert.Equal(t, 30*time.Second, cfg.DefaultTTL)
	assert.Equal(t, 64, cfg.WriteBehindQueueDepth)
	assert.Equal(t, 5, cfg.WriteRetryLimit)
	assert.Equal(t, 2*time.Second, cfg.SourceTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOARD_CAPACITY", "99")
	t.Setenv("HOARD_EVICTION_POLICY", "lfu")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, int64(99), cfg.Capacity)
	assert.Equal(t, "lfu", cfg.EvictionPolicy)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero capacity", "capacity: 0"},
		{"bad policy", "eviction_policy: mru"},
		{"bad strategy", "strategy: write_around"},
		{"negative ttl", "default_ttl: -1s"},
		{"zero queue depth", "write_behind_queue_depth: 0"},
		{"negative retry limit", "write_retry_limit: -1"},
		{"bad log level", "logging:\n  level: loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestOptions_Conversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultTTL = time.Minute
	cfg.SourceTimeout = time.Second
	cfg.RandomSeed = 42

	opts := Options[string, int](cfg)
	assert.NotEmpty(t, opts)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)
	assert.Contains(t, string(data), "Hoard Cache Configuration")
	assert.Contains(t, string(data), "eviction_policy")
}

func TestWriteSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.schema.json")
	require.NoError(t, WriteSchemaFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestWatcher_ReloadOnChange(t *testing.T) {
	path := writeConfig(t, "capacity: 10")

	w, err := NewWatcher(path, zerolog.Nop())
	require.NoError(t, err)
	defer w.Close()

	reloaded := make(chan *Config, 1)
	w.OnChange(func(cfg *Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("capacity: 20"), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, int64(20), cfg.Capacity)
	case <-time.After(5 * time.Second):
		t.Fatal("config reload not observed")
	}
}

func TestWatcher_InvalidEditKeepsPrevious(t *testing.T) {
	path := writeConfig(t, "capacity: 10")

	w, err := NewWatcher(path, zerolog.Nop())
	require.NoError(t, err)
	defer w.Close()

	called := make(chan struct{}, 1)
	w.OnChange(func(*Config) {
		select {
		case called <- struct{}{}:
		default:
		}
	})

	// Invalid config must not reach callbacks.
	require.NoError(t, os.WriteFile(path, []byte("capacity: -5"), 0o644))

	select {
	case <-called:
		t.Fatal("callback fired for invalid config")
	case <-time.After(500 * time.Millisecond):
	}
}
