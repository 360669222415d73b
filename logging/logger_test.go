package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, zerolog.InfoLevel, cfg.Level)
	assert.Equal(t, "console", cfg.Format)
}

func TestNew_RespectsLevel(t *testing.T) {
	log := New(Config{Level: zerolog.WarnLevel, Format: "json"})
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestNewFromEnv_LevelOverride(t *testing.T) {
	t.Setenv("HOARD_LOG_LEVEL", "debug")
	t.Setenv("HOARD_LOG_FORMAT", "json")

	log := NewFromEnv()
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}
