package config_test

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/ryuutama-sheet/internal/config"
	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, config.StoreFile, cfg.Store)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 10, cfg.RecentLimit)
	assert.Equal(t, "Letter", cfg.PageSize)
	assert.Equal(t, "RyuutamaCharacters", filepath.Base(cfg.SaveDir))
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"RYUUTAMA_SAVE_DIR":     "/tmp/sheets",
		"RYUUTAMA_STORE":        "Redis",
		"RYUUTAMA_REDIS_ADDR":   "cache:6380",
		"RYUUTAMA_LOG_LEVEL":    "DEBUG",
		"RYUUTAMA_RECENT_LIMIT": "3",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/sheets", cfg.SaveDir)
	assert.Equal(t, config.StoreRedis, cfg.Store)
	assert.Equal(t, "cache:6380", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RecentLimit)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadRejectsBadValues(t *testing.T) {
	testCases := map[string]map[string]string{
		"unknown store":    {"RYUUTAMA_STORE": "s3"},
		"unknown level":    {"RYUUTAMA_LOG_LEVEL": "loud"},
		"negative limit":   {"RYUUTAMA_RECENT_LIMIT": "-1"},
		"non-numeric":      {"RYUUTAMA_RECENT_LIMIT": "ten"},
		"redis sans addr":  {"RYUUTAMA_STORE": "redis"},
		"redis blank addr": {"RYUUTAMA_STORE": "redis", "RYUUTAMA_REDIS_ADDR": " "},
	}

	for name, environ := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadFrom(environ)
			assert.True(t, errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func TestValidateRedisAddress(t *testing.T) {
	cfg := &config.Config{SaveDir: "/tmp/sheets", Store: config.StoreRedis, LogLevel: "info"}
	assert.True(t, errors.IsInvalidArgument(cfg.Validate()))

	cfg.RedisAddr = "localhost:6379"
	assert.NoError(t, cfg.Validate())

	cfg.Store = config.StoreFile
	cfg.RedisAddr = ""
	assert.NoError(t, cfg.Validate())
}
