// Package config reads the sheet settings from the environment
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
	characterrepo "github.com/KirkDiggler/ryuutama-sheet/internal/repositories/character"
)

// Store backends
const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

// Config holds every setting the command line needs
type Config struct {
	SaveDir     string `env:"RYUUTAMA_SAVE_DIR"`
	Store       string `env:"RYUUTAMA_STORE" envDefault:"file"`
	RedisAddr   string `env:"RYUUTAMA_REDIS_ADDR"`
	LogLevel    string `env:"RYUUTAMA_LOG_LEVEL" envDefault:"info"`
	RecentLimit int    `env:"RYUUTAMA_RECENT_LIMIT" envDefault:"10"`
	PageSize    string `env:"RYUUTAMA_PDF_PAGE_SIZE" envDefault:"Letter"`
}

// Load parses the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if cfg.SaveDir == "" {
		cfg.SaveDir = characterrepo.DefaultDir()
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the parsed values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("RYUUTAMA_SAVE_DIR", c.SaveDir, vb)
	errors.ValidateEnum("RYUUTAMA_STORE", c.Store, []string{StoreFile, StoreRedis}, vb)
	errors.ValidateEnum("RYUUTAMA_LOG_LEVEL", c.LogLevel, []string{"debug", "info", "warn", "error"}, vb)
	if c.Store == StoreRedis {
		errors.ValidateRequired("RYUUTAMA_REDIS_ADDR", c.RedisAddr, vb)
	}
	if c.RecentLimit < 0 {
		vb.Field("RYUUTAMA_RECENT_LIMIT", "cannot be negative")
	}
	return vb.Build()
}

// SlogLevel maps LogLevel to a slog level
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
