// Package config loads server settings from FIGHT_TRACKER_* environment
// variables
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/fight-tracker/internal/errors"
)

// Config holds everything the server needs to wire its dependencies
type Config struct {
	GRPCPort int `env:"FIGHT_TRACKER_GRPC_PORT" envDefault:"50051"`
	HTTPPort int `env:"FIGHT_TRACKER_HTTP_PORT" envDefault:"8080"`

	SQLitePath     string   `env:"FIGHT_TRACKER_SQLITE_PATH" envDefault:"fight-tracker.db"`
	RedisEndpoints []string `env:"FIGHT_TRACKER_REDIS_ENDPOINTS" envDefault:"localhost:6379" envSeparator:","`
	RedisTLS       bool     `env:"FIGHT_TRACKER_REDIS_TLS"`

	LogLevel string `env:"FIGHT_TRACKER_LOG_LEVEL" envDefault:"info"`
	// OTLPEndpoint is an OTLP/HTTP traces URL; empty disables export
	OTLPEndpoint string `env:"FIGHT_TRACKER_OTLP_ENDPOINT"`

	BestiaryEnabled  bool          `env:"FIGHT_TRACKER_BESTIARY_ENABLED" envDefault:"true"`
	BestiaryBaseURL  string        `env:"FIGHT_TRACKER_BESTIARY_BASE_URL"`
	BestiaryCacheTTL time.Duration `env:"FIGHT_TRACKER_BESTIARY_CACHE_TTL" envDefault:"24h"`

	RosterDebounce  time.Duration `env:"FIGHT_TRACKER_ROSTER_DEBOUNCE" envDefault:"100ms"`
	ShutdownTimeout time.Duration `env:"FIGHT_TRACKER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and required values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	// 0 disables the websocket feed
	errors.ValidateRange("HTTPPort", c.HTTPPort, 0, 65535, vb)
	errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	if len(c.RedisEndpoints) == 0 {
		vb.RequiredField("RedisEndpoints")
	}
	if c.RosterDebounce < 0 {
		vb.Field("RosterDebounce", "must not be negative")
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.Field("LogLevel", "must be one of debug, info, warn, error")
	}
	return vb.Build()
}

// SlogLevel returns the configured log level, falling back to info
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
