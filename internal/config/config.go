// Package config loads server settings from the environment
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Session stores
const (
	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

// Config holds every setting the server reads at startup
type Config struct {
	GRPCPort int `env:"DUNGEON_GRPC_PORT" envDefault:"50051"`

	// SessionStore is "redis" or "memory"
	SessionStore string `env:"DUNGEON_SESSION_STORE" envDefault:"redis"`

	// RedisAddrs is one address for a single instance or several for a cluster
	RedisAddrs []string      `env:"DUNGEON_REDIS_ADDR"   envDefault:"localhost:6379" envSeparator:","`
	RedisTLS   bool          `env:"DUNGEON_REDIS_TLS"`
	SessionTTL time.Duration `env:"DUNGEON_SESSION_TTL"  envDefault:"24h"`

	SQLitePath string `env:"DUNGEON_SQLITE_PATH" envDefault:"dungeon.db"`

	// Seed makes every roll reproducible when non-zero
	Seed uint64 `env:"DUNGEON_SEED"`

	LogLevel string `env:"DUNGEON_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.InvalidArgumentf("parse env: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Field("GRPCPort", "must be between 1 and 65535")
	}
	switch c.SessionStore {
	case SessionStoreRedis:
		if len(c.RedisAddrs) == 0 {
			vb.RequiredField("RedisAddrs")
		}
		for _, addr := range c.RedisAddrs {
			if addr == "" {
				vb.Field("RedisAddrs", "must not contain empty addresses")
				break
			}
		}
	case SessionStoreMemory:
	default:
		vb.Field("SessionStore", "must be redis or memory")
	}
	if c.SessionTTL <= 0 {
		vb.Field("SessionTTL", "must be positive")
	}
	errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		vb.Field("LogLevel", "must be one of debug, info, warn, error")
	}

	return vb.Build()
}
