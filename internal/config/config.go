// Package config reads the generator settings from the environment and sets
// up logging.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"mapper-generator/internal/engine"
)

// Config holds the settings shared by the CLI, HTTP and MCP hosts.
type Config struct {
	Host      string
	Port      int
	LogLevel  string
	LogFile   string
	MaxFields int
	Workers   int
	MaxBodyKB int
}

// Load reads MAPPER_* environment variables, falling back to defaults for
// unset or invalid values.
func Load() Config {
	return Config{
		Host:      getenv("MAPPER_HOST", "127.0.0.1"),
		Port:      envInt("MAPPER_PORT", 8087, 1),
		LogLevel:  strings.ToLower(getenv("MAPPER_LOG_LEVEL", "info")),
		LogFile:   os.Getenv("MAPPER_LOG_FILE"),
		MaxFields: envInt("MAPPER_MAX_FIELDS", 512, 0), // 0 disables the cap
		Workers:   envInt("MAPPER_WORKERS", 4, 1),
		MaxBodyKB: envInt("MAPPER_MAX_BODY_KB", 256, 1),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

// MaxBodyBytes is the request body limit of the HTTP host.
func (c Config) MaxBodyBytes() int64 { return int64(c.MaxBodyKB) * 1024 }

// Engine returns the engine configuration for these settings.
func (c Config) Engine() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Resolution.MaxFields = c.MaxFields
	cfg.Workers = c.Workers

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}

	return def
}

// envInt reads an integer of at least minimum.
func envInt(key string, fallback, minimum int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < minimum {
		log.Warn().Str("key", key).Str("value", v).Int("default", fallback).Msg("invalid int env var, using default")
		return fallback
	}

	return n
}
