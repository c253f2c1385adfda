// Package config provides configuration loading and validation for the application.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Env                   string
	Port                  string
	LogLevel              string
	APIKey                string // optional; empty disables the API-key check
	DefaultSolverTimeLimit time.Duration
	MaxSolverTimeLimit     time.Duration
}

// Load reads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		Env:                    getEnv("ENV", "development"),
		Port:                   getEnv("PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "debug"),
		APIKey:                 getEnv("API_KEY", ""),
		DefaultSolverTimeLimit: parseDuration(getEnv("SOLVER_DEFAULT_TIME_LIMIT", "300s")),
		MaxSolverTimeLimit:     parseDuration(getEnv("SOLVER_MAX_TIME_LIMIT", "900s")),
	}

	if cfg.Env == "production" && cfg.APIKey == "" {
		log.Warn().Msg("API_KEY not set in production; the HTTP surface will accept unauthenticated requests")
	}

	return cfg
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DefaultSolverTimeLimitSeconds returns the configured default solver
// time limit truncated to whole seconds, for request defaulting.
func (c *Config) DefaultSolverTimeLimitSeconds() int {
	return int(c.DefaultSolverTimeLimit / time.Second)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseDuration(s string) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Warn().Str("value", s).Msg("invalid duration, using default 300s")
	return 300 * time.Second
}
