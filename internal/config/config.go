// Package config loads process configuration from the environment and the
// optional rules file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Supported storage backends.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// DefaultDBPath is the SQLite file used when none is configured.
const DefaultDBPath = "slimtrack.db"

// Config holds process configuration.
type Config struct {
	// Storage
	Backend     string
	DBPath      string
	DatabaseURL string

	// HTTP
	Addr string

	// Logging
	LogLevel  string
	LogFormat string

	// Optional YAML file with validation bounds and the category table.
	RulesFile string
}

// LoadEnvFile loads a .env file from the working directory if present.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Backend:     strings.ToLower(getEnv("SLIMTRACK_BACKEND", BackendSQLite)),
		DBPath:      getEnv("SLIMTRACK_DB_PATH", DefaultDBPath),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Addr:        getEnv("ADDR", ":8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		RulesFile:   getEnv("SLIMTRACK_CONFIG", ""),
	}
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var problems []string

	switch c.Backend {
	case BackendSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			problems = append(problems, "SQLite database path cannot be empty when using sqlite backend")
		}
	case BackendPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			problems = append(problems, "DATABASE_URL is required when using postgres backend")
		}
	case BackendMemory:
	default:
		problems = append(problems, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend,
			[]string{BackendSQLite, BackendPostgres, BackendMemory}))
	}

	if f := strings.ToLower(c.LogFormat); f != "text" && f != "json" {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if c.RulesFile != "" {
		if _, err := os.Stat(c.RulesFile); err != nil {
			problems = append(problems, fmt.Sprintf("rules file '%s': %v", c.RulesFile, err))
		}
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
