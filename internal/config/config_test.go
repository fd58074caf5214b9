package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SLIMTRACK_BACKEND", "SLIMTRACK_DB_PATH", "DATABASE_URL", "ADDR", "LOG_LEVEL", "LOG_FORMAT", "SLIMTRACK_CONFIG"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SLIMTRACK_BACKEND", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/slimtrack?sslmode=disable")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SLIMTRACK_CONFIG", "")
	cfg := Load()
	assert.Equal(t, BackendPostgres, cfg.Backend)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid sqlite",
			config: Config{Backend: BackendSQLite, DBPath: "x.db", LogFormat: "text"},
		},
		{
			name:   "valid memory",
			config: Config{Backend: BackendMemory, LogFormat: "json"},
		},
		{
			name:        "sqlite without path",
			config:      Config{Backend: BackendSQLite, LogFormat: "text"},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name:        "postgres without url",
			config:      Config{Backend: BackendPostgres, LogFormat: "text"},
			wantErr:     true,
			errorString: "DATABASE_URL is required",
		},
		{
			name:        "unknown backend",
			config:      Config{Backend: "sheets", LogFormat: "text"},
			wantErr:     true,
			errorString: "invalid backend 'sheets'",
		},
		{
			name:        "bad log format",
			config:      Config{Backend: BackendMemory, LogFormat: "xml"},
			wantErr:     true,
			errorString: "invalid log format 'xml'",
		},
		{
			name:        "missing rules file",
			config:      Config{Backend: BackendMemory, LogFormat: "text", RulesFile: filepath.Join(os.TempDir(), "does-not-exist.yaml")},
			wantErr:     true,
			errorString: "rules file",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorString)
		})
	}
}
