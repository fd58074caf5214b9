// Package backend selects and opens the record repository named by the configuration.
package backend

import (
	"fmt"

	"slimtrack/internal/adapter/memory"
	"slimtrack/internal/adapter/postgres"
	"slimtrack/internal/adapter/sqlite"
	"slimtrack/internal/config"
	"slimtrack/internal/domain"
	"slimtrack/internal/log"
)

// Result is an opened repository and the function that releases it.
type Result struct {
	Repo    domain.RecordRepository
	Cleanup func() error
}

// Close runs Cleanup if set.
func (r *Result) Close() error {
	if r == nil || r.Cleanup == nil {
		return nil
	}
	return r.Cleanup()
}

// Factory opens repositories.
type Factory struct {
	logger *log.Logger
}

// NewFactory creates a Factory. A nil logger discards output.
func NewFactory(logger *log.Logger) *Factory {
	if logger == nil {
		logger = log.Discard()
	}
	return &Factory{logger: logger.WithComponent(log.ComponentBackend)}
}

// Open opens the repository for cfg.Backend. The schema is not initialised.
func (f *Factory) Open(cfg *config.Config) (*Result, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return f.openSQLite(cfg)
	case config.BackendPostgres:
		return f.openPostgres(cfg)
	case config.BackendMemory:
		f.logger.Debug("initialized memory backend", log.FieldBackend, cfg.Backend)
		return &Result{Repo: memory.New()}, nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %q", cfg.Backend)
	}
}

func (f *Factory) openSQLite(cfg *config.Config) (*Result, error) {
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	f.logger.Debug("initialized sqlite backend", log.FieldBackend, cfg.Backend, "db_path", cfg.DBPath)
	return &Result{Repo: db, Cleanup: db.Close}, nil
}

func (f *Factory) openPostgres(cfg *config.Config) (*Result, error) {
	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres store: %w", err)
	}
	f.logger.Debug("initialized postgres backend", log.FieldBackend, cfg.Backend)
	return &Result{Repo: db, Cleanup: db.Close}, nil
}
