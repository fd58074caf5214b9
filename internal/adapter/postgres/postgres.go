// Package postgres implements the record repository using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"slimtrack/internal/domain"
)

// DB wraps a *sql.DB and implements domain.RecordRepository.
type DB struct {
	sql *sql.DB
}

var _ domain.RecordRepository = (*DB)(nil)

// Open connects to PostgreSQL and pings. The schema is created by Init.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return &DB{sql: s}, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

// Init creates the health_data table and its date index if missing.
func (d *DB) Init(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS health_data (id BIGSERIAL PRIMARY KEY, date TEXT NOT NULL, weight DOUBLE PRECISION NOT NULL, height DOUBLE PRECISION NOT NULL, bmi DOUBLE PRECISION NOT NULL, notes TEXT);",
		"CREATE INDEX IF NOT EXISTS idx_health_data_date ON health_data(date);",
	}
	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
