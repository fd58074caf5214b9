// Package sqlite implements the record repository on a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"slimtrack/internal/domain"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB wraps a *sql.DB on a SQLite file and implements domain.RecordRepository.
type DB struct {
	sql  *sql.DB
	path string
}

var _ domain.RecordRepository = (*DB)(nil)

// Open opens (creating if needed) the SQLite file at path and pings it.
// The schema is not touched until Init is called.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	s, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	s.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	return &DB{sql: s, path: path}, nil
}

// Close closes the underlying database handle.
func (d *DB) Close() error {
	return d.sql.Close()
}

// Init applies the embedded migrations. Already-applied migrations are a no-op.
func (d *DB) Init(ctx context.Context) error {
	// The migrate driver closes the handle it is given, so it gets its own.
	migrateDB, err := sql.Open("sqlite", d.path)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close() //nolint:errcheck

	if err := migrateDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping migration database: %w", err)
	}

	driver, err := migratesqlite.WithInstance(migrateDB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close() //nolint:errcheck

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Save inserts rec and sets rec.ID to the new row id.
func (d *DB) Save(ctx context.Context, rec *domain.HealthRecord) (int64, error) {
	res, err := d.sql.ExecContext(ctx,
		"INSERT INTO health_data(date, weight, height, bmi, notes) VALUES(?, ?, ?, ?, ?);",
		rec.Date, rec.Weight, rec.Height, rec.BMI, nullString(rec.Notes),
	)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve record id: %w", err)
	}
	rec.ID = id
	return id, nil
}

// ListAll returns every record ordered by date, then id.
func (d *DB) ListAll(ctx context.Context) ([]domain.HealthRecord, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, date, weight, height, bmi, notes FROM health_data ORDER BY date, id;")
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.HealthRecord, 0)
	for rows.Next() {
		var r domain.HealthRecord
		var notes sql.NullString
		if err := rows.Scan(&r.ID, &r.Date, &r.Weight, &r.Height, &r.BMI, &notes); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		r.Notes = notes.String
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return out, nil
}

// Delete removes the record with id and reports whether exactly one row went.
func (d *DB) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM health_data WHERE id = ?;", id)
	if err != nil {
		return false, fmt.Errorf("delete record %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete record %d: %w", id, err)
	}
	return n == 1, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
