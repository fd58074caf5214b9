// Package memory implements an in-memory record repository for development and testing.
package memory

import (
	"context"
	"sync"

	"slimtrack/internal/domain"
)

// DB implements an in-memory record store.
type DB struct {
	mu        sync.Mutex
	records   []domain.HealthRecord
	idCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.RecordRepository = (*DB)(nil)

// Init is a no-op; the store has no schema.
func (db *DB) Init(ctx context.Context) error {
	return nil
}

// Save appends a copy of rec under the next id.
func (db *DB) Save(ctx context.Context, rec *domain.HealthRecord) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.idCounter++
	rec.ID = db.idCounter
	db.records = append(db.records, *rec)
	return rec.ID, nil
}

// ListAll returns a copy of all records ordered by date, then id.
func (db *DB) ListAll(ctx context.Context) ([]domain.HealthRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.HealthRecord, len(db.records))
	copy(result, db.records)
	domain.SortByDate(result)
	return result, nil
}

// Delete removes the record with id.
func (db *DB) Delete(ctx context.Context, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, r := range db.records {
		if r.ID == id {
			db.records = append(db.records[:i], db.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
