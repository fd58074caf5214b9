package app

import (
	"context"
	"errors"
	"strings"

	"slimtrack/internal/domain"
)

var (
	// ErrSaveFailed is returned when the store could not persist a new record.
	ErrSaveFailed = errors.New("failed to save record")
	// ErrRecordNotFound is returned when no record was removed for an id.
	ErrRecordNotFound = errors.New("record not found")
)

// RecordService encapsulates the record entry use cases: add from raw input,
// list and delete. Listeners registered with OnChange run after every
// successful add or delete.
type RecordService struct {
	store     *RecordStore
	bounds    domain.Bounds
	listeners []func()
}

// NewRecordService creates a RecordService over store validating with bounds.
func NewRecordService(store *RecordStore, bounds domain.Bounds) *RecordService {
	return &RecordService{store: store, bounds: bounds}
}

// OnChange registers fn to run after the stored data changes.
func (s *RecordService) OnChange(fn func()) {
	s.listeners = append(s.listeners, fn)
}

// Add validates the raw weight and height text, stamps a new record with the
// current time and stores it.
func (s *RecordService) Add(ctx context.Context, rawWeight, rawHeight, notes string) (*domain.HealthRecord, error) {
	okW, weight := s.bounds.Weight(rawWeight)
	okH, height := s.bounds.Height(rawHeight)
	if !okW || !okH {
		return nil, s.bounds.InputError()
	}

	rec := domain.NewRecord(weight, height, strings.TrimSpace(notes))
	if !s.store.Save(ctx, &rec) {
		return nil, ErrSaveFailed
	}
	s.notify()
	return &rec, nil
}

// List returns all records ordered by date.
func (s *RecordService) List(ctx context.Context) []domain.HealthRecord {
	return s.store.ListAll(ctx)
}

// Table returns all records with parsed dates.
func (s *RecordService) Table(ctx context.Context) domain.Table {
	return s.store.AsTable(ctx)
}

// Delete removes the record with id.
func (s *RecordService) Delete(ctx context.Context, id int64) error {
	if !s.store.Delete(ctx, id) {
		return ErrRecordNotFound
	}
	s.notify()
	return nil
}

func (s *RecordService) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}
