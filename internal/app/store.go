package app

import (
	"context"

	"slimtrack/internal/domain"
	"slimtrack/internal/log"
)

// RecordStore is the best-effort boundary over a record repository. Faults
// are logged and reported as false or an empty result; only Init returns them.
type RecordStore struct {
	repo   domain.RecordRepository
	logger *log.Logger
}

// NewRecordStore wraps repo. A nil logger discards output.
func NewRecordStore(repo domain.RecordRepository, logger *log.Logger) *RecordStore {
	if logger == nil {
		logger = log.Discard()
	}
	return &RecordStore{repo: repo, logger: logger.WithComponent(log.ComponentStore)}
}

// Init prepares the backing schema. It is safe to call repeatedly.
func (s *RecordStore) Init(ctx context.Context) error {
	if err := s.repo.Init(ctx); err != nil {
		s.logger.ErrorContext(ctx, "store init failed", log.FieldOperation, log.OpInit, log.FieldError, err)
		return err
	}
	return nil
}

// Save persists rec and sets its ID. Records that already carry an ID are refused.
func (s *RecordStore) Save(ctx context.Context, rec *domain.HealthRecord) bool {
	if rec.Persisted() {
		s.logger.WarnContext(ctx, "refusing to save persisted record",
			log.FieldOperation, log.OpSave, log.FieldRecordID, rec.ID, log.FieldError, domain.ErrAlreadyPersisted)
		return false
	}
	id, err := s.repo.Save(ctx, rec)
	if err != nil {
		rec.ID = 0
		s.logger.ErrorContext(ctx, "save failed", log.FieldOperation, log.OpSave, log.FieldError, err)
		return false
	}
	rec.ID = id
	s.logger.DebugContext(ctx, "record saved", log.FieldOperation, log.OpSave, log.FieldRecordID, id)
	return true
}

// ListAll returns every record ordered by date. It never returns nil.
func (s *RecordStore) ListAll(ctx context.Context) []domain.HealthRecord {
	recs, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list failed", log.FieldOperation, log.OpList, log.FieldError, err)
		return []domain.HealthRecord{}
	}
	if recs == nil {
		return []domain.HealthRecord{}
	}
	return recs
}

// Delete removes the record with id and reports whether exactly one was removed.
func (s *RecordStore) Delete(ctx context.Context, id int64) bool {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete failed", log.FieldOperation, log.OpDelete, log.FieldRecordID, id, log.FieldError, err)
		return false
	}
	return ok
}

// AsTable returns all records with parsed dates, or an empty table on any fault.
func (s *RecordStore) AsTable(ctx context.Context) domain.Table {
	table, err := domain.NewTable(s.ListAll(ctx))
	if err != nil {
		s.logger.ErrorContext(ctx, "table projection failed", log.FieldOperation, log.OpTable, log.FieldError, err)
		return domain.Table{Rows: []domain.TableRow{}}
	}
	return table
}

// Count returns the number of stored records.
func (s *RecordStore) Count(ctx context.Context) int {
	return len(s.ListAll(ctx))
}
