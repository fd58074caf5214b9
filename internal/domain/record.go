// Package domain contains the core health-tracking entities, rules and ports.
package domain

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

// DateLayout is the layout of HealthRecord.Date (YYYY-MM-DD HH:MM, local time).
const DateLayout = "2006-01-02 15:04"

// ErrAlreadyPersisted is returned when a record that already has an ID is saved again.
var ErrAlreadyPersisted = errors.New("record already persisted")

// HealthRecord represents a single weight/height measurement and its derived BMI.
type HealthRecord struct {
	ID     int64   `json:"id"`
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	BMI    float64 `json:"bmi"`
	Notes  string  `json:"notes"`
}

// NewRecord builds an unsaved record stamped with the current local time.
func NewRecord(weight, height float64, notes string) HealthRecord {
	return NewRecordAt(time.Now(), weight, height, notes)
}

// NewRecordAt builds an unsaved record stamped with t.
func NewRecordAt(t time.Time, weight, height float64, notes string) HealthRecord {
	return HealthRecord{
		Date:   t.In(time.Local).Format(DateLayout),
		Weight: weight,
		Height: height,
		BMI:    CalculateBMI(weight, height),
		Notes:  notes,
	}
}

// CalculateBMI returns weight / height² rounded half away from zero to two
// decimal places. Height must be validated first; a non-positive height panics.
func CalculateBMI(weight, height float64) float64 {
	if height <= 0 {
		panic(fmt.Sprintf("domain: CalculateBMI called with height %v", height))
	}
	return math.Round(weight/(height*height)*100) / 100
}

// Persisted reports whether the record has been assigned an ID by a store.
func (r HealthRecord) Persisted() bool {
	return r.ID > 0
}

// Time parses Date in the local time zone.
func (r HealthRecord) Time() (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, r.Date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse record date %q: %w", r.Date, err)
	}
	return t, nil
}

// RecordRepository is the port for record persistence.
type RecordRepository interface {
	// Init creates the backing schema if needed. It must be safe to call on
	// every start and must never drop existing rows.
	Init(ctx context.Context) error
	// Save inserts rec, assigns the new ID to rec.ID and returns it.
	Save(ctx context.Context, rec *HealthRecord) (int64, error)
	// ListAll returns every record ordered by date, then ID.
	ListAll(ctx context.Context) ([]HealthRecord, error)
	// Delete removes the record with id and reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
