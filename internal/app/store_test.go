package app_test

import (
	"context"
	"errors"
	"testing"

	"slimtrack/internal/app"
	"slimtrack/internal/domain"
)

func TestRecordStore_Faults(t *testing.T) {
	boom := errors.New("disk gone")
	repo := &mockRecordRepo{
		initFn:   func(context.Context) error { return boom },
		saveFn:   func(context.Context, *domain.HealthRecord) (int64, error) { return 0, boom },
		listFn:   func(context.Context) ([]domain.HealthRecord, error) { return nil, boom },
		deleteFn: func(context.Context, int64) (bool, error) { return true, boom },
	}
	store := app.NewRecordStore(repo, nil)
	ctx := context.Background()

	if err := store.Init(ctx); !errors.Is(err, boom) {
		t.Errorf("Init: expected fault, got %v", err)
	}
	rec := domain.NewRecord(70, 1.75, "")
	if store.Save(ctx, &rec) {
		t.Error("Save: expected false")
	}
	if rec.ID != 0 {
		t.Errorf("Save: id should stay unset, got %d", rec.ID)
	}
	if got := store.ListAll(ctx); got == nil || len(got) != 0 {
		t.Errorf("ListAll: expected empty slice, got %#v", got)
	}
	if store.Delete(ctx, 1) {
		t.Error("Delete: expected false")
	}
	if !store.AsTable(ctx).Empty() {
		t.Error("AsTable: expected empty")
	}
	if store.Count(ctx) != 0 {
		t.Error("Count: expected 0")
	}
}

func TestRecordStore_SaveRefusesPersisted(t *testing.T) {
	calls := 0
	repo := &mockRecordRepo{
		saveFn: func(context.Context, *domain.HealthRecord) (int64, error) {
			calls++
			return 2, nil
		},
	}
	store := app.NewRecordStore(repo, nil)
	rec := domain.NewRecord(70, 1.75, "")
	rec.ID = 5
	if store.Save(context.Background(), &rec) {
		t.Fatal("expected refusal")
	}
	if calls != 0 || rec.ID != 5 {
		t.Errorf("persisted record reached repo (calls=%d id=%d)", calls, rec.ID)
	}
}

func TestRecordStore_AsTable(t *testing.T) {
	repo := &mockRecordRepo{
		listFn: func(context.Context) ([]domain.HealthRecord, error) {
			return []domain.HealthRecord{
				{ID: 1, Date: "2026-03-01 09:30", Weight: 70, Height: 1.75, BMI: 22.86},
				{ID: 2, Date: "2026-03-02 09:30", Weight: 69, Height: 1.75, BMI: 22.53, Notes: "x"},
			}, nil
		},
	}
	table := app.NewRecordStore(repo, nil).AsTable(context.Background())
	if table.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.Len())
	}
	d := table.Rows[1].Date
	if d.Year() != 2026 || d.Month() != 3 || d.Day() != 2 || d.Hour() != 9 || d.Minute() != 30 {
		t.Errorf("unexpected parsed date %v", d)
	}
	if table.Rows[1].Notes != "x" {
		t.Errorf("expected notes carried, got %q", table.Rows[1].Notes)
	}
}

func TestRecordStore_AsTableBadDate(t *testing.T) {
	repo := &mockRecordRepo{
		listFn: func(context.Context) ([]domain.HealthRecord, error) {
			return []domain.HealthRecord{
				{ID: 1, Date: "2026-03-01 09:30", Weight: 70, Height: 1.75, BMI: 22.86},
				{ID: 2, Date: "yesterday", Weight: 69, Height: 1.75, BMI: 22.53},
			}, nil
		},
	}
	table := app.NewRecordStore(repo, nil).AsTable(context.Background())
	if !table.Empty() {
		t.Errorf("expected empty table, got %d rows", table.Len())
	}
}
