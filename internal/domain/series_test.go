package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slimtrack/internal/domain"
)

func series(weights ...float64) []domain.HealthRecord {
	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.Local)
	out := make([]domain.HealthRecord, 0, len(weights))
	for i, w := range weights {
		rec := domain.NewRecordAt(start.AddDate(0, 0, i), w, 1.75, "")
		rec.ID = int64(i + 1)
		out = append(out, rec)
	}
	return out
}

func TestWeightTrend(t *testing.T) {
	assert.Equal(t, 0.0, domain.WeightTrend(nil))
	assert.Equal(t, 0.0, domain.WeightTrend(series(70)))
	assert.Equal(t, -5.0, domain.WeightTrend(series(70, 68, 65)))
	assert.Equal(t, 2.0, domain.WeightTrend(series(70, 90, 72)))
}

func TestLatest(t *testing.T) {
	_, ok := domain.Latest(nil)
	assert.False(t, ok)

	last, ok := domain.Latest(series(70, 68, 65))
	require.True(t, ok)
	assert.Equal(t, 65.0, last.Weight)
}

func TestCategoryCounts_Empty(t *testing.T) {
	counts := domain.CategoryCounts(nil)
	require.Len(t, counts, 4)
	sum := 0
	for _, c := range domain.Categories() {
		assert.Equal(t, 0, counts[c])
		sum += counts[c]
	}
	assert.Equal(t, 0, sum)
}

func TestCategoryCounts_Boundaries(t *testing.T) {
	recs := []domain.HealthRecord{
		{BMI: 18.49}, {BMI: 18.5}, {BMI: 24.99}, {BMI: 25}, {BMI: 30}, {BMI: 41.2}, {BMI: -1},
	}
	counts := domain.CategoryCounts(recs)
	assert.Equal(t, 1, counts[domain.Underweight])
	assert.Equal(t, 2, counts[domain.Normal])
	assert.Equal(t, 1, counts[domain.Overweight])
	assert.Equal(t, 2, counts[domain.Obese])
	_, hasUnknown := counts[domain.Unknown]
	assert.False(t, hasUnknown)
}

func TestSortByDate(t *testing.T) {
	recs := []domain.HealthRecord{
		{ID: 3, Date: "2026-01-02 09:00"},
		{ID: 2, Date: "2026-01-01 09:00"},
		{ID: 1, Date: "2026-01-02 09:00"},
	}
	domain.SortByDate(recs)
	assert.Equal(t, []int64{2, 1, 3}, []int64{recs[0].ID, recs[1].ID, recs[2].ID})
}

func TestNewTable(t *testing.T) {
	tbl, err := domain.NewTable(series(70, 68))
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, time.Date(2026, 1, 2, 8, 0, 0, 0, time.Local), tbl.Rows[1].Date)
	assert.Equal(t, 68.0, tbl.Rows[1].Weight)

	empty, err := domain.NewTable(nil)
	require.NoError(t, err)
	assert.True(t, empty.Empty())

	_, err = domain.NewTable([]domain.HealthRecord{{Date: "yesterday"}})
	assert.Error(t, err)
}
