package app

import (
	"context"
	"math"
	"time"

	"slimtrack/internal/domain"
)

// ChartsService encapsulates chart data retrieval use cases.
type ChartsService struct {
	store       *RecordStore
	categorizer *domain.Categorizer
}

// NewChartsService creates a ChartsService. A nil categorizer uses the default table.
func NewChartsService(store *RecordStore, categorizer *domain.Categorizer) *ChartsService {
	if categorizer == nil {
		categorizer = domain.DefaultCategorizer()
	}
	return &ChartsService{store: store, categorizer: categorizer}
}

// Point is a single dated value in a chart series.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Slice is one category's share of the distribution chart.
type Slice struct {
	Category domain.Category `json:"category"`
	Label    string          `json:"label"`
	Count    int             `json:"count"`
	Percent  float64         `json:"percent"`
}

// WeightSeries returns weight over time. It is empty when there is no data.
func (s *ChartsService) WeightSeries(ctx context.Context) []Point {
	return s.series(ctx, func(r domain.TableRow) float64 { return r.Weight })
}

// BMISeries returns BMI over time. It is empty when there is no data.
func (s *ChartsService) BMISeries(ctx context.Context) []Point {
	return s.series(ctx, func(r domain.TableRow) float64 { return r.BMI })
}

func (s *ChartsService) series(ctx context.Context, value func(domain.TableRow) float64) []Point {
	table := s.store.AsTable(ctx)
	points := make([]Point, 0, table.Len())
	for _, r := range table.Rows {
		points = append(points, Point{Date: r.Date, Value: value(r)})
	}
	return points
}

// Distribution returns the categories with at least one record and their
// share of all categorized records, in category order. It returns nil when
// nothing can be categorized.
func (s *ChartsService) Distribution(ctx context.Context) []Slice {
	counts := s.categorizer.CategoryCounts(s.store.ListAll(ctx))

	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return nil
	}

	var slices []Slice
	for _, c := range domain.Categories() {
		n := counts[c]
		if n == 0 {
			continue
		}
		slices = append(slices, Slice{
			Category: c,
			Label:    c.Title(),
			Count:    n,
			Percent:  math.Round(float64(n)/float64(total)*1000) / 10,
		})
	}
	return slices
}
