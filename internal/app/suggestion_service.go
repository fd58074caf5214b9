package app

import (
	"context"
	"fmt"
	"strings"

	"slimtrack/internal/domain"
)

// NoDataMessage is shown in place of suggestions when nothing is stored.
const NoDataMessage = "No data available. Please enter your health data first."

// Disclaimer closes every suggestion report.
const Disclaimer = "Remember: These are general suggestions. Always consult healthcare professionals for personalized advice."

// Report is the suggestion view computed from the latest record and the
// overall weight trend.
type Report struct {
	HasData     bool            `json:"hasData"`
	BMI         float64         `json:"bmi"`
	Category    domain.Category `json:"category"`
	WeightTrend float64         `json:"weightTrend"`
	Suggestions []string        `json:"suggestions"`
}

// Text renders the report as numbered plain text.
func (r Report) Text() string {
	if !r.HasData {
		return NoDataMessage
	}
	var b strings.Builder
	b.WriteString("=== Health Suggestions ===\n\n")
	fmt.Fprintf(&b, "Current BMI: %.2f\n", r.BMI)
	fmt.Fprintf(&b, "BMI Category: %s\n\n", r.Category.Title())
	for i, s := range r.Suggestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	b.WriteString("\n")
	b.WriteString(Disclaimer)
	return b.String()
}

// SuggestionService builds suggestion reports.
type SuggestionService struct {
	store       *RecordStore
	categorizer *domain.Categorizer
}

// NewSuggestionService creates a SuggestionService. A nil categorizer uses the default table.
func NewSuggestionService(store *RecordStore, categorizer *domain.Categorizer) *SuggestionService {
	if categorizer == nil {
		categorizer = domain.DefaultCategorizer()
	}
	return &SuggestionService{store: store, categorizer: categorizer}
}

// Generate computes the report for the current data.
func (s *SuggestionService) Generate(ctx context.Context) Report {
	series := s.store.ListAll(ctx)
	latest, ok := domain.Latest(series)
	if !ok {
		return Report{Suggestions: []string{}}
	}
	trend := domain.WeightTrend(series)
	return Report{
		HasData:     true,
		BMI:         latest.BMI,
		Category:    s.categorizer.Categorize(latest.BMI),
		WeightTrend: trend,
		Suggestions: s.categorizer.Suggestions(latest.BMI, trend),
	}
}

// Categorize classifies bmi with the service's category table.
func (s *SuggestionService) Categorize(bmi float64) domain.Category {
	return s.categorizer.Categorize(bmi)
}
