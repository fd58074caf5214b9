package domain

import "sort"

// SortByDate orders series by date ascending, then by ID.
func SortByDate(series []HealthRecord) {
	sort.SliceStable(series, func(i, j int) bool {
		if series[i].Date != series[j].Date {
			return series[i].Date < series[j].Date
		}
		return series[i].ID < series[j].ID
	})
}

// WeightTrend returns last minus first weight of a date-ordered series, or 0
// when there are fewer than two records.
func WeightTrend(series []HealthRecord) float64 {
	if len(series) < 2 {
		return 0
	}
	return series[len(series)-1].Weight - series[0].Weight
}

// Latest returns the last record of a date-ordered series.
func Latest(series []HealthRecord) (HealthRecord, bool) {
	if len(series) == 0 {
		return HealthRecord{}, false
	}
	return series[len(series)-1], true
}

// CategoryCounts counts records per category. All four categories are always
// present; records outside every range are not counted.
func (c *Categorizer) CategoryCounts(series []HealthRecord) map[Category]int {
	counts := make(map[Category]int, len(c.ranges))
	for _, cat := range Categories() {
		counts[cat] = 0
	}
	for _, r := range series {
		if cat := c.Categorize(r.BMI); cat != Unknown {
			counts[cat]++
		}
	}
	return counts
}

// CategoryCounts uses the default category table.
func CategoryCounts(series []HealthRecord) map[Category]int {
	return defaultCategorizer.CategoryCounts(series)
}
