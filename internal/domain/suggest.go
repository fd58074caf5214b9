package domain

import (
	"fmt"
	"math"
)

var advice = map[Category][]string{
	Underweight: {
		"Increase calorie intake with nutritious foods",
		"Strength training to build muscle mass",
		"Consult a healthcare provider",
	},
	Normal: {
		"Continue balanced diet and exercise",
		"Regular health check-ups",
		"Stay hydrated and manage stress",
	},
	Overweight: {
		"Moderate calorie reduction",
		"Regular cardiovascular exercise",
		"Focus on whole foods and portion control",
	},
	Obese: {
		"Consult healthcare professional",
		"Structured weight loss program",
		"Combination of diet and exercise",
	},
}

// Advice returns a copy of the fixed advisory list for c. Unknown has none.
func Advice(c Category) []string {
	return append([]string(nil), advice[c]...)
}

// TrendMessage describes a weight change in kilograms. Changes within one
// kilogram either way count as stable.
func TrendMessage(weightTrend float64) string {
	switch {
	case weightTrend < -1:
		return fmt.Sprintf("Great progress! You've lost %.1f kg", math.Abs(weightTrend))
	case weightTrend > 1:
		return fmt.Sprintf("Note: You've gained %.1f kg. Review your habits.", weightTrend)
	default:
		return "Your weight is stable. Consider setting new goals."
	}
}

// Suggestions returns the category advice for bmi followed by one trend message.
func (c *Categorizer) Suggestions(bmi, weightTrend float64) []string {
	base := advice[c.Categorize(bmi)]
	out := make([]string, 0, len(base)+1)
	out = append(out, base...)
	return append(out, TrendMessage(weightTrend))
}

// Suggestions uses the default category table.
func Suggestions(bmi, weightTrend float64) []string {
	return defaultCategorizer.Suggestions(bmi, weightTrend)
}
