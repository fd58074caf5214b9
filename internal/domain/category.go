package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Category is a BMI classification.
type Category int

// Categories in ascending BMI order. Unknown is only produced for BMI values
// outside every configured range.
const (
	Unknown Category = iota
	Underweight
	Normal
	Overweight
	Obese
)

var categoryNames = [...]string{"unknown", "underweight", "normal", "overweight", "obese"}

// ErrInvalidRanges indicates a category table that does not partition [0, +inf).
var ErrInvalidRanges = errors.New("invalid category ranges")

// Categories returns the four known categories in ascending BMI order.
func Categories() []Category {
	return []Category{Underweight, Normal, Overweight, Obese}
}

func (c Category) String() string {
	if c < Unknown || int(c) >= len(categoryNames) {
		return categoryNames[Unknown]
	}
	return categoryNames[c]
}

// Title returns the capitalised name, e.g. "Overweight".
func (c Category) Title() string {
	s := c.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseCategory resolves a category name, ignoring case and surrounding space.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if c.String() == name {
			return c, nil
		}
	}
	return Unknown, fmt.Errorf("unknown category %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// CategoryRange is a half-open BMI interval [Min, Max).
type CategoryRange struct {
	Category Category
	Min      float64
	Max      float64
}

// Contains reports whether bmi falls in [Min, Max).
func (r CategoryRange) Contains(bmi float64) bool {
	return r.Min <= bmi && bmi < r.Max
}

// DefaultRanges returns the standard adult BMI table.
func DefaultRanges() []CategoryRange {
	return []CategoryRange{
		{Category: Underweight, Min: 0, Max: 18.5},
		{Category: Normal, Min: 18.5, Max: 25},
		{Category: Overweight, Min: 25, Max: 30},
		{Category: Obese, Min: 30, Max: math.Inf(1)},
	}
}

// Categorizer maps BMI values to categories using an ordered range table.
type Categorizer struct {
	ranges []CategoryRange
}

var defaultCategorizer = &Categorizer{ranges: DefaultRanges()}

// DefaultCategorizer returns a categorizer over DefaultRanges.
func DefaultCategorizer() *Categorizer {
	return defaultCategorizer
}

// NewCategorizer validates ranges and returns a categorizer over a copy of them.
// The table must hold one range per category in ascending order, start at 0,
// be contiguous and end at +inf.
func NewCategorizer(ranges []CategoryRange) (*Categorizer, error) {
	want := Categories()
	if len(ranges) != len(want) {
		return nil, fmt.Errorf("%w: want %d ranges, got %d", ErrInvalidRanges, len(want), len(ranges))
	}
	for i, r := range ranges {
		if r.Category != want[i] {
			return nil, fmt.Errorf("%w: range %d is %s, want %s", ErrInvalidRanges, i, r.Category, want[i])
		}
		if math.IsNaN(r.Min) || math.IsNaN(r.Max) || r.Min >= r.Max {
			return nil, fmt.Errorf("%w: %s has empty interval [%v, %v)", ErrInvalidRanges, r.Category, r.Min, r.Max)
		}
		if i == 0 && r.Min != 0 {
			return nil, fmt.Errorf("%w: %s must start at 0", ErrInvalidRanges, r.Category)
		}
		if i > 0 && ranges[i-1].Max != r.Min {
			return nil, fmt.Errorf("%w: gap or overlap between %s and %s", ErrInvalidRanges, ranges[i-1].Category, r.Category)
		}
	}
	if last := ranges[len(ranges)-1]; !math.IsInf(last.Max, 1) {
		return nil, fmt.Errorf("%w: %s must be unbounded above", ErrInvalidRanges, last.Category)
	}
	out := make([]CategoryRange, len(ranges))
	copy(out, ranges)
	return &Categorizer{ranges: out}, nil
}

// Ranges returns a copy of the range table.
func (c *Categorizer) Ranges() []CategoryRange {
	out := make([]CategoryRange, len(c.ranges))
	copy(out, c.ranges)
	return out
}

// Categorize returns the first category whose range contains bmi. A boundary
// value belongs to the higher category.
func (c *Categorizer) Categorize(bmi float64) Category {
	for _, r := range c.ranges {
		if r.Contains(bmi) {
			return r.Category
		}
	}
	return Unknown
}

// Categorize classifies bmi with the default table.
func Categorize(bmi float64) Category {
	return defaultCategorizer.Categorize(bmi)
}
