package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"slimtrack/internal/domain"
)

// Rules are the overridable domain constants: validation bounds and the
// BMI category table.
type Rules struct {
	Bounds      domain.Bounds
	Categorizer *domain.Categorizer
}

// DefaultRules returns the built-in bounds and category table.
func DefaultRules() *Rules {
	return &Rules{Bounds: domain.DefaultBounds(), Categorizer: domain.DefaultCategorizer()}
}

type rulesFile struct {
	Bounds     *boundsFile    `yaml:"bounds"`
	Categories []categoryFile `yaml:"categories"`
}

type boundsFile struct {
	MaxWeightKg *float64 `yaml:"max_weight_kg"`
	MaxHeightM  *float64 `yaml:"max_height_m"`
}

type categoryFile struct {
	Name domain.Category `yaml:"name"`
	Min  float64         `yaml:"min"`
	Max  *float64        `yaml:"max"` // omitted means unbounded
}

// LoadRules reads a rules file. An empty path yields DefaultRules. Sections
// missing from the file keep their defaults.
func LoadRules(path string) (*Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return ParseRules(data)
}

// ParseRules decodes YAML rules.
func ParseRules(data []byte) (*Rules, error) {
	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}

	rules := DefaultRules()
	if f.Bounds != nil {
		if f.Bounds.MaxWeightKg != nil {
			rules.Bounds.MaxWeight = *f.Bounds.MaxWeightKg
		}
		if f.Bounds.MaxHeightM != nil {
			rules.Bounds.MaxHeight = *f.Bounds.MaxHeightM
		}
		if err := rules.Bounds.Validate(); err != nil {
			return nil, err
		}
	}

	if len(f.Categories) > 0 {
		ranges := make([]domain.CategoryRange, 0, len(f.Categories))
		for _, c := range f.Categories {
			upper := math.Inf(1)
			if c.Max != nil {
				upper = *c.Max
			}
			ranges = append(ranges, domain.CategoryRange{Category: c.Name, Min: c.Min, Max: upper})
		}
		categorizer, err := domain.NewCategorizer(ranges)
		if err != nil {
			return nil, err
		}
		rules.Categorizer = categorizer
	}
	return rules, nil
}
