package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Default inclusive upper limits for raw input.
const (
	MaxWeightKg = 300.0
	MaxHeightM  = 3.0
)

var (
	// ErrInvalidInput indicates that a raw weight or height was rejected.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidBounds indicates a validation bound that is not a positive number.
	ErrInvalidBounds = errors.New("invalid validation bounds")
)

// Bounds holds the upper limits applied to raw weight and height input.
// Both ranges are open at zero and closed at the limit.
type Bounds struct {
	MaxWeight float64 `yaml:"max_weight_kg" json:"maxWeightKg"`
	MaxHeight float64 `yaml:"max_height_m" json:"maxHeightM"`
}

// DefaultBounds returns the (0, 300] kg and (0, 3] m limits.
func DefaultBounds() Bounds {
	return Bounds{MaxWeight: MaxWeightKg, MaxHeight: MaxHeightM}
}

// Validate checks that both limits are finite and positive.
func (b Bounds) Validate() error {
	for _, v := range []float64{b.MaxWeight, b.MaxHeight} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%w: max weight %v, max height %v", ErrInvalidBounds, b.MaxWeight, b.MaxHeight)
		}
	}
	return nil
}

// Weight parses raw as a weight in kilograms within (0, MaxWeight].
func (b Bounds) Weight(raw string) (bool, float64) {
	return parseBounded(raw, b.MaxWeight)
}

// Height parses raw as a height in meters within (0, MaxHeight].
func (b Bounds) Height(raw string) (bool, float64) {
	return parseBounded(raw, b.MaxHeight)
}

// InputError describes rejected input in terms of these bounds.
func (b Bounds) InputError() error {
	return fmt.Errorf("%w: please enter valid weight (0-%g kg) and height (0-%g m)", ErrInvalidInput, b.MaxWeight, b.MaxHeight)
}

// ValidateWeight parses raw with the default bounds.
func ValidateWeight(raw string) (bool, float64) {
	return DefaultBounds().Weight(raw)
}

// ValidateHeight parses raw with the default bounds.
func ValidateHeight(raw string) (bool, float64) {
	return DefaultBounds().Height(raw)
}

func parseBounded(raw string, limit float64) (bool, float64) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return false, 0
	}
	if v <= 0 || v > limit {
		return false, 0
	}
	return true, v
}
