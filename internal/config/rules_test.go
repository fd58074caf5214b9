package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slimtrack/internal/domain"
)

func TestLoadRules_EmptyPathIsDefault(t *testing.T) {
	rules, err := LoadRules("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBounds(), rules.Bounds)
	assert.Equal(t, domain.DefaultRanges(), rules.Categorizer.Ranges())
}

func TestLoadRules_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	data := []byte(`
bounds:
  max_weight_kg: 250
categories:
  - name: underweight
    min: 0
    max: 18.5
  - name: normal
    min: 18.5
    max: 23
  - name: overweight
    min: 23
    max: 27.5
  - name: obese
    min: 27.5
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, 250.0, rules.Bounds.MaxWeight)
	assert.Equal(t, domain.MaxHeightM, rules.Bounds.MaxHeight)

	ranges := rules.Categorizer.Ranges()
	require.Len(t, ranges, 4)
	assert.True(t, math.IsInf(ranges[3].Max, 1))
	assert.Equal(t, domain.Overweight, rules.Categorizer.Categorize(23))
}

func TestParseRules_Rejects(t *testing.T) {
	tests := map[string]string{
		"bad yaml":      "bounds: [",
		"bad bound":     "bounds:\n  max_height_m: 0\n",
		"unknown name":  "categories:\n  - name: chunky\n    min: 0\n",
		"partial table": "categories:\n  - name: underweight\n    min: 0\n    max: 18.5\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRules([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadRules_MissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
