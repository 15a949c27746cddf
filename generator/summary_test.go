package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellsight/datagen/models"
)

func TestProductionSummaryRows(t *testing.T) {
	records := ProductionSummary()
	require.Len(t, records, 9)

	// Order is preserved exactly as authored, main categories first.
	assert.Equal(t, "Gas", records[0].Category)

	byCategory := make(map[string]float64, len(records))
	for _, r := range records {
		byCategory[r.Category] = r.Percentage
	}
	require.Len(t, byCategory, 9, "categories must be unique")

	assert.Equal(t, 96.7, byCategory["Gas"])
	assert.Equal(t, 0.685, byCategory["Oil Wildcat"])
}

func TestProductionSummaryCopyIsolation(t *testing.T) {
	first := ProductionSummary()
	first[0] = models.ProductionSummary{Category: "mutated", Percentage: -1}

	second := ProductionSummary()
	assert.Equal(t, "Gas", second[0].Category, "callers must not share backing storage")
}
