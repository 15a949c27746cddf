// generator/summary.go
package generator

import (
	"log"

	"github.com/wellsight/datagen/models"
)

// Production share per well category. Row order is what the dashboard
// displays, so no sorting is applied. The values are kept exactly as
// published even though they do not total precisely 100.
var productionShares = []models.ProductionSummary{
	{Category: "Gas", Percentage: 96.7},
	{Category: "Water", Percentage: 0.807},
	{Category: "Oil", Percentage: 2.3},
	{Category: "Gas Development", Percentage: 54.1},
	{Category: "Oil Development", Percentage: 39.1},
	{Category: "Gas Extension", Percentage: 3.08},
	{Category: "Gas Wildcat", Percentage: 2.96},
	{Category: "Oil Injection", Percentage: 0.41},
	{Category: "Oil Wildcat", Percentage: 0.685},
}

// ProductionSummary returns the category share table.
func ProductionSummary() []models.ProductionSummary {
	records := make([]models.ProductionSummary, len(productionShares))
	copy(records, productionShares)
	return records
}

// GenerateProductionSummary builds the summary table and writes
// production_summary.csv under dir.
func GenerateProductionSummary(dir string) ([]models.ProductionSummary, error) {
	records := ProductionSummary()
	if err := writeCSV(dir, ProductionSummaryFile, records); err != nil {
		return nil, err
	}
	log.Printf("Generated production summary data: %d rows\n", len(records))
	return records, nil
}
