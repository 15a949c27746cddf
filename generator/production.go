// generator/production.go
package generator

import (
	"log"

	"github.com/wellsight/datagen/models"
)

const productionFirstYear = 2008

// Hand-authored production curve for 2008-2015, in million cubic feet
// equivalent. Gas ramps up to its 2011 peak and tails off; oil holds a
// flat low level; no water was produced. These are the exact values the
// dashboard charts, not a curve to be re-derived.
var (
	gasProduction   = []float64{0, 0.2, 0.8, 2.0, 1.8, 1.2, 0.5, 0}
	oilProduction   = []float64{0, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0}
	waterProduction = []float64{0, 0, 0, 0, 0, 0, 0, 0}
)

// ProductionData builds the eight-year production table with the three
// volume columns positionally aligned to the year sequence.
func ProductionData() []models.ProductionRecord {
	records := make([]models.ProductionRecord, 0, len(gasProduction))
	for i := range gasProduction {
		records = append(records, models.ProductionRecord{
			Year:          productionFirstYear + i,
			GasProduced:   gasProduction[i],
			OilProduced:   oilProduction[i],
			WaterProduced: waterProduction[i],
		})
	}
	return records
}

// GenerateProductionData builds the production table and writes
// production_data.csv under dir.
func GenerateProductionData(dir string) ([]models.ProductionRecord, error) {
	records := ProductionData()
	if err := writeCSV(dir, ProductionDataFile, records); err != nil {
		return nil, err
	}
	log.Printf("Generated production data: %d rows\n", len(records))
	return records, nil
}
