// report/columns.go
package report

import "github.com/wellsight/datagen/models"

// The converters below pull the numeric columns out of each table so
// Describe can run on the same records that were written to disk.

func WellsCompletionColumns(records []models.WellCompletion) []Column {
	years := make([]float64, len(records))
	wells := make([]float64, len(records))
	for i, r := range records {
		years[i] = float64(r.Year)
		wells[i] = float64(r.CompletedWells)
	}
	return []Column{
		{Name: "Year", Values: years},
		{Name: "Completed_Wells", Values: wells},
	}
}

func ProductionColumns(records []models.ProductionRecord) []Column {
	years := make([]float64, len(records))
	gas := make([]float64, len(records))
	oil := make([]float64, len(records))
	water := make([]float64, len(records))
	for i, r := range records {
		years[i] = float64(r.Year)
		gas[i] = r.GasProduced
		oil[i] = r.OilProduced
		water[i] = r.WaterProduced
	}
	return []Column{
		{Name: "Year", Values: years},
		{Name: "Gas_Produced", Values: gas},
		{Name: "Oil_Produced", Values: oil},
		{Name: "Water_Produced", Values: water},
	}
}

func SummaryColumns(records []models.ProductionSummary) []Column {
	percentages := make([]float64, len(records))
	for i, r := range records {
		percentages[i] = r.Percentage
	}
	return []Column{
		{Name: "Percentage", Values: percentages},
	}
}

func GeographicColumns(records []models.WellSite) []Column {
	lats := make([]float64, len(records))
	lons := make([]float64, len(records))
	for i, r := range records {
		lats[i] = r.Latitude
		lons[i] = r.Longitude
	}
	return []Column{
		{Name: "Latitude", Values: lats},
		{Name: "Longitude", Values: lons},
	}
}
