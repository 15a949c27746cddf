// models/dataset.go
package models

// The four record types below are the on-disk schema of the generated
// CSV files. The dashboard reads the files by name and matches columns
// by header, so the csv tags must EXACTLY match the headers it expects.

// WellCompletion is one row of wells_completion.csv: the number of wells
// completed in a single year.
type WellCompletion struct {
	Year           int `csv:"Year"`
	CompletedWells int `csv:"Completed_Wells"`
}

// ProductionRecord is one row of production_data.csv. Volumes are in
// million cubic feet equivalent.
type ProductionRecord struct {
	Year          int     `csv:"Year"`
	GasProduced   float64 `csv:"Gas_Produced"`
	OilProduced   float64 `csv:"Oil_Produced"`
	WaterProduced float64 `csv:"Water_Produced"`
}

// ProductionSummary is one row of production_summary.csv: a well
// category and its share of total production.
type ProductionSummary struct {
	Category   string  `csv:"Category"`
	Percentage float64 `csv:"Percentage"`
}

// WellSite is one row of geographic_data.csv: a named well site with
// its coordinates in decimal degrees.
type WellSite struct {
	SiteName  string  `csv:"Site_Name"`
	Latitude  float64 `csv:"Latitude"`
	Longitude float64 `csv:"Longitude"`
	Status    string  `csv:"Status"`
	Type      string  `csv:"Type"`
}
