// generator/geographic.go
package generator

import (
	"log"

	"github.com/wellsight/datagen/models"
)

// Well site locations in New York State, one record per site.
var wellSites = []models.WellSite{
	{SiteName: "Well Site A", Latitude: 42.5, Longitude: -76.5, Status: "Active", Type: "Gas Production"},
	{SiteName: "Well Site B", Latitude: 42.8, Longitude: -76.2, Status: "Active", Type: "Oil Production"},
	{SiteName: "Well Site C", Latitude: 42.3, Longitude: -76.8, Status: "Active", Type: "Gas Wildcat"},
	{SiteName: "Well Site D", Latitude: 42.6, Longitude: -76.4, Status: "Active", Type: "Water Injection"},
}

// GeographicData returns the well site table.
func GeographicData() []models.WellSite {
	records := make([]models.WellSite, len(wellSites))
	copy(records, wellSites)
	return records
}

// GenerateGeographicData builds the site table and writes
// geographic_data.csv under dir.
func GenerateGeographicData(dir string) ([]models.WellSite, error) {
	records := GeographicData()
	if err := writeCSV(dir, GeographicDataFile, records); err != nil {
		return nil, err
	}
	log.Printf("Generated geographic data: %d rows\n", len(records))
	return records, nil
}
