// generator/wells.go
package generator

import (
	"log"
	"math/rand"

	"github.com/wellsight/datagen/models"
)

// Year range covered by wells_completion.csv, inclusive on both ends.
const (
	wellsFirstYear = 1960
	wellsLastYear  = 2020
)

// WellsCompletion builds one row per year from 1960 through 2020, with
// the completed-well count drawn uniformly from a range that depends on
// the year band:
//   - before 1970: low activity, [0, 50)
//   - 1970 up to 1990: the drilling boom, [50, 600)
//   - 1990 and later: moderate activity, [20, 200)
//
// The generator owns its own rand.Rand seeded once before any draws and
// draws in year-ascending order, so the same seed always produces the
// same sequence regardless of what else runs in the process.
func WellsCompletion(seed int64) []models.WellCompletion {
	rng := rand.New(rand.NewSource(seed))

	records := make([]models.WellCompletion, 0, wellsLastYear-wellsFirstYear+1)
	for year := wellsFirstYear; year <= wellsLastYear; year++ {
		var count int
		switch {
		case year < 1970:
			count = rng.Intn(50)
		case year < 1990:
			count = 50 + rng.Intn(550)
		default:
			count = 20 + rng.Intn(180)
		}
		records = append(records, models.WellCompletion{
			Year:           year,
			CompletedWells: count,
		})
	}
	return records
}

// GenerateWellsCompletion builds the wells completion table and writes
// wells_completion.csv under dir.
func GenerateWellsCompletion(dir string, seed int64) ([]models.WellCompletion, error) {
	records := WellsCompletion(seed)
	if err := writeCSV(dir, WellsCompletionFile, records); err != nil {
		return nil, err
	}
	log.Printf("Generated wells completion data: %d rows\n", len(records))
	return records, nil
}
