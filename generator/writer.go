// generator/writer.go
package generator

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"
)

// Output file names. The dashboard reads these by exact name, so they
// are fixed here rather than configurable.
const (
	WellsCompletionFile   = "wells_completion.csv"
	ProductionDataFile    = "production_data.csv"
	ProductionSummaryFile = "production_summary.csv"
	GeographicDataFile    = "geographic_data.csv"
)

// EnsureOutputDir creates the output directory and any missing parents.
// It succeeds silently if the directory already exists.
func EnsureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}

// writeCSV serializes a slice of record structs to dir/name as CSV with
// a header row derived from the csv struct tags. Any previous file at
// that path is fully overwritten.
func writeCSV(dir, name string, records interface{}) error {
	path := filepath.Join(dir, name)

	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer outFile.Close()

	w := csv.NewWriter(outFile)
	enc := csvutil.NewEncoder(w)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode CSV records for %s: %w", path, err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write CSV data to %s: %w", path, err)
	}
	return nil
}
