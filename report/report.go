// report/report.go
package report

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Column is one numeric column of an in-memory table, ready for
// descriptive statistics.
type Column struct {
	Name   string
	Values []float64
}

// Describe prints count, mean, sample standard deviation, min and max
// for each column of a table. The output is a diagnostic for the
// operator running the generator; nothing downstream parses it.
func Describe(w io.Writer, table string, cols []Column) {
	fmt.Fprintf(w, "\n%s:\n", table)
	fmt.Fprintf(w, "%-16s %8s %12s %12s %12s %12s\n",
		"column", "count", "mean", "std", "min", "max")
	for _, c := range cols {
		if len(c.Values) == 0 {
			continue
		}
		fmt.Fprintf(w, "%-16s %8d %12.4f %12.4f %12.4f %12.4f\n",
			c.Name,
			len(c.Values),
			stat.Mean(c.Values, nil),
			stat.StdDev(c.Values, nil),
			floats.Min(c.Values),
			floats.Max(c.Values))
	}
}
