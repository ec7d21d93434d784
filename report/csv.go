package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvquad/sweep"
)

// CSVHeader is the first record written by WriteCSV.
var CSVHeader = []string{"method", "resolution", "used", "estimate", "abs_error"}

// WriteCSV writes one record per point, curves in order. Floats use the
// shortest representation that round-trips.
func WriteCSV(w io.Writer, curves []sweep.Curve) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("report: csv header: %w", err)
	}
	for _, c := range curves {
		name := c.Method.String()
		for _, pt := range c.Points {
			rec := []string{
				name,
				strconv.Itoa(pt.Resolution),
				strconv.Itoa(pt.Used),
				strconv.FormatFloat(pt.Estimate, 'g', -1, 64),
				strconv.FormatFloat(pt.AbsError, 'g', -1, 64),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("report: csv row: %w", err)
			}
		}
	}
	cw.Flush()

	return cw.Error()
}
