package foliosim

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// This file contains the export formats consumed outside the simulator,
// mainly spreadsheets. CSV stays deliberately flat: one row per day or per
// projected month, values as plain decimals.

// ExportDaySeries writes the portfolio time series to w as CSV.
func ExportDaySeries(w io.Writer, series []DayData) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "value", "invested", "performance"}); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}
	for _, row := range series {
		record := []string{
			row.Date.String(),
			formatFloat(row.Value),
			formatFloat(row.Invested),
			formatFloat(float64(row.Performance)),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write csv row for %s: %w", row.Date, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportProjection writes the projected months to w as CSV.
func ExportProjection(w io.Writer, rows []ProjectionRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "value", "invested", "withdrawal", "totalWithdrawn"}); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Date.String(),
			formatFloat(row.Value),
			formatFloat(row.Invested),
			formatFloat(row.Withdrawal),
			formatFloat(row.TotalWithdrawn),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write csv row for %s: %w", row.Date, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }
