package fundcompare

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the output workbook.
const (
	summarySheet   = "Summary"
	actualSheet    = "Input Portfolio"
	potentialSheet = "Potential Portfolio"
)

// WriteComparison serializes the comparison to an xlsx workbook at the given
// path, overwriting any existing file. The Summary sheet carries the
// aggregate result; the two portfolio sheets carry the per-transaction
// detail of each leg.
func WriteComparison(path string, c *Comparison) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", summarySheet)
	writeSummary(f, c)

	if _, err := f.NewSheet(actualSheet); err != nil {
		return fmt.Errorf("cannot create sheet %q: %w", actualSheet, err)
	}
	writePositions(f, actualSheet, c.ActualPositions, nil)

	if _, err := f.NewSheet(potentialSheet); err != nil {
		return fmt.Errorf("cannot create sheet %q: %w", potentialSheet, err)
	}
	writePositions(f, potentialSheet, c.AlternativePositions, c.ActualPositions)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return nil
}

// writeSummary lays the aggregate result out as metric/value rows, one
// column per portfolio where the metric applies to both.
func writeSummary(f *excelize.File, c *Comparison) {
	setRow(f, summarySheet, 1, "Metric", "Held Fund", "Alternative Fund")
	rows := [][]any{
		{"Scheme (API)", c.Actual.Scheme, c.Alternative.Scheme},
		{"Scheme (matched in file)", c.Matched, ""},
		{"Total Invested", c.Actual.Invested.AsFloat(), c.Alternative.Invested.AsFloat()},
		{"Final Units", c.Actual.FinalUnits.AsFloat(), c.Alternative.FinalUnits.AsFloat()},
		{"Latest NAV", c.Actual.LatestNAV.InexactFloat64(), c.Alternative.LatestNAV.InexactFloat64()},
		{"Latest NAV Date", c.Actual.LatestNAVDate.String(), c.Alternative.LatestNAVDate.String()},
		{"Final Value", c.Actual.FinalValue.AsFloat(), c.Alternative.FinalValue.AsFloat()},
		{"Absolute Return %", float64(c.Actual.AbsoluteReturn), float64(c.Alternative.AbsoluteReturn)},
		{"Annualized Return %", float64(c.Actual.AnnualizedReturn), float64(c.Alternative.AnnualizedReturn)},
		{"Volatility %", float64(c.Actual.Volatility), float64(c.Alternative.Volatility)},
		{"Alpha %", float64(c.Alpha), ""},
		{"Value Difference", c.Difference.AsFloat(), ""},
	}
	for i, row := range rows {
		setRow(f, summarySheet, i+2, row...)
	}
	row := len(rows) + 3
	for _, w := range c.Shortfalls {
		setRow(f, summarySheet, row, "Warning", w.String())
		row++
	}
}

// writePositions writes one sheet of per-transaction detail. When actual is
// non-nil the sheet is the synthetic leg, and gains the unit and value
// difference columns of the original report.
func writePositions(f *excelize.File, sheet string, positions, actual []Position) {
	header := []any{"Date", "NAV", "Units", "Cumulative Units", "Invested"}
	if actual != nil {
		header = append(header, "Actual Units", "Units Difference")
	}
	setRow(f, sheet, 1, header...)

	for i, p := range positions {
		row := []any{p.Date.String(), p.NAV.InexactFloat64(), p.Units.AsFloat(), p.Cumulative.AsFloat(), p.Invested.AsFloat()}
		if actual != nil && i < len(actual) {
			row = append(row,
				actual[i].Units.AsFloat(),
				p.Units.Sub(actual[i].Units).AsFloat())
		}
		setRow(f, sheet, i+2, row...)
	}
}

// setRow writes cell values left to right starting at column A of the given
// 1-based row.
func setRow(f *excelize.File, sheet string, row int, values ...any) {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			continue
		}
		// the cell name is always valid here, so SetCellValue cannot fail
		_ = f.SetCellValue(sheet, cell, v)
	}
}
