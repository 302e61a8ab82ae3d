// Package export writes watchlist reports as spreadsheets.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/etnz/watchfolio"
	"github.com/etnz/watchfolio/date"
	"github.com/etnz/watchfolio/logctx"
	"github.com/xuri/excelize/v2"
)

// maxSheetName is the longest sheet name Excel accepts.
const maxSheetName = 31

var header = []any{
	"Ticker", "Instrument", "Currency", "Shares", "Price", "Day %",
	"Equity", "Cost Basis", "Return", "Return %",
}

// XLSX returns a workbook with one sheet per report.
func XLSX(ctx context.Context, reports []*watchfolio.Report) (content []byte, err error) {
	rqID := logctx.Attr(ctx)
	if len(reports) == 0 {
		return nil, errors.New("no report to export")
	}
	slog.Debug("xlsx export start", slog.Int("reports", len(reports)), rqID)

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("got error while closing file", slog.String("err", err.Error()), rqID)
		}
	}()

	for i, r := range reports {
		if err := fillSheet(f, r, i+1); err != nil {
			return nil, fmt.Errorf("cannot export %q: %w", r.Name, err)
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		slog.Error("got error while deleting Sheet1", slog.String("err", err.Error()), rqID)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("cannot write xlsx: %w", err)
	}
	slog.Debug("xlsx export completed", rqID)
	return buf.Bytes(), nil
}

// forbidden replaces the characters Excel rejects in sheet names.
var forbidden = strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "(", "]", ")")

// SheetName returns the sheet name of the ordinal-th report.
func SheetName(r *watchfolio.Report, ordinal int) string {
	name := []rune(forbidden.Replace(fmt.Sprintf("%d. %s", ordinal, r.Name)))
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return string(name)
}

func fillSheet(f *excelize.File, r *watchfolio.Report, ordinal int) error {
	sheet := SheetName(r, ordinal)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#cfe2f3"}},
	})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return err
	}

	row := 1
	for _, h := range r.Rows {
		row++
		day := math.NaN()
		if h.HasDayReturn {
			day = float64(h.DayReturnInPercentage)
		}
		values := []any{
			h.Ticker, h.Instrument, h.Currency,
			h.Shares(), number(h.CurrentPrice), number(day),
			number(h.Equity), number(h.CostBasis), number(h.ReturnInDollars), number(float64(h.ReturnInPercentage)),
		}
		if err := f.SetSheetRow(sheet, cell(row), &values); err != nil {
			return err
		}
	}

	// Totals, after a blank line.
	row += 2
	totals := [][]any{
		{"Total Equity", number(r.TotalEquity)},
		{"Total Cost Basis", number(r.TotalCostBasis)},
		{"Total Return", number(r.TotalReturnInDollars)},
		{"Total Return %", number(float64(r.TotalReturnInPercentage))},
		{"Average Annual Return %", number(float64(r.AverageAnnualReturn))},
	}
	if r.Period != date.Yearly {
		totals = append(totals, []any{fmt.Sprintf("Average Return %% (%s)", r.Period), number(float64(r.AverageReturn))})
	}
	for _, total := range totals {
		if err := f.SetSheetRow(sheet, cell(row), &total); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell(row), cell(row), bold); err != nil {
			return err
		}
		row++
	}
	return nil
}

// cell returns the name of the first cell of row.
func cell(row int) string { return fmt.Sprintf("A%d", row) }

// number rounds v for display, undefined values become empty cells.
func number(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return watchfolio.Round(v)
}
