package sink

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"cryptorates/internal/rates"
	"cryptorates/internal/report"
)

// DefaultSheet is the sheet name used when none is configured.
const DefaultSheet = "Prices"

// XLSX writes records to a single-sheet workbook, replacing any existing one.
type XLSX struct {
	path     string
	sheet    string
	reporter report.Reporter
}

// NewXLSX creates a workbook sink. An empty sheet name uses DefaultSheet
func NewXLSX(path, sheet string, reporter report.Reporter) *XLSX {
	if sheet == "" {
		sheet = DefaultSheet
	}
	return &XLSX{path: path, sheet: sheet, reporter: reporter}
}

// Name implements the Sink interface
func (x *XLSX) Name() string { return "xlsx" }

// Write implements the Sink interface
func (x *XLSX) Write(ctx context.Context, records rates.RecordSet) error {
	if records.Empty() {
		x.reporter.Warning(ctx, "no data to store in Excel", "path", x.path)
		return nil
	}

	f := excelize.NewFile()
	defer f.Close()

	// a new workbook starts with a single "Sheet1"
	if err := f.SetSheetName(f.GetSheetName(0), x.sheet); err != nil {
		return fmt.Errorf("name sheet %q: %w", x.sheet, err)
	}

	if err := x.setRow(f, 1, headerRow()); err != nil {
		return err
	}
	for i, r := range records {
		if err := x.setRow(f, i+2, r); err != nil {
			return err
		}
	}

	if err := f.SaveAs(x.path); err != nil {
		return fmt.Errorf("save %s: %w", x.path, err)
	}

	x.reporter.Notice(ctx, "data has been stored", "path", x.path, "sheet", x.sheet, "rows", len(records))
	return nil
}

func (x *XLSX) setRow(f *excelize.File, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(x.sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d of %s: %w", row, x.path, err)
	}
	return nil
}
