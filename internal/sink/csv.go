package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"cryptorates/internal/rates"
	"cryptorates/internal/report"
)

// CSV writes records to a comma-delimited file, replacing any existing one.
type CSV struct {
	path     string
	reporter report.Reporter
}

// NewCSV creates a CSV sink writing to path
func NewCSV(path string, reporter report.Reporter) *CSV {
	return &CSV{path: path, reporter: reporter}
}

// Name implements the Sink interface
func (c *CSV) Name() string { return "csv" }

// Write implements the Sink interface
func (c *CSV) Write(ctx context.Context, records rates.RecordSet) error {
	if records.Empty() {
		c.reporter.Warning(ctx, "no data to store in CSV", "path", c.path)
		return nil
	}

	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", c.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headerRow()); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	for _, r := range records {
		if err := w.Write(r); err != nil {
			return fmt.Errorf("write %s: %w", c.path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", c.path, err)
	}

	c.reporter.Notice(ctx, "data has been stored", "path", c.path, "rows", len(records))
	return nil
}
