package sink

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"cryptorates/internal/rates"
	"cryptorates/internal/report"
)

// minimum column widths, the last column is left at its natural width
var consoleWidths = []int{25, 20, 20}

// Console renders records as left-justified fixed-width columns.
type Console struct {
	out      io.Writer
	reporter report.Reporter
}

// NewConsole creates a console sink writing to out
func NewConsole(out io.Writer, reporter report.Reporter) *Console {
	return &Console{out: out, reporter: reporter}
}

// Name implements the Sink interface
func (c *Console) Name() string { return "console" }

// Write implements the Sink interface. Each line is a single space
// followed by the columns separated by single spaces.
func (c *Console) Write(ctx context.Context, records rates.RecordSet) error {
	if records.Empty() {
		c.reporter.Warning(ctx, "no data to display")
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(consoleStyle())

	header := table.Row{}
	for _, h := range rates.Header {
		header = append(header, h)
	}
	t.AppendHeader(header)

	configs := make([]table.ColumnConfig, 0, len(consoleWidths))
	for i, w := range consoleWidths {
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			WidthMin:    w,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		})
	}
	t.SetColumnConfigs(configs)

	for _, r := range records {
		row := make(table.Row, 0, len(r))
		for _, cell := range r {
			row = append(row, cell)
		}
		t.AppendRow(row)
	}

	// the last column keeps its natural width
	for _, line := range strings.Split(t.Render(), "\n") {
		if _, err := fmt.Fprintln(c.out, strings.TrimRight(line, " ")); err != nil {
			return fmt.Errorf("write console: %w", err)
		}
	}
	return nil
}

func consoleStyle() table.Style {
	s := table.StyleDefault
	s.Options = table.OptionsNoBordersAndSeparators
	s.Box.PaddingLeft = " "
	s.Box.PaddingRight = ""
	s.Format.Header = text.FormatDefault
	return s
}
