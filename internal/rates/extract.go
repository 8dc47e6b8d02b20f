package rates

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Validation controls what happens to rows whose width differs from Header.
type Validation string

const (
	// PassThrough emits every row that has at least one data cell.
	PassThrough Validation = "passthrough"
	// Strict drops rows that do not have exactly len(Header) cells.
	Strict Validation = "strict"
	// Pad pads short rows with empty cells and truncates long ones.
	Pad Validation = "pad"
)

// ParseValidation maps a config value to a Validation. The empty string
// means PassThrough.
func ParseValidation(s string) (Validation, error) {
	switch v := Validation(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return PassThrough, nil
	case PassThrough, Strict, Pad:
		return v, nil
	default:
		return "", fmt.Errorf("unknown validation level %q", s)
	}
}

// Extract reads the data rows of table in document order.
// Rows without any <td> (header or separator rows) are skipped; <th>
// cells are never read.
func Extract(table *goquery.Selection, validation Validation) RecordSet {
	records := RecordSet{}
	if table == nil {
		return records
	}

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.ChildrenFiltered("td")
		if cells.Length() == 0 {
			return
		}

		record := make(Record, 0, cells.Length())
		cells.Each(func(_ int, cell *goquery.Selection) {
			record = append(record, strings.TrimSpace(cell.Text()))
		})

		record, ok := conform(record, validation)
		if !ok {
			return
		}
		records = append(records, record)
	})

	return records
}

func conform(r Record, validation Validation) (Record, bool) {
	width := len(Header)
	switch validation {
	case Strict:
		return r, len(r) == width
	case Pad:
		if len(r) >= width {
			return r[:width], true
		}
		padded := make(Record, width)
		copy(padded, r)
		return padded, true
	default:
		return r, true
	}
}
