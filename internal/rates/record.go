// Package rates turns a price listing page into records.
package rates

// Header is the column layout shared by every output.
var Header = []string{"Coin", "Price (INR)", "Change (24h)", "Volume (24h)"}

// Record is one table row, cell text in column order.
type Record []string

func (r Record) field(i int) string {
	if i < len(r) {
		return r[i]
	}
	return ""
}

// Coin returns the coin name cell
func (r Record) Coin() string { return r.field(0) }

// Price returns the INR price cell
func (r Record) Price() string { return r.field(1) }

// Change returns the 24h change cell
func (r Record) Change() string { return r.field(2) }

// Volume returns the 24h volume cell
func (r Record) Volume() string { return r.field(3) }

// RecordSet is the ordered result of one extraction.
type RecordSet []Record

// Empty reports whether there is nothing to emit.
func (s RecordSet) Empty() bool {
	return len(s) == 0
}
