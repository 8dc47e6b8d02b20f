package rates

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTableID identifies the INR rate table on the listing page.
const DefaultTableID = "inr_rate"

// ErrTableNotFound is returned when the document has no table with the
// requested id, or could not be parsed at all.
var ErrTableNotFound = errors.New("rate table not found")

// Locate returns the first <table> whose id equals tableID.
// Later tables with the same id are ignored.
func Locate(doc string, tableID string) (*goquery.Selection, bool) {
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return nil, false
	}

	table := parsed.Find("table").FilterFunction(func(_ int, s *goquery.Selection) bool {
		id, ok := s.Attr("id")
		return ok && id == tableID
	}).First()
	if table.Length() == 0 {
		return nil, false
	}
	return table, true
}
