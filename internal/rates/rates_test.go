package rates

import (
	"html"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(tableID string, rows ...string) string {
	return `<html><body><table id="` + tableID + `">` +
		`<tr><th>Coin</th><th>Price</th><th>Change</th><th>Volume</th></tr>` +
		strings.Join(rows, "") +
		`</table></body></html>`
}

func row(cells ...string) string {
	var b strings.Builder
	b.WriteString("<tr>")
	for _, c := range cells {
		b.WriteString("<td>" + c + "</td>")
	}
	b.WriteString("</tr>")
	return b.String()
}

func TestLocate_Found(t *testing.T) {
	table, ok := Locate(page(DefaultTableID), DefaultTableID)
	require.True(t, ok)
	assert.Equal(t, 1, table.Length())
}

func TestLocate_Missing(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"other id", page("usd_rate", row("BTC", "1", "2", "3"))},
		{"no tables", `<html><body><p>maintenance</p></body></html>`},
		{"empty document", ""},
		{"id on a div", `<div id="inr_rate"><table><tr><td>x</td></tr></table></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, ok := Locate(tt.doc, DefaultTableID)
			assert.False(t, ok)
			assert.Nil(t, table)
		})
	}
}

func TestLocate_FirstMatchWins(t *testing.T) {
	doc := `<table id="inr_rate"><tr><td>first</td></tr></table>` +
		`<table id="inr_rate"><tr><td>second</td></tr></table>`

	table, ok := Locate(doc, DefaultTableID)
	require.True(t, ok)

	got := Extract(table, PassThrough)
	assert.Equal(t, RecordSet{{"first"}}, got)
}

func TestExtract_DocumentOrder(t *testing.T) {
	doc := page(DefaultTableID,
		row("BTC", "5,000,000", "+2.3%", "120 BTC"),
		row("ETH", "300,000", "-1.1%", "500 ETH"),
	)

	table, ok := Locate(doc, DefaultTableID)
	require.True(t, ok)

	want := RecordSet{
		{"BTC", "5,000,000", "+2.3%", "120 BTC"},
		{"ETH", "300,000", "-1.1%", "500 ETH"},
	}
	if diff := cmp.Diff(want, Extract(table, PassThrough)); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_HeaderOnly(t *testing.T) {
	table, ok := Locate(page(DefaultTableID), DefaultTableID)
	require.True(t, ok)

	got := Extract(table, PassThrough)
	assert.True(t, got.Empty())
	assert.NotNil(t, got)
}

func TestExtract_SkipsRowsWithoutDataCells(t *testing.T) {
	doc := page(DefaultTableID,
		row("BTC", "1", "2", "3"),
		`<tr></tr>`,
		`<tr><th colspan="4">Stablecoins</th></tr>`,
		row("USDT", "83", "0%", "9"),
	)
	table, ok := Locate(doc, DefaultTableID)
	require.True(t, ok)

	got := Extract(table, PassThrough)
	require.Len(t, got, 2)
	assert.Equal(t, "BTC", got[0].Coin())
	assert.Equal(t, "USDT", got[1].Coin())
}

func TestExtract_TrimsAndKeepsSymbols(t *testing.T) {
	doc := page(DefaultTableID,
		row("\n\t <a href=\"/btc\">Bitcoin <b>BTC</b></a>  ", " ₹ 5,00,000.25 ", "\n-1.10 %\n", " 1,234 BTC"),
	)
	table, ok := Locate(doc, DefaultTableID)
	require.True(t, ok)

	got := Extract(table, PassThrough)
	require.Len(t, got, 1)
	r := got[0]
	assert.Equal(t, "Bitcoin BTC", r.Coin())
	assert.Equal(t, "₹ 5,00,000.25", r.Price())
	assert.Equal(t, "-1.10 %", r.Change())
	assert.Equal(t, "1,234 BTC", r.Volume())
}

func TestExtract_RoundTrip(t *testing.T) {
	fields := []string{"Tether & Co", "a <b", "+0.01%", "1 2  3"}

	cells := make([]string, len(fields))
	for i, f := range fields {
		cells[i] = html.EscapeString(f)
	}

	table, ok := Locate(page(DefaultTableID, row(cells...)), DefaultTableID)
	require.True(t, ok)
	first := Extract(table, PassThrough)
	require.Len(t, first, 1)
	assert.Equal(t, Record(fields), first[0])

	again := make([]string, len(first[0]))
	for i, f := range first[0] {
		again[i] = html.EscapeString(f)
	}
	table, ok = Locate(page(DefaultTableID, row(again...)), DefaultTableID)
	require.True(t, ok)
	assert.Equal(t, first, Extract(table, PassThrough))
}

func TestExtract_Validation(t *testing.T) {
	doc := page(DefaultTableID,
		row("BTC", "1", "2", "3"),
		row("ETH", "4", "5"),
		row("XRP", "6", "7", "8", "extra"),
	)

	tests := []struct {
		validation Validation
		want       RecordSet
	}{
		{PassThrough, RecordSet{
			{"BTC", "1", "2", "3"},
			{"ETH", "4", "5"},
			{"XRP", "6", "7", "8", "extra"},
		}},
		{Strict, RecordSet{
			{"BTC", "1", "2", "3"},
		}},
		{Pad, RecordSet{
			{"BTC", "1", "2", "3"},
			{"ETH", "4", "5", ""},
			{"XRP", "6", "7", "8"},
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.validation), func(t *testing.T) {
			table, ok := Locate(doc, DefaultTableID)
			require.True(t, ok)
			if diff := cmp.Diff(tt.want, Extract(table, tt.validation)); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtract_DirectCellsOnly(t *testing.T) {
	doc := `<table id="inr_rate"><tr>` +
		`<td>BTC</td>` +
		`<td><table><tr><td>inner</td></tr></table></td>` +
		`</tr></table>`

	table, ok := Locate(doc, DefaultTableID)
	require.True(t, ok)

	// the nested row is walked as its own row; its cell is not folded into the outer row
	got := Extract(table, PassThrough)
	assert.Equal(t, RecordSet{
		{"BTC", "inner"},
		{"inner"},
	}, got)
}

func TestExtract_NilTable(t *testing.T) {
	assert.True(t, Extract(nil, PassThrough).Empty())
}

func TestParseValidation(t *testing.T) {
	for in, want := range map[string]Validation{
		"":            PassThrough,
		"passthrough": PassThrough,
		" Strict ":    Strict,
		"PAD":         Pad,
	} {
		got, err := ParseValidation(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseValidation("reject")
	assert.Error(t, err)
}

func TestRecord_MissingFields(t *testing.T) {
	r := Record{"BTC"}
	assert.Equal(t, "BTC", r.Coin())
	assert.Empty(t, r.Price())
	assert.Empty(t, r.Change())
	assert.Empty(t, r.Volume())
}
