package export

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/watchfolio"
	"github.com/etnz/watchfolio/date"
	"github.com/xuri/excelize/v2"
)

func TestXLSX(t *testing.T) {
	on := date.New(2024, 3, 4)
	aapl := watchfolio.NewHolding("AAPL", 120, 120, 110).
		WithPurchases(watchfolio.NewPurchase(100, 10, date.New(2023, 3, 4)))
	msft := watchfolio.NewHolding("MSFT", 150, 150)
	reports := []*watchfolio.Report{
		watchfolio.NewReport(watchfolio.Watchlist{Name: "Portfolio", Portfolio: true, Owned: true, Holdings: []watchfolio.Holding{aapl}}, on),
		watchfolio.NewReport(watchfolio.Watchlist{Name: "Tech: growth/value", Holdings: []watchfolio.Holding{msft, aapl}}, on),
	}

	content, err := XLSX(context.Background(), reports)
	if err != nil {
		t.Fatalf("XLSX() unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("cannot open generated xlsx: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if want := []string{"1. Portfolio", "2. Tech_ growth_value"}; !slices.Equal(sheets, want) {
		t.Fatalf("sheets = %v, want %v", sheets, want)
	}

	rows, err := f.GetRows("1. Portfolio")
	if err != nil {
		t.Fatalf("GetRows() unexpected error: %v", err)
	}
	if len(rows) < 3 {
		t.Fatalf("portfolio sheet has %d rows, want at least 3: %v", len(rows), rows)
	}
	if rows[0][0] != "Ticker" || rows[0][len(rows[0])-1] != "Return %" {
		t.Errorf("header = %v", rows[0])
	}
	if want := []string{"AAPL", "", "", "10", "120", "9.09", "1200", "1000", "200", "20"}; !slices.Equal(rows[1], want) {
		t.Errorf("AAPL row = %q, want %q", rows[1], want)
	}

	var total []string
	for _, row := range rows {
		if len(row) > 0 && row[0] == "Total Equity" {
			total = row
		}
	}
	if !slices.Equal(total, []string{"Total Equity", "1200"}) {
		t.Errorf("Total Equity row = %q", total)
	}

	rows, err = f.GetRows("2. Tech_ growth_value")
	if err != nil {
		t.Fatalf("GetRows() unexpected error: %v", err)
	}
	// Rows are in ticker order.
	if rows[1][0] != "AAPL" || rows[2][0] != "MSFT" {
		t.Errorf("watchlist tickers = %q, %q", rows[1][0], rows[2][0])
	}
}

func TestXLSX_NoReport(t *testing.T) {
	if _, err := XLSX(context.Background(), nil); err == nil {
		t.Error("XLSX(nil) expected an error")
	}
}

func TestSheetName(t *testing.T) {
	r := &watchfolio.Report{Name: strings.Repeat("x", 40)}
	if got := SheetName(r, 12); len(got) != maxSheetName || !strings.HasPrefix(got, "12. x") {
		t.Errorf("SheetName() = %q", got)
	}
}
