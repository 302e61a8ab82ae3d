package twelvedata

import (
	"slices"
	"testing"
)

func series(symbol string, opens ...string) TimeSeries {
	ts := TimeSeries{Meta: Meta{Symbol: symbol, Currency: "USD", Exchange: "NASDAQ", Type: "Common Stock"}, Status: "ok"}
	for _, o := range opens {
		ts.Values = append(ts.Values, Value{Open: o, Close: o})
	}
	return ts
}

func TestNewHolding(t *testing.T) {
	tests := []struct {
		name    string
		ts      TimeSeries
		limit   int
		ok      bool
		prices  []float64
		current float64
	}{
		{
			name:    "all values",
			ts:      series("aapl", "10", "9.5", "9"),
			limit:   30,
			ok:      true,
			prices:  []float64{10, 9.5, 9},
			current: 10,
		},
		{
			name:    "limit",
			ts:      series("AAPL", "10", "9.5", "9"),
			limit:   2,
			ok:      true,
			prices:  []float64{10, 9.5},
			current: 10,
		},
		{
			name:    "non numeric values count toward the limit",
			ts:      series("AAPL", "10", "n/a", "9"),
			limit:   2,
			ok:      true,
			prices:  []float64{10},
			current: 10,
		},
		{
			name:    "no limit",
			ts:      series("AAPL", "1", "2", "3", "4"),
			limit:   0,
			ok:      true,
			prices:  []float64{1, 2, 3, 4},
			current: 1,
		},
		{
			name:  "no values",
			ts:    series("AAPL"),
			limit: 30,
		},
		{
			name:  "no numeric values",
			ts:    series("AAPL", "", "x"),
			limit: 30,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := NewHolding(tt.ts, tt.limit)
			if ok != tt.ok {
				t.Fatalf("NewHolding() ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if h.Ticker != "AAPL" {
				t.Errorf("NewHolding().Ticker = %q, want %q", h.Ticker, "AAPL")
			}
			if !slices.Equal(h.Prices, tt.prices) {
				t.Errorf("NewHolding().Prices = %v, want %v", h.Prices, tt.prices)
			}
			if h.CurrentPrice != tt.current {
				t.Errorf("NewHolding().CurrentPrice = %v, want %v", h.CurrentPrice, tt.current)
			}
			if h.Owned() {
				t.Error("NewHolding() returned an owned holding")
			}
			if h.Currency != "USD" || h.Exchange != "NASDAQ" || h.InstrumentType != "Common Stock" {
				t.Errorf("NewHolding() meta = %q %q %q", h.Currency, h.Exchange, h.InstrumentType)
			}
		})
	}
}

func TestNewHolding_CurrentPriceIsLatestClose(t *testing.T) {
	ts := series("MSFT", "100", "90")
	ts.Values[0].Close = "105.25"
	h, ok := NewHolding(ts, 30)
	if !ok {
		t.Fatal("NewHolding() returned no holding")
	}
	if h.CurrentPrice != 105.25 {
		t.Errorf("NewHolding().CurrentPrice = %v, want 105.25", h.CurrentPrice)
	}
	if h.Prices[0] != 100 {
		t.Errorf("NewHolding().Prices[0] = %v, want 100", h.Prices[0])
	}
}

func TestNewHoldings(t *testing.T) {
	got := NewHoldings(map[string]TimeSeries{
		"MSFT": series("", "3", "2"),
		"AAPL": series("AAPL", "1"),
		"NONE": series("NONE"),
	}, 30)

	var tickers []string
	for _, h := range got {
		tickers = append(tickers, h.Ticker)
	}
	if want := []string{"AAPL", "MSFT"}; !slices.Equal(tickers, want) {
		t.Errorf("NewHoldings() tickers = %v, want %v", tickers, want)
	}
}

func TestFilterSearch(t *testing.T) {
	results := []SearchResult{
		{Symbol: "AAPL", Exchange: "NASDAQ", InstrumentType: "Common Stock"},
		{Symbol: "AAPL", Exchange: "BMV", InstrumentType: "Common Stock"},
		{Symbol: "BTC/USD", Exchange: "Coinbase Pro", InstrumentType: DigitalCurrency},
		{Symbol: "SPY", Exchange: "NYSE ARCA", InstrumentType: "ETF"},
	}
	tests := []struct {
		exchanges []string
		want      []string
	}{
		{nil, []string{"AAPL@NASDAQ", "BTC/USD@Coinbase Pro", "SPY@NYSE ARCA"}},
		{[]string{"BMV"}, []string{"AAPL@BMV", "BTC/USD@Coinbase Pro"}},
	}
	for _, tt := range tests {
		var symbols []string
		for _, r := range FilterSearch(results, tt.exchanges) {
			symbols = append(symbols, r.Symbol+"@"+r.Exchange)
		}
		if !slices.Equal(symbols, tt.want) {
			t.Errorf("FilterSearch(%q) = %v, want %v", tt.exchanges, symbols, tt.want)
		}
	}
}

func TestSearchResult_Holding(t *testing.T) {
	r := SearchResult{Symbol: "spy", InstrumentName: "SPDR S&P 500 ETF Trust", Exchange: "NYSE ARCA", Currency: "USD", InstrumentType: "ETF"}
	h := r.Holding()
	if h.Ticker != "SPY" || h.Instrument != r.InstrumentName || h.Exchange != r.Exchange || h.Currency != "USD" {
		t.Errorf("Holding() = %+v", h)
	}
	if len(h.Prices) != 0 || h.Owned() {
		t.Errorf("Holding() should have no prices nor purchases, got %+v", h)
	}
}
