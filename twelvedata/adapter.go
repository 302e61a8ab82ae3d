package twelvedata

import (
	"slices"
	"strings"

	"github.com/etnz/watchfolio"
	"github.com/shopspring/decimal"
)

// parsePrice parses a decimal string price.
func parsePrice(s string) (float64, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return d.InexactFloat64(), true
}

// NewHolding maps a time series into a growth-only holding.
//
// Open prices become the price history and the close of the most recent
// value becomes the current price. At most limit values are consumed (no
// limit if limit <= 0); a value with an unparsable open price is skipped but
// still counts toward the limit. ok is false when no price could be read.
func NewHolding(ts TimeSeries, limit int) (h watchfolio.Holding, ok bool) {
	values := ts.Values
	if limit > 0 && len(values) > limit {
		values = values[:limit]
	}

	var prices []float64
	for _, v := range values {
		if p, ok := parsePrice(v.Open); ok {
			prices = append(prices, p)
		}
	}
	if len(prices) == 0 {
		return watchfolio.Holding{}, false
	}

	h = watchfolio.NewHolding(ts.Meta.Symbol, 0, prices...)
	if p, ok := parsePrice(values[0].Close); ok {
		h.CurrentPrice = p
	}
	h.Currency = ts.Meta.Currency
	h.Exchange = ts.Meta.Exchange
	h.InstrumentType = ts.Meta.Type
	return h, true
}

// NewHoldings maps each time series into a holding, in symbol order, skipping
// the ones without prices.
func NewHoldings(series map[string]TimeSeries, limit int) []watchfolio.Holding {
	symbols := make([]string, 0, len(series))
	for s := range series {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)

	holdings := make([]watchfolio.Holding, 0, len(series))
	for _, s := range symbols {
		ts := series[s]
		if ts.Meta.Symbol == "" {
			ts.Meta.Symbol = s
		}
		if h, ok := NewHolding(ts, limit); ok {
			holdings = append(holdings, h)
		}
	}
	return holdings
}

// FilterSearch keeps the search results that can be tracked: crypto
// currencies and securities listed on one of the exchanges, DefaultExchanges
// if none are given.
func FilterSearch(results []SearchResult, exchanges []string) []SearchResult {
	if len(exchanges) == 0 {
		exchanges = DefaultExchanges
	}
	var kept []SearchResult
	for _, r := range results {
		if r.InstrumentType == DigitalCurrency || slices.Contains(exchanges, r.Exchange) {
			kept = append(kept, r)
		}
	}
	return kept
}

// Holding returns a growth-only holding describing the search result, with
// no prices yet.
func (r SearchResult) Holding() watchfolio.Holding {
	h := watchfolio.NewHolding(r.Symbol, 0)
	h.Instrument = r.InstrumentName
	h.Exchange = r.Exchange
	h.Currency = r.Currency
	h.InstrumentType = r.InstrumentType
	return h
}
