package watchfolio

import (
	"math"

	"github.com/etnz/watchfolio/date"
)

// lot is a helper for test to create a purchase from consts.
func lot(price, shares float64, on string) Purchase {
	return NewPurchase(price, shares, date.MustParse(on))
}

// owned is a helper for test to create a holding bought at 'price' and now worth 'current'.
func owned(ticker string, price, shares, current float64) Holding {
	h := NewHolding(ticker, current)
	return h.WithPurchases(lot(price, shares, "2024-01-02"))
}

// near compares floats with some precision.
func near(a, b float64) bool {
	const precision = 1e-9
	return math.Abs(a-b) < precision
}

// tickers returns the tickers of holdings, in order.
func tickers(holdings []Holding) []string {
	var list []string
	for _, h := range holdings {
		list = append(list, h.Ticker)
	}
	return list
}
