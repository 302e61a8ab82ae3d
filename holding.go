package watchfolio

import "strings"

// Holding is a tracked security: its latest price, its price history and,
// for owned securities, the lots bought.
//
// A Holding with no purchases is only watched for its growth. Return
// calculations on such a holding yield NaN or no result instead of panicking.
type Holding struct {
	Ticker       string
	CurrentPrice float64
	// Prices is the price history in the order delivered by the price
	// provider: most recent first.
	Prices    []float64
	Purchases []Purchase

	Instrument     string // instrument name, e.g. "Apple Inc"
	Exchange       string
	Currency       string
	InstrumentType string // e.g. "Common Stock" or "Digital Currency"
}

// NewHolding returns a growth-only holding for the given ticker.
func NewHolding(ticker string, currentPrice float64, prices ...float64) Holding {
	return Holding{
		Ticker:       strings.ToUpper(ticker),
		CurrentPrice: currentPrice,
		Prices:       prices,
	}
}

// Owned reports whether at least one lot was bought.
func (h Holding) Owned() bool { return len(h.Purchases) > 0 }

// Shares returns the total number of shares owned.
func (h Holding) Shares() float64 {
	var total float64
	for _, p := range h.Purchases {
		total += p.Shares()
	}
	return total
}

// WithPurchases returns a copy of h owning purchases.
func (h Holding) WithPurchases(purchases ...Purchase) Holding {
	h.Purchases = append([]Purchase(nil), purchases...)
	return h
}
