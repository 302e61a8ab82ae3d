package watchfolio

import (
	"cmp"
	"slices"
)

// Watchlist is a named group of holdings.
//
// Among all watchlists, at most one is the portfolio: the user's real
// holdings. That is enforced by whoever loads watchlists (see
// DecodeWatchlists), not re-validated here.
type Watchlist struct {
	Name      string
	Owned     bool
	Portfolio bool
	Holdings  []Holding
}

// FindPortfolio returns the watchlist flagged as the portfolio.
func FindPortfolio(watchlists []Watchlist) (Watchlist, bool) {
	for _, w := range watchlists {
		if w.Portfolio {
			return w, true
		}
	}
	return Watchlist{}, false
}

// FindWatchlist returns the watchlist called name.
func FindWatchlist(watchlists []Watchlist, name string) (Watchlist, bool) {
	for _, w := range watchlists {
		if w.Name == name {
			return w, true
		}
	}
	return Watchlist{}, false
}

// Tickers returns the sorted set of tickers across all watchlists.
func Tickers(watchlists ...Watchlist) []string {
	var tickers []string
	for _, w := range watchlists {
		for _, h := range w.Holdings {
			tickers = append(tickers, h.Ticker)
		}
	}
	slices.Sort(tickers)
	return slices.Compact(tickers)
}

// SortedByTicker returns a copy of holdings in alphabetical ticker order.
func SortedByTicker(holdings []Holding) []Holding {
	sorted := slices.Clone(holdings)
	slices.SortStableFunc(sorted, func(a, b Holding) int { return cmp.Compare(a.Ticker, b.Ticker) })
	return sorted
}

// AttachPurchases returns a copy of fetched where each holding gets the
// purchases of the holding with the same ticker in source.
//
// Holdings in source whose ticker was not fetched (delisted, stale) are
// dropped.
func AttachPurchases(fetched, source []Holding) []Holding {
	lots := make(map[string][]Purchase, len(source))
	for _, h := range source {
		lots[h.Ticker] = append(lots[h.Ticker], h.Purchases...)
	}
	result := make([]Holding, 0, len(fetched))
	for _, h := range fetched {
		if purchases, ok := lots[h.Ticker]; ok {
			h = h.WithPurchases(purchases...)
		}
		result = append(result, h)
	}
	return result
}

// Refresh returns w with its holdings replaced by the fetched ones, keeping
// the purchases recorded in w.
func (w Watchlist) Refresh(fetched []Holding) Watchlist {
	mine := make(map[string]bool, len(w.Holdings))
	for _, h := range w.Holdings {
		mine[h.Ticker] = true
	}
	var relevant []Holding
	for _, h := range fetched {
		if mine[h.Ticker] {
			relevant = append(relevant, h)
		}
	}
	w.Holdings = AttachPurchases(relevant, w.Holdings)
	return w
}
