package watchfolio

import (
	"math"

	"github.com/etnz/watchfolio/date"
)

// Returns are computed in full float64 precision. Undefined results (no cost
// basis, no elapsed time) are left as NaN or Inf: callers check them before
// display.

// Equity returns the current market value of the shares owned.
func Equity(h Holding) float64 {
	var equity float64
	for _, p := range h.Purchases {
		equity += p.Shares() * h.CurrentPrice
	}
	return equity
}

// CostBasis returns the amount paid for the shares owned.
func CostBasis(h Holding) float64 {
	var cost float64
	for _, p := range h.Purchases {
		cost += p.Cost()
	}
	return cost
}

// ReturnInDollars returns the gain (or loss) of the holding in its currency.
func ReturnInDollars(h Holding) float64 { return Equity(h) - CostBasis(h) }

// ReturnInPercentage returns the gain of the holding relative to its cost basis.
//
// It is NaN for a holding with no purchases.
func ReturnInPercentage(h Holding) float64 {
	return 100 * (Equity(h)/CostBasis(h) - 1)
}

// dayPrices returns the current and previous price points.
func dayPrices(h Holding) (current, previous float64, ok bool) {
	if len(h.Prices) < 2 {
		return 0, 0, false
	}
	return h.Prices[0], h.Prices[1], true
}

// DayReturnInDollars returns the last price move times the shares owned.
// ok is false when the price history has fewer than two points.
func DayReturnInDollars(h Holding) (ret float64, ok bool) {
	current, previous, ok := dayPrices(h)
	if !ok {
		return 0, false
	}
	return (current - previous) * h.Shares(), true
}

// DayReturnInPercentage returns the last price move in percent.
// ok is false when the price history has fewer than two points.
func DayReturnInPercentage(h Holding) (ret float64, ok bool) {
	current, previous, ok := dayPrices(h)
	if !ok {
		return 0, false
	}
	return 100 * (current/previous - 1), true
}

// TotalEquity returns the sum of the holdings' equity.
func TotalEquity(holdings []Holding) float64 {
	var total float64
	for _, h := range holdings {
		total += Equity(h)
	}
	return total
}

// TotalCostBasis returns the sum of the holdings' cost basis.
func TotalCostBasis(holdings []Holding) float64 {
	var total float64
	for _, h := range holdings {
		total += CostBasis(h)
	}
	return total
}

// TotalReturnInDollars returns the sum of the holdings' returns.
func TotalReturnInDollars(holdings []Holding) float64 {
	var total float64
	for _, h := range holdings {
		total += ReturnInDollars(h)
	}
	return total
}

// TotalReturnInPercentage returns the return of all holdings relative to the
// money invested, derived from total equity and total return.
//
// It is NaN or Inf when total equity equals total return, i.e. when nothing
// was invested.
func TotalReturnInPercentage(holdings []Holding) float64 {
	equity := TotalEquity(holdings)
	ret := TotalReturnInDollars(holdings)
	return 100 * (equity/(equity-ret) - 1)
}

// AverageAnnualReturnInPercentage returns the compound annual growth rate of
// the holdings, from the earliest purchase to now.
func AverageAnnualReturnInPercentage(holdings []Holding, now date.Date) float64 {
	return AverageReturnInPercentage(holdings, now, date.DaysPerYear)
}

// AverageReturnInPercentage is the compound growth rate of the holdings per
// period of daysPerPeriod days (30 for a monthly rate), from the earliest
// purchase to now.
//
// With no purchases at all it is NaN. When the earliest purchase is on day
// 'now' the elapsed time is zero and the rate degenerates (+Inf for a gain).
// A purchase after 'now' gives a negative elapsed time.
func AverageReturnInPercentage(holdings []Holding, now date.Date, daysPerPeriod float64) float64 {
	var furthest date.Date
	var initial float64
	for _, h := range holdings {
		for _, p := range h.Purchases {
			if furthest.IsZero() || p.Date().Before(furthest) {
				furthest = p.Date()
			}
			initial += p.Cost()
		}
	}
	periods := float64(now.DaysSince(furthest)) / daysPerPeriod
	return 100 * (math.Pow(TotalEquity(holdings)/initial, 1/periods) - 1)
}
