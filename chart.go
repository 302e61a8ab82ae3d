package watchfolio

// minPrice replaces zero prices, so that percentages of worthless
// instruments stay finite.
const minPrice = 0.00001

func clampPrice(p float64) float64 {
	if p == 0 {
		return minPrice
	}
	return p
}

// PercentageSeries returns h's price history as percent changes from its most
// recent price, oldest first. Its last point is therefore always 0.
func PercentageSeries(h Holding) []float64 {
	n := len(h.Prices)
	if n == 0 {
		return nil
	}
	baseline := clampPrice(h.Prices[0])
	series := make([]float64, n)
	for i, p := range h.Prices {
		series[n-1-i] = 100 * (clampPrice(p) - baseline) / baseline
	}
	return series
}

// CombinedPercentageSeries sums the percentage series of all holdings into a
// single chart series, oldest first.
//
// Series are aligned on their most recent point. The result is as long as the
// longest history; a shorter history does not contribute to the oldest
// points. The leftmost point is therefore as old as the longest history.
func CombinedPercentageSeries(holdings []Holding) []float64 {
	length := 0
	for _, h := range holdings {
		length = max(length, len(h.Prices))
	}
	if length == 0 {
		return nil
	}
	combined := make([]float64, length)
	for _, h := range holdings {
		if len(h.Prices) == 0 {
			continue
		}
		baseline := clampPrice(h.Prices[0])
		// h.Prices is most recent first, the i-th price goes to length-1-i.
		for i, p := range h.Prices {
			combined[length-1-i] += 100 * (clampPrice(p) - baseline) / baseline
		}
	}
	return combined
}
