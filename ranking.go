package watchfolio

import (
	"cmp"
	"slices"
)

// Metric selects the return used to compare holdings.
type Metric int

const (
	Percentage Metric = iota // ReturnInPercentage
	Dollars                  // ReturnInDollars
)

func (m Metric) String() string {
	if m == Dollars {
		return "dollars"
	}
	return "percentage"
}

// of returns the metric value of h.
func (m Metric) of(h Holding) float64 {
	if m == Dollars {
		return ReturnInDollars(h)
	}
	return ReturnInPercentage(h)
}

// Selector chooses between the best and the worst holding.
type Selector int

const (
	Best Selector = iota
	Worst
)

func (s Selector) String() string {
	if s == Worst {
		return "worst"
	}
	return "best"
}

// better reports whether a strictly beats b for the selector.
func (s Selector) better(a, b float64) bool {
	if s == Worst {
		return a < b
	}
	return a > b
}

// BestOrWorst returns the holding with the highest (Best) or lowest (Worst)
// metric. On ties the first one wins. ok is false for no holdings.
func BestOrWorst(holdings []Holding, selector Selector, metric Metric) (h Holding, ok bool) {
	if len(holdings) == 0 {
		return Holding{}, false
	}
	h = holdings[0]
	value := metric.of(h)
	for _, candidate := range holdings[1:] {
		if v := metric.of(candidate); selector.better(v, value) {
			h, value = candidate, v
		}
	}
	return h, true
}

// rank returns the indexes of holdings sorted by decreasing metric. The sort
// is stable and NaN values come last.
func rank(holdings []Holding, metric Metric) []int {
	values := make([]float64, len(holdings))
	order := make([]int, len(holdings))
	for i, h := range holdings {
		values[i] = metric.of(h)
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return cmp.Compare(values[b], values[a]) })
	return order
}

// Ranked returns a copy of holdings ordered by decreasing metric, the highest
// return first. Holdings with equal returns keep their relative order.
func Ranked(holdings []Holding, metric Metric) []Holding {
	ranked := make([]Holding, 0, len(holdings))
	for _, i := range rank(holdings, metric) {
		ranked = append(ranked, holdings[i])
	}
	return ranked
}

// podium is the maximum number of winners and of losers.
const podium = 3

// WinnersAndLosers returns the holdings that performed best and worst both in
// percentage and in dollars.
//
// Each holding scores the sum of its positions in the percentage and the
// dollar rankings, lower is better. Ties are broken by ticker, then by input
// order. The best three by score are winners if they made money, the worst
// three are losers if they lost money, listed worst first. A flat holding is
// neither.
func WinnersAndLosers(holdings []Holding) (winners, losers []Holding) {
	score := make([]int, len(holdings))
	for position, i := range rank(holdings, Percentage) {
		score[i] += position
	}
	for position, i := range rank(holdings, Dollars) {
		score[i] += position
	}

	order := make([]int, len(holdings))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Or(
			cmp.Compare(score[a], score[b]),
			cmp.Compare(holdings[a].Ticker, holdings[b].Ticker),
			cmp.Compare(a, b),
		)
	})

	for _, i := range order[:min(podium, len(order))] {
		if ReturnInDollars(holdings[i]) > 0 {
			winners = append(winners, holdings[i])
		}
	}
	for j := len(order) - 1; j >= max(0, len(order)-podium); j-- {
		if i := order[j]; ReturnInDollars(holdings[i]) < 0 {
			losers = append(losers, holdings[i])
		}
	}
	return winners, losers
}
