package watchfolio

import (
	"math"
	"slices"
	"testing"
)

// sample returns holdings with well known returns.
func sample() []Holding {
	return []Holding{
		owned("A", 100, 1, 150),   // +50$   +50%
		owned("B", 10, 10, 12),    // +20$   +20%
		owned("C", 1000, 1, 1100), // +100$  +10%
		owned("D", 100, 1, 100),   // 0$     0%
		owned("E", 100, 1, 90),    // -10$   -10%
		owned("F", 50, 2, 25),     // -50$   -50%
		owned("G", 1000, 1, 800),  // -200$  -20%
	}
}

func TestBestOrWorst(t *testing.T) {
	tests := []struct {
		selector Selector
		metric   Metric
		want     string
	}{
		{Best, Percentage, "A"},
		{Best, Dollars, "C"},
		{Worst, Percentage, "F"},
		{Worst, Dollars, "G"},
	}
	for _, tt := range tests {
		got, ok := BestOrWorst(sample(), tt.selector, tt.metric)
		if !ok {
			t.Errorf("BestOrWorst(%v, %v) ok = false, want true", tt.selector, tt.metric)
			continue
		}
		if got.Ticker != tt.want {
			t.Errorf("BestOrWorst(%v, %v) = %s, want %s", tt.selector, tt.metric, got.Ticker, tt.want)
		}
	}
}

func TestBestOrWorst_FirstWinsOnTies(t *testing.T) {
	holdings := []Holding{
		owned("X", 100, 1, 120),
		owned("Y", 100, 1, 120),
		owned("Z", 100, 1, 80),
		owned("W", 100, 1, 80),
	}
	if got, _ := BestOrWorst(holdings, Best, Percentage); got.Ticker != "X" {
		t.Errorf("BestOrWorst(Best) = %s, want X", got.Ticker)
	}
	if got, _ := BestOrWorst(holdings, Worst, Dollars); got.Ticker != "Z" {
		t.Errorf("BestOrWorst(Worst) = %s, want Z", got.Ticker)
	}
}

func TestBestOrWorst_Empty(t *testing.T) {
	if _, ok := BestOrWorst(nil, Best, Percentage); ok {
		t.Error("BestOrWorst(nil) ok = true, want false")
	}
}

func TestRanked(t *testing.T) {
	tests := []struct {
		metric Metric
		want   []string
	}{
		{Percentage, []string{"A", "B", "C", "D", "E", "G", "F"}},
		{Dollars, []string{"C", "A", "B", "D", "E", "F", "G"}},
	}
	for _, tt := range tests {
		if got := tickers(Ranked(sample(), tt.metric)); !slices.Equal(got, tt.want) {
			t.Errorf("Ranked(%v) = %v, want %v", tt.metric, got, tt.want)
		}
	}
}

func TestRanked_Properties(t *testing.T) {
	input := append(sample(),
		owned("H", 100, 1, 150), // same as A, must stay after it
		NewHolding("I", 10),     // NaN percentage
	)
	for _, metric := range []Metric{Percentage, Dollars} {
		ranked := Ranked(input, metric)

		// a permutation of the input
		got, want := tickers(ranked), tickers(input)
		slices.Sort(got)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			t.Errorf("Ranked(%v) tickers = %v, want a permutation of %v", metric, got, want)
		}

		// non-increasing, NaN last
		for i := 1; i < len(ranked); i++ {
			prev, cur := metric.of(ranked[i-1]), metric.of(ranked[i])
			if math.IsNaN(cur) {
				continue
			}
			if math.IsNaN(prev) || cur > prev {
				t.Errorf("Ranked(%v)[%d] = %v after %v", metric, i, cur, prev)
			}
		}

		// stable
		if a, h := slices.Index(tickers(ranked), "A"), slices.Index(tickers(ranked), "H"); a > h {
			t.Errorf("Ranked(%v) puts H before A despite equal returns", metric)
		}
	}
	if !slices.Equal(tickers(input[:7]), tickers(sample())) {
		t.Error("Ranked() modified its input")
	}
}

func TestWinnersAndLosers(t *testing.T) {
	// scores: A 0+1, C 2+0, B 1+2, D 3+3, E 4+4, F 6+5, G 5+6
	winners, losers := WinnersAndLosers(sample())
	if got, want := tickers(winners), []string{"A", "C", "B"}; !slices.Equal(got, want) {
		t.Errorf("WinnersAndLosers() winners = %v, want %v", got, want)
	}
	// F and G tie on score 11, F comes first by ticker so G is the worst.
	if got, want := tickers(losers), []string{"G", "F", "E"}; !slices.Equal(got, want) {
		t.Errorf("WinnersAndLosers() losers = %v, want %v", got, want)
	}
}

func TestWinnersAndLosers_Filtered(t *testing.T) {
	tests := []struct {
		name        string
		holdings    []Holding
		wantWinners []string
		wantLosers  []string
	}{
		{
			name:     "empty",
			holdings: nil,
		},
		{
			name:       "flat and losing",
			holdings:   []Holding{owned("D", 100, 1, 100), owned("E", 100, 1, 90)},
			wantLosers: []string{"E"},
		},
		{
			name:        "all winning",
			holdings:    []Holding{owned("A", 100, 1, 150), owned("B", 100, 1, 110)},
			wantWinners: []string{"A", "B"},
		},
		{
			name:     "watched only",
			holdings: []Holding{NewHolding("BTC/USD", 60000), NewHolding("ETH/USD", 3000)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			winners, losers := WinnersAndLosers(tt.holdings)
			if got := tickers(winners); !slices.Equal(got, tt.wantWinners) {
				t.Errorf("winners = %v, want %v", got, tt.wantWinners)
			}
			if got := tickers(losers); !slices.Equal(got, tt.wantLosers) {
				t.Errorf("losers = %v, want %v", got, tt.wantLosers)
			}
		})
	}
}

func TestWinnersAndLosers_Properties(t *testing.T) {
	inputs := [][]Holding{
		sample(),
		sample()[2:5],
		append(sample(), owned("H", 100, 1, 150), owned("I", 100, 1, 100)),
	}
	for _, holdings := range inputs {
		winners, losers := WinnersAndLosers(holdings)
		if len(winners) > 3 || len(losers) > 3 {
			t.Errorf("WinnersAndLosers(%v) returned %d winners and %d losers", tickers(holdings), len(winners), len(losers))
		}
		for _, w := range winners {
			if ReturnInDollars(w) <= 0 {
				t.Errorf("winner %s returned %v", w.Ticker, ReturnInDollars(w))
			}
			if slices.Contains(tickers(losers), w.Ticker) {
				t.Errorf("%s is both a winner and a loser", w.Ticker)
			}
		}
		for _, l := range losers {
			if ReturnInDollars(l) >= 0 {
				t.Errorf("loser %s returned %v", l.Ticker, ReturnInDollars(l))
			}
		}

		// deterministic
		again, againLosers := WinnersAndLosers(holdings)
		if !slices.Equal(tickers(again), tickers(winners)) || !slices.Equal(tickers(againLosers), tickers(losers)) {
			t.Errorf("WinnersAndLosers(%v) is not deterministic", tickers(holdings))
		}
	}
}
