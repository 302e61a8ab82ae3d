package watchfolio

import (
	"github.com/etnz/watchfolio/date"
)

// Report is the analytics of a watchlist on a given date, ready to be rendered.
type Report struct {
	Date      date.Date
	Name      string
	Portfolio bool
	Currency  string // currency of the totals, empty if holdings mix currencies

	Rows []HoldingRow // in ticker order

	TotalEquity             float64
	TotalCostBasis          float64
	TotalReturnInDollars    float64
	TotalReturnInPercentage Percent
	AverageAnnualReturn     Percent

	// AverageReturn is the compound growth rate per Period, Yearly unless
	// changed with SetPeriod.
	Period        date.Period
	AverageReturn Percent

	// Best and worst holdings per metric, nil when there is no holding.
	BestPercentage, WorstPercentage *Holding
	BestDollars, WorstDollars       *Holding

	Winners, Losers []Holding

	// Chart is the combined percentage series of all holdings, oldest first.
	Chart []float64
}

// HoldingRow holds the returns of a single holding.
type HoldingRow struct {
	Holding
	Equity                float64
	CostBasis             float64
	ReturnInDollars       float64
	ReturnInPercentage    Percent
	DayReturnInDollars    float64
	DayReturnInPercentage Percent
	HasDayReturn          bool
}

// NewHoldingRow computes the returns of h.
func NewHoldingRow(h Holding) HoldingRow {
	row := HoldingRow{
		Holding:            h,
		Equity:             Equity(h),
		CostBasis:          CostBasis(h),
		ReturnInDollars:    ReturnInDollars(h),
		ReturnInPercentage: Percent(ReturnInPercentage(h)),
	}
	if d, ok := DayReturnInDollars(h); ok {
		p, _ := DayReturnInPercentage(h)
		row.DayReturnInDollars, row.DayReturnInPercentage, row.HasDayReturn = d, Percent(p), true
	}
	return row
}

// Amount returns v in the row's currency.
func (r HoldingRow) Amount(v float64) Amount { return Amount{Value: v, Currency: r.Currency} }

// Amount returns v in the report's currency.
func (r *Report) Amount(v float64) Amount { return Amount{Value: v, Currency: r.Currency} }

// NewReport computes the report of watchlist w as of day 'on'.
func NewReport(w Watchlist, on date.Date) *Report {
	holdings := SortedByTicker(w.Holdings)
	r := &Report{
		Date:                    on,
		Name:                    w.Name,
		Portfolio:               w.Portfolio,
		Currency:                commonCurrency(holdings),
		TotalEquity:             TotalEquity(holdings),
		TotalCostBasis:          TotalCostBasis(holdings),
		TotalReturnInDollars:    TotalReturnInDollars(holdings),
		TotalReturnInPercentage: Percent(TotalReturnInPercentage(holdings)),
		AverageAnnualReturn:     Percent(AverageAnnualReturnInPercentage(holdings, on)),
		Period:                  date.Yearly,
		Chart:                   CombinedPercentageSeries(holdings),
	}
	for _, h := range holdings {
		r.Rows = append(r.Rows, NewHoldingRow(h))
	}

	// Rankings only make sense among owned holdings.
	var owned []Holding
	for _, h := range holdings {
		if h.Owned() {
			owned = append(owned, h)
		}
	}
	r.BestPercentage = pick(owned, Best, Percentage)
	r.WorstPercentage = pick(owned, Worst, Percentage)
	r.BestDollars = pick(owned, Best, Dollars)
	r.WorstDollars = pick(owned, Worst, Dollars)
	r.Winners, r.Losers = WinnersAndLosers(owned)
	r.AverageReturn = r.AverageAnnualReturn
	return r
}

// SetPeriod computes the average return per period p.
func (r *Report) SetPeriod(p date.Period) {
	holdings := make([]Holding, 0, len(r.Rows))
	for _, row := range r.Rows {
		holdings = append(holdings, row.Holding)
	}
	r.Period = p
	r.AverageReturn = Percent(AverageReturnInPercentage(holdings, r.Date, p.Days()))
}

func pick(holdings []Holding, s Selector, m Metric) *Holding {
	h, ok := BestOrWorst(holdings, s, m)
	if !ok {
		return nil
	}
	return &h
}

// commonCurrency returns the currency shared by all holdings, or "" if they differ.
func commonCurrency(holdings []Holding) string {
	var cur string
	for i, h := range holdings {
		if i == 0 {
			cur = h.Currency
			continue
		}
		if h.Currency != cur {
			return ""
		}
	}
	return cur
}
