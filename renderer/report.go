package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/watchfolio"
	"github.com/etnz/watchfolio/date"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders a watchlist report as markdown.
func ReportMarkdown(r *watchfolio.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s on %s", r.Name, r.Date))

	owned := false
	for _, row := range r.Rows {
		owned = owned || row.Owned()
	}

	if owned {
		doc.H2("Summary")
		summary := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{
				md.Bold("Total Equity"),
				md.Bold(r.Amount(r.TotalEquity).String()),
			},
			Rows: [][]string{
				{"Cost Basis", r.Amount(r.TotalCostBasis).String()},
				{"Total Return", fmt.Sprintf("%s (%s)", r.Amount(r.TotalReturnInDollars).SignedString(), r.TotalReturnInPercentage.SignedString())},
				{"Average Annual Return", r.AverageAnnualReturn.SignedString()},
			},
		}
		if r.Period != date.Yearly {
			summary.Rows = append(summary.Rows, []string{fmt.Sprintf("Average Return (%s)", r.Period), r.AverageReturn.SignedString()})
		}
		doc.Table(summary)
	}

	if len(r.Rows) > 0 {
		doc.H2("Holdings")
		if owned {
			doc.Table(ownedTable(r.Rows))
		} else {
			doc.Table(watchedTable(r.Rows))
		}
	}

	if r.BestPercentage != nil {
		doc.H2("Best and Worst")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignLeft,
			},
			Header: []string{"", "Percentage", "Dollars"},
			Rows: [][]string{
				{"Best", percentageOf(*r.BestPercentage), dollarsOf(*r.BestDollars)},
				{"Worst", percentageOf(*r.WorstPercentage), dollarsOf(*r.WorstDollars)},
			},
		})
	}

	if len(r.Winners) > 0 {
		doc.H2("Winners")
		doc.BulletList(performances(r.Winners)...)
	}
	if len(r.Losers) > 0 {
		doc.H2("Losers")
		doc.BulletList(performances(r.Losers)...)
	}

	if len(r.Chart) > 0 {
		doc.H2("Trend")
		doc.PlainText(fmt.Sprintf("`%s` over %d points", Sparkline(r.Chart), len(r.Chart)))
	}

	return doc.String()
}

func ownedTable(rows []watchfolio.HoldingRow) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Price", "Day", "Shares", "Equity", "Return", "Return %"},
		Rows:   [][]string{},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Ticker,
			row.Amount(row.CurrentPrice).String(),
			dayChange(row),
			fmt.Sprintf("%g", row.Shares()),
			row.Amount(row.Equity).String(),
			row.Amount(row.ReturnInDollars).SignedString(),
			row.ReturnInPercentage.SignedString(),
		})
	}
	return table
}

func watchedTable(rows []watchfolio.HoldingRow) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Ticker", "Price", "Day", "Trend"},
		Rows:   [][]string{},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Ticker,
			row.Amount(row.CurrentPrice).String(),
			dayChange(row),
			Sparkline(watchfolio.PercentageSeries(row.Holding)),
		})
	}
	return table
}

func dayChange(row watchfolio.HoldingRow) string {
	if !row.HasDayReturn {
		return "n/a"
	}
	return row.DayReturnInPercentage.SignedString()
}

func percentageOf(h watchfolio.Holding) string {
	return fmt.Sprintf("%s %s", h.Ticker, watchfolio.Percent(watchfolio.ReturnInPercentage(h)).SignedString())
}

func dollarsOf(h watchfolio.Holding) string {
	a := watchfolio.Amount{Value: watchfolio.ReturnInDollars(h), Currency: h.Currency}
	return fmt.Sprintf("%s %s", h.Ticker, a.SignedString())
}

// performances describes each holding's return in dollars and in percent.
func performances(holdings []watchfolio.Holding) []string {
	lines := make([]string, 0, len(holdings))
	for _, h := range holdings {
		a := watchfolio.Amount{Value: watchfolio.ReturnInDollars(h), Currency: h.Currency}
		p := watchfolio.Percent(watchfolio.ReturnInPercentage(h))
		lines = append(lines, fmt.Sprintf("%s %s (%s)", md.Bold(h.Ticker), a.SignedString(), p.SignedString()))
	}
	return lines
}

// SearchMarkdown renders the securities found by a search.
func SearchMarkdown(query string, holdings []watchfolio.Holding) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Search results for %q", query))
	if len(holdings) == 0 {
		doc.PlainText("No supported security found.")
		return doc.String()
	}
	table := md.TableSet{
		Header: []string{"Ticker", "Name", "Exchange", "Currency", "Type"},
		Rows:   [][]string{},
	}
	for _, h := range holdings {
		table.Rows = append(table.Rows, []string{h.Ticker, h.Instrument, h.Exchange, h.Currency, h.InstrumentType})
	}
	doc.Table(table)
	return doc.String()
}
