package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/watchfolio/date"
	"github.com/etnz/watchfolio/logctx"
	"github.com/etnz/watchfolio/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	*app
	watchlists string
	date       string
	period     string
	html       string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the returns of watchlists" }
func (*reportCmd) Usage() string {
	return `wfo report [-w <names>] [-d <date>] [-p <period>] [-html <file>]

  Fetches the latest prices and displays, for each watchlist, the holdings'
  returns, the best and worst performers, the winners and losers and the
  trend of the watchlist.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.watchlists, "w", "", "Comma separated names of the watchlists to report, all if empty")
	f.StringVar(&c.date, "d", "", "Day the average annual return is computed on, today if empty")
	f.StringVar(&c.period, "p", "", "Also display the average return per period: daily, weekly, monthly, quarterly")
	f.StringVar(&c.html, "html", "", "Write the report as an HTML page to this file instead of printing it")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	today := c.today
	if c.date != "" {
		on, err := date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		today = func() date.Date { return on }
	}

	period := date.Yearly
	if c.period != "" {
		p, err := date.ParsePeriod(c.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
			return subcommands.ExitUsageError
		}
		period = p
	}

	ctx = logctx.WithRequestID(ctx)
	ws, err := c.loadWatchlists(names(c.watchlists)...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading watchlists: %v\n", err)
		return subcommands.ExitFailure
	}

	a := *c.app
	a.today = today
	reports, err := a.reports(ctx, ws)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating reports: %v\n", err)
		return subcommands.ExitFailure
	}

	var md strings.Builder
	for _, r := range reports {
		if period != date.Yearly {
			r.SetPeriod(period)
		}
		md.WriteString(renderer.ReportMarkdown(r))
		md.WriteString("\n")
	}

	if c.html == "" {
		c.printMarkdown(md.String())
		return subcommands.ExitSuccess
	}

	page, err := renderer.HTML(fmt.Sprintf("Watchlists on %s", today()), md.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering HTML: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.html, []byte(page), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.html, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(c.out, "Successfully wrote the report to %s\n", c.html)
	return subcommands.ExitSuccess
}
