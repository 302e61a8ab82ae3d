package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/watchfolio"
	"github.com/etnz/watchfolio/logctx"
	"github.com/etnz/watchfolio/renderer"
	"github.com/etnz/watchfolio/twelvedata"
	"github.com/google/subcommands"
)

type searchCmd struct {
	*app
	all bool
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search for securities to watch" }
func (*searchCmd) Usage() string {
	return `wfo search [-all] <search term>

  Searches securities by symbol or name. Only crypto currencies and
  securities listed on the supported exchanges (WATCHFOLIO_EXCHANGES) are
  displayed, unless -all is set.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Display results on any exchange")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	results, err := c.prices.Search(logctx.WithRequestID(ctx), query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching securities: %v\n", err)
		return subcommands.ExitFailure
	}
	if !c.all {
		results = twelvedata.FilterSearch(results, c.cfg.Exchanges)
	}

	holdings := make([]watchfolio.Holding, 0, len(results))
	for _, r := range results {
		holdings = append(holdings, r.Holding())
	}
	c.printMarkdown(renderer.SearchMarkdown(query, holdings))
	return subcommands.ExitSuccess
}
