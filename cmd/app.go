// Package cmd implements the CLI application to track watchlists and a portfolio.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/watchfolio"
	"github.com/etnz/watchfolio/config"
	"github.com/etnz/watchfolio/date"
	"github.com/etnz/watchfolio/twelvedata"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var watchlistsFile = flag.String("watchlists", "watchlists.yaml", "Path to the watchlists file (YAML format)")
var plain = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")

// PriceSource fetches holdings and looks up securities.
type PriceSource interface {
	Holdings(ctx context.Context, symbols ...string) ([]watchfolio.Holding, error)
	Search(ctx context.Context, query string) ([]twelvedata.SearchResult, error)
}

// app holds what subcommands share.
type app struct {
	cfg        *config.Config
	prices     PriceSource
	watchlists *string
	plain      *bool
	out        io.Writer
	today      func() date.Date
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander, cfg *config.Config, prices PriceSource) {
	a := &app{
		cfg:        cfg,
		prices:     prices,
		watchlists: watchlistsFile,
		plain:      plain,
		out:        os.Stdout,
		today:      date.Today,
	}
	c.Register(&reportCmd{app: a}, "reports")
	c.Register(&exportCmd{app: a}, "reports")
	c.Register(&watchCmd{app: a}, "reports")
	c.Register(&searchCmd{app: a}, "securities")
	c.Register(&topicCmd{app: a}, "help")
}

// loadWatchlists reads the watchlists file, keeping only the named
// watchlists, in that order. All watchlists are kept if names is empty.
func (a *app) loadWatchlists(names ...string) ([]watchfolio.Watchlist, error) {
	ws, err := watchfolio.DecodeWatchlistsFile(*a.watchlists)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return ws, nil
	}
	selected := make([]watchfolio.Watchlist, 0, len(names))
	for _, name := range names {
		w, ok := watchfolio.FindWatchlist(ws, name)
		if !ok {
			return nil, fmt.Errorf("unknown watchlist %q in %s", name, *a.watchlists)
		}
		selected = append(selected, w)
	}
	return selected, nil
}

// reports fetches the prices of all the watchlists' tickers at once and
// returns the report of each watchlist.
func (a *app) reports(ctx context.Context, ws []watchfolio.Watchlist) ([]*watchfolio.Report, error) {
	fetched, err := a.prices.Holdings(ctx, watchfolio.Tickers(ws...)...)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch prices: %w", err)
	}
	on := a.today()
	reports := make([]*watchfolio.Report, 0, len(ws))
	for _, w := range ws {
		reports = append(reports, watchfolio.NewReport(w.Refresh(fetched), on))
	}
	return reports, nil
}

// printMarkdown prints markdown rendered for the terminal, or as is in plain mode.
func (a *app) printMarkdown(md string) {
	if !*a.plain {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
		if err == nil {
			if out, err := r.Render(md); err == nil {
				md = out
			}
		}
	}
	fmt.Fprint(a.out, md)
}

// names splits a comma separated list of watchlist names.
func names(list string) []string {
	var names []string
	for _, n := range strings.Split(list, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
