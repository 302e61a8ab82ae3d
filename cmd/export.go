package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/watchfolio/export"
	"github.com/etnz/watchfolio/logctx"
	"github.com/google/subcommands"
)

type exportCmd struct {
	*app
	watchlists string
	output     string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export watchlist reports to a spreadsheet" }
func (*exportCmd) Usage() string {
	return `wfo export [-w <names>] -o <file.xlsx>

  Writes an XLSX workbook with one sheet per watchlist report.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.watchlists, "w", "", "Comma separated names of the watchlists to export, all if empty")
	f.StringVar(&c.output, "o", "watchlists.xlsx", "Path of the XLSX file to write")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" {
		fmt.Fprintln(os.Stderr, "Error: an output file is required.")
		return subcommands.ExitUsageError
	}
	ctx = logctx.WithRequestID(ctx)

	ws, err := c.loadWatchlists(names(c.watchlists)...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading watchlists: %v\n", err)
		return subcommands.ExitFailure
	}
	reports, err := c.reports(ctx, ws)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating reports: %v\n", err)
		return subcommands.ExitFailure
	}

	content, err := export.XLSX(ctx, reports)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting reports: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.output, content, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(c.out, "Successfully exported %d reports to %s\n", len(reports), c.output)
	return subcommands.ExitSuccess
}
