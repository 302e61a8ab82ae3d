package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/etnz/watchfolio/renderer"
	"github.com/etnz/watchfolio/scheduler"
	"github.com/google/subcommands"
)

type watchCmd struct {
	*app
	watchlists string
	interval   time.Duration
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "periodically refresh and display watchlist reports" }
func (*watchCmd) Usage() string {
	return `wfo watch [-w <names>] [-i <interval>]

  Displays the watchlist reports, refreshed every interval until
  interrupted. A refresh never overlaps the previous one.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.watchlists, "w", "", "Comma separated names of the watchlists to watch, all if empty")
	f.DurationVar(&c.interval, "i", c.cfg.Watch.Interval, "Refresh interval")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.interval <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid interval %v\n", c.interval)
		return subcommands.ExitUsageError
	}
	// The file is read once, invalid watchlists fail before the first refresh.
	ws, err := c.loadWatchlists(names(c.watchlists)...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading watchlists: %v\n", err)
		return subcommands.ExitFailure
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := scheduler.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scheduler: %v\n", err)
		return subcommands.ExitFailure
	}
	err = s.Every("refresh", c.interval, func(jobCtx context.Context) error {
		reports, err := c.reports(jobCtx, ws)
		if err != nil {
			return err
		}
		var md strings.Builder
		for _, r := range reports {
			md.WriteString(renderer.ReportMarkdown(r))
			md.WriteString("\n")
		}
		fmt.Fprintf(&md, "_Refreshed at %s, next refresh in %v._\n", time.Now().Format(time.TimeOnly), c.interval)
		c.printMarkdown(md.String())
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scheduling refresh: %v\n", err)
		return subcommands.ExitFailure
	}

	s.Start()
	<-ctx.Done()
	if err := s.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "Error stopping: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
