// Command wfo tracks watchlists and a portfolio from the command line.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/etnz/watchfolio/cmd"
	"github.com/etnz/watchfolio/config"
	"github.com/etnz/watchfolio/twelvedata"
	"github.com/google/subcommands"
)

func main() {
	cfg := config.MustLoad()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))

	commander := subcommands.NewCommander(flag.CommandLine, "wfo")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander, cfg, twelvedata.New(cfg))

	// Exits when invoked by the shell for completion.
	cmd.Completion(commander, flag.CommandLine).Complete("wfo")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
