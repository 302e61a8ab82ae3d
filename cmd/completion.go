package cmd

import (
	"flag"

	"github.com/etnz/watchfolio"
	"github.com/etnz/watchfolio/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the commander's subcommands and
// of the top level flags.
func Completion(c *subcommands.Commander, top *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictors(top),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: predictors(fs)}
		switch cmd.Name() {
		case "help":
			sub.Args = commandNames(c)
		case "topic":
			sub.Args = topicNames()
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

func predictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		flags[f.Name] = predictor(f)
	})
	return flags
}

// predictor guesses the values of a flag from its name.
func predictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "watchlists":
		return predict.Files("*.yaml")
	case "html":
		return predict.Files("*.html")
	case "o":
		return predict.Files("*.xlsx")
	case "w":
		return watchlistNames()
	}
	return predict.Something
}

// watchlistNames predicts the names in the watchlists file, if it can be read.
func watchlistNames() complete.Predictor {
	return complete.PredictFunc(func(prefix string) []string {
		ws, err := watchfolio.DecodeWatchlistsFile(*watchlistsFile)
		if err != nil {
			return nil
		}
		var names []string
		for _, w := range ws {
			names = append(names, w.Name)
		}
		return names
	})
}

func topicNames() predict.Set {
	topics, _ := docs.All()
	return predict.Set(topics)
}

func commandNames(c *subcommands.Commander) predict.Set {
	var names predict.Set
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		names = append(names, cmd.Name())
	})
	return names
}
