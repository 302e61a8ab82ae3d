package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/watchfolio/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	*app
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `wfo topic [<topic>...]

  Shows the documentation of the given topics, the list of topics if none
  is given, or all of them with '*'.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.Topics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	c.printMarkdown(doc)
	return subcommands.ExitSuccess
}
