package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/verdantlabs/salescope/renderer"
)

type timeCmd struct {
	dataFlags
}

func (*timeCmd) Name() string     { return "time" }
func (*timeCmd) Synopsis() string { return "display ordering patterns by weekday and hour" }
func (*timeCmd) Usage() string {
	return `salescope time

  Displays the ordering-patterns view: revenue by day of week, the
  hour-by-day heatmap, and the weekday block comparison.
`
}

func (c *timeCmd) SetFlags(f *flag.FlagSet) { c.dataFlags.SetFlags(f) }

func (c *timeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TimeMarkdown(v.TimePatterns()))
	return subcommands.ExitSuccess
}
