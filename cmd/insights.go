package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/verdantlabs/salescope/renderer"
)

type insightsCmd struct {
	dataFlags
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "display auto-generated takeaways for the selection" }
func (*insightsCmd) Usage() string {
	return `salescope insights

  Displays the key-insights view: one observation each for volume, loyalty,
  baskets, category mix, bundling, and profitability.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) { c.dataFlags.SetFlags(f) }

func (c *insightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	ins := v.Insights()
	printMarkdown(renderer.InsightsMarkdown(&ins))
	return subcommands.ExitSuccess
}
