package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/verdantlabs/salescope/renderer"
)

type overviewCmd struct {
	dataFlags
}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display KPI cards, executive summary and revenue trend" }
func (*overviewCmd) Usage() string {
	return `salescope overview [-orders <csv>] [-items <csv>] [-from <date>] [-to <date>] [-categories <list>]

  Displays the executive overview of the selected period: headline KPIs,
  the narrative summary, and revenue over time.
`
}

func (c *overviewCmd) SetFlags(f *flag.FlagSet) { c.dataFlags.SetFlags(f) }

func (c *overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.OverviewMarkdown(v.Overview()))
	return subcommands.ExitSuccess
}
