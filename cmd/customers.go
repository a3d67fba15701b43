package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/verdantlabs/salescope/renderer"
)

type customersCmd struct {
	dataFlags
	top int
}

func (*customersCmd) Name() string     { return "customers" }
func (*customersCmd) Synopsis() string { return "display loyalty figures and top customers" }
func (*customersCmd) Usage() string {
	return `salescope customers [-top <n>]

  Displays the customer behavior view: repeat rate, visit frequency
  distribution, and the top customers by spend.
`
}

func (c *customersCmd) SetFlags(f *flag.FlagSet) {
	c.dataFlags.SetFlags(f)
	f.IntVar(&c.top, "top", 20, "Number of customers in the spend ranking.")
}

func (c *customersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CustomersMarkdown(v.Customers(c.top)))
	return subcommands.ExitSuccess
}
