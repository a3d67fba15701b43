package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type categoriesCmd struct {
	dataFlags
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the categories present in the snapshot" }
func (*categoriesCmd) Usage() string {
	return `salescope categories

  Lists the distinct categories of the snapshot, one per line, for use
  with the -categories filter of the reporting commands.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) { c.dataFlags.SetFlags(f) }

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, cat := range v.Filter().Categories {
		fmt.Println(cat)
	}
	return subcommands.ExitSuccess
}
