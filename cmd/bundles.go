package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/verdantlabs/salescope/renderer"
)

type bundlesCmd struct {
	dataFlags
}

func (*bundlesCmd) Name() string     { return "bundles" }
func (*bundlesCmd) Synopsis() string { return "display the categories most often bought together" }
func (*bundlesCmd) Usage() string {
	return `salescope bundles

  Displays the category pairing view: which category combinations appear
  together in the same order, ranked by frequency.
`
}

func (c *bundlesCmd) SetFlags(f *flag.FlagSet) { c.dataFlags.SetFlags(f) }

func (c *bundlesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BundlesMarkdown(v.CategoryPairs()))
	return subcommands.ExitSuccess
}
