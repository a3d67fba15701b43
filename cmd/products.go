package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/verdantlabs/salescope/renderer"
)

type productsCmd struct {
	dataFlags
	top      int
	category string
	query    string
}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "display the top products and the product listing" }
func (*productsCmd) Usage() string {
	return `salescope products [-top <n>] [-category <name>] [-query <text>]

  Displays the product performance view: the top products by net sales,
  optionally drilled down to one category, and the searchable listing.
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {
	c.dataFlags.SetFlags(f)
	f.IntVar(&c.top, "top", 15, "Number of products in the ranking.")
	f.StringVar(&c.category, "category", "", "Drill the ranking down to one category.")
	f.StringVar(&c.query, "query", "", "Case-insensitive substring filter on the listing.")
}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProductsMarkdown(v.Products(c.top, c.category, c.query)))
	return subcommands.ExitSuccess
}
