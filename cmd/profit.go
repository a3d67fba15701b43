package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/verdantlabs/salescope"
	"github.com/verdantlabs/salescope/renderer"
)

type profitCmd struct {
	dataFlags
	margins     string
	topProducts int
	topVendors  int
}

func (*profitCmd) Name() string     { return "profit" }
func (*profitCmd) Synopsis() string { return "display estimated profitability by category, product and vendor" }
func (*profitCmd) Usage() string {
	return `salescope profit [-margins <cat=frac,...>] [-top-products <n>] [-top-vendors <n>]

  Displays the estimated profitability view. Margins are category-level
  assumptions; override them per category, e.g. -margins "Flower=0.42".
`
}

func (c *profitCmd) SetFlags(f *flag.FlagSet) {
	c.dataFlags.SetFlags(f)
	f.StringVar(&c.margins, "margins", "", "Per-category margin overrides as category=fraction pairs.")
	f.IntVar(&c.topProducts, "top-products", 15, "Number of products in the profit ranking.")
	f.IntVar(&c.topVendors, "top-vendors", 25, "Number of vendors in the profit ranking.")
}

func (c *profitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	margins, err := parseMargins(c.margins)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -margins: %v\n", err)
		return subcommands.ExitUsageError
	}

	v, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProfitabilityMarkdown(v.Profitability(margins, c.topProducts, c.topVendors)))
	return subcommands.ExitSuccess
}

// parseMargins decodes "Flower=0.45,Beverages=0.4" into a margin table
// layered over the defaults. An empty spec keeps the defaults as-is.
func parseMargins(spec string) (salescope.Margins, error) {
	if spec == "" {
		return nil, nil
	}
	margins := make(salescope.Margins, len(salescope.DefaultMargins))
	for cat, frac := range salescope.DefaultMargins {
		margins[cat] = frac
	}
	for _, pair := range strings.Split(spec, ",") {
		cat, val, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("expected category=fraction, got %q", pair)
		}
		frac, err := strconv.ParseFloat(val, 64)
		if err != nil || frac < 0 || frac > 1 {
			return nil, fmt.Errorf("invalid margin fraction %q for category %q", val, cat)
		}
		margins[cat] = frac
	}
	return margins, nil
}
