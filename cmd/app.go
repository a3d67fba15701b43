// Package cmd implements the CLI application to explore a sales snapshot.
package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/verdantlabs/salescope"
	"github.com/verdantlabs/salescope/date"
	"github.com/verdantlabs/salescope/store"
)

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&overviewCmd{},
	&productsCmd{},
	&bundlesCmd{},
	&customersCmd{},
	&timeCmd{},
	&profitCmd{},
	&insightsCmd{},
	&categoriesCmd{},
	&exportCmd{},
	&assistCmd{},
}

// dataFlags are the source and filter flags shared by every reporting
// subcommand. Defaults come from the environment (see Config).
type dataFlags struct {
	orders string
	items  string
	db     string

	from       string
	to         string
	minTotal   float64
	categories string

	raw  bool
	seed int64

	fs *flag.FlagSet
}

func (d *dataFlags) SetFlags(f *flag.FlagSet) {
	d.fs = f
	f.StringVar(&d.orders, "orders", "", "Path to the orders CSV export. Defaults to $SALESCOPE_ORDERS.")
	f.StringVar(&d.items, "items", "", "Path to the order-items CSV export. Defaults to $SALESCOPE_ITEMS.")
	f.StringVar(&d.db, "db", "", "Path to a SQLite snapshot; takes precedence over the CSV pair.")

	f.StringVar(&d.from, "from", "", "Start of the date range (YYYY-MM-DD). Defaults to the first order date.")
	f.StringVar(&d.to, "to", "", "End of the date range (YYYY-MM-DD). Defaults to the last order date.")
	f.Float64Var(&d.minTotal, "min-total", 0, "Exclude orders below this total.")
	f.StringVar(&d.categories, "categories", "", "Comma-separated category selection. Defaults to all categories.")

	f.BoolVar(&d.raw, "raw", false, "Keep real labels and figures instead of the anonymized defaults.")
	f.Int64Var(&d.seed, "seed", 0, "Seed for the synthetic figures; 0 seeds from the clock.")
}

// load reads the snapshot and applies the filter flags, returning the
// derived view.
func (d *dataFlags) load() (*salescope.View, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if d.orders == "" {
		d.orders = cfg.Orders
	}
	if d.items == "" {
		d.items = cfg.Items
	}
	if d.db == "" {
		d.db = cfg.DB
	}
	if d.seed == 0 {
		d.seed = cfg.Seed
	}

	opts := salescope.LoadOptions{Anonymize: d.anonymize(cfg), Seed: d.seed}

	var ds *salescope.Dataset
	if d.db != "" {
		ds, err = store.LoadDataset(d.db, opts)
	} else {
		ds, err = salescope.LoadCSV(d.orders, d.items, opts)
	}
	if err != nil {
		return nil, err
	}
	filter, err := d.filter(ds)
	if err != nil {
		return nil, err
	}
	return ds.Select(filter), nil
}

// anonymize resolves the -raw flag against the $SALESCOPE_RAW default. A
// flag passed on the command line wins even when it repeats the flag
// default, so -raw=false restores anonymization under a raw environment.
func (d *dataFlags) anonymize(cfg Config) bool {
	if d.fs != nil {
		passed := false
		d.fs.Visit(func(fl *flag.Flag) {
			if fl.Name == "raw" {
				passed = true
			}
		})
		if passed {
			return !d.raw
		}
	}
	return !d.raw && !cfg.Raw
}

// filter resolves the flag values against the dataset defaults: the full
// snapshot span and every category.
func (d *dataFlags) filter(ds *salescope.Dataset) (salescope.Filter, error) {
	f := salescope.Filter{
		Range:      ds.Span(),
		MinTotal:   d.minTotal,
		Categories: ds.Categories(),
	}
	if d.from != "" {
		from, err := date.Parse(d.from)
		if err != nil {
			return f, fmt.Errorf("invalid -from date: %w", err)
		}
		f.Range.From = from
	}
	if d.to != "" {
		to, err := date.Parse(d.to)
		if err != nil {
			return f, fmt.Errorf("invalid -to date: %w", err)
		}
		f.Range.To = to
	}
	f.Range = date.NewRange(f.Range.From, f.Range.To)

	if d.categories != "" {
		f.Categories = f.Categories[:0]
		for _, c := range strings.Split(d.categories, ",") {
			if c = strings.TrimSpace(c); c != "" {
				f.Categories = append(f.Categories, c)
			}
		}
	}
	return f, nil
}
