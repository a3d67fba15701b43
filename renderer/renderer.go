// Package renderer builds the markdown documents for each dashboard view.
// Formatting stops here: report structs carry raw numbers, renderers decide
// how they read.
package renderer

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/verdantlabs/salescope"
)

// noData is the paragraph shown whenever a view's input is empty. Empty
// inputs are a normal state, not an error.
const noData = "No data for the current filters. Try widening the date range or relaxing filters."

// money formats a monetary figure with cents.
func money(v float64) string { return salescope.M(v).String() }

// whole formats a monetary figure without cents, the default for tables.
func whole(v float64) string { return salescope.M(v).Whole() }

// count formats an integer with thousands separators.
func count(n int) string { return humanize.Comma(int64(n)) }

// units formats a quantity, whole with separators.
func units(v float64) string { return humanize.Commaf(float64(int64(v + 0.5))) }

// shortName truncates long product labels so tables stay readable.
func shortName(name string, max int) string {
	if len(name) <= max {
		return name
	}
	return strings.TrimSpace(name[:max]) + "..."
}

// f2 formats a plain float with two decimals.
func f2(v float64) string { return fmt.Sprintf("%.2f", v) }
