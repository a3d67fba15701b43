package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/verdantlabs/salescope"
)

// OverviewMarkdown renders the executive overview: KPI cards, the narrative
// summary, and the revenue-over-time series.
func OverviewMarkdown(r *salescope.OverviewReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Overview")

	m := r.Metrics
	doc.Table(md.TableSet{
		Header: []string{"Total Revenue", "Average Order Value", "Unique Customers", "Repeat Customer Rate"},
		Rows: [][]string{{
			money(m.TotalRevenue),
			money(m.AverageOrderValue),
			count(m.UniqueCustomers),
			m.RepeatRate.String(),
		}},
	})
	doc.PlainText(fmt.Sprintf("%s | %s orders | %s items | %d categories",
		r.Range, count(m.TotalOrders), units(m.TotalUnits), len(r.Categories)))

	doc.H2("Executive Summary")
	if m.TotalOrders == 0 {
		doc.PlainText(noData)
		return doc.String()
	}
	doc.PlainText(executiveSummary(r))

	doc.H2("Revenue Over Time")
	if len(r.Daily) == 0 {
		doc.PlainText(noData)
		return doc.String()
	}
	rows := make([][]string, 0, len(r.Daily))
	for _, day := range r.Daily {
		rows = append(rows, []string{day.Date.String(), money(day.Revenue)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Revenue"},
		Rows:   rows,
	})

	return doc.String()
}

// executiveSummary writes the one-paragraph narrative of the overview tab.
func executiveSummary(r *salescope.OverviewReport) string {
	m := r.Metrics

	var category string
	switch {
	case r.TopCategory == "":
		category = "No category revenue is recorded for the selected filters."
	case r.CategoryCount == 1:
		category = fmt.Sprintf("All sales in the selected filters come from the %s category.", r.TopCategory)
	default:
		category = fmt.Sprintf("%s is currently the leading category, accounting for %s of category-level revenue.",
			r.TopCategory, r.TopCategoryShare)
	}

	// The repeat-rate comparison is only meaningful when the user narrowed
	// the category selection.
	var repeat string
	if r.AllSelected {
		repeat = fmt.Sprintf("Roughly %s of customers are repeat buyers.", m.RepeatRate)
	} else {
		repeat = fmt.Sprintf(
			"Roughly %s of customers who purchased within these filters are repeat buyers, "+
				"while the overall repeat rate across all customers in this date range is %s.",
			m.RepeatRateLocal, m.RepeatRate)
	}

	return fmt.Sprintf(
		"This view summarizes %s orders over the selected period. Customers spend an average "+
			"of %s per visit and purchase about %s items per basket. %s %s",
		count(m.TotalOrders), money(m.AverageOrderValue), f2(m.AverageItemsPerOrder), repeat, category)
}
