package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/verdantlabs/salescope"
)

// InsightsMarkdown renders the auto-generated takeaways as a bullet list, one
// observation per concern.
func InsightsMarkdown(ins *salescope.Insights) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Key Insights")

	if ins.Orders == 0 {
		doc.PlainText(noData)
		return doc.String()
	}

	doc.BulletList(
		performanceInsight(ins),
		loyaltyInsight(ins),
		basketInsight(ins),
		categoryInsight(ins),
		bundlingInsight(ins),
		profitInsight(ins),
	)

	return doc.String()
}

func performanceInsight(ins *salescope.Insights) string {
	return fmt.Sprintf("The store processed %s orders at about %s per day, bringing in %s of revenue.",
		count(ins.Orders), f2(ins.OrdersPerDay), money(ins.TotalRevenue))
}

func loyaltyInsight(ins *salescope.Insights) string {
	switch {
	case ins.RepeatRate >= 50:
		return fmt.Sprintf("Loyalty is strong: %s of customers came back for a second order.", ins.RepeatRate)
	case ins.RepeatRate >= 25:
		return fmt.Sprintf("Loyalty is moderate at %s repeat customers; a win-back campaign could move this.", ins.RepeatRate)
	default:
		return fmt.Sprintf("Loyalty is low at %s repeat customers; most buyers ordered only once.", ins.RepeatRate)
	}
}

func basketInsight(ins *salescope.Insights) string {
	return fmt.Sprintf("A typical basket holds %s items and is worth %s.",
		f2(ins.AverageItemsPerOrder), money(ins.AverageOrderValue))
}

func categoryInsight(ins *salescope.Insights) string {
	if ins.TopCategory == "" {
		return "No category revenue is recorded for the selected filters."
	}
	if ins.SingleCategory {
		return fmt.Sprintf("Only the %s category is in view, so the category mix reflects it alone.", ins.TopCategory)
	}
	return fmt.Sprintf("%s leads the category mix with %s of category-level revenue.",
		ins.TopCategory, ins.TopCategoryShare)
}

func bundlingInsight(ins *salescope.Insights) string {
	if ins.TopPair == nil {
		return "No order combined two categories, so there is no bundling signal yet."
	}
	return fmt.Sprintf("%s and %s are bought together most often (%s orders); a cross-sell bundle is an easy test.",
		ins.TopPair.A, ins.TopPair.B, count(ins.TopPair.Count))
}

func profitInsight(ins *salescope.Insights) string {
	return fmt.Sprintf("Estimated gross profit is %s, an overall margin of %s under the current assumptions.",
		money(ins.TotalProfit), ins.OverallMargin)
}
