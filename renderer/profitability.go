package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/verdantlabs/salescope"
)

// ProfitabilityMarkdown renders the estimated-profitability view: headline
// figures plus category, product, and vendor rollups.
func ProfitabilityMarkdown(r *salescope.ProfitReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Estimated Profitability")

	if len(r.Categories) == 0 {
		doc.PlainText(noData)
		return doc.String()
	}

	doc.PlainText("Profit figures are estimates from category-level margin assumptions, not actual cost data.")

	doc.Table(md.TableSet{
		Header: []string{"Revenue", "Est. Gross Profit", "Est. Overall Margin"},
		Rows: [][]string{{
			money(r.OrderRevenue),
			money(r.TotalProfit),
			r.OverallMargin.String(),
		}},
	})

	doc.H2("Profit by Category")
	rows := make([][]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		rows = append(rows, []string{
			c.Category,
			money(c.NetSales),
			money(c.Profit),
			c.MarginPct.String(),
			money(c.ProfitPerUnit),
			money(c.ProfitPerOrder),
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Category", "Net Sales", "Est. Profit", "Margin", "Profit/Unit", "Profit/Order"},
		Rows:      rows,
	})

	doc.H2(fmt.Sprintf("Top %d Products by Estimated Profit", len(r.Products)))
	rows = rows[:0]
	for _, p := range r.Products {
		rows = append(rows, []string{
			shortName(p.Product, 40),
			money(p.NetSales),
			money(p.Profit),
			units(p.Units),
			p.MarginPct.String(),
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Product", "Net Sales", "Est. Profit", "Units", "Margin"},
		Rows:      rows,
	})

	doc.H2("Profit by Vendor")
	rows = rows[:0]
	for _, v := range r.Vendors {
		rows = append(rows, []string{
			v.Vendor,
			money(v.NetSales),
			money(v.Profit),
			v.MarginPct.String(),
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Vendor", "Net Sales", "Est. Profit", "Margin"},
		Rows:      rows,
	})

	return doc.String()
}
