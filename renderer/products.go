package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/verdantlabs/salescope"
)

// ProductsMarkdown renders the product performance view: the top-products
// ranking for the active drill-down and the searchable grouped listing.
func ProductsMarkdown(r *salescope.ProductsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Product Performance")

	drill := r.Drill
	if drill == "" {
		drill = "All"
	}
	doc.H2(fmt.Sprintf("Top Products (%s)", drill))
	if len(r.Top) == 0 {
		doc.PlainText(noData)
	} else {
		rows := make([][]string, 0, len(r.Top))
		for _, p := range r.Top {
			rows = append(rows, []string{shortName(p.Product, 40), whole(p.NetSales)})
		}
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Product", "Net Sales"},
			Rows:      rows,
		})
	}

	doc.H2("Product Listing")
	if len(r.Listings) == 0 {
		doc.PlainText(noData)
		return doc.String()
	}
	rows := make([][]string, 0, len(r.Listings))
	for _, l := range r.Listings {
		rows = append(rows, []string{
			shortName(l.Product, 40), l.Vendor, l.Category, whole(l.NetSales), units(l.Units),
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Product", "Vendor", "Category", "Net Sales", "Units Sold"},
		Rows:      rows,
	})

	return doc.String()
}
