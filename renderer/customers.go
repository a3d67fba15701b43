package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/verdantlabs/salescope"
)

// CustomersMarkdown renders the customer behavior view. Customers are
// labeled positionally ("Customer #1"...) so no hash id leaves the core.
func CustomersMarkdown(r *salescope.CustomersReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Customer Behavior")

	if r.Customers == 0 {
		doc.PlainText(noData)
		return doc.String()
	}

	doc.Table(md.TableSet{
		Header: []string{"Repeat Customer Rate", "Average Visits per Customer", "Customer Count"},
		Rows: [][]string{{
			r.StoreRepeatRate.String(),
			f2(r.AverageVisits),
			count(r.Customers),
		}},
	})

	doc.H2("Visit Frequency Distribution")
	rows := make([][]string, 0, len(r.Distribution))
	for _, b := range r.Distribution {
		rows = append(rows, []string{b.Label, count(b.Customers)})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Number of Visits", "Number of Customers"},
		Rows:      rows,
	})
	doc.PlainText("Customers with more than 10 visits are grouped into the '10+' bucket for readability.")

	doc.H2(fmt.Sprintf("Top %d Customers by Spend", len(r.Top)))
	rows = rows[:0]
	for i, c := range r.Top {
		rows = append(rows, []string{
			fmt.Sprintf("Customer #%d", i+1),
			count(c.Visits),
			whole(c.TotalSpend),
			whole(c.AverageTicket),
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Customer", "Number of Visits", "Total Spend", "Average Ticket"},
		Rows:      rows,
	})

	return doc.String()
}
