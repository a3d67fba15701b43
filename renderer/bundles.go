package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/verdantlabs/salescope"
)

// BundlesMarkdown renders the category pairing view: the top pairs table
// and the cross-sell narrative.
func BundlesMarkdown(pairs []salescope.CategoryPair) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Bundles & Category Pairings")

	if len(pairs) == 0 {
		doc.PlainText("Not enough category diversity to compute bundles for these filters.")
		return doc.String()
	}

	top := pairs
	if len(top) > 10 {
		top = top[:10]
	}
	doc.H2("Top Category Pairs (by order frequency)")
	rows := make([][]string, 0, len(top))
	for _, p := range top {
		rows = append(rows, []string{p.A, p.B, count(p.Count)})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Category A", "Category B", "Number of Orders"},
		Rows:      rows,
	})

	best := top[0]
	doc.PlainText(fmt.Sprintf(
		"Customers show strong bundling behavior. The most frequent pairing is %s + %s, "+
			"appearing together in %s orders during the selected period. These represent ideal "+
			"opportunities for curated bundle deals and cross-sell prompts at checkout.",
		best.A, best.B, count(best.Count)))

	return doc.String()
}
