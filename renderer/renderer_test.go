package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/verdantlabs/salescope"
	"github.com/verdantlabs/salescope/date"
)

func testView(t *testing.T) *salescope.View {
	t.Helper()

	at := func(day, hour int) time.Time {
		return time.Date(2025, 1, day, hour, 30, 0, 0, time.UTC)
	}
	orders := []salescope.Order{
		{ID: "o1", CustomerID: "c1", Timestamp: at(6, 10), Total: 60},
		{ID: "o2", CustomerID: "c1", Timestamp: at(7, 14), Total: 90},
		{ID: "o3", CustomerID: "c2", Timestamp: at(11, 18), Total: 40},
	}
	items := []salescope.ItemLine{
		{OrderID: "o1", Product: "Sunset OG 3.5g", Vendor: "North Farms", Category: "Flower", NetSales: 55, Units: 1, Timestamp: at(6, 10)},
		{OrderID: "o2", Product: "Berry Gummies", Vendor: "Sweetleaf", Category: "Edibles", NetSales: 30, Units: 2, Timestamp: at(7, 14)},
		{OrderID: "o2", Product: "Sunset OG 3.5g", Vendor: "North Farms", Category: "Flower", NetSales: 55, Units: 1, Timestamp: at(7, 14)},
		{OrderID: "o3", Product: "Citrus Seltzer", Vendor: "Sweetleaf", Category: "Beverages", NetSales: 38, Units: 4, Timestamp: at(11, 18)},
	}
	ds := salescope.NewDataset(orders, items, salescope.LoadOptions{})
	return ds.Select(salescope.Filter{
		Range:      date.NewRange(date.New(2025, time.January, 1), date.New(2025, time.January, 31)),
		Categories: []string{"Flower", "Edibles", "Beverages"},
	})
}

// parseDoc parses rendered markdown with the GFM table extension enabled.
func parseDoc(t *testing.T, src string) (ast.Node, []byte) {
	t.Helper()
	source := []byte(src)
	parser := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()
	return parser.Parse(text.NewReader(source)), source
}

func headings(t *testing.T, doc ast.Node, source []byte) []string {
	t.Helper()
	var out []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			out = append(out, string(h.Text(source)))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	return out
}

func countTables(t *testing.T, doc ast.Node) int {
	t.Helper()
	n := 0
	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if _, ok := node.(*extast.Table); ok && entering {
			n++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	return n
}

func TestRenderStructure(t *testing.T) {
	v := testView(t)

	tests := []struct {
		name         string
		render       func() string
		wantHeadings []string
		wantTables   int
		wantContains []string
	}{
		{
			name:         "overview",
			render:       func() string { return OverviewMarkdown(v.Overview()) },
			wantHeadings: []string{"Overview", "Executive Summary", "Revenue Over Time"},
			wantTables:   2,
			wantContains: []string{"$63.33", "3 orders"},
		},
		{
			name:         "products",
			render:       func() string { return ProductsMarkdown(v.Products(15, "", "")) },
			wantHeadings: []string{"Product Performance", "Top Products (All)", "Product Listing"},
			wantTables:   2,
			wantContains: []string{"Sunset OG 3.5g", "North Farms"},
		},
		{
			name:         "bundles",
			render:       func() string { return BundlesMarkdown(v.CategoryPairs()) },
			wantHeadings: []string{"Bundles & Category Pairings", "Top Category Pairs (by order frequency)"},
			wantTables:   1,
			wantContains: []string{"Edibles", "Flower"},
		},
		{
			name:         "customers",
			render:       func() string { return CustomersMarkdown(v.Customers(20)) },
			wantHeadings: []string{"Customer Behavior", "Visit Frequency Distribution", "Top 2 Customers by Spend"},
			wantTables:   3,
			wantContains: []string{"Customer #1", "$150"},
		},
		{
			name:         "time",
			render:       func() string { return TimeMarkdown(v.TimePatterns()) },
			wantHeadings: []string{"Ordering Patterns", "Revenue by Day of Week", "Revenue Heatmap (Hour x Day)", "Weekday Blocks"},
			wantTables:   3,
			wantContains: []string{"Monday", "10 AM", "Fri-Sat (Stock-Up Days)"},
		},
		{
			name:         "profitability",
			render:       func() string { return ProfitabilityMarkdown(v.Profitability(nil, 15, 25)) },
			wantHeadings: []string{"Estimated Profitability", "Profit by Category", "Top 3 Products by Estimated Profit", "Profit by Vendor"},
			wantTables:   4,
			wantContains: []string{"Flower", "margin assumptions"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := tc.render()
			doc, source := parseDoc(t, out)

			got := headings(t, doc, source)
			for _, want := range tc.wantHeadings {
				found := false
				for _, h := range got {
					if h == want {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("missing heading %q in %v", want, got)
				}
			}

			if n := countTables(t, doc); n != tc.wantTables {
				t.Errorf("got %d tables, want %d\n%s", n, tc.wantTables, out)
			}

			for _, want := range tc.wantContains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestInsightsMarkdown(t *testing.T) {
	v := testView(t)
	ins := v.Insights()
	out := InsightsMarkdown(&ins)

	doc, source := parseDoc(t, out)
	hs := headings(t, doc, source)
	if len(hs) == 0 || hs[0] != "Key Insights" {
		t.Fatalf("got headings %v, want Key Insights first", hs)
	}

	items := 0
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if _, ok := n.(*ast.ListItem); ok && entering {
			items++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if items != 6 {
		t.Errorf("got %d insight bullets, want 6:\n%s", items, out)
	}

	for _, want := range []string{"Edibles and Flower", "Estimated gross profit"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEmptyView(t *testing.T) {
	ds := salescope.NewDataset(nil, nil, salescope.LoadOptions{})
	v := ds.Select(salescope.Filter{})

	outputs := map[string]string{
		"overview":  OverviewMarkdown(v.Overview()),
		"customers": CustomersMarkdown(v.Customers(20)),
		"time":      TimeMarkdown(v.TimePatterns()),
		"profit":    ProfitabilityMarkdown(v.Profitability(nil, 15, 25)),
	}
	for name, out := range outputs {
		if !strings.Contains(out, noData) {
			t.Errorf("%s: empty view should render the no-data notice:\n%s", name, out)
		}
	}
}
