package salescope

import "sort"

// Margins maps canonical category names to an assumed gross-margin fraction,
// used to estimate profit where true cost data is unavailable. Categories
// absent from the table get DefaultMarginFraction.
type Margins map[string]float64

// DefaultMarginFraction applies to any category without a margin assumption.
const DefaultMarginFraction = 0.50

// DefaultMargins are rough category-based estimates for stakeholder
// visibility; alternate assumptions can be injected without code changes.
var DefaultMargins = Margins{
	"Flower":        0.45,
	"Edibles":       0.50,
	"Joint":         0.55,
	"Joints":        0.55,
	"Preroll Packs": 0.55,
	"Pre-Rolls":     0.55,
	"Prerolls":      0.55,
	"Disposables":   0.48,
	"Cartridges":    0.48,
	"Concentrates":  0.52,
	"Beverages":     0.40,
	"Accessories":   0.60,
}

// Fraction returns the margin assumption for a category.
func (m Margins) Fraction(category string) float64 {
	if f, ok := m[category]; ok {
		return f
	}
	return DefaultMarginFraction
}

// EnrichedItem is an item-line with estimated profit figures attached.
type EnrichedItem struct {
	ItemLine
	MarginFraction float64
	EstGrossProfit float64
	EstCost        float64
}

// EnrichProfit attaches the category margin assumption to every line.
func EnrichProfit(items []ItemLine, margins Margins) []EnrichedItem {
	out := make([]EnrichedItem, len(items))
	for i, l := range items {
		frac := margins.Fraction(l.Category)
		profit := l.NetSales * frac
		out[i] = EnrichedItem{
			ItemLine:       l,
			MarginFraction: frac,
			EstGrossProfit: profit,
			EstCost:        l.NetSales - profit,
		}
	}
	return out
}

// CategoryProfit is the per-category profitability rollup.
type CategoryProfit struct {
	Category string  `json:"category"`
	NetSales float64 `json:"netSales"`
	Profit   float64 `json:"profit"`
	Units    float64 `json:"units"`
	Orders   int     `json:"orders"`

	MarginPct      Percent `json:"marginPct"`
	ProfitPerUnit  float64 `json:"profitPerUnit"`
	ProfitPerOrder float64 `json:"profitPerOrder"`
}

// ProductProfit is the per-product profitability rollup.
type ProductProfit struct {
	Product   string  `json:"product"`
	NetSales  float64 `json:"netSales"`
	Profit    float64 `json:"profit"`
	Units     float64 `json:"units"`
	MarginPct Percent `json:"marginPct"`
}

// VendorProfit is the per-vendor profitability rollup.
type VendorProfit struct {
	Vendor    string  `json:"vendor"`
	NetSales  float64 `json:"netSales"`
	Profit    float64 `json:"profit"`
	MarginPct Percent `json:"marginPct"`
}

// ProfitByCategory aggregates enriched lines per category, sorted by profit
// descending. Every derived ratio is guarded: a zero denominator yields 0,
// never NaN or infinity.
func ProfitByCategory(items []EnrichedItem) []CategoryProfit {
	type acc struct {
		CategoryProfit
		orders map[string]bool
	}
	byCat := make(map[string]*acc)
	for _, l := range items {
		a := byCat[l.Category]
		if a == nil {
			a = &acc{CategoryProfit: CategoryProfit{Category: l.Category}, orders: make(map[string]bool)}
			byCat[l.Category] = a
		}
		a.NetSales += l.NetSales
		a.Profit += l.EstGrossProfit
		a.Units += l.Units
		a.orders[l.OrderID] = true
	}

	out := make([]CategoryProfit, 0, len(byCat))
	for _, a := range byCat {
		c := a.CategoryProfit
		c.Orders = len(a.orders)
		c.MarginPct = marginPct(c.Profit, c.NetSales)
		if c.Units > 0 {
			c.ProfitPerUnit = c.Profit / c.Units
		}
		if c.Orders > 0 {
			c.ProfitPerOrder = c.Profit / float64(c.Orders)
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Profit != out[j].Profit {
			return out[i].Profit > out[j].Profit
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// ProfitByProduct aggregates enriched lines per product, sorted by profit descending.
func ProfitByProduct(items []EnrichedItem) []ProductProfit {
	byProduct := make(map[string]*ProductProfit)
	for _, l := range items {
		p := byProduct[l.Product]
		if p == nil {
			p = &ProductProfit{Product: l.Product}
			byProduct[l.Product] = p
		}
		p.NetSales += l.NetSales
		p.Profit += l.EstGrossProfit
		p.Units += l.Units
	}
	out := make([]ProductProfit, 0, len(byProduct))
	for _, p := range byProduct {
		p.MarginPct = marginPct(p.Profit, p.NetSales)
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Profit != out[j].Profit {
			return out[i].Profit > out[j].Profit
		}
		return out[i].Product < out[j].Product
	})
	return out
}

// ProfitByVendor aggregates enriched lines per vendor, sorted by profit descending.
func ProfitByVendor(items []EnrichedItem) []VendorProfit {
	byVendor := make(map[string]*VendorProfit)
	for _, l := range items {
		p := byVendor[l.Vendor]
		if p == nil {
			p = &VendorProfit{Vendor: l.Vendor}
			byVendor[l.Vendor] = p
		}
		p.NetSales += l.NetSales
		p.Profit += l.EstGrossProfit
	}
	out := make([]VendorProfit, 0, len(byVendor))
	for _, p := range byVendor {
		p.MarginPct = marginPct(p.Profit, p.NetSales)
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Profit != out[j].Profit {
			return out[i].Profit > out[j].Profit
		}
		return out[i].Vendor < out[j].Vendor
	})
	return out
}

// OverallMargin is total estimated gross profit over total order revenue.
// The denominator is deliberately the order-table revenue, not item net
// sales, so the headline margin stays consistent with the revenue KPI card.
func OverallMargin(totalProfit, orderRevenue float64) Percent {
	return marginPct(totalProfit, orderRevenue)
}

func marginPct(profit, netSales float64) Percent {
	if netSales <= 0 {
		return 0
	}
	return Percent(profit / netSales * 100)
}

// EnrichProfit enriches the filtered item-lines with the given margin
// assumptions; nil means DefaultMargins.
func (v *View) EnrichProfit(margins Margins) []EnrichedItem {
	if margins == nil {
		margins = DefaultMargins
	}
	return EnrichProfit(v.Items, margins)
}
