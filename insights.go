package salescope

// Insights digests the filtered view into the figures the narrative
// summaries are built from. All fields are zero-safe on empty input.
type Insights struct {
	Orders       int     `json:"orders"`
	OrdersPerDay float64 `json:"ordersPerDay"`

	TotalRevenue         float64 `json:"totalRevenue"`
	AverageOrderValue    float64 `json:"averageOrderValue"`
	AverageItemsPerOrder float64 `json:"averageItemsPerOrder"`

	// RepeatRate is the date-scoped loyalty figure, matching the KPI card.
	RepeatRate Percent `json:"repeatRate"`

	TopCategory      string  `json:"topCategory"`
	TopCategoryShare Percent `json:"topCategoryShare"`

	// TopPair is nil when no order bundles two categories.
	TopPair *CategoryPair `json:"topPair,omitempty"`

	TotalProfit   float64 `json:"totalProfit"`
	OverallMargin Percent `json:"overallMargin"`

	AllSelected    bool `json:"allSelected"`
	SingleCategory bool `json:"singleCategory"`
}

// Insights computes the narrative digest for the view.
func (v *View) Insights() Insights {
	m := v.Metrics()

	ins := Insights{
		Orders:               m.TotalOrders,
		TotalRevenue:         m.TotalRevenue,
		AverageOrderValue:    m.AverageOrderValue,
		AverageItemsPerOrder: m.AverageItemsPerOrder,
		RepeatRate:           m.RepeatRate,
		AllSelected:          v.AllSelected(),
		SingleCategory:       v.SingleCategory(),
	}

	if days := v.filter.Range.Days(); days > 0 {
		ins.OrdersPerDay = float64(m.TotalOrders) / float64(days)
	} else {
		ins.OrdersPerDay = float64(m.TotalOrders)
	}

	if revenues := v.CategoryRevenues(); len(revenues) > 0 {
		var total float64
		for _, r := range revenues {
			total += r.NetSales
		}
		ins.TopCategory = revenues[0].Category
		if total > 0 {
			ins.TopCategoryShare = Percent(revenues[0].NetSales / total * 100)
		}
	}

	if pairs := v.CategoryPairs(); len(pairs) > 0 {
		top := pairs[0]
		ins.TopPair = &top
	}

	for _, l := range v.EnrichProfit(nil) {
		ins.TotalProfit += l.EstGrossProfit
	}
	ins.OverallMargin = OverallMargin(ins.TotalProfit, m.TotalRevenue)

	return ins
}
