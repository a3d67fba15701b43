package salescope

import (
	"github.com/verdantlabs/salescope/date"
)

// OverviewReport feeds the overview view: executive summary figures and the
// revenue-over-time series.
type OverviewReport struct {
	Range      date.Range     `json:"range"`
	Metrics    Metrics        `json:"metrics"`
	Categories []string       `json:"categoriesSelected"`
	Daily      []DailyRevenue `json:"dailyRevenue"`

	// Category leader, for the executive narrative.
	TopCategory      string  `json:"topCategory"`
	TopCategoryShare Percent `json:"topCategoryShare"`
	CategoryCount    int     `json:"categoryCount"` // distinct categories with revenue

	AllSelected    bool `json:"allSelected"`
	SingleCategory bool `json:"singleCategory"`
}

// Overview builds the overview report for the view.
func (v *View) Overview() *OverviewReport {
	r := &OverviewReport{
		Range:          v.filter.Range,
		Metrics:        v.Metrics(),
		Categories:     v.filter.Categories,
		Daily:          v.DailyRevenue(),
		AllSelected:    v.AllSelected(),
		SingleCategory: v.SingleCategory(),
	}
	if revenues := v.CategoryRevenues(); len(revenues) > 0 {
		var total float64
		for _, rev := range revenues {
			total += rev.NetSales
		}
		r.TopCategory = revenues[0].Category
		r.CategoryCount = len(revenues)
		if total > 0 {
			r.TopCategoryShare = Percent(revenues[0].NetSales / total * 100)
		}
	}
	return r
}

// ProductsReport feeds the product performance view.
type ProductsReport struct {
	Drill    string           `json:"drill,omitempty"` // category drill-down, "" for all
	Top      []ProductRank    `json:"top"`
	Listings []ProductListing `json:"listings"`
}

// Products builds the product report: top n products within the optional
// category drill-down, plus the searchable grouped listing.
func (v *View) Products(n int, drill, query string) *ProductsReport {
	return &ProductsReport{
		Drill:    drill,
		Top:      v.TopProducts(n, drill),
		Listings: v.SearchProducts(query),
	}
}

// CustomersReport feeds the customer behavior view.
type CustomersReport struct {
	// StoreRepeatRate is the loyalty rate over the entire snapshot,
	// regardless of filters, as shown on the customers tab.
	StoreRepeatRate Percent        `json:"storeRepeatRate"`
	AverageVisits   float64        `json:"averageVisits"`
	Customers       int            `json:"customers"`
	Distribution    []VisitBucket  `json:"distribution"`
	Top             []CustomerRank `json:"top"`
}

// Customers builds the customer behavior report with the top n spenders.
func (v *View) Customers(n int) *CustomersReport {
	visits := customerVisits(v.Orders)
	return &CustomersReport{
		StoreRepeatRate: v.ds.RepeatRate(),
		AverageVisits:   v.AverageVisits(),
		Customers:       len(visits),
		Distribution:    v.VisitDistribution(),
		Top:             v.TopCustomers(n),
	}
}

// TimeReport feeds the time-of-day and day-of-week view.
type TimeReport struct {
	Weekdays []WeekdayRevenue `json:"weekdays"`
	Heatmap  []HeatmapCell    `json:"heatmap"`
	Blocks   []BlockSummary   `json:"blocks"`
}

// TimePatterns builds the ordering-patterns report.
func (v *View) TimePatterns() *TimeReport {
	return &TimeReport{
		Weekdays: v.RevenueByWeekday(),
		Heatmap:  v.RevenueHeatmap(),
		Blocks:   v.WeekdayBlocks(),
	}
}

// ProfitReport feeds the profitability view.
type ProfitReport struct {
	// OrderRevenue is the order-table revenue of the view, the denominator
	// of OverallMargin, kept equal to the revenue KPI card.
	OrderRevenue  float64 `json:"orderRevenue"`
	TotalProfit   float64 `json:"totalProfit"`
	OverallMargin Percent `json:"overallMargin"`

	Categories []CategoryProfit `json:"categories"`
	Products   []ProductProfit  `json:"products"`
	Vendors    []VendorProfit   `json:"vendors"`
}

// Profitability builds the profitability report with the given margin
// assumptions (nil means DefaultMargins), truncating products and vendors
// to topProducts and topVendors rows (<= 0 means no truncation).
func (v *View) Profitability(margins Margins, topProducts, topVendors int) *ProfitReport {
	enriched := v.EnrichProfit(margins)

	r := &ProfitReport{
		Categories: ProfitByCategory(enriched),
		Products:   ProfitByProduct(enriched),
		Vendors:    ProfitByVendor(enriched),
	}
	for _, o := range v.Orders {
		r.OrderRevenue += o.Total
	}
	for _, l := range enriched {
		r.TotalProfit += l.EstGrossProfit
	}
	r.OverallMargin = OverallMargin(r.TotalProfit, r.OrderRevenue)

	if topProducts > 0 && len(r.Products) > topProducts {
		r.Products = r.Products[:topProducts]
	}
	if topVendors > 0 && len(r.Vendors) > topVendors {
		r.Vendors = r.Vendors[:topVendors]
	}
	return r
}

// Report bundles every view's report for machine-readable export or the
// analyst assistant.
type Report struct {
	Overview  *OverviewReport  `json:"overview"`
	Products  *ProductsReport  `json:"products"`
	Bundles   []CategoryPair   `json:"bundles"`
	Customers *CustomersReport `json:"customers"`
	Time      *TimeReport      `json:"time"`
	Profit    *ProfitReport    `json:"profit"`
	Insights  Insights         `json:"insights"`
}

// Report computes the full report bundle with the dashboard's default
// truncations (15 products, 20 customers, 25 vendors, 10 pairs).
func (v *View) Report() *Report {
	bundles := v.CategoryPairs()
	if len(bundles) > 10 {
		bundles = bundles[:10]
	}
	return &Report{
		Overview:  v.Overview(),
		Products:  v.Products(15, "", ""),
		Bundles:   bundles,
		Customers: v.Customers(20),
		Time:      v.TimePatterns(),
		Profit:    v.Profitability(nil, 15, 25),
		Insights:  v.Insights(),
	}
}
