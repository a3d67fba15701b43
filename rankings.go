package salescope

import (
	"sort"

	"github.com/verdantlabs/salescope/date"
)

// ProductRank is one row of a top-products ranking.
type ProductRank struct {
	Product  string  `json:"product"`
	NetSales float64 `json:"netSales"`
}

// TopProducts ranks products by summed net sales, descending, truncated to
// n. A non-empty category restricts the ranking to that category
// (the products drill-down). n <= 0 means no truncation.
func (v *View) TopProducts(n int, category string) []ProductRank {
	sales := make(map[string]float64)
	for _, l := range v.Items {
		if category != "" && l.Category != category {
			continue
		}
		sales[l.Product] += l.NetSales
	}
	out := make([]ProductRank, 0, len(sales))
	for p, s := range sales {
		out = append(out, ProductRank{Product: p, NetSales: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].NetSales != out[j].NetSales {
			return out[i].NetSales > out[j].NetSales
		}
		return out[i].Product < out[j].Product
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// CustomerRank is one row of the top-customers table. Customers are
// identified positionally ("Customer #1"...) by the renderer; the hash id
// stays internal.
type CustomerRank struct {
	CustomerID    string  `json:"customerId"`
	Visits        int     `json:"visits"`
	TotalSpend    float64 `json:"totalSpend"`
	AverageTicket float64 `json:"averageTicket"`
}

// TopCustomers ranks customers by total spend, descending, truncated to n.
func (v *View) TopCustomers(n int) []CustomerRank {
	type acc struct {
		spend  float64
		orders map[string]bool
	}
	byCustomer := make(map[string]*acc)
	for _, o := range v.Orders {
		a := byCustomer[o.CustomerID]
		if a == nil {
			a = &acc{orders: make(map[string]bool)}
			byCustomer[o.CustomerID] = a
		}
		a.spend += o.Total
		a.orders[o.ID] = true
	}
	out := make([]CustomerRank, 0, len(byCustomer))
	for id, a := range byCustomer {
		r := CustomerRank{CustomerID: id, Visits: len(a.orders), TotalSpend: a.spend}
		if r.Visits > 0 {
			r.AverageTicket = r.TotalSpend / float64(r.Visits)
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalSpend != out[j].TotalSpend {
			return out[i].TotalSpend > out[j].TotalSpend
		}
		return out[i].CustomerID < out[j].CustomerID
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// ProductListing is one grouped row of the searchable product table.
type ProductListing struct {
	Product  string  `json:"product"`
	Vendor   string  `json:"vendor"`
	Category string  `json:"category"`
	NetSales float64 `json:"netSales"`
	Units    float64 `json:"units"`
}

// SearchProducts groups item-lines by (product, vendor, category) and sums
// net sales and units, keeping rows whose product or vendor contains the
// query, case-insensitive. An empty query keeps everything. Sorted by net
// sales descending.
func (v *View) SearchProducts(query string) []ProductListing {
	type key struct{ product, vendor, category string }
	byKey := make(map[key]*ProductListing)
	for _, l := range v.Items {
		if query != "" && !containsFold(l.Product, query) && !containsFold(l.Vendor, query) {
			continue
		}
		k := key{l.Product, l.Vendor, l.Category}
		p := byKey[k]
		if p == nil {
			p = &ProductListing{Product: l.Product, Vendor: l.Vendor, Category: l.Category}
			byKey[k] = p
		}
		p.NetSales += l.NetSales
		p.Units += l.Units
	}
	out := make([]ProductListing, 0, len(byKey))
	for _, p := range byKey {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].NetSales != out[j].NetSales {
			return out[i].NetSales > out[j].NetSales
		}
		if out[i].Product != out[j].Product {
			return out[i].Product < out[j].Product
		}
		return out[i].Vendor < out[j].Vendor
	})
	return out
}

// DailyRevenue is one point of the revenue-over-time series.
type DailyRevenue struct {
	Date    date.Date `json:"date"`
	Revenue float64   `json:"revenue"`
}

// DailyRevenue sums order totals per day, ascending by date. Days with no
// orders are absent from the series.
func (v *View) DailyRevenue() []DailyRevenue {
	byDay := make(map[date.Date]float64)
	for _, o := range v.Orders {
		byDay[o.Date()] += o.Total
	}
	out := make([]DailyRevenue, 0, len(byDay))
	for d, r := range byDay {
		out = append(out, DailyRevenue{Date: d, Revenue: r})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// CategoryRevenue is the summed net sales of one category.
type CategoryRevenue struct {
	Category string  `json:"category"`
	NetSales float64 `json:"netSales"`
}

// CategoryRevenues sums item net sales per category, descending.
func (v *View) CategoryRevenues() []CategoryRevenue {
	sales := make(map[string]float64)
	for _, l := range v.Items {
		sales[l.Category] += l.NetSales
	}
	out := make([]CategoryRevenue, 0, len(sales))
	for c, s := range sales {
		out = append(out, CategoryRevenue{Category: c, NetSales: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].NetSales != out[j].NetSales {
			return out[i].NetSales > out[j].NetSales
		}
		return out[i].Category < out[j].Category
	})
	return out
}
