package salescope

import "strconv"

// Metrics are the scalar KPIs of the dashboard header. Every field is safe
// on empty input: sums are 0, averages are 0 instead of NaN.
type Metrics struct {
	TotalRevenue         float64 `json:"totalRevenue"`
	AverageOrderValue    float64 `json:"averageOrderValue"`
	UniqueCustomers      int     `json:"uniqueCustomers"`
	TotalOrders          int     `json:"totalOrders"`
	TotalUnits           float64 `json:"totalUnits"`
	AverageItemsPerOrder float64 `json:"averageItemsPerOrder"`

	// RepeatRate is computed over the date-only order subset, ignoring the
	// category filter. This asymmetry is deliberate: loyalty denominators
	// are date-scoped so switching categories does not distort them.
	RepeatRate Percent `json:"repeatRate"`
	// RepeatRateLocal is the same figure over the fully filtered orders,
	// shown for comparison when a strict subset of categories is selected.
	RepeatRateLocal Percent `json:"repeatRateLocal"`
}

// Metrics computes the KPI scalars for the view.
func (v *View) Metrics() Metrics {
	var m Metrics

	for _, o := range v.Orders {
		m.TotalRevenue += o.Total
	}
	m.TotalOrders = v.distinctOrderIDs()
	if len(v.Orders) > 0 {
		m.AverageOrderValue = m.TotalRevenue / float64(len(v.Orders))
	}

	customers := make(map[string]bool)
	for _, o := range v.Orders {
		customers[o.CustomerID] = true
	}
	m.UniqueCustomers = len(customers)

	for _, l := range v.Items {
		m.TotalUnits += l.Units
	}
	if m.TotalOrders > 0 && len(v.Items) > 0 {
		m.AverageItemsPerOrder = m.TotalUnits / float64(m.TotalOrders)
	}

	// The rate is only meaningful when the filtered view has orders at all.
	if len(v.Orders) > 0 {
		m.RepeatRate = repeatRate(v.dateOnly)
		m.RepeatRateLocal = repeatRate(v.Orders)
	}
	return m
}

// VisitBucket is one bar of the visit-frequency distribution.
type VisitBucket struct {
	Label     string `json:"label"` // "1".."10" or "10+"
	Customers int    `json:"customers"`
}

// VisitDistribution buckets customers by distinct order count, with every
// count above ten collapsed into a "10+" bucket for readability.
func (v *View) VisitDistribution() []VisitBucket {
	visits := customerVisits(v.Orders)
	if len(visits) == 0 {
		return nil
	}

	counts := make(map[int]int)
	over := 0
	for _, n := range visits {
		if n > 10 {
			over++
		} else {
			counts[n]++
		}
	}

	var buckets []VisitBucket
	for n := 1; n <= 10; n++ {
		if counts[n] > 0 {
			buckets = append(buckets, VisitBucket{Label: strconv.Itoa(n), Customers: counts[n]})
		}
	}
	if over > 0 {
		buckets = append(buckets, VisitBucket{Label: "10+", Customers: over})
	}
	return buckets
}

// AverageVisits returns the mean number of distinct orders per customer in
// the filtered view, 0 when there are no customers.
func (v *View) AverageVisits() float64 {
	visits := customerVisits(v.Orders)
	if len(visits) == 0 {
		return 0
	}
	total := 0
	for _, n := range visits {
		total += n
	}
	return float64(total) / float64(len(visits))
}

// customerVisits maps each customer to their distinct order count.
func customerVisits(orders []Order) map[string]int {
	ids := make(map[string]map[string]bool)
	for _, o := range orders {
		if ids[o.CustomerID] == nil {
			ids[o.CustomerID] = make(map[string]bool)
		}
		ids[o.CustomerID][o.ID] = true
	}
	visits := make(map[string]int, len(ids))
	for c, set := range ids {
		visits[c] = len(set)
	}
	return visits
}
