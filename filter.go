package salescope

import (
	"github.com/verdantlabs/salescope/date"
)

// Filter holds one interaction's worth of filter parameters. The core keeps
// no selection state of its own: every recomputation receives the full
// filter explicitly.
type Filter struct {
	Range      date.Range
	MinTotal   float64
	Categories []string // selected category set; empty means nothing selected
}

// has reports whether the category is selected.
func (f Filter) has(category string) bool {
	for _, c := range f.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// View is the consistent filtered projection of a Dataset for one filter
// state. Every order in Orders has at least one line in Items and vice
// versa, except that raising MinTotal can empty Orders without shrinking
// Items (there is deliberately no back-propagation from orders to items).
type View struct {
	Orders []Order
	Items  []ItemLine

	// dateOnly is the order subset restricted by date range only. The
	// repeat-customer rate is computed over it so that narrowing the
	// category selection does not distort loyalty figures.
	dateOnly []Order

	ds     *Dataset
	filter Filter
}

// Select applies the filter and returns the derived view. Item-lines are
// filtered first (date range and category set); orders are then restricted
// to the date range, the minimum total, and the order ids surviving the
// item filter, so an order with no line in the selected categories is
// excluded even when its own date and total match.
func (ds *Dataset) Select(f Filter) *View {
	v := &View{ds: ds, filter: f}

	for _, o := range ds.orders {
		if f.Range.Contains(o.Date()) {
			v.dateOnly = append(v.dateOnly, o)
		}
	}

	// An empty category set selects nothing at all.
	if len(f.Categories) == 0 {
		return v
	}

	validOrders := make(map[string]bool)
	for _, l := range ds.items {
		if f.Range.Contains(l.Date()) && f.has(l.Category) {
			v.Items = append(v.Items, l)
			validOrders[l.OrderID] = true
		}
	}

	for _, o := range v.dateOnly {
		if o.Total >= f.MinTotal && validOrders[o.ID] {
			v.Orders = append(v.Orders, o)
		}
	}
	return v
}

// Filter returns the parameters this view was derived from.
func (v *View) Filter() Filter { return v.filter }

// AllSelected reports whether the filter's category set covers every
// category present in the dataset.
func (v *View) AllSelected() bool {
	all := v.ds.Categories()
	if len(v.filter.Categories) != len(all) {
		return false
	}
	for _, c := range all {
		if !v.filter.has(c) {
			return false
		}
	}
	return true
}

// SingleCategory reports whether exactly one category is selected.
func (v *View) SingleCategory() bool { return len(v.filter.Categories) == 1 }

// distinctOrderIDs counts distinct order ids in the filtered order set.
func (v *View) distinctOrderIDs() int {
	ids := make(map[string]bool, len(v.Orders))
	for _, o := range v.Orders {
		ids[o.ID] = true
	}
	return len(ids)
}
