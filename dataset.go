package salescope

import (
	"sort"

	"github.com/verdantlabs/salescope/date"
)

// Dataset is one loaded snapshot of the two point-of-sale tables. It is
// immutable after load: every downstream stage derives new slices from it,
// so a Dataset is safe to share between concurrent readers.
type Dataset struct {
	orders []Order
	items  []ItemLine

	anonymized bool
	// Label mappings produced by anonymization. Kept for debugging only;
	// they are never rendered or exported while anonymization is active.
	productMap  map[string]string
	vendorMap   map[string]string
	categoryMap map[string]string
}

// Orders returns the loaded orders. Callers must not mutate the slice.
func (ds *Dataset) Orders() []Order { return ds.orders }

// Items returns the loaded item-lines. Callers must not mutate the slice.
func (ds *Dataset) Items() []ItemLine { return ds.items }

// Anonymized reports whether anonymization and synthetic values were applied.
func (ds *Dataset) Anonymized() bool { return ds.anonymized }

// Categories returns the sorted set of distinct non-empty categories present
// in the item table, after normalization.
func (ds *Dataset) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, l := range ds.items {
		if l.Category == "" || seen[l.Category] {
			continue
		}
		seen[l.Category] = true
		cats = append(cats, l.Category)
	}
	sort.Strings(cats)
	return cats
}

// Span returns the date range covered by the order table,
// the default filter range. It is zero when there are no orders.
func (ds *Dataset) Span() date.Range {
	if len(ds.orders) == 0 {
		return date.Range{}
	}
	min, max := ds.orders[0].Date(), ds.orders[0].Date()
	for _, o := range ds.orders[1:] {
		if on := o.Date(); on.Before(min) {
			min = on
		} else if on.After(max) {
			max = on
		}
	}
	return date.NewRange(min, max)
}

// RepeatRate returns the share of all customers in the snapshot with more
// than one distinct order, as a percentage. This is the store-wide loyalty
// figure, independent of any filter.
func (ds *Dataset) RepeatRate() Percent {
	return repeatRate(ds.orders)
}

// repeatRate computes the percentage of customers with >1 distinct order.
func repeatRate(orders []Order) Percent {
	visits := make(map[string]map[string]bool)
	for _, o := range orders {
		if visits[o.CustomerID] == nil {
			visits[o.CustomerID] = make(map[string]bool)
		}
		visits[o.CustomerID][o.ID] = true
	}
	if len(visits) == 0 {
		return 0
	}
	repeat := 0
	for _, ids := range visits {
		if len(ids) > 1 {
			repeat++
		}
	}
	return Percent(float64(repeat) / float64(len(visits)) * 100)
}
