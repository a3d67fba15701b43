// Package salescope turns two point-of-sale tables (orders and item-lines)
// into the metrics, rankings, pairings and profitability figures of a retail
// analytics dashboard.
//
// A snapshot is loaded once per session (see LoadCSV and store.LoadDataset),
// optionally anonymized and given synthetic rank-preserving values, and then
// queried through filtered views:
//
//	ds, err := salescope.LoadCSV("orders_clean.csv", "items_clean.csv", salescope.LoadOptions{Anonymize: true})
//	v := ds.Select(salescope.Filter{Range: ds.Span(), Categories: ds.Categories()})
//	report := v.Report()
//
// Every stage downstream of the load is a pure function of its inputs: the
// Dataset is immutable, views hold no mutable selection state, and all
// aggregates return zero-valued defaults on empty input.
package salescope
