package salescope

import (
	"testing"
	"time"

	"github.com/verdantlabs/salescope/date"
)

func at(day, hour int) time.Time {
	return time.Date(2025, 1, day, hour, 0, 0, 0, time.UTC)
}

func testDataset() *Dataset {
	orders := []Order{
		{ID: "o1", CustomerID: "c1", Timestamp: at(5, 10), Total: 60},
		{ID: "o2", CustomerID: "c1", Timestamp: at(12, 15), Total: 90},
		{ID: "o3", CustomerID: "c2", Timestamp: at(20, 18), Total: 25},
		{ID: "o4", CustomerID: "c3", Timestamp: at(28, 11), Total: 120},
	}
	items := []ItemLine{
		{OrderID: "o1", Product: "Sunset OG", Vendor: "North Farms", Category: "Flower", NetSales: 55, Units: 1, Timestamp: at(5, 10)},
		{OrderID: "o2", Product: "Berry Gummies", Vendor: "Sweetleaf", Category: "Edibles", NetSales: 30, Units: 2, Timestamp: at(12, 15)},
		{OrderID: "o2", Product: "Sunset OG", Vendor: "North Farms", Category: "Flower", NetSales: 55, Units: 1, Timestamp: at(12, 15)},
		{OrderID: "o3", Product: "Citrus Seltzer", Vendor: "Sweetleaf", Category: "Beverages", NetSales: 22, Units: 2, Timestamp: at(20, 18)},
		{OrderID: "o4", Product: "Glass Chillum", Vendor: "Glassworks", Category: "Accessories", NetSales: 110, Units: 1, Timestamp: at(28, 11)},
	}
	return NewDataset(orders, items, LoadOptions{})
}

func fullRange() date.Range {
	return date.NewRange(date.New(2025, time.January, 1), date.New(2025, time.January, 31))
}

func TestSelectEmptyCategories(t *testing.T) {
	v := testDataset().Select(Filter{Range: fullRange()})
	if len(v.Orders) != 0 || len(v.Items) != 0 {
		t.Errorf("empty category set selected %d orders and %d items, want none", len(v.Orders), len(v.Items))
	}
}

func TestSelectItemsDriveOrders(t *testing.T) {
	ds := testDataset()
	v := ds.Select(Filter{Range: fullRange(), Categories: []string{"Flower", "Edibles"}})

	if len(v.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(v.Items))
	}
	// o3 and o4 have no line in the selected categories.
	if len(v.Orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(v.Orders))
	}
	for _, o := range v.Orders {
		if o.ID != "o1" && o.ID != "o2" {
			t.Errorf("unexpected order %s", o.ID)
		}
	}
}

func TestSelectDateRange(t *testing.T) {
	ds := testDataset()
	v := ds.Select(Filter{
		Range:      date.NewRange(date.New(2025, time.January, 10), date.New(2025, time.January, 25)),
		Categories: ds.Categories(),
	})
	if len(v.Orders) != 2 {
		t.Fatalf("got %d orders, want 2 (o2 and o3)", len(v.Orders))
	}
	for _, l := range v.Items {
		if l.OrderID == "o1" || l.OrderID == "o4" {
			t.Errorf("item of out-of-range order %s selected", l.OrderID)
		}
	}
}

func TestSelectMinTotalNoBackPropagation(t *testing.T) {
	ds := testDataset()
	v := ds.Select(Filter{Range: fullRange(), MinTotal: 1000, Categories: ds.Categories()})

	if len(v.Orders) != 0 {
		t.Errorf("got %d orders, want 0 above the threshold", len(v.Orders))
	}
	// Items are filtered before the total threshold and keep their rows.
	if len(v.Items) != 5 {
		t.Errorf("got %d items, want all 5", len(v.Items))
	}
}

func TestAllSelected(t *testing.T) {
	ds := testDataset()
	if v := ds.Select(Filter{Range: fullRange(), Categories: ds.Categories()}); !v.AllSelected() {
		t.Error("full category set should report AllSelected")
	}
	if v := ds.Select(Filter{Range: fullRange(), Categories: []string{"Flower"}}); v.AllSelected() {
		t.Error("partial category set should not report AllSelected")
	}
	if v := ds.Select(Filter{Range: fullRange(), Categories: []string{"Flower"}}); !v.SingleCategory() {
		t.Error("one category should report SingleCategory")
	}
}

func TestDatasetSpanAndCategories(t *testing.T) {
	ds := testDataset()

	span := ds.Span()
	if got, want := span.From, date.New(2025, time.January, 5); got != want {
		t.Errorf("span.From = %s, want %s", got, want)
	}
	if got, want := span.To, date.New(2025, time.January, 28); got != want {
		t.Errorf("span.To = %s, want %s", got, want)
	}

	cats := ds.Categories()
	want := []string{"Accessories", "Beverages", "Edibles", "Flower"}
	if len(cats) != len(want) {
		t.Fatalf("got categories %v, want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("categories[%d] = %q, want %q", i, cats[i], want[i])
		}
	}
}
