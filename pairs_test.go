package salescope

import "testing"

func line(order, category string) ItemLine {
	return ItemLine{OrderID: order, Product: "P", Vendor: "V", Category: category, NetSales: 10, Units: 1, Timestamp: at(1, 10)}
}

func TestPairCounts(t *testing.T) {
	items := []ItemLine{
		// One order with a duplicate category: {Flower, Edibles, Beverages}.
		line("o1", "Flower"),
		line("o1", "Edibles"),
		line("o1", "Flower"),
		line("o1", "Beverages"),
		// A second order repeats one of the pairs.
		line("o2", "Edibles"),
		line("o2", "Flower"),
		// Single-category orders contribute nothing.
		line("o3", "Flower"),
		line("o3", "Flower"),
	}
	pairs := PairCounts(items)

	want := []CategoryPair{
		{A: "Edibles", B: "Flower", Count: 2},
		{A: "Beverages", B: "Edibles", Count: 1},
		{A: "Beverages", B: "Flower", Count: 1},
	}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs %v, want %d", len(pairs), pairs, len(want))
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pairs[%d] = %+v, want %+v", i, pairs[i], want[i])
		}
	}
}

func TestPairCountsCanonical(t *testing.T) {
	// Category order within the order must not matter.
	a := PairCounts([]ItemLine{line("o1", "Flower"), line("o1", "Edibles")})
	b := PairCounts([]ItemLine{line("o1", "Edibles"), line("o1", "Flower")})
	if len(a) != 1 || len(b) != 1 || a[0] != b[0] {
		t.Fatalf("pair not canonical: %v vs %v", a, b)
	}
	if a[0].A != "Edibles" || a[0].B != "Flower" {
		t.Errorf("pair = (%s, %s), want A <= B", a[0].A, a[0].B)
	}
}

func TestPairCountsEmpty(t *testing.T) {
	if pairs := PairCounts(nil); len(pairs) != 0 {
		t.Errorf("got %v, want no pairs", pairs)
	}
	// Blank categories are skipped entirely.
	if pairs := PairCounts([]ItemLine{line("o1", ""), line("o1", "Flower")}); len(pairs) != 0 {
		t.Errorf("got %v, want no pairs", pairs)
	}
}
