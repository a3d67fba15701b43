package salescope

import (
	"testing"
	"time"

	"github.com/verdantlabs/salescope/date"
)

func rankingView() *View {
	ds := testDataset()
	return ds.Select(Filter{Range: fullRange(), Categories: ds.Categories()})
}

func TestTopProducts(t *testing.T) {
	v := rankingView()

	got := v.TopProducts(0, "")
	// Glass Chillum and Sunset OG tie at 110; ties break lexicographically.
	want := []ProductRank{
		{Product: "Glass Chillum", NetSales: 110},
		{Product: "Sunset OG", NetSales: 110},
		{Product: "Berry Gummies", NetSales: 30},
		{Product: "Citrus Seltzer", NetSales: 22},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d products %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rank[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if got := v.TopProducts(1, ""); len(got) != 1 {
		t.Errorf("truncation to 1 returned %d rows", len(got))
	}
}

func TestTopProductsDrill(t *testing.T) {
	v := rankingView()
	got := v.TopProducts(0, "Edibles")
	if len(got) != 1 || got[0].Product != "Berry Gummies" {
		t.Errorf("drilled ranking = %v, want only Berry Gummies", got)
	}
}

func TestTopCustomers(t *testing.T) {
	v := rankingView()
	got := v.TopCustomers(2)

	if len(got) != 2 {
		t.Fatalf("got %d customers, want 2", len(got))
	}
	if got[0].CustomerID != "c1" || got[0].TotalSpend != 150 || got[0].Visits != 2 {
		t.Errorf("top customer = %+v, want c1 with 150 over 2 visits", got[0])
	}
	if got[0].AverageTicket != 75 {
		t.Errorf("AverageTicket = %v, want 75", got[0].AverageTicket)
	}
	if got[1].CustomerID != "c3" || got[1].TotalSpend != 120 {
		t.Errorf("second customer = %+v, want c3 with 120", got[1])
	}
}

func TestSearchProducts(t *testing.T) {
	v := rankingView()

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"empty keeps all groups", "", 4},
		{"product match", "sunset", 1},
		{"vendor match", "sweetleaf", 2},
		{"case-insensitive", "SWEET", 2},
		{"no match", "nothing", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.SearchProducts(tc.query); len(got) != tc.want {
				t.Errorf("SearchProducts(%q) returned %d rows, want %d", tc.query, len(got), tc.want)
			}
		})
	}
}

func TestSearchProductsGroups(t *testing.T) {
	v := rankingView()
	got := v.SearchProducts("sunset")
	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1 grouped row", len(got))
	}
	// Two lines of Sunset OG collapse into one listing.
	if got[0].NetSales != 110 || got[0].Units != 2 {
		t.Errorf("grouped listing = %+v, want 110 net sales over 2 units", got[0])
	}
}

func TestDailyRevenue(t *testing.T) {
	v := rankingView()
	got := v.DailyRevenue()

	if len(got) != 4 {
		t.Fatalf("got %d days, want 4", len(got))
	}
	if got[0].Date != date.New(2025, time.January, 5) || got[0].Revenue != 60 {
		t.Errorf("first day = %+v, want Jan 5 at 60", got[0])
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Date.Before(got[i].Date) {
			t.Errorf("series not ascending at %d: %s then %s", i, got[i-1].Date, got[i].Date)
		}
	}
}

func TestCategoryRevenues(t *testing.T) {
	v := rankingView()
	got := v.CategoryRevenues()

	if len(got) != 4 {
		t.Fatalf("got %d categories, want 4", len(got))
	}
	if got[0].Category != "Accessories" || got[0].NetSales != 110 {
		t.Errorf("top category = %+v, want Accessories at 110", got[0])
	}
	if got[1].Category != "Flower" || got[1].NetSales != 110 {
		t.Errorf("second category = %+v, want Flower at 110", got[1])
	}
}
