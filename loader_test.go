package salescope

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestReadOrders(t *testing.T) {
	csv := `order_id,customer_hash_id,order_timestamp,total,extra
o1,c1,2025-01-06 10:30:00,"$1,234.50",x
o2,c2,2025-01-07T14:00:00,,x
o3,c3,2025-01-08,40,x
`
	orders, err := ReadOrders(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 3 {
		t.Fatalf("got %d orders, want 3", len(orders))
	}
	if orders[0].Total != 1234.50 {
		t.Errorf("dollar-and-comma total = %v, want 1234.50", orders[0].Total)
	}
	if orders[1].Total != 0 {
		t.Errorf("blank total = %v, want 0", orders[1].Total)
	}
	if orders[0].Timestamp.Hour() != 10 {
		t.Errorf("timestamp hour = %d, want 10", orders[0].Timestamp.Hour())
	}
	if orders[2].Timestamp != time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC) {
		t.Errorf("date-only timestamp = %v", orders[2].Timestamp)
	}
}

func TestReadOrdersAlias(t *testing.T) {
	csv := `order_id,customer_id_hash,order_timestamp,total
o1,c1,2025-01-06 10:30:00,60
`
	orders, err := ReadOrders(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	if orders[0].CustomerID != "c1" {
		t.Errorf("aliased customer column not read: %+v", orders[0])
	}
}

func TestReadOrdersSchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"missing column", "order_id,customer_hash_id,total\no1,c1,60\n"},
		{"empty input", ""},
		{"bad timestamp", "order_id,customer_hash_id,order_timestamp,total\no1,c1,yesterday,60\n"},
		{"bad number", "order_id,customer_hash_id,order_timestamp,total\no1,c1,2025-01-06,sixty\n"},
		{"short row", "order_id,customer_hash_id,order_timestamp,total\no1,c1\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadOrders(strings.NewReader(tc.csv))
			if !errors.Is(err, ErrSchema) {
				t.Errorf("err = %v, want ErrSchema", err)
			}
		})
	}
}

func TestReadItems(t *testing.T) {
	csv := `order_id,product_name,vendor_name,category,net_sales,total_inventory_sold,order_timestamp
o1,Sunset OG,North Farms,Flower,55,1,2025-01-06 10:30:00
o2,RAW Cones,,Accessories,12,3,2025-01-07 14:00:00
`
	items, err := ReadItems(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[1].Vendor != "" {
		t.Errorf("vendor = %q, want empty before cleanup", items[1].Vendor)
	}
}

func TestNewDatasetAnonymized(t *testing.T) {
	orders := []Order{
		{ID: "o1", CustomerID: "c1", Timestamp: at(6, 10), Total: 60},
		{ID: "o2", CustomerID: "c2", Timestamp: at(7, 14), Total: 90},
	}
	items := []ItemLine{
		{OrderID: "o1", Product: "Sunset OG", Vendor: "North Farms", Category: "Flower", NetSales: 55, Units: 1, Timestamp: at(6, 10)},
		{OrderID: "o2", Product: "Berry Gummies", Vendor: "Sweetleaf", Category: "Edibles", NetSales: 30, Units: 2, Timestamp: at(7, 14)},
		{OrderID: "o2", Product: "Sunset OG", Vendor: "North Farms", Category: "Flower", NetSales: 55, Units: 1, Timestamp: at(7, 14)},
	}
	ds := NewDataset(orders, items, LoadOptions{Anonymize: true, Seed: 42})

	if !ds.Anonymized() {
		t.Fatal("dataset should report anonymized")
	}
	got := ds.Items()
	if got[0].Product != "Product 1" || got[1].Product != "Product 2" || got[2].Product != "Product 1" {
		t.Errorf("products = %q %q %q, want positional labels", got[0].Product, got[1].Product, got[2].Product)
	}
	if got[0].Vendor != "Vendor 1" || got[0].Category != "Category 1" {
		t.Errorf("labels = %q %q", got[0].Vendor, got[0].Category)
	}

	// Synthetic figures replace the originals and stay in their bands.
	for i, o := range ds.Orders() {
		if o.Total < 20*noiseLow || o.Total > 200*noiseHigh {
			t.Errorf("order %d total %v outside the synthetic band", i, o.Total)
		}
	}
	for i, l := range got {
		if l.NetSales < 50*noiseLow || l.NetSales > 1500*noiseHigh {
			t.Errorf("item %d net sales %v outside the synthetic band", i, l.NetSales)
		}
		if l.Units < 1*noiseLow-1 || l.Units > 40*noiseHigh {
			t.Errorf("item %d units %v outside the synthetic band", i, l.Units)
		}
	}

	// The identical product keeps identical rank inputs across rows.
	same := NewDataset(
		[]Order{{ID: "o1", CustomerID: "c1", Timestamp: at(6, 10), Total: 60}, {ID: "o2", CustomerID: "c2", Timestamp: at(7, 14), Total: 90}},
		[]ItemLine{
			{OrderID: "o1", Product: "Sunset OG", Vendor: "North Farms", Category: "Flower", NetSales: 55, Units: 1, Timestamp: at(6, 10)},
			{OrderID: "o2", Product: "Berry Gummies", Vendor: "Sweetleaf", Category: "Edibles", NetSales: 30, Units: 2, Timestamp: at(7, 14)},
			{OrderID: "o2", Product: "Sunset OG", Vendor: "North Farms", Category: "Flower", NetSales: 55, Units: 1, Timestamp: at(7, 14)},
		},
		LoadOptions{Anonymize: true, Seed: 42},
	)
	for i := range got {
		if got[i].NetSales != same.Items()[i].NetSales {
			t.Errorf("same seed diverged at item %d: %v vs %v", i, got[i].NetSales, same.Items()[i].NetSales)
		}
	}
}

func TestNewDatasetRawKeepsValues(t *testing.T) {
	orders := []Order{{ID: "o1", CustomerID: "c1", Timestamp: at(6, 10), Total: 60}}
	items := []ItemLine{{OrderID: "o1", Product: "Sunset OG", Vendor: "North Farms", Category: "Flower", NetSales: 55, Units: 1, Timestamp: at(6, 10)}}
	ds := NewDataset(orders, items, LoadOptions{})

	if ds.Anonymized() {
		t.Fatal("raw dataset should not report anonymized")
	}
	if ds.Orders()[0].Total != 60 || ds.Items()[0].NetSales != 55 {
		t.Errorf("raw figures changed: %+v %+v", ds.Orders()[0], ds.Items()[0])
	}
	if ds.Items()[0].Product != "Sunset OG" {
		t.Errorf("raw labels changed: %q", ds.Items()[0].Product)
	}
}
