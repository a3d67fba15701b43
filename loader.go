package salescope

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadOptions selects how a snapshot is prepared after reading.
type LoadOptions struct {
	// Anonymize relabels products, vendors and categories and replaces
	// monetary and quantity figures with rank-preserving synthetic values.
	Anonymize bool
	// Seed for the synthetic value generator; 0 seeds from the clock.
	Seed int64
}

// ErrSchema marks structural validation failures in a source table: a
// missing required column or an unparsable cell. It is the only hard
// failure of the pipeline and happens before any transform runs.
var ErrSchema = errors.New("schema validation failed")

// Required source columns. customer_id_hash is accepted as an alias for
// customer_hash_id, as some exports name it that way.
var (
	orderColumns = []string{"order_id", "customer_hash_id", "order_timestamp", "total"}
	itemColumns  = []string{"order_id", "product_name", "vendor_name", "category", "net_sales", "total_inventory_sold", "order_timestamp"}
)

// NewDataset assembles a snapshot from already-decoded rows: data-quality
// cleanups first, then (in anonymized mode) label anonymization and
// synthetic values. The input slices are retained and must not be reused.
func NewDataset(orders []Order, items []ItemLine, opts LoadOptions) *Dataset {
	ds := &Dataset{orders: orders, items: items}
	cleanItems(ds.items)

	if !opts.Anonymize {
		return ds
	}
	ds.anonymized = true

	products := make([]string, len(items))
	vendors := make([]string, len(items))
	categories := make([]string, len(items))
	for i, l := range items {
		products[i], vendors[i], categories[i] = l.Product, l.Vendor, l.Category
	}
	products, ds.productMap = Anonymize(products, "Product")
	vendors, ds.vendorMap = Anonymize(vendors, "Vendor")
	categories, ds.categoryMap = Anonymize(categories, "Category")

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	syn := NewSynthesizer(seed)

	totals := make([]float64, len(orders))
	for i, o := range orders {
		totals[i] = o.Total
	}
	totals = syn.Synthesize(totals, 20, 200)
	for i := range ds.orders {
		ds.orders[i].Total = totals[i]
	}

	sales := make([]float64, len(items))
	units := make([]float64, len(items))
	for i, l := range items {
		sales[i], units[i] = l.NetSales, l.Units
	}
	sales = syn.Synthesize(sales, 50, 1500)
	units = syn.Synthesize(units, 1, 40)
	for i := range ds.items {
		ds.items[i].Product = products[i]
		ds.items[i].Vendor = vendors[i]
		ds.items[i].Category = categories[i]
		ds.items[i].NetSales = sales[i]
		ds.items[i].Units = units[i]
	}
	return ds
}

// LoadCSV reads the two point-of-sale tables from CSV files and assembles
// the snapshot. Column presence is validated up front; any malformed cell
// aborts the load with a schema error naming the table and row.
func LoadCSV(ordersPath, itemsPath string, opts LoadOptions) (*Dataset, error) {
	orders, err := readOrdersCSV(ordersPath)
	if err != nil {
		return nil, err
	}
	items, err := readItemsCSV(itemsPath)
	if err != nil {
		return nil, err
	}
	return NewDataset(orders, items, opts), nil
}

func readOrdersCSV(path string) ([]Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open orders file: %w", err)
	}
	defer f.Close()
	return ReadOrders(f)
}

func readItemsCSV(path string) ([]ItemLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open items file: %w", err)
	}
	defer f.Close()
	return ReadItems(f)
}

// ReadOrders decodes the order table from CSV.
func ReadOrders(r io.Reader) ([]Order, error) {
	rows, index, err := readTable(r, "orders", orderColumns, map[string]string{"customer_hash_id": "customer_id_hash"})
	if err != nil {
		return nil, err
	}
	orders := make([]Order, 0, len(rows))
	for i, row := range rows {
		ts, err := parseTimestamp(row[index["order_timestamp"]])
		if err != nil {
			return nil, cellError("orders", "order_timestamp", i, err)
		}
		total, err := parseNumber(row[index["total"]])
		if err != nil {
			return nil, cellError("orders", "total", i, err)
		}
		orders = append(orders, Order{
			ID:         strings.TrimSpace(row[index["order_id"]]),
			CustomerID: strings.TrimSpace(row[index["customer_hash_id"]]),
			Timestamp:  ts,
			Total:      total,
		})
	}
	return orders, nil
}

// ReadItems decodes the item-line table from CSV.
func ReadItems(r io.Reader) ([]ItemLine, error) {
	rows, index, err := readTable(r, "items", itemColumns, nil)
	if err != nil {
		return nil, err
	}
	items := make([]ItemLine, 0, len(rows))
	for i, row := range rows {
		ts, err := parseTimestamp(row[index["order_timestamp"]])
		if err != nil {
			return nil, cellError("items", "order_timestamp", i, err)
		}
		sales, err := parseNumber(row[index["net_sales"]])
		if err != nil {
			return nil, cellError("items", "net_sales", i, err)
		}
		units, err := parseNumber(row[index["total_inventory_sold"]])
		if err != nil {
			return nil, cellError("items", "total_inventory_sold", i, err)
		}
		items = append(items, ItemLine{
			OrderID:   strings.TrimSpace(row[index["order_id"]]),
			Product:   row[index["product_name"]],
			Vendor:    row[index["vendor_name"]],
			Category:  strings.TrimSpace(row[index["category"]]),
			NetSales:  sales,
			Units:     units,
			Timestamp: ts,
		})
	}
	return items, nil
}

// readTable reads all CSV records and locates the required columns in the
// header, honoring per-column aliases. It returns the data rows and a
// column name to index map.
func readTable(r io.Reader, table string, required []string, aliases map[string]string) ([][]string, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged exports happen; validation is per required column

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: table %q: %v", ErrSchema, table, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: table %q is empty, no header row", ErrSchema, table)
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.TrimSpace(name)] = i
	}

	index := make(map[string]int, len(required))
	for _, col := range required {
		at, ok := header[col]
		if !ok {
			if alias, has := aliases[col]; has {
				at, ok = header[alias]
			}
		}
		if !ok {
			return nil, nil, fmt.Errorf("%w: table %q missing required column %q", ErrSchema, table, col)
		}
		index[col] = at
	}

	// Rows shorter than the rightmost required column are structural errors.
	max := 0
	for _, at := range index {
		if at > max {
			max = at
		}
	}
	for i, row := range records[1:] {
		if len(row) <= max {
			return nil, nil, fmt.Errorf("%w: table %q row %d has %d fields, want at least %d", ErrSchema, table, i+1, len(row), max+1)
		}
	}
	return records[1:], index, nil
}

func cellError(table, column string, row int, err error) error {
	return fmt.Errorf("%w: table %q column %q row %d: %v", ErrSchema, table, column, row+1, err)
}

// timestampLayouts are tried in order when parsing order timestamps.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// parseNumber parses a monetary or quantity cell. Blank cells read as 0;
// anything else must be a number, optionally with $ and thousands commas.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}
