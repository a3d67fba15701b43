// Package store loads the point-of-sale snapshot from a SQLite export, the
// other table format the POS system can produce besides CSV.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/verdantlabs/salescope"
)

// Table names expected in the export.
const (
	ordersTable = "orders"
	itemsTable  = "items"
)

// LoadDataset reads the orders and items tables from a SQLite file and
// assembles the snapshot with the same cleanup/anonymization pipeline as
// the CSV path. Missing tables or columns surface as schema errors.
func LoadDataset(path string, opts salescope.LoadOptions) (*salescope.Dataset, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite export %q: %w", path, err)
	}
	defer db.Close()

	orders, err := readOrders(db)
	if err != nil {
		return nil, err
	}
	items, err := readItems(db)
	if err != nil {
		return nil, err
	}
	return salescope.NewDataset(orders, items, opts), nil
}

func readOrders(db *sql.DB) ([]salescope.Order, error) {
	rows, err := db.Query(
		`SELECT order_id, customer_hash_id, order_timestamp, total FROM ` + ordersTable)
	if err != nil {
		return nil, fmt.Errorf("%w: table %q: %v", salescope.ErrSchema, ordersTable, err)
	}
	defer rows.Close()

	var orders []salescope.Order
	for rows.Next() {
		var o salescope.Order
		var ts string
		if err := rows.Scan(&o.ID, &o.CustomerID, &ts, &o.Total); err != nil {
			return nil, fmt.Errorf("%w: table %q: %v", salescope.ErrSchema, ordersTable, err)
		}
		if o.Timestamp, err = parseTimestamp(ts); err != nil {
			return nil, fmt.Errorf("%w: table %q: %v", salescope.ErrSchema, ordersTable, err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func readItems(db *sql.DB) ([]salescope.ItemLine, error) {
	rows, err := db.Query(
		`SELECT order_id, product_name, vendor_name, category, net_sales, total_inventory_sold, order_timestamp FROM ` + itemsTable)
	if err != nil {
		return nil, fmt.Errorf("%w: table %q: %v", salescope.ErrSchema, itemsTable, err)
	}
	defer rows.Close()

	var items []salescope.ItemLine
	for rows.Next() {
		var l salescope.ItemLine
		var vendor sql.NullString
		var ts string
		if err := rows.Scan(&l.OrderID, &l.Product, &vendor, &l.Category, &l.NetSales, &l.Units, &ts); err != nil {
			return nil, fmt.Errorf("%w: table %q: %v", salescope.ErrSchema, itemsTable, err)
		}
		l.Vendor = vendor.String // NULL vendor reads as "", fixed by the cleanup rules
		if l.Timestamp, err = parseTimestamp(ts); err != nil {
			return nil, fmt.Errorf("%w: table %q: %v", salescope.ErrSchema, itemsTable, err)
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
