package salescope

import (
	"time"

	"github.com/verdantlabs/salescope/date"
)

// Order is one completed transaction from the point-of-sale export.
type Order struct {
	ID         string    // unique order key
	CustomerID string    // opaque customer hash, stable per customer
	Timestamp  time.Time // when the order was placed
	Total      float64   // order total; a synthetic stand-in in anonymized mode
}

// Date returns the calendar day the order was placed.
func (o Order) Date() date.Date { return date.Of(o.Timestamp) }

// Hour returns the hour of day (0-23) the order was placed.
func (o Order) Hour() int { return o.Timestamp.Hour() }

// Weekday returns the day of the week the order was placed.
func (o Order) Weekday() time.Weekday { return o.Timestamp.Weekday() }

// ItemLine is one product line within an order. Lines whose OrderID does not
// reference a loaded order are tolerated; order-joined computations skip them.
type ItemLine struct {
	OrderID   string
	Product   string
	Vendor    string
	Category  string
	NetSales  float64 // monetary amount for this line, possibly synthetic
	Units     float64 // quantity sold, possibly synthetic
	Timestamp time.Time
}

// Date returns the calendar day of the parent order.
func (l ItemLine) Date() date.Date { return date.Of(l.Timestamp) }
