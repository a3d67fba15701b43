package salescope

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// reportingCurrency is the currency of the point-of-sale export.
const reportingCurrency = money.USD

// Money is a display value for monetary report fields. Report structs carry
// raw float64 figures (rounding is the caller's concern); Money only exists
// so renderers format them consistently.
type Money struct {
	value decimal.Decimal
}

// M wraps a raw monetary figure for display.
func M(value float64) Money { return Money{value: decimal.NewFromFloat(value)} }

// currency returns the full reporting currency definition.
func (m Money) currency() *money.Currency {
	// the Money constructor guarantees a non-nil currency
	return money.New(0, reportingCurrency).Currency()
}

// String formats the value with cents, e.g. "$1,234.56".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// Whole formats the value without cents, e.g. "$1,235", the way most of the
// dashboard tables show money.
func (m Money) Whole() string {
	f := *m.currency().Formatter()
	f.Fraction = 0
	return f.Format(m.value.Round(0).IntPart())
}
