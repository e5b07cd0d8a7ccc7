package fundcompare

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// INR is the default reporting currency; fund statements and the public NAV
// endpoints quote rupee amounts.
const INR = "INR"

// Money represents a monetary amount in a single currency.
// The zero value is a currency-less zero amount.
type Money struct {
	value decimal.Decimal // major units
	cur   string
}

// M builds a Money from a float, int or decimal amount and a currency code.
func M[T float64 | int | decimal.Decimal](value T, currency string) Money {
	switch v := any(value).(type) {
	case float64:
		return Money{value: decimal.NewFromFloat(v), cur: currency}
	case int:
		return Money{value: decimal.NewFromInt(int64(v)), cur: currency}
	case decimal.Decimal:
		return Money{value: v, cur: currency}
	}
	panic("unreachable")
}

// Currency returns the currency code.
func (m Money) Currency() string { return m.cur }

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal { return m.value }

// AsFloat returns the amount as a float64, for metric computations where
// exactness no longer matters.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsPositive() bool   { return m.value.IsPositive() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

// Add returns m+n. The empty currency is weak: it takes the other operand's.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

// Sub returns m-n.
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Mul returns the amount scaled by a quantity of units.
func (m Money) Mul(q Quantity) Money { return Money{value: m.value.Mul(q.value), cur: m.cur} }

// cur resolves the currency of a binary operation, treating "" as weak.
func cur(a, b Money) string {
	switch {
	case a.cur == "":
		return b.cur
	case b.cur == "" || a.cur == b.cur:
		return a.cur
	}
	panic("currency mismatch " + a.cur + " != " + b.cur)
}

// String formats the amount with its currency symbol and conventional
// fraction digits, e.g. "₹15,000.00".
func (m Money) String() string {
	code := m.cur
	if code == "" {
		code = INR
	}
	c := *money.New(0, code).Currency()
	return c.Formatter().Format(m.value.Shift(int32(c.Fraction)).IntPart())
}
