package fundcompare

import "github.com/shopspring/decimal"

// Quantity represents a number of fund units. Unit counts are fractional:
// mutual funds allot units to four decimal places.
type Quantity struct {
	value decimal.Decimal
}

// Q builds a Quantity from a float, int or decimal value.
func Q[T float64 | int | decimal.Decimal](value T) Quantity {
	switch v := any(value).(type) {
	case float64:
		return Quantity{value: decimal.NewFromFloat(v)}
	case int:
		return Quantity{value: decimal.NewFromInt(int64(v))}
	case decimal.Decimal:
		return Quantity{value: v}
	}
	panic("unreachable")
}

// Decimal returns the underlying decimal value.
func (q Quantity) Decimal() decimal.Decimal { return q.value }

// AsFloat returns the quantity as a float64.
func (q Quantity) AsFloat() float64 { return q.value.InexactFloat64() }

func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity     { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) IsNegative() bool            { return q.value.IsNegative() }

// Round returns the quantity rounded to the given number of decimal places.
func (q Quantity) Round(places int32) Quantity { return Quantity{value: q.value.Round(places)} }

// String renders the unit count the way statements do, to four places.
func (q Quantity) String() string { return q.value.StringFixed(4) }

// MarshalJSON implements json.Marshaler.
func (q Quantity) MarshalJSON() ([]byte, error) { return q.value.MarshalJSON() }

// UnmarshalJSON implements json.Unmarshaler.
func (q *Quantity) UnmarshalJSON(b []byte) error { return q.value.UnmarshalJSON(b) }
