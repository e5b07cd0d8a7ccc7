// Package date provides a day-granularity Date and calendar helpers for
// keying sparse NAV series, where only trading days carry a value.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// ISOFormat is the canonical string representation, ISO-8601.
const ISOFormat = "2006-01-02"

// StatementFormat is the day-first representation used by fund statements
// and the public NAV endpoints (e.g. "02-01-2006" for 2nd January 2006).
const StatementFormat = "02-01-2006"

// Date represents a calendar day, with no time-of-day component.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
// Out-of-range components roll over the way time.Date does.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// time returns the canonical time.Time for that day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether d is strictly before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is strictly after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1 when d is before x, +1 when after, and 0 when equal.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// Sub returns the number of calendar days from x to d.
func (d Date) Sub(x Date) int { return int(d.time().Sub(x.time()) / (24 * time.Hour)) }

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date { return New(d.y, d.m+1, 0) }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(ISOFormat) }

// Parse parses a Date from a string, accepting both the ISO form
// "2006-01-02" and the statement form "02-01-2006".
func Parse(str string) (Date, error) {
	for _, layout := range []string{ISOFormat, StatementFormat} {
		if on, err := time.Parse(layout, str); err == nil {
			return New(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: want %q or %q", str, ISOFormat, StatementFormat)
}

// MustParse is like Parse but panics on error. For tests and constants.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalJSON encodes the date as an ISO-8601 JSON string.
func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

// UnmarshalJSON decodes a date from a JSON string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// Days returns the number of calendar days spanned by the range.
func (r Range) Days() int { return r.To.Sub(r.From) }

// MonthEnds returns the last day of every month intersecting [from, to],
// clamped so that no returned date exceeds 'to'. It is the fixed sampling
// grid used to compare two differently-dated series.
func MonthEnds(from, to Date) []Date {
	if to.Before(from) {
		return nil
	}
	var ends []Date
	for on := from.EndOfMonth(); !on.After(to); on = on.Add(1).EndOfMonth() {
		ends = append(ends, on)
	}
	// The open tail of the range still carries information: sample 'to' itself.
	if n := len(ends); n == 0 || ends[n-1] != to {
		ends = append(ends, to)
	}
	return ends
}
