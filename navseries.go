package fundcompare

import (
	"iter"
	"slices"

	"github.com/adikshith/fundcompare/date"
	"github.com/shopspring/decimal"
)

// NAVSeries is a sparse chronological series of per-unit prices. Only
// trading days carry a value; resolution for any other day falls back to the
// nearest prior trading day.
//
// The zero value is an empty series ready for use.
type NAVSeries struct {
	days []date.Date
	navs []decimal.Decimal
}

// Len returns the number of points in the series.
func (s *NAVSeries) Len() int { return len(s.days) }

// Append inserts a point, keeping the series sorted by date. A point at an
// existing date replaces the previous value.
func (s *NAVSeries) Append(on date.Date, nav decimal.Decimal) *NAVSeries {
	i, found := slices.BinarySearchFunc(s.days, on, date.Date.Compare)
	if found {
		s.navs[i] = nav
		return s
	}
	s.days = slices.Insert(s.days, i, on)
	s.navs = slices.Insert(s.navs, i, nav)
	return s
}

// First returns the earliest date and value in the series, or zero values
// for an empty series.
func (s *NAVSeries) First() (date.Date, decimal.Decimal) {
	if len(s.days) == 0 {
		return date.Date{}, decimal.Decimal{}
	}
	return s.days[0], s.navs[0]
}

// Latest returns the most recent date and value in the series, or zero
// values for an empty series.
func (s *NAVSeries) Latest() (date.Date, decimal.Decimal) {
	last := len(s.days) - 1
	if last < 0 {
		return date.Date{}, decimal.Decimal{}
	}
	return s.days[last], s.navs[last]
}

// At returns the NAV at exactly 'on', and whether that trading day exists.
func (s *NAVSeries) At(on date.Date) (decimal.Decimal, bool) {
	i, found := slices.BinarySearchFunc(s.days, on, date.Date.Compare)
	if !found {
		return decimal.Decimal{}, false
	}
	return s.navs[i], true
}

// AsOf resolves the NAV applicable on 'on': the exact value when that day
// traded, otherwise the value of the nearest prior trading day. It returns
// an OutOfRangeError when 'on' predates the series.
func (s *NAVSeries) AsOf(on date.Date) (decimal.Decimal, error) {
	i, found := slices.BinarySearchFunc(s.days, on, date.Date.Compare)
	if found {
		return s.navs[i], nil
	}
	// i is the insertion index: the carry-forward value sits just before it.
	if i == 0 {
		first, _ := s.First()
		return decimal.Decimal{}, &OutOfRangeError{Day: on, First: first}
	}
	return s.navs[i-1], nil
}

// Values iterates over all date/NAV pairs in chronological order.
func (s *NAVSeries) Values() iter.Seq2[date.Date, decimal.Decimal] {
	return func(yield func(date.Date, decimal.Decimal) bool) {
		for i, on := range s.days {
			if !yield(on, s.navs[i]) {
				return
			}
		}
	}
}

// Fund couples a scheme's identity with its NAV history.
type Fund struct {
	Name     string // scheme name as reported by the NAV source
	House    string // fund house, when the source reports it
	Category string // scheme category, when the source reports it
	Series   NAVSeries
}
