package fundcompare

import (
	"errors"
	"testing"

	"github.com/adikshith/fundcompare/date"
	"github.com/shopspring/decimal"
)

// nav is a test helper converting a float to a decimal NAV.
func nav(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// testSeries carries NAVs on Mon 2023-01-02, Fri 2023-01-06 and Mon 2023-01-09,
// with a weekend gap in between. Points are appended out of order on purpose.
func testSeries() *NAVSeries {
	s := new(NAVSeries)
	s.Append(date.MustParse("2023-01-09"), nav(102))
	s.Append(date.MustParse("2023-01-02"), nav(100))
	s.Append(date.MustParse("2023-01-06"), nav(101))
	return s
}

func TestNAVSeriesAppend(t *testing.T) {
	s := testSeries()
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	first, v := s.First()
	if first != date.MustParse("2023-01-02") || !v.Equal(nav(100)) {
		t.Errorf("First() = %v %v, want 2023-01-02 100", first, v)
	}
	latest, v := s.Latest()
	if latest != date.MustParse("2023-01-09") || !v.Equal(nav(102)) {
		t.Errorf("Latest() = %v %v, want 2023-01-09 102", latest, v)
	}

	// appending at an existing date replaces the value
	s.Append(date.MustParse("2023-01-06"), nav(200))
	if s.Len() != 3 {
		t.Errorf("Len() after replace = %d, want 3", s.Len())
	}
	if v, ok := s.At(date.MustParse("2023-01-06")); !ok || !v.Equal(nav(200)) {
		t.Errorf("At(2023-01-06) = %v %v, want 200 true", v, ok)
	}
}

func TestNAVSeriesAsOf(t *testing.T) {
	s := testSeries()
	testCases := []struct {
		name string
		on   string
		want float64
	}{
		{"exact trading day", "2023-01-06", 101},
		{"saturday carries friday forward", "2023-01-07", 101},
		{"sunday carries friday forward", "2023-01-08", 101},
		{"after the last point", "2023-02-01", 102},
		{"first day exact", "2023-01-02", 100},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.AsOf(date.MustParse(tc.on))
			if err != nil {
				t.Fatalf("AsOf(%s) error: %v", tc.on, err)
			}
			if !got.Equal(nav(tc.want)) {
				t.Errorf("AsOf(%s) = %v, want %v", tc.on, got, tc.want)
			}
		})
	}
}

func TestNAVSeriesAsOfOutOfRange(t *testing.T) {
	s := testSeries()
	_, err := s.AsOf(date.MustParse("2022-12-30"))
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("AsOf before history = %v, want *OutOfRangeError", err)
	}
	if oor.First != date.MustParse("2023-01-02") {
		t.Errorf("OutOfRangeError.First = %v, want 2023-01-02", oor.First)
	}
}

func TestNAVSeriesValuesChronological(t *testing.T) {
	s := testSeries()
	var prev date.Date
	for on := range s.Values() {
		if !prev.IsZero() && !on.After(prev) {
			t.Fatalf("Values() out of order: %v after %v", on, prev)
		}
		prev = on
	}
}
