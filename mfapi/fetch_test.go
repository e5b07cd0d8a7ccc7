package mfapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adikshith/fundcompare"
	"github.com/adikshith/fundcompare/date"
	"github.com/shopspring/decimal"
)

// the endpoint serves entries newest first.
const fixturePayload = `{
  "meta": {
    "fund_house": "Alpha Mutual Fund",
    "scheme_type": "Open Ended Schemes",
    "scheme_category": "Equity Scheme - Large Cap Fund",
    "scheme_code": 122639,
    "scheme_name": "Alpha Bluechip Fund - Direct Plan - Growth"
  },
  "data": [
    {"date": "15-06-2023", "nav": "120.00000"},
    {"date": "31-03-2023", "nav": "108.00000"},
    {"date": "02-01-2023", "nav": "100.00000"}
  ],
  "status": "SUCCESS"
}`

func serve(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestFetch(t *testing.T) {
	fund, err := Fetch(serve(t, http.StatusOK, fixturePayload))
	if err != nil {
		t.Fatal(err)
	}

	if fund.Name != "Alpha Bluechip Fund - Direct Plan - Growth" {
		t.Errorf("Name = %q", fund.Name)
	}
	if fund.House != "Alpha Mutual Fund" {
		t.Errorf("House = %q", fund.House)
	}
	if fund.Category != "Equity Scheme - Large Cap Fund" {
		t.Errorf("Category = %q", fund.Category)
	}

	if fund.Series.Len() != 3 {
		t.Fatalf("Series.Len() = %d, want 3", fund.Series.Len())
	}
	// newest-first payload comes out chronological
	if first, _ := fund.Series.First(); first != date.MustParse("2023-01-02") {
		t.Errorf("First = %v, want 2023-01-02", first)
	}
	latest, nav := fund.Series.Latest()
	if latest != date.MustParse("2023-06-15") {
		t.Errorf("Latest = %v, want 2023-06-15", latest)
	}
	if !nav.Equal(decimal.NewFromInt(120)) {
		t.Errorf("latest NAV = %v, want 120", nav)
	}
}

func TestFetchErrors(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		body   string
	}{
		{"http error", http.StatusNotFound, `{"status":"FAIL"}`},
		{"not json", http.StatusOK, `<html>maintenance</html>`},
		{"empty history", http.StatusOK, `{"meta":{"scheme_name":"X"},"data":[]}`},
		{"no scheme name", http.StatusOK, `{"meta":{"fund_house":"Y"},"data":[{"date":"02-01-2023","nav":"100"}]}`},
		{"bad date", http.StatusOK, `{"meta":{"scheme_name":"X"},"data":[{"date":"someday","nav":"100"}]}`},
		{"bad nav", http.StatusOK, `{"meta":{"scheme_name":"X"},"data":[{"date":"02-01-2023","nav":"N.A."}]}`},
		{"zero nav", http.StatusOK, `{"meta":{"scheme_name":"X"},"data":[{"date":"02-01-2023","nav":"0.00000"}]}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Fetch(serve(t, tc.status, tc.body))
			var unavailable *fundcompare.DataUnavailableError
			if !errors.As(err, &unavailable) {
				t.Fatalf("error = %v, want *DataUnavailableError", err)
			}
		})
	}
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := Fetch(url)
	var unavailable *fundcompare.DataUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("error = %v, want *DataUnavailableError", err)
	}
}
