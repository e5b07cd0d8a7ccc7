// Package mfapi fetches mutual fund NAV histories from mfapi.in-style
// endpoints. One endpoint per scheme returns the scheme metadata and its
// full NAV history as JSON.
package mfapi

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/adikshith/fundcompare"
	"github.com/adikshith/fundcompare/date"
	"github.com/shopspring/decimal"
)

// payload is the endpoint's shape. Entries come newest first; dates are
// day-first strings and NAVs are decimal strings.
//
//	{
//	  "meta": {
//	    "fund_house": "...",
//	    "scheme_type": "Open Ended Schemes",
//	    "scheme_category": "Equity Scheme - Flexi Cap Fund",
//	    "scheme_code": 122639,
//	    "scheme_name": "..."
//	  },
//	  "data": [ {"date": "23-08-2024", "nav": "104.33560"}, ... ],
//	  "status": "SUCCESS"
//	}
type payload struct {
	Meta any `json:"meta"`
	Data []struct {
		Date string `json:"date"`
		NAV  string `json:"nav"`
	} `json:"data"`
}

// Fetch downloads a fund's full NAV history from the given endpoint. It
// makes exactly one outbound call (served from the disk cache when the same
// endpoint was fetched earlier the same day) and fails with a
// DataUnavailableError on any network or payload problem.
func Fetch(url string) (*fundcompare.Fund, error) {
	var p payload
	if err := jwget(newDailyCachingClient(), url, &p); err != nil {
		return nil, &fundcompare.DataUnavailableError{URL: url, Err: err}
	}
	if len(p.Data) == 0 {
		return nil, &fundcompare.DataUnavailableError{URL: url, Err: fmt.Errorf("empty NAV history in payload")}
	}

	name := metaString(p.Meta, "$.scheme_name")
	if name == "" {
		return nil, &fundcompare.DataUnavailableError{URL: url, Err: fmt.Errorf("payload carries no scheme_name")}
	}

	fund := &fundcompare.Fund{
		Name:     name,
		House:    metaString(p.Meta, "$.fund_house"),
		Category: metaString(p.Meta, "$.scheme_category"),
	}
	for _, entry := range p.Data {
		on, err := date.Parse(entry.Date)
		if err != nil {
			return nil, &fundcompare.DataUnavailableError{URL: url, Err: err}
		}
		nav, err := decimal.NewFromString(entry.NAV)
		if err != nil {
			return nil, &fundcompare.DataUnavailableError{URL: url, Err: fmt.Errorf("invalid NAV %q on %s: %w", entry.NAV, on, err)}
		}
		if !nav.IsPositive() {
			return nil, &fundcompare.DataUnavailableError{URL: url, Err: fmt.Errorf("non-positive NAV %s on %s", nav, on)}
		}
		fund.Series.Append(on, nav)
	}
	return fund, nil
}

// metaString probes the loosely-typed meta object for a string field.
// Meta fields vary across fund houses, so absence is not an error.
func metaString(meta any, path string) string {
	jval, err := jsonpath.Get(path, meta)
	if err != nil {
		return ""
	}
	s, _ := jval.(string)
	return s
}
