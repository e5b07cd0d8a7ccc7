package fundcompare

import (
	"fmt"

	"github.com/adikshith/fundcompare/date"
)

// The run aborts on any of the error kinds below; none are retried and no
// output file is written after a failure. ShortfallWarning is the exception:
// it is collected on the comparison and the run continues.

// DataUnavailableError reports that a fund endpoint was unreachable or
// returned a malformed or empty payload.
type DataUnavailableError struct {
	URL string
	Err error
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("NAV data unavailable from %s: %v", e.URL, e.Err)
}

func (e *DataUnavailableError) Unwrap() error { return e.Err }

// InvalidInputError reports a malformed transaction file. Row is the
// 1-based spreadsheet row at fault, or 0 when the file as a whole is.
type InvalidInputError struct {
	Path string
	Row  int
	Err  error
}

func (e *InvalidInputError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("invalid transaction file %q: row %d: %v", e.Path, e.Row, e.Err)
	}
	return fmt.Sprintf("invalid transaction file %q: %v", e.Path, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// OutOfRangeError reports a transaction dated before the fund's first
// available NAV, so no carry-forward value exists.
type OutOfRangeError struct {
	Day   date.Date
	First date.Date
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("no NAV on or before %s: history starts %s", e.Day, e.First)
}

// InsufficientDataError reports that a NAV series does not carry enough
// sample points to compute volatility.
type InsufficientDataError struct {
	Points int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("not enough NAV samples to compute volatility: got %d, need at least 2", e.Points)
}

// ShortfallWarning records a simulated redemption larger than the simulated
// holding at that date. The redemption is clamped to the available units and
// the run continues.
type ShortfallWarning struct {
	Day       date.Date
	Requested Quantity
	Available Quantity
}

func (w ShortfallWarning) String() string {
	return fmt.Sprintf("%s: redemption of %s units exceeds simulated holding of %s, clamped",
		w.Day, w.Requested, w.Available)
}
