package fundcompare

import (
	"fmt"

	"github.com/adikshith/fundcompare/date"
	"github.com/shopspring/decimal"
)

// PortfolioSummary aggregates one leg of the comparison: the portfolio the
// investor actually holds, or the synthetic one replayed against the
// alternative fund.
type PortfolioSummary struct {
	Scheme           string
	Invested         Money
	FinalUnits       Quantity
	LatestNAV        decimal.Decimal
	LatestNAVDate    date.Date
	FinalValue       Money
	AbsoluteReturn   Percent
	AnnualizedReturn Percent
	Volatility       Percent
}

// Comparison is the aggregate result of one run.
type Comparison struct {
	Matched     string // scheme column value the held fund was matched to
	Actual      PortfolioSummary
	Alternative PortfolioSummary
	Alpha       Percent // annualized actual minus annualized alternative
	Difference  Money   // alternative final value minus actual final value

	// Per-transaction detail, one entry per transaction, chronological.
	ActualPositions      []Position
	AlternativePositions []Position

	Shortfalls []ShortfallWarning
}

// Compare replays the investor's history for the held fund against the
// alternative fund's NAV series and computes the comparative metrics.
//
// When the transaction file carries several schemes, the held fund's rows
// are selected by fuzzy-matching its scheme name against the file's scheme
// column. Statement units are honored on the actual leg; the alternative leg
// always derives units from the transaction amount.
func Compare(txs []Transaction, held, alternative *Fund) (*Comparison, error) {
	rows := txs
	var matched string
	if schemes := Schemes(txs); len(schemes) > 0 {
		var ok bool
		matched, ok = MatchScheme(held.Name, schemes)
		if !ok {
			return nil, &InvalidInputError{Err: fmt.Errorf("no scheme matching %q among %v", held.Name, schemes)}
		}
		rows = FilterScheme(txs, matched)
	}
	if len(rows) == 0 {
		return nil, &InvalidInputError{Err: fmt.Errorf("no transactions to replay")}
	}

	actualPositions, _, err := Replay(rows, &held.Series)
	if err != nil {
		return nil, err
	}

	// The synthetic leg ignores statement units: what matters is what the
	// same money would have bought.
	synthetic := make([]Transaction, len(rows))
	for i, tx := range rows {
		tx.Units = Quantity{}
		synthetic[i] = tx
	}
	altPositions, shortfalls, err := Replay(synthetic, &alternative.Series)
	if err != nil {
		return nil, err
	}

	invested := TotalInvested(rows)
	first := FirstDate(rows)

	// Volatility is sampled over a common range so both series share the
	// same month-end grid.
	heldLatest, _ := held.Series.Latest()
	altLatest, _ := alternative.Series.Latest()
	volRange := date.Range{From: first, To: heldLatest}
	if altLatest.Before(heldLatest) {
		volRange.To = altLatest
	}

	actual, err := summarize(held, invested, first, volRange, actualPositions)
	if err != nil {
		return nil, err
	}
	alt, err := summarize(alternative, invested, first, volRange, altPositions)
	if err != nil {
		return nil, err
	}

	return &Comparison{
		Matched:              matched,
		Actual:               actual,
		Alternative:          alt,
		Alpha:                Alpha(actual.AnnualizedReturn, alt.AnnualizedReturn),
		Difference:           alt.FinalValue.Sub(actual.FinalValue),
		ActualPositions:      actualPositions,
		AlternativePositions: altPositions,
		Shortfalls:           shortfalls,
	}, nil
}

// summarize values the final holding at the fund's latest NAV and derives
// the return and volatility metrics for one leg.
func summarize(fund *Fund, invested Money, first date.Date, vol date.Range, positions []Position) (PortfolioSummary, error) {
	latestDate, latestNAV := fund.Series.Latest()
	finalUnits := positions[len(positions)-1].Cumulative
	finalValue := M(latestNAV, invested.Currency()).Mul(finalUnits)

	holding := date.Range{From: first, To: latestDate}
	volatility, err := Volatility(&fund.Series, vol)
	if err != nil {
		return PortfolioSummary{}, err
	}

	return PortfolioSummary{
		Scheme:           fund.Name,
		Invested:         invested,
		FinalUnits:       finalUnits,
		LatestNAV:        latestNAV,
		LatestNAVDate:    latestDate,
		FinalValue:       finalValue,
		AbsoluteReturn:   AbsoluteReturn(invested, finalValue),
		AnnualizedReturn: AnnualizedReturn(invested, finalValue, holding),
		Volatility:       volatility,
	}, nil
}
