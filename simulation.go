package fundcompare

import (
	"iter"
	"slices"

	"github.com/adikshith/fundcompare/date"
	"github.com/shopspring/decimal"
)

// Position is the state of a replayed portfolio after one transaction.
type Position struct {
	Date       date.Date       // transaction date
	NAV        decimal.Decimal // NAV applied (exact or carried forward)
	Units      Quantity        // units acquired (purchase) or removed (redemption)
	Cumulative Quantity        // units held after this transaction
	Invested   Money           // purchase amounts accumulated so far
	Shortfall  *ShortfallWarning
}

// Positions replays the transaction sequence against a NAV series and
// lazily yields one Position per transaction, in chronological order.
// The sequence is restartable: ranging over it again replays from scratch.
//
// Units are derived as amount/NAV, except that a purchase carrying statement
// units keeps them (the registrar's allotment is authoritative for the held
// fund). A redemption that would drive holdings negative is clamped to zero
// and flagged on the Position; it never stops the replay. A transaction
// predating the series yields its error and ends the sequence.
func Positions(txs []Transaction, s *NAVSeries) iter.Seq2[Position, error] {
	ordered := slices.Clone(txs)
	SortTransactions(ordered)

	return func(yield func(Position, error) bool) {
		var cumulative Quantity
		var invested Money
		for _, tx := range ordered {
			nav, err := s.AsOf(tx.Date)
			if err != nil {
				yield(Position{Date: tx.Date}, err)
				return
			}

			units := tx.Units
			if units.IsZero() {
				units = Q(tx.Amount.Decimal().Div(nav))
			}

			pos := Position{Date: tx.Date, NAV: nav, Units: units}
			switch tx.Type {
			case Purchase:
				cumulative = cumulative.Add(units)
				invested = invested.Add(tx.Amount)
			case Redemption:
				if units.GreaterThan(cumulative) {
					pos.Shortfall = &ShortfallWarning{Day: tx.Date, Requested: units, Available: cumulative}
					units = cumulative
					pos.Units = units
				}
				cumulative = cumulative.Sub(units)
			}
			pos.Cumulative = cumulative
			pos.Invested = invested

			if !yield(pos, nil) {
				return
			}
		}
	}
}

// Replay materializes the Positions sequence, collecting shortfall warnings
// separately. It returns the first resolution error, if any.
func Replay(txs []Transaction, s *NAVSeries) (positions []Position, warnings []ShortfallWarning, err error) {
	for pos, perr := range Positions(txs, s) {
		if perr != nil {
			return nil, nil, perr
		}
		if pos.Shortfall != nil {
			warnings = append(warnings, *pos.Shortfall)
		}
		positions = append(positions, pos)
	}
	return positions, warnings, nil
}
