package fundcompare

import (
	"slices"
	"strings"

	"github.com/adikshith/fundcompare/date"
)

// TxType classifies a transaction as money moving into or out of a scheme.
type TxType int

const (
	Purchase TxType = iota
	Redemption
)

func (t TxType) String() string {
	if t == Redemption {
		return "redemption"
	}
	return "purchase"
}

// ParseTxType classifies a statement's transaction-type label. Labels vary
// across registrars; anything mentioning a sale, redemption or switch-out is
// a redemption, everything else (SIP, purchase, switch-in, blank) a purchase.
func ParseTxType(label string) TxType {
	l := strings.ToLower(label)
	for _, marker := range []string{"redemption", "redeem", "sell", "switch out", "switch-out", "withdrawal"} {
		if strings.Contains(l, marker) {
			return Redemption
		}
	}
	return Purchase
}

// Transaction is one row of the investor's history. Immutable once loaded.
type Transaction struct {
	Date   date.Date
	Type   TxType
	Scheme string   // scheme column value, may be empty for single-scheme files
	Amount Money    // gross amount, always positive
	Units  Quantity // statement units when present; zero means derive from NAV
}

// SortTransactions orders transactions chronologically, preserving the
// statement order of same-day rows.
func SortTransactions(txs []Transaction) {
	slices.SortStableFunc(txs, func(a, b Transaction) int { return a.Date.Compare(b.Date) })
}

// TotalInvested sums the purchase amounts of the sequence. Redemptions do
// not reduce the invested base.
func TotalInvested(txs []Transaction) Money {
	var total Money
	for _, tx := range txs {
		if tx.Type == Purchase {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// FirstDate returns the date of the earliest transaction, or the zero Date
// for an empty sequence.
func FirstDate(txs []Transaction) date.Date {
	var first date.Date
	for _, tx := range txs {
		if first.IsZero() || tx.Date.Before(first) {
			first = tx.Date
		}
	}
	return first
}

// Schemes returns the distinct scheme names of the sequence, in first-seen
// order. Empty scheme values are skipped.
func Schemes(txs []Transaction) []string {
	var names []string
	seen := make(map[string]bool)
	for _, tx := range txs {
		if tx.Scheme == "" || seen[tx.Scheme] {
			continue
		}
		seen[tx.Scheme] = true
		names = append(names, tx.Scheme)
	}
	return names
}

// FilterScheme returns the transactions belonging to the given scheme.
// An empty scheme selects the whole sequence.
func FilterScheme(txs []Transaction, scheme string) []Transaction {
	if scheme == "" {
		return slices.Clone(txs)
	}
	var out []Transaction
	for _, tx := range txs {
		if tx.Scheme == scheme {
			out = append(out, tx)
		}
	}
	return out
}
