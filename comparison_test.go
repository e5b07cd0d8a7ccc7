package fundcompare

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/adikshith/fundcompare/date"
)

// fixture funds for the reference scenario.
func fixtureFunds() (held, alternative *Fund) {
	held = &Fund{Name: "Alpha Bluechip Fund Growth"}
	held.Series.Append(date.MustParse("2023-01-02"), nav(100))
	held.Series.Append(date.MustParse("2023-03-31"), nav(108))
	held.Series.Append(date.MustParse("2023-06-15"), nav(120))

	alternative = &Fund{Name: "Beta Flexi Cap Fund Growth"}
	alternative.Series.Append(date.MustParse("2023-01-02"), nav(50))
	alternative.Series.Append(date.MustParse("2023-03-31"), nav(52))
	alternative.Series.Append(date.MustParse("2023-06-15"), nav(55))
	return held, alternative
}

func fixtureTransactions() []Transaction {
	return []Transaction{
		{Date: date.MustParse("2023-01-02"), Type: Purchase, Scheme: "Alpha Bluechip Fund - Growth", Amount: M(10000, INR)},
		{Date: date.MustParse("2023-06-15"), Type: Purchase, Scheme: "Alpha Bluechip Fund - Growth", Amount: M(5000, INR)},
		{Date: date.MustParse("2023-02-01"), Type: Purchase, Scheme: "Unrelated Debt Fund", Amount: M(99999, INR)},
	}
}

func TestCompare(t *testing.T) {
	held, alternative := fixtureFunds()
	c, err := Compare(fixtureTransactions(), held, alternative)
	if err != nil {
		t.Fatal(err)
	}

	if c.Matched != "Alpha Bluechip Fund - Growth" {
		t.Errorf("Matched = %q, want the statement's Alpha Bluechip scheme", c.Matched)
	}
	// the unrelated scheme's rows are excluded from the replay
	if len(c.ActualPositions) != 2 || len(c.AlternativePositions) != 2 {
		t.Fatalf("positions = %d/%d, want 2/2", len(c.ActualPositions), len(c.AlternativePositions))
	}
	if !c.Actual.Invested.Equal(M(15000, INR)) {
		t.Errorf("invested = %v, want ₹15,000.00", c.Actual.Invested)
	}

	// 141.67 units at NAV 120 vs 290.91 units at NAV 55
	if diff := math.Abs(c.Actual.FinalValue.AsFloat() - 17000); diff > 0.01 {
		t.Errorf("actual final value = %v, want 17000", c.Actual.FinalValue.AsFloat())
	}
	if diff := math.Abs(c.Alternative.FinalValue.AsFloat() - 16000); diff > 0.01 {
		t.Errorf("alternative final value = %v, want 16000", c.Alternative.FinalValue.AsFloat())
	}
	if diff := math.Abs(c.Difference.AsFloat() - (-1000)); diff > 0.01 {
		t.Errorf("difference = %v, want -1000", c.Difference.AsFloat())
	}

	// the held fund outperformed, so alpha is positive
	if c.Alpha <= 0 {
		t.Errorf("alpha = %v, want > 0", c.Alpha)
	}
	if !c.Alpha.Equal(Alpha(c.Actual.AnnualizedReturn, c.Alternative.AnnualizedReturn)) {
		t.Errorf("alpha = %v, inconsistent with the two annualized returns", c.Alpha)
	}
}

func TestCompareDeterministic(t *testing.T) {
	held, alternative := fixtureFunds()
	a, err := Compare(fixtureTransactions(), held, alternative)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compare(fixtureTransactions(), held, alternative)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs over identical inputs disagree")
	}
}

func TestCompareNoMatchingScheme(t *testing.T) {
	held, alternative := fixtureFunds()
	held.Name = "Completely Different Gold ETF"
	_, err := Compare(fixtureTransactions(), held, alternative)
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("Compare() error = %v, want *InvalidInputError", err)
	}
}

func TestComparePropagatesOutOfRange(t *testing.T) {
	held, alternative := fixtureFunds()
	txs := fixtureTransactions()
	txs = append(txs, Transaction{
		Date: date.MustParse("2022-01-01"), Type: Purchase,
		Scheme: "Alpha Bluechip Fund - Growth", Amount: M(1000, INR),
	})
	_, err := Compare(txs, held, alternative)
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("Compare() error = %v, want *OutOfRangeError", err)
	}
}

func TestCompareSingleSchemeFile(t *testing.T) {
	held, alternative := fixtureFunds()
	// a file without a scheme column replays every row
	txs := []Transaction{
		{Date: date.MustParse("2023-01-02"), Type: Purchase, Amount: M(10000, INR)},
	}
	c, err := Compare(txs, held, alternative)
	if err != nil {
		t.Fatal(err)
	}
	if c.Matched != "" {
		t.Errorf("Matched = %q, want empty for a schemeless file", c.Matched)
	}
	if len(c.ActualPositions) != 1 {
		t.Errorf("positions = %d, want 1", len(c.ActualPositions))
	}
}
