package fundcompare

import (
	"testing"

	"github.com/adikshith/fundcompare/date"
)

func TestParseTxType(t *testing.T) {
	testCases := []struct {
		label string
		want  TxType
	}{
		{"Purchase", Purchase},
		{"SIP Purchase", Purchase},
		{"Switch In", Purchase},
		{"", Purchase},
		{"Redemption", Redemption},
		{"REDEEM", Redemption},
		{"Switch Out", Redemption},
		{"Sell", Redemption},
		{"Partial Withdrawal", Redemption},
	}
	for _, tc := range testCases {
		if got := ParseTxType(tc.label); got != tc.want {
			t.Errorf("ParseTxType(%q) = %v, want %v", tc.label, got, tc.want)
		}
	}
}

func TestSortTransactionsStable(t *testing.T) {
	txs := []Transaction{
		{Date: date.MustParse("2023-06-15"), Amount: M(5000, INR)},
		{Date: date.MustParse("2023-01-02"), Amount: M(10000, INR)},
		{Date: date.MustParse("2023-06-15"), Amount: M(7000, INR)},
	}
	SortTransactions(txs)
	if txs[0].Date != date.MustParse("2023-01-02") {
		t.Errorf("first transaction = %v, want 2023-01-02", txs[0].Date)
	}
	// same-day rows keep their statement order
	if !txs[1].Amount.Equal(M(5000, INR)) || !txs[2].Amount.Equal(M(7000, INR)) {
		t.Errorf("same-day order not preserved: %v, %v", txs[1].Amount, txs[2].Amount)
	}
}

func TestTotalInvested(t *testing.T) {
	txs := []Transaction{
		{Type: Purchase, Amount: M(10000, INR)},
		{Type: Redemption, Amount: M(3000, INR)},
		{Type: Purchase, Amount: M(5000, INR)},
	}
	if got := TotalInvested(txs); !got.Equal(M(15000, INR)) {
		t.Errorf("TotalInvested() = %v, want ₹15,000.00", got)
	}
}

func TestSchemesAndFilter(t *testing.T) {
	txs := []Transaction{
		{Scheme: "Fund A", Amount: M(1, INR)},
		{Scheme: "Fund B", Amount: M(2, INR)},
		{Scheme: "Fund A", Amount: M(3, INR)},
		{Scheme: "", Amount: M(4, INR)},
	}
	schemes := Schemes(txs)
	if len(schemes) != 2 || schemes[0] != "Fund A" || schemes[1] != "Fund B" {
		t.Errorf("Schemes() = %v, want [Fund A, Fund B]", schemes)
	}
	if got := FilterScheme(txs, "Fund A"); len(got) != 2 {
		t.Errorf("FilterScheme(Fund A) kept %d rows, want 2", len(got))
	}
	if got := FilterScheme(txs, ""); len(got) != 4 {
		t.Errorf("FilterScheme(\"\") kept %d rows, want all 4", len(got))
	}
}

func TestFirstDate(t *testing.T) {
	txs := []Transaction{
		{Date: date.MustParse("2023-06-15")},
		{Date: date.MustParse("2023-01-02")},
	}
	if got := FirstDate(txs); got != date.MustParse("2023-01-02") {
		t.Errorf("FirstDate() = %v, want 2023-01-02", got)
	}
	if got := FirstDate(nil); !got.IsZero() {
		t.Errorf("FirstDate(nil) = %v, want zero", got)
	}
}
