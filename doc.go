// Package fundcompare replays an investor's real mutual fund transaction
// history against an alternative fund's NAV series and reports comparative
// value, returns, alpha, and volatility.
//
// The computation is a single pass over two sparse date-keyed lookup tables:
// transactions resolve to the applicable NAV by exact date or nearest prior
// trading day (carry-forward), units derive as amount/NAV, and the two
// resulting portfolios are valued at their funds' latest NAVs.
package fundcompare
