package fundcompare

import (
	"math"

	"github.com/adikshith/fundcompare/date"
	"gonum.org/v1/gonum/stat"
)

// AbsoluteReturn returns the gain over the invested base, in percent:
// (final - invested) / invested * 100. Zero investment yields zero.
func AbsoluteReturn(invested, final Money) Percent {
	if invested.IsZero() {
		return 0
	}
	return Percent(100 * final.Sub(invested).AsFloat() / invested.AsFloat())
}

// AnnualizedReturn compounds the absolute return over the holding period:
// CAGR = (final/invested)^(365/days) - 1, in percent. A holding period
// shorter than a day, a zero investment, or a wiped-out portfolio is not
// annualizable and yields zero.
func AnnualizedReturn(invested, final Money, holding date.Range) Percent {
	days := holding.Days()
	if days <= 0 || !invested.IsPositive() || !final.IsPositive() {
		return 0
	}
	ratio := final.AsFloat() / invested.AsFloat()
	return Percent(100 * (math.Pow(ratio, 365/float64(days)) - 1))
}

// Volatility is the sample standard deviation of period-over-period returns
// of the series, in percent. The series is sampled on the month-end grid of
// the given range so that two differently-dated series remain comparable;
// month-ends predating the series are skipped. It fails with an
// InsufficientDataError when fewer than 2 periodic returns resolve.
func Volatility(s *NAVSeries, rng date.Range) (Percent, error) {
	if s.Len() < 2 {
		return 0, &InsufficientDataError{Points: s.Len()}
	}
	var samples []float64
	for _, on := range date.MonthEnds(rng.From, rng.To) {
		nav, err := s.AsOf(on)
		if err != nil {
			continue // before the fund's listed history
		}
		samples = append(samples, nav.InexactFloat64())
	}
	if len(samples) < 2 {
		return 0, &InsufficientDataError{Points: len(samples)}
	}

	returns := make([]float64, 0, len(samples)-1)
	for i := 1; i < len(samples); i++ {
		returns = append(returns, 100*(samples[i]-samples[i-1])/samples[i-1])
	}
	if len(returns) < 2 {
		// A single periodic return has no dispersion to measure.
		return 0, &InsufficientDataError{Points: len(samples)}
	}
	return Percent(stat.StdDev(returns, nil)), nil
}

// Alpha is the simple relative-performance difference between the actual
// and the simulated annualized returns. Not a regression-based CAPM alpha.
func Alpha(actual, simulated Percent) Percent { return actual - simulated }
