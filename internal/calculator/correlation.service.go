// Package calculator holds the statistical derivations the dashboard
// charts are built from.
package calculator

import (
	"fmt"
	"marketintel/internal/domain"
	"math"

	"github.com/montanaflynn/stats"
)

const (
	// DefaultCorrelationWindow is the trading-day window each Pearson
	// coefficient is computed over.
	DefaultCorrelationWindow = 30
	// DefaultCorrelationTail bounds the chart to roughly half a year.
	DefaultCorrelationTail = 180
)

// RollingCorrelation computes, for each named instrument, the rolling
// Pearson correlation between its daily percent changes and the
// benchmark's, one coefficient per return date. The first window-1
// rows are undefined, as is any point whose window has zero variance
// on either side. The result is truncated to the most recent tail rows.
//
// Instruments absent from the table (partial provider data) are
// skipped; a missing benchmark is an error because nothing can be
// computed without it.
func RollingCorrelation(
	macro domain.PriceTable,
	benchmarkName string,
	instrumentNames []string,
	window int,
	tail int,
) (domain.CorrelationTable, error) {
	if window < 2 {
		return domain.CorrelationTable{}, fmt.Errorf("correlation window must be >= 2, got %d", window)
	}
	benchmarkCol, ok := macro.Column(benchmarkName)
	if !ok {
		return domain.CorrelationTable{}, fmt.Errorf("benchmark %q not present in table", benchmarkName)
	}

	benchmarkReturns := percentChangeSeries(benchmarkCol)
	returnDates := macro.Dates
	if len(returnDates) > 0 {
		returnDates = returnDates[1:]
	}

	out := domain.CorrelationTable{
		Dates:   returnDates,
		Columns: []string{},
		Series:  map[string][]*float64{},
	}

	for _, name := range instrumentNames {
		col, ok := macro.Column(name)
		if !ok {
			continue
		}
		out.Columns = append(out.Columns, name)
		out.Series[name] = rollingPearson(percentChangeSeries(col), benchmarkReturns, window)
	}

	return out.Tail(tail), nil
}

// percentChangeSeries converts a price series into day-over-day percent
// changes, one element shorter than its input. A zero previous close
// yields NaN, which poisons any window containing it into "no value".
func percentChangeSeries(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}
	changes := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] == 0 {
			changes[i-1] = math.NaN()
			continue
		}
		changes[i-1] = (prices[i]/prices[i-1] - 1) * 100
	}
	return changes
}

// rollingPearson emits one coefficient per return row. nil marks rows
// where the window is not yet full, contains a non-finite return, or
// has zero variance on either side.
func rollingPearson(series, benchmark []float64, window int) []*float64 {
	n := len(benchmark)
	out := make([]*float64, n)
	if len(series) != n {
		return out
	}

	for i := window - 1; i < n; i++ {
		a := series[i-window+1 : i+1]
		b := benchmark[i-window+1 : i+1]
		if !finite(a) || !finite(b) {
			continue
		}

		sdevA, err := stats.StandardDeviationPopulation(a)
		if err != nil || sdevA == 0 {
			continue
		}
		sdevB, err := stats.StandardDeviationPopulation(b)
		if err != nil || sdevB == 0 {
			continue
		}

		r, err := stats.Correlation(a, b)
		if err != nil {
			continue
		}
		r = clamp(r, -1, 1)
		out[i] = &r
	}
	return out
}

func finite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
