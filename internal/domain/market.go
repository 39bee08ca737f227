package domain

import "time"

// Regime is the coarse market-sentiment classification derived from the
// benchmark index's most recent daily move.
type Regime string

const (
	RegimeRiskOn  Regime = "RISK_ON"
	RegimeRiskOff Regime = "RISK_OFF"
)

// KPI is one metric card: latest level and day-over-day percent change.
type KPI struct {
	Name           string  `json:"name"`
	LastValue      float64 `json:"lastValue"`
	DailyChangePct float64 `json:"dailyChangePct"`
}

// SectorPerformance is one bar of the sector momentum chart.
type SectorPerformance struct {
	Name   string  `json:"name"`
	YTDPct float64 `json:"ytdPct"`
}

// CorrelationTable holds one rolling-correlation series per instrument.
// A nil entry means the coefficient is undefined on that date, either
// because the window is not yet full or because a window had zero
// variance.
type CorrelationTable struct {
	Dates   []time.Time
	Columns []string
	Series  map[string][]*float64
}

func (t CorrelationTable) NumRows() int {
	return len(t.Dates)
}

// Tail returns the most recent n rows, or the table unchanged when it
// already fits.
func (t CorrelationTable) Tail(n int) CorrelationTable {
	if n >= len(t.Dates) {
		return t
	}
	start := len(t.Dates) - n
	out := CorrelationTable{
		Dates:   t.Dates[start:],
		Columns: t.Columns,
		Series:  make(map[string][]*float64, len(t.Columns)),
	}
	for _, c := range t.Columns {
		out.Series[c] = t.Series[c][start:]
	}
	return out
}

// MarketSnapshot is the cached pair of cleaned price tables one full
// pipeline run works from.
type MarketSnapshot struct {
	Macro     PriceTable
	Sectors   PriceTable
	FetchedAt time.Time
}
