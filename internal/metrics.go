package internal

import (
	"fmt"
	"marketintel/internal/domain"
	"sort"
)

// ComputeKPIs derives one metric card per macro column: the latest
// close and the most recent day-over-day percent change. Columns keep
// the table's (symbol map) order.
func ComputeKPIs(macro domain.PriceTable) ([]domain.KPI, error) {
	if macro.NumRows() < 2 {
		return nil, fmt.Errorf("cannot compute daily change on < 2 rows")
	}

	kpis := make([]domain.KPI, 0, len(macro.Columns))
	for _, name := range macro.Columns {
		col := macro.Series[name]
		last := col[len(col)-1]
		prev := col[len(col)-2]
		if prev == 0 {
			continue
		}
		kpis = append(kpis, domain.KPI{
			Name:           name,
			LastValue:      last,
			DailyChangePct: (last/prev - 1) * 100,
		})
	}
	return kpis, nil
}

// DeriveRegime classifies market sentiment off the benchmark's daily
// change. Zero counts as risk-on. ok is false when the benchmark card
// is missing (partial provider data).
func DeriveRegime(kpis []domain.KPI) (domain.Regime, bool) {
	for _, kpi := range kpis {
		if kpi.Name == domain.BenchmarkName {
			if kpi.DailyChangePct >= 0 {
				return domain.RegimeRiskOn, true
			}
			return domain.RegimeRiskOff, true
		}
	}
	return domain.RegimeRiskOff, false
}

// RankSectors computes each sector's percent change over the full
// retrieved window and sorts ascending, so the strongest performer is
// last. Ties keep symbol-map order. The window is a trailing year, used
// as a YTD proxy.
func RankSectors(sectors domain.PriceTable) ([]domain.SectorPerformance, error) {
	if sectors.IsEmpty() {
		return nil, fmt.Errorf("cannot rank sectors on an empty table")
	}

	ranked := make([]domain.SectorPerformance, 0, len(sectors.Columns))
	for _, name := range sectors.Columns {
		col := sectors.Series[name]
		first := col[0]
		last := col[len(col)-1]
		if first == 0 {
			continue
		}
		ranked = append(ranked, domain.SectorPerformance{
			Name:   name,
			YTDPct: (last - first) / first * 100,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].YTDPct < ranked[j].YTDPct
	})
	return ranked, nil
}
