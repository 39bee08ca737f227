package app

import (
	"context"
	"errors"
	"fmt"
	"marketintel/internal"
	"marketintel/internal/calculator"
	"marketintel/internal/domain"
	"marketintel/internal/logger"
	"marketintel/internal/service"
	"time"
)

// ErrNoData is the single user-visible failure: both the notice text
// and the signal that the whole downstream computation was skipped.
var ErrNoData = errors.New("no data, check connectivity")

type DashboardHandler struct {
	MarketDataService service.MarketDataService
}

type DashboardResult struct {
	AsOf         time.Time                  `json:"asOf"`
	KPIs         []domain.KPI               `json:"kpis"`
	Regime       domain.Regime              `json:"regime"`
	Sectors      []domain.SectorPerformance `json:"sectors"`
	Correlations CorrelationChart           `json:"correlations"`
	Insights     Insights                   `json:"insights"`
}

// CorrelationChart is the line chart's wire shape: dates plus one
// series per instrument, null where the coefficient is undefined.
type CorrelationChart struct {
	Dates  []string              `json:"dates"`
	Series map[string][]*float64 `json:"series"`
	Order  []string              `json:"order"`
}

type Insights struct {
	Regime           string `json:"regime"`
	CapitalFlow      string `json:"capitalFlow"`
	CorrelationWatch string `json:"correlationWatch"`
}

// GetDashboard runs the full fetch -> compute pipeline. Only a totally
// empty fetch is fatal; partial data renders as-is with the affected
// sections empty.
func (h DashboardHandler) GetDashboard(ctx context.Context) (*DashboardResult, error) {
	log := logger.FromContext(ctx)

	snapshot := h.MarketDataService.GetSnapshot(ctx)
	if snapshot.Macro.IsEmpty() || snapshot.Sectors.IsEmpty() {
		return nil, ErrNoData
	}

	kpis, err := internal.ComputeKPIs(snapshot.Macro)
	if err != nil {
		log.Warnf("skipping kpis: %s", err.Error())
	}
	regime, regimeKnown := internal.DeriveRegime(kpis)

	sectors, err := internal.RankSectors(snapshot.Sectors)
	if err != nil {
		log.Warnf("skipping sector ranking: %s", err.Error())
	}

	correlations, err := calculator.RollingCorrelation(
		snapshot.Macro,
		domain.BenchmarkName,
		domain.CorrelationAssets(),
		calculator.DefaultCorrelationWindow,
		calculator.DefaultCorrelationTail,
	)
	if err != nil {
		log.Warnf("skipping rolling correlations: %s", err.Error())
	}

	return &DashboardResult{
		AsOf:         snapshot.FetchedAt,
		KPIs:         kpis,
		Regime:       regime,
		Sectors:      sectors,
		Correlations: toCorrelationChart(correlations),
		Insights:     buildInsights(regime, regimeKnown, sectors),
	}, nil
}

func toCorrelationChart(table domain.CorrelationTable) CorrelationChart {
	chart := CorrelationChart{
		Dates:  make([]string, 0, len(table.Dates)),
		Series: map[string][]*float64{},
		Order:  table.Columns,
	}
	for _, d := range table.Dates {
		chart.Dates = append(chart.Dates, d.Format(time.DateOnly))
	}
	for _, c := range table.Columns {
		chart.Series[c] = table.Series[c]
	}
	if chart.Order == nil {
		chart.Order = []string{}
	}
	return chart
}

func buildInsights(regime domain.Regime, regimeKnown bool, sectors []domain.SectorPerformance) Insights {
	insights := Insights{
		Regime:           "Regime unavailable.",
		CapitalFlow:      "Sector ranking unavailable.",
		CorrelationWatch: fmt.Sprintf("Check VIX vs %s on the correlation chart.", domain.BenchmarkName),
	}
	if regimeKnown {
		insights.Regime = fmt.Sprintf("%s detected.", regime)
	}
	if len(sectors) > 0 {
		top := sectors[len(sectors)-1]
		insights.CapitalFlow = fmt.Sprintf("Leading sector is %s (%+.1f%%).", top.Name, top.YTDPct)
	}
	return insights
}
