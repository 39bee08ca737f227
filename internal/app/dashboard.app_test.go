package app

import (
	"context"
	"marketintel/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubMarketDataService struct {
	snapshot *domain.MarketSnapshot
}

func (s stubMarketDataService) FetchClean(_ context.Context, symbolMap domain.SymbolMap) domain.PriceTable {
	if symbolMap.Fingerprint() == domain.MacroSymbolMap().Fingerprint() {
		return s.snapshot.Macro
	}
	return s.snapshot.Sectors
}

func (s stubMarketDataService) GetSnapshot(context.Context) *domain.MarketSnapshot {
	return s.snapshot
}

func table(columns []string, series map[string][]float64) domain.PriceTable {
	rows := 0
	for _, s := range series {
		rows = len(s)
		break
	}
	dates := make([]time.Time, rows)
	for i := range dates {
		dates[i] = time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC)
	}
	return domain.PriceTable{Dates: dates, Columns: columns, Series: series}
}

func Test_GetDashboard(t *testing.T) {
	t.Run("empty macro table yields the no-data notice and nothing else", func(t *testing.T) {
		h := DashboardHandler{
			MarketDataService: stubMarketDataService{snapshot: &domain.MarketSnapshot{
				Macro:   domain.EmptyPriceTable(),
				Sectors: table([]string{"Technology"}, map[string][]float64{"Technology": {10, 11}}),
			}},
		}

		result, err := h.GetDashboard(context.Background())
		require.ErrorIs(t, err, ErrNoData)
		require.Nil(t, result)
	})

	t.Run("empty sector table yields the no-data notice", func(t *testing.T) {
		h := DashboardHandler{
			MarketDataService: stubMarketDataService{snapshot: &domain.MarketSnapshot{
				Macro:   table([]string{"S&P 500"}, map[string][]float64{"S&P 500": {100, 101}}),
				Sectors: domain.EmptyPriceTable(),
			}},
		}

		_, err := h.GetDashboard(context.Background())
		require.ErrorIs(t, err, ErrNoData)
	})

	t.Run("full pipeline", func(t *testing.T) {
		macro := table(
			[]string{"S&P 500", "Gold", "VIX"},
			map[string][]float64{
				"S&P 500": {100, 102, 101, 103, 105, 104, 107},
				"Gold":    {2000, 2030, 2010, 2060, 2090, 2070, 2120},
				"VIX":     {15, 14, 16, 13, 12, 14, 11},
			},
		)
		sectors := table(
			[]string{"Technology", "Energy"},
			map[string][]float64{
				"Technology": {10, 12},
				"Energy":     {10, 9},
			},
		)
		h := DashboardHandler{
			MarketDataService: stubMarketDataService{snapshot: &domain.MarketSnapshot{
				Macro:     macro,
				Sectors:   sectors,
				FetchedAt: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			}},
		}

		result, err := h.GetDashboard(context.Background())
		require.NoError(t, err)

		require.Len(t, result.KPIs, 3)
		require.Equal(t, domain.RegimeRiskOn, result.Regime)

		require.Equal(t, "Energy", result.Sectors[0].Name)
		require.Equal(t, "Technology", result.Sectors[1].Name)

		require.Equal(t, []string{"VIX", "Gold"}, result.Correlations.Order)
		require.Len(t, result.Correlations.Dates, 6)

		require.Equal(t, "RISK_ON detected.", result.Insights.Regime)
		require.Equal(t, "Leading sector is Technology (+20.0%).", result.Insights.CapitalFlow)
		require.Contains(t, result.Insights.CorrelationWatch, "VIX")
	})

	t.Run("partial macro data renders without the missing sections", func(t *testing.T) {
		// benchmark absent: no regime, no correlation chart, but the
		// remaining cards and the sector ranking still render
		macro := table(
			[]string{"Gold"},
			map[string][]float64{"Gold": {2000, 2030}},
		)
		sectors := table(
			[]string{"Technology"},
			map[string][]float64{"Technology": {10, 12}},
		)
		h := DashboardHandler{
			MarketDataService: stubMarketDataService{snapshot: &domain.MarketSnapshot{
				Macro:   macro,
				Sectors: sectors,
			}},
		}

		result, err := h.GetDashboard(context.Background())
		require.NoError(t, err)
		require.Len(t, result.KPIs, 1)
		require.Equal(t, "Regime unavailable.", result.Insights.Regime)
		require.Empty(t, result.Correlations.Order)
		require.Len(t, result.Sectors, 1)
	})
}
