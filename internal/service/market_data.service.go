package service

import (
	"context"
	"errors"
	"marketintel/internal/cache"
	"marketintel/internal/domain"
	"marketintel/internal/logger"
	"marketintel/internal/repository"
	"sort"
	"time"
)

// MarketDataService owns the fetch -> clean half of the pipeline. Every
// failure mode (network, timeout, empty response, provider schema
// surprise) collapses into an empty PriceTable - callers treat emptiness
// as the only failure signal.
type MarketDataService interface {
	FetchClean(ctx context.Context, symbolMap domain.SymbolMap) domain.PriceTable
	GetSnapshot(ctx context.Context) *domain.MarketSnapshot
}

type marketDataServiceHandler struct {
	PriceRepository repository.PriceRepository

	tableCache   *cache.Cache[domain.PriceTable]
	cacheTTL     time.Duration
	fetchTimeout time.Duration
	now          func() time.Time
}

const (
	defaultFetchTimeout = 30 * time.Second
	lookbackYears       = 1
)

func NewMarketDataService(priceRepository repository.PriceRepository, cacheTTL, fetchTimeout time.Duration) MarketDataService {
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	if cacheTTL <= 0 {
		cacheTTL = cache.DefaultTTL
	}
	return &marketDataServiceHandler{
		PriceRepository: priceRepository,
		tableCache:      cache.New[domain.PriceTable](),
		cacheTTL:        cacheTTL,
		fetchTimeout:    fetchTimeout,
		now:             time.Now,
	}
}

var errFetchFailed = errors.New("fetch produced no usable data")

// FetchClean returns the cleaned 1-year price table for the symbol map,
// read through the process-wide TTL cache. Failed fetches are returned
// as an empty table and deliberately kept out of the cache so the next
// request retries.
func (h *marketDataServiceHandler) FetchClean(ctx context.Context, symbolMap domain.SymbolMap) domain.PriceTable {
	if len(symbolMap) == 0 {
		return domain.EmptyPriceTable()
	}

	table, err := h.tableCache.GetOrCompute(symbolMap.Fingerprint(), h.cacheTTL, func() (domain.PriceTable, error) {
		t := h.fetchClean(ctx, symbolMap)
		if t.IsEmpty() {
			return t, errFetchFailed
		}
		return t, nil
	})
	if err != nil {
		return domain.EmptyPriceTable()
	}
	return table
}

// GetSnapshot fetches both universes. Sequential, like the page load it
// backs: macro first, sectors second.
func (h *marketDataServiceHandler) GetSnapshot(ctx context.Context) *domain.MarketSnapshot {
	return &domain.MarketSnapshot{
		Macro:     h.FetchClean(ctx, domain.MacroSymbolMap()),
		Sectors:   h.FetchClean(ctx, domain.SectorSymbolMap()),
		FetchedAt: h.now().UTC(),
	}
}

func (h *marketDataServiceHandler) fetchClean(ctx context.Context, symbolMap domain.SymbolMap) domain.PriceTable {
	ctx, cancel := context.WithTimeout(ctx, h.fetchTimeout)
	defer cancel()

	end := h.now().UTC()
	start := end.AddDate(-lookbackYears, 0, 0)

	history, err := h.PriceRepository.GetDailyHistory(ctx, symbolMap.Symbols(), start, end)
	if err != nil {
		logger.FromContext(ctx).Warnf("failed to fetch daily history: %s", err.Error())
		return domain.EmptyPriceTable()
	}

	return buildPriceTable(symbolMap, history)
}

// buildPriceTable resolves the raw per-symbol series into the canonical
// PriceTable: rename ticker -> display name, drop tickers outside the
// map, align on the union date grid, forward-fill, then drop rows that
// are still incomplete.
func buildPriceTable(symbolMap domain.SymbolMap, history map[string][]domain.AssetPrice) domain.PriceTable {
	type column struct {
		name   string
		prices map[string]float64
	}

	columns := []column{}
	dateSet := map[string]bool{}

	for _, entry := range symbolMap {
		prices, ok := history[entry.Symbol]
		if !ok || len(prices) == 0 {
			continue
		}
		byDate := make(map[string]float64, len(prices))
		for _, p := range prices {
			key := p.Date.UTC().Format(time.DateOnly)
			byDate[key] = p.Price
			dateSet[key] = true
		}
		columns = append(columns, column{name: entry.Name, prices: byDate})
	}
	// anything in history keyed by a ticker outside the map was never
	// visited above, which is the defensive drop

	if len(columns) == 0 || len(dateSet) == 0 {
		return domain.EmptyPriceTable()
	}

	dateKeys := make([]string, 0, len(dateSet))
	for k := range dateSet {
		dateKeys = append(dateKeys, k)
	}
	sort.Strings(dateKeys)

	dates := make([]time.Time, 0, len(dateKeys))
	for _, k := range dateKeys {
		d, err := time.Parse(time.DateOnly, k)
		if err != nil {
			return domain.EmptyPriceTable()
		}
		dates = append(dates, d)
	}

	names := make([]string, 0, len(columns))
	for _, c := range columns {
		names = append(names, c.name)
	}

	table := domain.NewPriceTable(dates, names)
	for _, c := range columns {
		series := table.Series[c.name]
		for i, k := range dateKeys {
			if v, ok := c.prices[k]; ok {
				series[i] = v
			}
		}
	}

	table.ForwardFill()
	table = table.DropIncompleteRows()
	if table.NumRows() == 0 {
		return domain.EmptyPriceTable()
	}
	return table
}
