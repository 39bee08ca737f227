package repository

import (
	"context"
	"fmt"
	"marketintel/internal/domain"
	"marketintel/internal/logger"
	"sync"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// PriceRepository is the upstream provider boundary: one logical batched
// daily-history lookup per symbol set. Implementations are best-effort
// per symbol - a symbol the provider cannot serve is simply absent from
// the result, it never fails the batch.
type PriceRepository interface {
	GetDailyHistory(ctx context.Context, symbols []string, start, end time.Time) (map[string][]domain.AssetPrice, error)
}

func NewYahooPriceRepository() PriceRepository {
	return yahooPriceRepositoryHandler{}
}

type yahooPriceRepositoryHandler struct{}

const numFetchGoroutines = 4

// GetDailyHistory fans the batch out over a bounded worker pool, one
// chart request per symbol, and merges the series that succeeded.
// The only batch-level error is context cancellation/timeout.
func (h yahooPriceRepositoryHandler) GetDailyHistory(
	ctx context.Context,
	symbols []string,
	start, end time.Time,
) (map[string][]domain.AssetPrice, error) {
	log := logger.FromContext(ctx)

	inputCh := make(chan string, len(symbols))
	for _, s := range symbols {
		inputCh <- s
	}
	close(inputCh)

	out := map[string][]domain.AssetPrice{}
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < numFetchGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case symbol, ok := <-inputCh:
					if !ok {
						return
					}
					prices, err := fetchDailyBars(symbol, start, end)
					if err != nil {
						log.Warnf("failed to fetch daily bars for %s: %s", symbol, err.Error())
						continue
					}
					if len(prices) == 0 {
						log.Warnf("no daily bars returned for %s", symbol)
						continue
					}
					mu.Lock()
					out[symbol] = prices
					mu.Unlock()
				}
			}
		}()
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("daily history fetch aborted: %w", err)
	}

	return out, nil
}

// fetchDailyBars pulls one symbol's unadjusted daily closes. Provider
// bars carry the full OHLCV field set; only the close survives this
// boundary.
func fetchDailyBars(symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	prices := []domain.AssetPrice{}
	for iter.Next() {
		prices = append(prices, domain.AssetPrice{
			Symbol: symbol,
			Date:   time.Unix(int64(iter.Bar().Timestamp), 0).UTC(),
			Price:  iter.Bar().Close.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	return prices, nil
}
