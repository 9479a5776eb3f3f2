package eventconsumers

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/optionshq/src/data"
	"github.com/jiaming2012/optionshq/src/eventmodels"
)

type CandidateScanner interface {
	Scan(ctx context.Context, symbols []eventmodels.StockSymbol, params eventmodels.ScanParams) (*eventmodels.CandidateScanResult, error)
}

// WatchlistScanWorker rescans the watchlist on an interval and keeps the latest result.
type WatchlistScanWorker struct {
	wg        *sync.WaitGroup
	scanner   CandidateScanner
	watchlist data.WatchlistStore
	config    eventmodels.ScreenerConfigYAML
	interval  time.Duration
	now       func() time.Time

	mu        sync.RWMutex
	latest    *eventmodels.CandidateScanResult
	scannedAt time.Time
}

func (w *WatchlistScanWorker) LatestResult() (*eventmodels.CandidateScanResult, time.Time, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.latest, w.scannedAt, w.latest != nil
}

func (w *WatchlistScanWorker) scan(ctx context.Context) {
	items, err := w.watchlist.ListWatchlist(ctx)
	if err != nil {
		log.Errorf("WatchlistScanWorker: failed to list watchlist: %v", err)
		return
	}

	symbols := data.WatchlistSymbols(items)
	if len(symbols) == 0 {
		for _, s := range w.config.DefaultWatchlist {
			symbols = append(symbols, eventmodels.NewStockSymbol(s))
		}
	}

	if len(symbols) == 0 {
		log.Debug("WatchlistScanWorker: watchlist is empty: skipping scan")
		return
	}

	now := w.now()

	result, err := w.scanner.Scan(ctx, symbols, eventmodels.ScanParams{
		OptionType:          w.config.OptionType,
		MaxDaysToExpiration: w.config.MaxDaysToExpiration,
		Thresholds:          w.config.Thresholds,
		Now:                 now,
	})
	if err != nil {
		log.Errorf("WatchlistScanWorker: scan failed: %v", err)
		return
	}

	w.mu.Lock()
	w.latest = result
	w.scannedAt = now
	w.mu.Unlock()

	log.WithField("candidates", len(result.Candidates)).Infof("WatchlistScanWorker: scanned %d underlyings", len(symbols))
}

func (w *WatchlistScanWorker) Start(ctx context.Context) {
	w.wg.Add(1)

	timer := time.NewTicker(w.interval)

	log.Info("starting WatchlistScanWorker consumer")

	go func() {
		defer w.wg.Done()
		defer timer.Stop()

		w.scan(ctx)

		for {
			select {
			case <-ctx.Done():
				log.Info("stopping WatchlistScanWorker consumer")
				return
			case <-timer.C:
				w.scan(ctx)
			}
		}
	}()
}

func NewWatchlistScanWorker(wg *sync.WaitGroup, scanner CandidateScanner, watchlist data.WatchlistStore, config eventmodels.ScreenerConfigYAML, interval time.Duration) *WatchlistScanWorker {
	return &WatchlistScanWorker{
		wg:        wg,
		scanner:   scanner,
		watchlist: watchlist,
		config:    config,
		interval:  interval,
		now:       time.Now,
	}
}
