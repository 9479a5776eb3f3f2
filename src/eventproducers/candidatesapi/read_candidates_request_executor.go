package candidatesapi

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/optionshq/src/data"
	"github.com/jiaming2012/optionshq/src/eventmodels"
)

type CandidateScanner interface {
	Scan(ctx context.Context, symbols []eventmodels.StockSymbol, params eventmodels.ScanParams) (*eventmodels.CandidateScanResult, error)
}

type ReadCandidatesExecutor struct {
	Scanner   CandidateScanner
	Watchlist data.WatchlistStore
	Config    eventmodels.ScreenerConfigYAML
	Now       func() time.Time
}

func (e *ReadCandidatesExecutor) Serve(r *http.Request, req eventmodels.ApiRequest3, resultCh chan interface{}, errCh chan error) {
	candidatesReq, ok := req.(*eventmodels.ReadCandidatesRequest)
	if !ok {
		errCh <- eventmodels.ErrInvalidRequestType
		return
	}

	symbols, err := e.symbols(r.Context(), candidatesReq)
	if err != nil {
		errCh <- err
		return
	}

	params := e.scanParams(candidatesReq)

	log.WithContext(r.Context()).Debugf("ReadCandidatesExecutor: scanning %d underlyings for %s candidates within %d days", len(symbols), params.OptionType, params.MaxDaysToExpiration)

	result, err := e.Scanner.Scan(r.Context(), symbols, params)
	if err != nil {
		errCh <- err
		return
	}

	resultCh <- result
}

// symbols falls back to the watchlist, then to the configured defaults, when no symbol is given.
func (e *ReadCandidatesExecutor) symbols(ctx context.Context, req *eventmodels.ReadCandidatesRequest) ([]eventmodels.StockSymbol, error) {
	if symbol := req.GetSymbol(); symbol != nil {
		return []eventmodels.StockSymbol{*symbol}, nil
	}

	items, err := e.Watchlist.ListWatchlist(ctx)
	if err != nil {
		return nil, err
	}

	if len(items) > 0 {
		return data.WatchlistSymbols(items), nil
	}

	symbols := make([]eventmodels.StockSymbol, 0, len(e.Config.DefaultWatchlist))
	for _, s := range e.Config.DefaultWatchlist {
		symbols = append(symbols, eventmodels.NewStockSymbol(s))
	}

	return symbols, nil
}

func (e *ReadCandidatesExecutor) scanParams(req *eventmodels.ReadCandidatesRequest) eventmodels.ScanParams {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	params := eventmodels.ScanParams{
		OptionType:          e.Config.OptionType,
		MaxDaysToExpiration: e.Config.MaxDaysToExpiration,
		Thresholds:          e.Config.Thresholds,
		Now:                 now(),
	}

	if req.OptionType != "" {
		params.OptionType = req.OptionType
	}

	if req.MaxDays > 0 {
		params.MaxDaysToExpiration = req.MaxDays
	}

	return params
}
