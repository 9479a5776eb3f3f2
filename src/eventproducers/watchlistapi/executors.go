package watchlistapi

import (
	"net/http"

	"github.com/jiaming2012/optionshq/src/data"
	"github.com/jiaming2012/optionshq/src/eventmodels"
)

type ReadWatchlistExecutor struct {
	Store data.WatchlistStore
}

func (e *ReadWatchlistExecutor) Serve(r *http.Request, req eventmodels.ApiRequest3, resultCh chan interface{}, errCh chan error) {
	items, err := e.Store.ListWatchlist(r.Context())
	if err != nil {
		errCh <- err
		return
	}

	resultCh <- items
}

type CreateWatchlistItemExecutor struct {
	Store data.WatchlistStore
}

func (e *CreateWatchlistItemExecutor) Serve(r *http.Request, req eventmodels.ApiRequest3, resultCh chan interface{}, errCh chan error) {
	createReq, ok := req.(*eventmodels.CreateWatchlistItemRequest)
	if !ok {
		errCh <- eventmodels.ErrInvalidRequestType
		return
	}

	item, err := e.Store.AddToWatchlist(r.Context(), eventmodels.NewStockSymbol(createReq.Symbol), createReq.Notes)
	if err != nil {
		errCh <- err
		return
	}

	resultCh <- item
}

type DeleteWatchlistItemExecutor struct {
	Store data.WatchlistStore
}

func (e *DeleteWatchlistItemExecutor) Serve(r *http.Request, req eventmodels.ApiRequest3, resultCh chan interface{}, errCh chan error) {
	deleteReq, ok := req.(*eventmodels.DeleteWatchlistItemRequest)
	if !ok {
		errCh <- eventmodels.ErrInvalidRequestType
		return
	}

	if err := e.Store.RemoveFromWatchlist(r.Context(), deleteReq.Symbol); err != nil {
		errCh <- err
		return
	}

	resultCh <- map[string]string{"symbol": deleteReq.Symbol.String()}
}
