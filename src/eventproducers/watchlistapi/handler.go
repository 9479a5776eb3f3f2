package watchlistapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jiaming2012/optionshq/src/data"
	"github.com/jiaming2012/optionshq/src/eventmodels"
	"github.com/jiaming2012/optionshq/src/eventproducers"
)

var (
	readWatchlistExecutor   *ReadWatchlistExecutor
	createWatchlistExecutor *CreateWatchlistItemExecutor
	deleteWatchlistExecutor *DeleteWatchlistItemExecutor
)

func handleWatchlist(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		eventproducers.ApiRequestHandler3(&eventmodels.EmptyRequest{}, readWatchlistExecutor, w, r)
	} else if r.Method == "POST" {
		eventproducers.ApiRequestHandler3(&eventmodels.CreateWatchlistItemRequest{}, createWatchlistExecutor, w, r)
	} else {
		w.WriteHeader(404)
	}
}

func handleWatchlistItem(w http.ResponseWriter, r *http.Request) {
	if r.Method == "DELETE" {
		eventproducers.ApiRequestHandler3(&eventmodels.DeleteWatchlistItemRequest{}, deleteWatchlistExecutor, w, r)
	} else {
		w.WriteHeader(404)
	}
}

func SetupHandler(router *mux.Router, store data.WatchlistStore) {
	readWatchlistExecutor = &ReadWatchlistExecutor{Store: store}
	createWatchlistExecutor = &CreateWatchlistItemExecutor{Store: store}
	deleteWatchlistExecutor = &DeleteWatchlistItemExecutor{Store: store}

	router.HandleFunc("", handleWatchlist)
	router.HandleFunc("/{symbol}", handleWatchlistItem)
}
