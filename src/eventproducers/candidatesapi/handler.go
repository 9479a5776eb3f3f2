package candidatesapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jiaming2012/optionshq/src/eventmodels"
	"github.com/jiaming2012/optionshq/src/eventproducers"
)

var (
	readCandidatesExecutor       *ReadCandidatesExecutor
	readLatestCandidatesExecutor *ReadLatestCandidatesExecutor
)

func handler(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		eventproducers.ApiRequestHandler3(&eventmodels.ReadCandidatesRequest{}, readCandidatesExecutor, w, r)
	} else {
		w.WriteHeader(404)
	}
}

func handleLatest(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" && readLatestCandidatesExecutor != nil {
		eventproducers.ApiRequestHandler3(&eventmodels.EmptyRequest{}, readLatestCandidatesExecutor, w, r)
	} else {
		w.WriteHeader(404)
	}
}

// SetupHandler registers the candidate routes. latest may be nil when no background scan runs.
func SetupHandler(router *mux.Router, executor *ReadCandidatesExecutor, latest *ReadLatestCandidatesExecutor) {
	readCandidatesExecutor = executor
	readLatestCandidatesExecutor = latest

	router.HandleFunc("", handler)
	router.HandleFunc("/latest", handleLatest)
}
