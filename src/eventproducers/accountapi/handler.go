package accountapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jiaming2012/optionshq/src/eventmodels"
	"github.com/jiaming2012/optionshq/src/eventproducers"
)

var (
	readAccountsExecutor   *ReadAccountsExecutor
	readPortfolioExecutor  *ReadPortfolioExecutor
	readActivitiesExecutor *ReadActivitiesExecutor
)

func handleAccounts(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		eventproducers.ApiRequestHandler3(&eventmodels.EmptyRequest{}, readAccountsExecutor, w, r)
	} else {
		w.WriteHeader(404)
	}
}

func handlePortfolio(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		eventproducers.ApiRequestHandler3(&eventmodels.ReadPortfolioRequest{}, readPortfolioExecutor, w, r)
	} else {
		w.WriteHeader(404)
	}
}

func handleActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		eventproducers.ApiRequestHandler3(&eventmodels.ReadActivitiesRequest{}, readActivitiesExecutor, w, r)
	} else {
		w.WriteHeader(404)
	}
}

func SetupHandler(router *mux.Router, accounts *ReadAccountsExecutor, portfolio *ReadPortfolioExecutor, activities *ReadActivitiesExecutor) {
	readAccountsExecutor = accounts
	readPortfolioExecutor = portfolio
	readActivitiesExecutor = activities

	router.HandleFunc("", handleAccounts)
	router.HandleFunc("/{accountId}/portfolio", handlePortfolio)
	router.HandleFunc("/{accountId}/activities", handleActivities)
}
