package accountapi

import (
	"context"
	"net/http"

	"github.com/jiaming2012/optionshq/src/eventmodels"
)

type AccountsFetcher interface {
	FetchAccounts(ctx context.Context) ([]eventmodels.BrokerageAccount, error)
}

type ActivitiesFetcher interface {
	FetchActivities(ctx context.Context, accountID, startDate, endDate string) ([]eventmodels.AccountActivity, error)
}

type PortfolioFetcher interface {
	FetchClassifiedPortfolio(ctx context.Context, accountID string) (*eventmodels.Portfolio, error)
}

type ReadAccountsExecutor struct {
	Accounts AccountsFetcher
}

func (e *ReadAccountsExecutor) Serve(r *http.Request, req eventmodels.ApiRequest3, resultCh chan interface{}, errCh chan error) {
	accounts, err := e.Accounts.FetchAccounts(r.Context())
	if err != nil {
		errCh <- err
		return
	}

	resultCh <- accounts
}

type ReadPortfolioExecutor struct {
	Portfolio PortfolioFetcher
}

func (e *ReadPortfolioExecutor) Serve(r *http.Request, req eventmodels.ApiRequest3, resultCh chan interface{}, errCh chan error) {
	portfolioReq, ok := req.(*eventmodels.ReadPortfolioRequest)
	if !ok {
		errCh <- eventmodels.ErrInvalidRequestType
		return
	}

	portfolio, err := e.Portfolio.FetchClassifiedPortfolio(r.Context(), portfolioReq.AccountID)
	if err != nil {
		errCh <- err
		return
	}

	resultCh <- portfolio
}

type ReadActivitiesExecutor struct {
	Activities ActivitiesFetcher
}

func (e *ReadActivitiesExecutor) Serve(r *http.Request, req eventmodels.ApiRequest3, resultCh chan interface{}, errCh chan error) {
	activitiesReq, ok := req.(*eventmodels.ReadActivitiesRequest)
	if !ok {
		errCh <- eventmodels.ErrInvalidRequestType
		return
	}

	activities, err := e.Activities.FetchActivities(r.Context(), activitiesReq.AccountID, activitiesReq.StartDate, activitiesReq.EndDate)
	if err != nil {
		errCh <- err
		return
	}

	resultCh <- activities
}
