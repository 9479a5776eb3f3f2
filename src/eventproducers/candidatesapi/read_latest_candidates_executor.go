package candidatesapi

import (
	"net/http"
	"time"

	"github.com/jiaming2012/optionshq/src/eventmodels"
)

type LatestScanSource interface {
	LatestResult() (*eventmodels.CandidateScanResult, time.Time, bool)
}

type LatestCandidatesResponseDTO struct {
	ScannedAt time.Time                        `json:"scannedAt"`
	Result    *eventmodels.CandidateScanResult `json:"result"`
}

// ReadLatestCandidatesExecutor serves the last background watchlist scan.
type ReadLatestCandidatesExecutor struct {
	Source LatestScanSource
}

func (e *ReadLatestCandidatesExecutor) Serve(r *http.Request, req eventmodels.ApiRequest3, resultCh chan interface{}, errCh chan error) {
	result, scannedAt, found := e.Source.LatestResult()
	if !found {
		errCh <- eventmodels.NewWebError(404, "no watchlist scan has completed yet", nil)
		return
	}

	resultCh <- &LatestCandidatesResponseDTO{
		ScannedAt: scannedAt,
		Result:    result,
	}
}
