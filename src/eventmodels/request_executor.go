package eventmodels

import "net/http"

// RequestExecutor serves a parsed and validated request. It must send exactly one value on
// either resultCh or errCh.
type RequestExecutor interface {
	Serve(r *http.Request, req ApiRequest3, resultCh chan interface{}, errCh chan error)
}
