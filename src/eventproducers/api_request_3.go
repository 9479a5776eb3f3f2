package eventproducers

import (
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/optionshq/src/eventmodels"
	"github.com/jiaming2012/optionshq/src/utils"
)

const RequestIDHeader = "X-Request-Id"

// ApiRequestHandler3 parses and validates req, hands it to the executor and writes whichever of
// result or error comes back first.
func ApiRequestHandler3(req eventmodels.ApiRequest3, executor eventmodels.RequestExecutor, w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	w.Header().Set(RequestIDHeader, requestID)

	logger := log.WithContext(r.Context()).WithFields(log.Fields{
		"requestId": requestID,
		"method":    r.Method,
		"path":      r.URL.Path,
	})

	if traceID := utils.TraceIDFromContext(r.Context()); traceID != "" {
		logger = logger.WithField("traceId", traceID)
	}

	if err := req.ParseHTTPRequest(r); err != nil {
		logger.Warnf("ApiRequestHandler3: failed to parse request: %v", err)
		if respErr := SetErrorResponse("parser", http.StatusBadRequest, err, w); respErr != nil {
			logger.Errorf("ApiRequestHandler3: failed to set error response: %v", respErr)
		}
		return
	}

	if err := req.Validate(r); err != nil {
		logger.Warnf("ApiRequestHandler3: failed to validate request: %v", err)
		if respErr := SetErrorResponse("validation", http.StatusBadRequest, err, w); respErr != nil {
			logger.Errorf("ApiRequestHandler3: failed to set error response: %v", respErr)
		}
		return
	}

	resultCh := make(chan interface{}, 1)
	errCh := make(chan error, 1)

	go executor.Serve(r, req, resultCh, errCh)

	select {
	case result := <-resultCh:
		if err := SetResponse(result, w); err != nil {
			logger.Errorf("ApiRequestHandler3: failed to set response: %v", err)
		}

	case err := <-errCh:
		statusCode := eventmodels.StatusCodeFromError(err, http.StatusInternalServerError)
		if statusCode >= 500 {
			logger.Errorf("ApiRequestHandler3: request failed: %v", err)
		} else {
			logger.Warnf("ApiRequestHandler3: request failed: %v", err)
		}

		if respErr := SetErrorResponse("request", statusCode, err, w); respErr != nil {
			logger.Errorf("ApiRequestHandler3: failed to set error response: %v", respErr)
		}

	case <-r.Context().Done():
		logger.Warnf("ApiRequestHandler3: client went away: %v", r.Context().Err())
	}
}
