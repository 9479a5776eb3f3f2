package eventmodels

import "net/http"

// EmptyRequest is used by routes that take no parameters, such as /version/app
// and /candidates/latest.
type EmptyRequest struct{}

func (req *EmptyRequest) ParseHTTPRequest(r *http.Request) error {
	return nil
}

func (req *EmptyRequest) Validate(r *http.Request) error {
	return nil
}
