package eventmodels

import "net/http"

// ApiRequest3 is implemented by every request body or query the HTTP API accepts.
// ParseHTTPRequest decodes r into the receiver and Validate checks the decoded fields.
type ApiRequest3 interface {
	ParseHTTPRequest(r *http.Request) error
	Validate(r *http.Request) error
}
