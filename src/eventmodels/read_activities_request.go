package eventmodels

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
)

type ReadActivitiesRequest struct {
	AccountID string `schema:"-"`
	StartDate string `schema:"start_date"`
	EndDate   string `schema:"end_date"`
}

func (req *ReadActivitiesRequest) ParseHTTPRequest(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("ReadActivitiesRequest: ParseHTTPRequest: parse form: %w", err)
	}

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	if err := decoder.Decode(req, r.Form); err != nil {
		return fmt.Errorf("ReadActivitiesRequest: ParseHTTPRequest: decode: %w", err)
	}

	req.AccountID = mux.Vars(r)["accountId"]

	return nil
}

func (req *ReadActivitiesRequest) Validate(r *http.Request) error {
	if req.AccountID == "" {
		return fmt.Errorf("ReadActivitiesRequest: Validate: accountId is required")
	}

	var start, end time.Time
	var err error

	if req.StartDate != "" {
		if start, err = time.Parse(ExpirationDateLayout, req.StartDate); err != nil {
			return fmt.Errorf("ReadActivitiesRequest: Validate: invalid start_date: %w", err)
		}
	}

	if req.EndDate != "" {
		if end, err = time.Parse(ExpirationDateLayout, req.EndDate); err != nil {
			return fmt.Errorf("ReadActivitiesRequest: Validate: invalid end_date: %w", err)
		}
	}

	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return fmt.Errorf("ReadActivitiesRequest: Validate: end_date is before start_date")
	}

	return nil
}
