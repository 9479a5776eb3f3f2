package eventmodels

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

type ReadPortfolioRequest struct {
	AccountID string `json:"accountId"`
}

func (req *ReadPortfolioRequest) ParseHTTPRequest(r *http.Request) error {
	req.AccountID = mux.Vars(r)["accountId"]
	return nil
}

func (req *ReadPortfolioRequest) Validate(r *http.Request) error {
	if req.AccountID == "" {
		return fmt.Errorf("ReadPortfolioRequest: Validate: accountId is required")
	}

	return nil
}
