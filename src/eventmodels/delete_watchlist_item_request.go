package eventmodels

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

type DeleteWatchlistItemRequest struct {
	Symbol StockSymbol `json:"symbol"`
}

func (req *DeleteWatchlistItemRequest) ParseHTTPRequest(r *http.Request) error {
	req.Symbol = NewStockSymbol(mux.Vars(r)["symbol"])
	return nil
}

func (req *DeleteWatchlistItemRequest) Validate(r *http.Request) error {
	if req.Symbol == "" {
		return fmt.Errorf("DeleteWatchlistItemRequest: Validate: symbol is required")
	}

	return nil
}
