package eventmodels

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
)

var stockSymbolRegex = regexp.MustCompile(`^[A-Z][A-Z0-9.]{0,9}$`)

type CreateWatchlistItemRequest struct {
	Symbol string `json:"symbol"`
	Notes  string `json:"notes"`
}

func (req *CreateWatchlistItemRequest) ParseHTTPRequest(r *http.Request) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return fmt.Errorf("CreateWatchlistItemRequest: ParseHTTPRequest: decode: %w", err)
	}

	return nil
}

func (req *CreateWatchlistItemRequest) Validate(r *http.Request) error {
	if !stockSymbolRegex.MatchString(NewStockSymbol(req.Symbol).String()) {
		return fmt.Errorf("CreateWatchlistItemRequest: Validate: invalid symbol: %q", req.Symbol)
	}

	return nil
}
