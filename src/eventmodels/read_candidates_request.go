package eventmodels

import (
	"fmt"
	"net/http"

	"github.com/gorilla/schema"
)

type ReadCandidatesRequest struct {
	Symbol     string     `schema:"symbol"`
	OptionType OptionType `schema:"option_type"`
	MaxDays    int        `schema:"max_days"`
}

func (req *ReadCandidatesRequest) ParseHTTPRequest(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("ReadCandidatesRequest: ParseHTTPRequest: parse form: %w", err)
	}

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	if err := decoder.Decode(req, r.Form); err != nil {
		return fmt.Errorf("ReadCandidatesRequest: ParseHTTPRequest: decode: %w", err)
	}

	if req.OptionType != "" {
		req.OptionType = NewOptionType(string(req.OptionType))
	}

	return nil
}

func (req *ReadCandidatesRequest) Validate(r *http.Request) error {
	if req.OptionType != "" {
		if err := req.OptionType.Validate(); err != nil {
			return fmt.Errorf("ReadCandidatesRequest: Validate: %w", err)
		}
	}

	if req.MaxDays < 0 {
		return fmt.Errorf("ReadCandidatesRequest: Validate: max_days must not be negative")
	}

	return nil
}

func (req *ReadCandidatesRequest) GetSymbol() *StockSymbol {
	if req.Symbol == "" {
		return nil
	}

	symbol := NewStockSymbol(req.Symbol)
	return &symbol
}
