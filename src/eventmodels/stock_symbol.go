package eventmodels

import (
	"encoding/json"
	"strings"
)

// StockSymbol is an equity ticker such as SPY or BRK.B. Underlyings are matched case-insensitively,
// so every constructor and decoder upper-cases it.
type StockSymbol string

func (s StockSymbol) String() string {
	return strings.ToUpper(string(s))
}

func (s StockSymbol) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *StockSymbol) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = NewStockSymbol(raw)
	return nil
}

func NewStockSymbol(s string) StockSymbol {
	return StockSymbol(strings.ToUpper(strings.TrimSpace(s)))
}
