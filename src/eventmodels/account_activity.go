package eventmodels

import "time"

type AccountActivity struct {
	ID           string       `json:"id"`
	Type         string       `json:"type"`
	OptionAction string       `json:"optionAction,omitempty"`
	Symbol       StockSymbol  `json:"symbol,omitempty"`
	OptionSymbol OptionSymbol `json:"optionSymbol,omitempty"`
	Description  string       `json:"description"`
	Units        float64      `json:"units"`
	Price        float64      `json:"price"`
	Amount       float64      `json:"amount"`
	Fee          float64      `json:"fee"`
	TradeDate    *time.Time   `json:"tradeDate,omitempty"`
}
