package eventmodels

import "time"

// OptionSymbolComponents struct to hold parsed option details
type OptionSymbolComponents struct {
	Underlying  StockSymbol
	Expiration  time.Time
	OptionType  OptionType
	StrikePrice float64
	Symbol      OptionSymbol
}

func (c OptionSymbolComponents) ExpirationDate() ExpirationDate {
	return NewExpirationDate(c.Expiration)
}
