package eventmodels

// OptionChainContract is one tradable contract from a market-data snapshot.
type OptionChainContract struct {
	Symbol           OptionSymbol   `json:"symbol" csv:"symbol"`
	UnderlyingSymbol StockSymbol    `json:"underlyingSymbol" csv:"underlying_symbol"`
	OptionType       OptionType     `json:"optionType" csv:"option_type"`
	StrikePrice      float64        `json:"strikePrice" csv:"strike_price"`
	ExpirationDate   ExpirationDate `json:"expirationDate" csv:"expiration_date"`
	BidPrice         *float64       `json:"bidPrice,omitempty" csv:"bid_price"`
	AskPrice         *float64       `json:"askPrice,omitempty" csv:"ask_price"`
	LastPrice        *float64       `json:"lastPrice,omitempty" csv:"last_price"`
}

// NewOptionChainContract fills the underlying, type, strike and expiration from the OCC symbol
// whenever they are not set explicitly.
func NewOptionChainContract(symbol OptionSymbol, bid, ask, last *float64) OptionChainContract {
	contract := OptionChainContract{
		Symbol:    symbol,
		BidPrice:  bid,
		AskPrice:  ask,
		LastPrice: last,
	}

	if components, err := NewOptionSymbolComponents(symbol); err == nil {
		contract.UnderlyingSymbol = components.Underlying
		contract.OptionType = components.OptionType
		contract.StrikePrice = components.StrikePrice
		contract.ExpirationDate = components.ExpirationDate()
	}

	return contract
}
