package eventmodels

type SnapTradeUniversalSymbolDTO struct {
	ID          string `json:"id"`
	Symbol      string `json:"symbol"`
	RawSymbol   string `json:"raw_symbol"`
	Description string `json:"description"`
}

type SnapTradeBrokerageSymbolDTO struct {
	ID     string                       `json:"id"`
	Symbol *SnapTradeUniversalSymbolDTO `json:"symbol"`
}

type SnapTradePositionDTO struct {
	Symbol               *SnapTradeBrokerageSymbolDTO `json:"symbol"`
	Units                *float64                     `json:"units"`
	Price                *float64                     `json:"price"`
	AveragePurchasePrice *float64                     `json:"average_purchase_price"`
}

// ToModel returns false when the record does not name a symbol.
func (dto *SnapTradePositionDTO) ToModel() (StockHolding, bool) {
	if dto.Symbol == nil || dto.Symbol.Symbol == nil || dto.Symbol.Symbol.Symbol == "" {
		return StockHolding{}, false
	}

	holding := StockHolding{
		UnderlyingSymbol: NewStockSymbol(dto.Symbol.Symbol.Symbol),
	}

	if dto.Units != nil {
		holding.Units = *dto.Units
	}

	if dto.Price != nil {
		holding.Price = *dto.Price
	}

	return holding, true
}
