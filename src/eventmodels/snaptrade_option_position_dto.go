package eventmodels

type SnapTradeUnderlyingSymbolDTO struct {
	ID          string `json:"id"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

type SnapTradeOptionSymbolDTO struct {
	ID               string                        `json:"id"`
	Ticker           string                        `json:"ticker"`
	OptionType       string                        `json:"option_type"`
	StrikePrice      *float64                      `json:"strike_price"`
	ExpirationDate   string                        `json:"expiration_date"`
	IsMiniOption     bool                          `json:"is_mini_option"`
	UnderlyingSymbol *SnapTradeUnderlyingSymbolDTO `json:"underlying_symbol"`
}

type SnapTradeOptionBrokerageSymbolDTO struct {
	ID           string                    `json:"id"`
	Description  string                    `json:"description"`
	OptionSymbol *SnapTradeOptionSymbolDTO `json:"option_symbol"`
}

type SnapTradeOptionPositionDTO struct {
	Symbol               *SnapTradeOptionBrokerageSymbolDTO `json:"symbol"`
	Price                *float64                           `json:"price"`
	Units                *float64                           `json:"units"`
	AveragePurchasePrice *float64                           `json:"average_purchase_price"`
}

// ToModel never fails: missing nested fields are left at their zero value so that the
// position is reported as unknown by the classifier.
func (dto *SnapTradeOptionPositionDTO) ToModel() OptionPosition {
	var position OptionPosition

	if dto.Units != nil {
		position.Units = *dto.Units
	}

	if dto.AveragePurchasePrice != nil {
		position.AveragePurchasePrice = *dto.AveragePurchasePrice
	}

	if dto.Symbol == nil {
		return position
	}

	position.ID = dto.Symbol.ID

	option := dto.Symbol.OptionSymbol
	if option == nil {
		return position
	}

	if position.ID == "" {
		position.ID = option.ID
	}

	if option.UnderlyingSymbol != nil {
		position.UnderlyingSymbol = NewStockSymbol(option.UnderlyingSymbol.Symbol)
	}

	if option.OptionType != "" {
		position.OptionType = NewOptionType(option.OptionType)
	}

	if option.StrikePrice != nil {
		position.StrikePrice = *option.StrikePrice
	}

	position.ExpirationDate = ExpirationDate(option.ExpirationDate)

	// fall back to the OCC ticker for anything the structured fields left out
	if option.Ticker != "" && !position.IsWellFormed() {
		if components, err := NewOptionSymbolComponents(OptionSymbol(option.Ticker)); err == nil {
			if position.UnderlyingSymbol == "" {
				position.UnderlyingSymbol = components.Underlying
			}

			if position.OptionType == "" {
				position.OptionType = components.OptionType
			}

			if position.StrikePrice <= 0 {
				position.StrikePrice = components.StrikePrice
			}

			if !position.ExpirationDate.IsValid() {
				position.ExpirationDate = components.ExpirationDate()
			}
		}
	}

	return position
}
