package eventmodels

import "time"

type SnapTradeActivityDTO struct {
	ID           string                       `json:"id"`
	Type         string                       `json:"type"`
	OptionType   string                       `json:"option_type"`
	Description  string                       `json:"description"`
	Symbol       *SnapTradeUniversalSymbolDTO `json:"symbol"`
	OptionSymbol *SnapTradeOptionSymbolDTO    `json:"option_symbol"`
	Units        *float64                     `json:"units"`
	Price        *float64                     `json:"price"`
	Amount       *float64                     `json:"amount"`
	Fee          *float64                     `json:"fee"`
	TradeDate    string                       `json:"trade_date"`
}

func (dto *SnapTradeActivityDTO) ToModel() AccountActivity {
	activity := AccountActivity{
		ID:           dto.ID,
		Type:         dto.Type,
		OptionAction: dto.OptionType,
		Description:  dto.Description,
	}

	if dto.Symbol != nil {
		activity.Symbol = NewStockSymbol(dto.Symbol.Symbol)
	}

	if dto.OptionSymbol != nil {
		activity.OptionSymbol = OptionSymbol(dto.OptionSymbol.Ticker)
		if activity.Symbol == "" && dto.OptionSymbol.UnderlyingSymbol != nil {
			activity.Symbol = NewStockSymbol(dto.OptionSymbol.UnderlyingSymbol.Symbol)
		}
	}

	if dto.Units != nil {
		activity.Units = *dto.Units
	}

	if dto.Price != nil {
		activity.Price = *dto.Price
	}

	if dto.Amount != nil {
		activity.Amount = *dto.Amount
	}

	if dto.Fee != nil {
		activity.Fee = *dto.Fee
	}

	if dto.TradeDate != "" {
		if ts, err := time.Parse(time.RFC3339, dto.TradeDate); err == nil {
			activity.TradeDate = &ts
		}
	}

	return activity
}
