package eventmodels

// OptionPosition is a held option contract. Units is signed: negative is short.
type OptionPosition struct {
	ID                   string         `json:"id,omitempty" csv:"id"`
	UnderlyingSymbol     StockSymbol    `json:"underlyingSymbol" csv:"underlying_symbol"`
	OptionType           OptionType     `json:"optionType" csv:"option_type"`
	StrikePrice          float64        `json:"strikePrice" csv:"strike_price"`
	ExpirationDate       ExpirationDate `json:"expirationDate" csv:"expiration_date"`
	Units                float64        `json:"units" csv:"units"`
	AveragePurchasePrice float64        `json:"averagePurchasePrice" csv:"average_purchase_price"`
}

func (p *OptionPosition) IsShort() bool {
	return p.Units < 0
}

func (p *OptionPosition) IsLong() bool {
	return p.Units > 0
}

// IsWellFormed reports whether every contract subfield needed for classification is present.
func (p *OptionPosition) IsWellFormed() bool {
	if p.UnderlyingSymbol == "" {
		return false
	}

	if err := p.OptionType.Validate(); err != nil {
		return false
	}

	if p.StrikePrice <= 0 {
		return false
	}

	return p.ExpirationDate.IsValid()
}
