package eventmodels

type SnapTradeAmountDTO struct {
	Amount   *float64 `json:"amount"`
	Currency string   `json:"currency"`
}

type SnapTradeAccountBalanceDTO struct {
	Total *SnapTradeAmountDTO `json:"total"`
}

type SnapTradeAccountDTO struct {
	ID              string                      `json:"id"`
	Name            string                      `json:"name"`
	Number          string                      `json:"number"`
	InstitutionName string                      `json:"institution_name"`
	Balance         *SnapTradeAccountBalanceDTO `json:"balance"`
}

func (dto *SnapTradeAccountDTO) ToModel() BrokerageAccount {
	account := BrokerageAccount{
		ID:              dto.ID,
		Name:            dto.Name,
		Number:          dto.Number,
		InstitutionName: dto.InstitutionName,
	}

	if dto.Balance != nil && dto.Balance.Total != nil {
		account.TotalBalance = dto.Balance.Total.Amount
		account.Currency = dto.Balance.Total.Currency
	}

	return account
}
