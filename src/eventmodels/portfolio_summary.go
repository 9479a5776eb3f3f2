package eventmodels

import "github.com/shopspring/decimal"

type StrategySummary struct {
	StrategyType     StrategyType    `json:"strategyType"`
	Positions        int             `json:"positions"`
	Contracts        decimal.Decimal `json:"contracts"`
	PremiumCollected decimal.Decimal `json:"premiumCollected"`
	CapitalSecured   decimal.Decimal `json:"capitalSecured"`
}

type PortfolioSummary struct {
	Strategies            []StrategySummary `json:"strategies"`
	SpreadCount           int               `json:"spreadCount"`
	TotalPremiumCollected decimal.Decimal   `json:"totalPremiumCollected"`
	TotalCapitalSecured   decimal.Decimal   `json:"totalCapitalSecured"`
}

type Portfolio struct {
	AccountID string             `json:"accountId"`
	Stocks    []StockHolding     `json:"stocks"`
	Options   []ClassifiedOption `json:"options"`
	Summary   PortfolioSummary   `json:"summary"`
}
