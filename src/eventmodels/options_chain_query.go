package eventmodels

import (
	"fmt"
	"time"
)

// OptionsChainQuery selects the contracts of one underlying and type expiring within a window.
type OptionsChainQuery struct {
	Underlying    StockSymbol
	OptionType    OptionType
	MinExpiration ExpirationDate
	MaxExpiration ExpirationDate
}

func (q OptionsChainQuery) Validate() error {
	if q.Underlying == "" {
		return fmt.Errorf("OptionsChainQuery: Validate: underlying is required")
	}

	if err := q.OptionType.Validate(); err != nil {
		return fmt.Errorf("OptionsChainQuery: Validate: %w", err)
	}

	if !q.MinExpiration.IsValid() || !q.MaxExpiration.IsValid() {
		return fmt.Errorf("OptionsChainQuery: Validate: invalid expiration window %s..%s", q.MinExpiration, q.MaxExpiration)
	}

	if q.MaxExpiration < q.MinExpiration {
		return fmt.Errorf("OptionsChainQuery: Validate: max expiration %s is before min %s", q.MaxExpiration, q.MinExpiration)
	}

	return nil
}

func (q OptionsChainQuery) CacheKey() string {
	return fmt.Sprintf("%s:%s:%s:%s", q.Underlying, q.OptionType, q.MinExpiration, q.MaxExpiration)
}

// NewOptionsChainQuery covers expirations from today through maxDays ahead, in market time.
func NewOptionsChainQuery(underlying StockSymbol, optionType OptionType, maxDays int, now time.Time) OptionsChainQuery {
	today := now.In(MarketLocation)

	return OptionsChainQuery{
		Underlying:    NewStockSymbol(string(underlying)),
		OptionType:    optionType,
		MinExpiration: NewExpirationDate(today),
		MaxExpiration: NewExpirationDate(today.AddDate(0, 0, maxDays)),
	}
}
